package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// FollowService implements the follow/unfollow edge operations.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow subscribes the user to the author. Following an already-followed
// author is a no-op; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, followerID uint, authorUsername string) (*models.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author.ID == followerID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	follow := &models.Follow{
		FollowerID: followerID,
		AuthorID:   author.ID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return author, nil
}

// Unfollow removes the edge if present; removing a non-existent edge is a
// no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, authorUsername string) (*models.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if err := s.followRepo.Delete(ctx, followerID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}

// IsFollowing reports whether follower subscribes to the author.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, authorID uint) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	return s.followRepo.Exists(ctx, followerID, authorID)
}
