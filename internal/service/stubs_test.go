package service

import (
	"context"

	"pulse/internal/models"
)

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	listAllFn       func(context.Context, int, int) ([]*models.Post, error)
	countAllFn      func(context.Context) (int64, error)
	listByGroupFn   func(context.Context, uint, int, int) ([]*models.Post, error)
	countByGroupFn  func(context.Context, uint) (int64, error)
	listByAuthorFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
	listFeedFn      func(context.Context, uint, int, int) ([]*models.Post, error)
	countFeedFn     func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) ListAll(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listAllFn(ctx, limit, offset)
}
func (s *postRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *postRepoStub) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByGroupFn(ctx, groupID, limit, offset)
}
func (s *postRepoStub) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	return s.countByGroupFn(ctx, groupID)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) ListFeed(ctx context.Context, followerID uint, limit, offset int) ([]*models.Post, error) {
	return s.listFeedFn(ctx, followerID, limit, offset)
}
func (s *postRepoStub) CountFeed(ctx context.Context, followerID uint) (int64, error) {
	return s.countFeedFn(ctx, followerID)
}

type groupRepoStub struct {
	createFn    func(context.Context, *models.Group) error
	getByIDFn   func(context.Context, uint) (*models.Group, error)
	getBySlugFn func(context.Context, string) (*models.Group, error)
	listFn      func(context.Context) ([]*models.Group, error)
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *groupRepoStub) List(ctx context.Context) ([]*models.Group, error) {
	return s.listFn(ctx)
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

type followRepoStub struct {
	createFn          func(context.Context, *models.Follow) error
	deleteFn          func(context.Context, uint, uint) error
	existsFn          func(context.Context, uint, uint) (bool, error)
	countByFollowerFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, authorID uint) error {
	return s.deleteFn(ctx, followerID, authorID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.existsFn(ctx, followerID, authorID)
}
func (s *followRepoStub) CountByFollower(ctx context.Context, followerID uint) (int64, error) {
	return s.countByFollowerFn(ctx, followerID)
}
