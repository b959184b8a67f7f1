package seed

import (
	"fmt"
	"log"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a seeder bound to the given DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll deletes all seedable content. Order matters because of the
// foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds users, posts, comments and follow edges.
func (s *Seeder) Run(opts Options) error {
	if err := Groups(s.db); err != nil {
		return err
	}

	var groups []*models.Group
	if err := s.db.Find(&groups).Error; err != nil {
		return fmt.Errorf("load groups: %w", err)
	}

	log.Printf("Creating %d users...", opts.NumUsers)
	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("at least one user is required to seed posts")
	}

	log.Printf("Creating %d posts...", opts.NumPosts)
	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		var groupID *uint
		// roughly two thirds of posts belong to a group
		if len(groups) > 0 && s.factory.rng.Intn(3) != 0 {
			groupID = &groups[s.factory.rng.Intn(len(groups))].ID
		}
		posts = append(posts, s.factory.BuildPost(author, groupID))
	}
	if len(posts) > 0 {
		if err := s.db.CreateInBatches(posts, 100).Error; err != nil {
			return fmt.Errorf("create posts: %w", err)
		}
	}

	log.Println("Creating comments...")
	for _, post := range posts {
		for i := 0; i < s.factory.rng.Intn(4); i++ {
			commenter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(post, commenter); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}
	}

	log.Println("Creating follow edges...")
	if err := s.seedFollows(users); err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d posts across %d groups", len(users), len(posts), len(groups))
	return nil
}

// seedFollows gives every user a handful of authors to follow. The unique
// pair index makes repeats harmless.
func (s *Seeder) seedFollows(users []*models.User) error {
	for _, follower := range users {
		for i := 0; i < s.factory.rng.Intn(5); i++ {
			author := users[s.factory.rng.Intn(len(users))]
			if author.ID == follower.ID {
				continue
			}
			follow := &models.Follow{FollowerID: follower.ID, AuthorID: author.ID}
			err := s.db.Where(models.Follow{
				FollowerID: follower.ID,
				AuthorID:   author.ID,
			}).FirstOrCreate(follow).Error
			if err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
		}
	}
	return nil
}
