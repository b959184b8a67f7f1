package repository

import (
	"fmt"
	"testing"
	"time"

	"pulse/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

func createTestGroup(t *testing.T, db *gorm.DB, slug string) *models.Group {
	t.Helper()
	group := &models.Group{
		Title: "Group " + slug,
		Slug:  slug,
	}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("Failed to create group %s: %v", slug, err)
	}
	return group
}

// createTestPosts creates n posts for the author with strictly increasing
// publication dates, so post i+1 is newer than post i.
func createTestPosts(t *testing.T, db *gorm.DB, author *models.User, n int) []*models.Post {
	t.Helper()
	base := time.Now().Add(-time.Duration(n) * time.Minute)
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := &models.Post{
			Text:      fmt.Sprintf("post %d by %s", i, author.Username),
			UserID:    author.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(post).Error; err != nil {
			t.Fatalf("Failed to create post %d: %v", i, err)
		}
		posts = append(posts, post)
	}
	return posts
}
