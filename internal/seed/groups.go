package seed

import (
	_ "embed"
	"fmt"

	"pulse/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed groups.yml
var groupsFixture []byte

type groupFixture struct {
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

// Groups loads the built-in group fixtures. Existing slugs are left as-is,
// so re-running the seeder does not duplicate or overwrite groups.
func Groups(db *gorm.DB) error {
	var fixtures []groupFixture
	if err := yaml.Unmarshal(groupsFixture, &fixtures); err != nil {
		return fmt.Errorf("parse group fixtures: %w", err)
	}

	for _, fx := range fixtures {
		group := models.Group{
			Title:       fx.Title,
			Slug:        fx.Slug,
			Description: fx.Description,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&group).Error
		if err != nil {
			return fmt.Errorf("seed group %q: %w", fx.Slug, err)
		}
	}
	return nil
}
