package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxPostTextLen is the upper bound on post text, enforced at both the
// service layer and the column definition.
const MaxPostTextLen = 1000

// Post represents a published entry in the Pulse application.
// CreatedAt is the publication date; it is server-assigned and never
// changes, including through edits.
type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"size:1000;not null" json:"text"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	// GroupID is nullable: deleting a group clears the reference, the
	// post survives.
	GroupID *uint  `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	// Image is a media-dir relative path under "posts/", empty when the
	// post has no image.
	Image     string         `gorm:"size:255" json:"image,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
