package model

import (
	"strings"
	"time"
)

// Category and Tag exist only in the Postgres backing policy; the local demo
// policy serves the built-in category enumeration instead.

type Category struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null;unique" json:"name"`
	Slug        string `gorm:"type:text;not null;unique" json:"slug"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`
	Color       string `gorm:"type:text;not null;default:''" json:"color"`
	Icon        string `gorm:"type:text;not null;default:''" json:"icon"`
	SortOrder   int    `gorm:"not null;default:0;index" json:"sort_order"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Category) TableName() string { return "project_categories" }

// SlugOf lowercases a display name into its url-safe slug form.
func SlugOf(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

type Tag struct {
	ID    string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string `gorm:"type:text;not null;unique" json:"name"`
	Slug  string `gorm:"type:text;not null;unique" json:"slug"`
	Color string `gorm:"type:text;not null;default:''" json:"color"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Tag) TableName() string { return "project_tags" }

// ProjectTagRelation pairs are unique; assigning the same tag twice is a
// conflict, not an upsert.
type ProjectTagRelation struct {
	ProjectID string `gorm:"type:uuid;not null;primaryKey;uniqueIndex:uq_project_tag,priority:1" json:"project_id"`
	TagID     string `gorm:"type:uuid;not null;primaryKey;uniqueIndex:uq_project_tag,priority:2" json:"tag_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Tag     *Tag     `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ProjectTagRelation) TableName() string { return "project_tag_relations" }
