package model

import (
	"time"

	"gorm.io/datatypes"
)

// Project categories form a closed set; anything else is rejected before
// persistence.
const (
	CategoryResidential = "Residential"
	CategoryCommercial  = "Commercial"
	CategoryModernVilla = "Modern Villas"

	// CategoryAll is the pass-through filter value, never a stored category.
	CategoryAll = "All"
)

func Categories() []string {
	return []string{CategoryResidential, CategoryCommercial, CategoryModernVilla}
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryModernVilla:
		return true
	}
	return false
}

// Project is one portfolio entry. Identifiers are opaque strings in both
// backing policies; the Postgres policy fills them server-side, the local
// policy assigns them on create. They are never re-encoded across policies.
type Project struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title    string `gorm:"type:text;not null" json:"title"`
	Category string `gorm:"type:text;not null;index;check:category IN ('Residential','Commercial','Modern Villas')" json:"category"`

	// Image is either an external URL or an embedded data: reference.
	Image           string `gorm:"type:text;not null" json:"image"`
	Description     string `gorm:"type:text;not null" json:"description"`
	Location        string `gorm:"type:text;not null" json:"location"`
	Year            string `gorm:"type:text;not null" json:"year"`
	Size            string `gorm:"type:text;not null" json:"size"`
	Client          string `gorm:"type:text;not null" json:"client"`
	FullDescription string `gorm:"type:text;not null" json:"full_description"`

	Features         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`
	AdditionalImages datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"additional_images"`

	Published bool  `gorm:"not null;default:true" json:"published"`
	Views     int64 `gorm:"not null;default:0" json:"views"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Project <-> Tag (through project_tag_relations)
	Tags []Tag `gorm:"many2many:project_tag_relations;joinForeignKey:ProjectID;joinReferences:TagID" json:"tags,omitempty"`
}

func (Project) TableName() string { return "projects" }

// ProjectDraft is the identity-less shape the admin edit workflow stages and
// submits. Store-managed fields (timestamps, views, published) are absent.
type ProjectDraft struct {
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Image            string   `json:"image"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Year             string   `json:"year"`
	Size             string   `json:"size"`
	Client           string   `json:"client"`
	FullDescription  string   `json:"full_description"`
	Features         []string `json:"features"`
	AdditionalImages []string `json:"additional_images"`
}

// DraftOf copies a stored project into an editable draft, withholding the
// identifier; it is reattached only on submit.
func DraftOf(p *Project) ProjectDraft {
	return ProjectDraft{
		Title:            p.Title,
		Category:         p.Category,
		Image:            p.Image,
		Description:      p.Description,
		Location:         p.Location,
		Year:             p.Year,
		Size:             p.Size,
		Client:           p.Client,
		FullDescription:  p.FullDescription,
		Features:         append([]string(nil), p.Features...),
		AdditionalImages: append([]string(nil), p.AdditionalImages...),
	}
}
