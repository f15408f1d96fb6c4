package model

import "time"

// Submission statuses move forward only: new -> in_progress -> completed.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// statusRank orders the lifecycle; a transition to a lower rank is rejected.
var statusRank = map[string]int{
	StatusNew:        0,
	StatusInProgress: 1,
	StatusCompleted:  2,
}

func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// StatusForwardOf reports whether moving from to next goes forward (or stays)
// in the lifecycle.
func StatusForwardOf(from, to string) bool {
	f, ok1 := statusRank[from]
	t, ok2 := statusRank[to]
	return ok1 && ok2 && t >= f
}

// Project types offered by the public contact form.
const (
	ProjectTypeResidential  = "residential"
	ProjectTypeCommercial   = "commercial"
	ProjectTypeVilla        = "villa"
	ProjectTypeRenovation   = "renovation"
	ProjectTypeConsultation = "consultation"
)

// ContactSubmission is one inquiry from the public contact form. HighPriority
// is an independent flag set by admins, never a status value.
type ContactSubmission struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName   string `gorm:"type:text;not null" json:"first_name"`
	LastName    string `gorm:"type:text;not null" json:"last_name"`
	Email       string `gorm:"type:text;not null" json:"email"`
	ProjectType string `gorm:"type:text;not null" json:"project_type"`
	Message     string `gorm:"type:text;not null" json:"message"`

	Status       string `gorm:"type:text;not null;default:'new';check:status IN ('new','in_progress','completed');index" json:"status"`
	HighPriority bool   `gorm:"not null;default:false" json:"high_priority"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }
