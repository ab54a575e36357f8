package application

import "time"

// Status is the review stage of an application. DRAFT is the only initial
// state; ACCEPTED and REJECTED are terminal.
type Status string

const (
	StatusDraft        Status = "DRAFT"
	StatusSubmitted    Status = "SUBMITTED"
	StatusReviewing    Status = "REVIEWING"
	StatusInterviewing Status = "INTERVIEWING"
	StatusAccepted     Status = "ACCEPTED"
	StatusRejected     Status = "REJECTED"
)

// ParseStatus maps a wire value onto the closed status set. The bool is false
// for anything outside the six known values, so unknown statuses are rejected
// at the boundary instead of reaching business logic.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDraft, StatusSubmitted, StatusReviewing, StatusInterviewing, StatusAccepted, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Terminal reports whether no further transitions are modeled from s.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Application asks a target organization to review a project. ApplicantOrgID
// records the owner's organization at creation time, if they had one.
type Application struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ProjectID        uint      `gorm:"not null;index" json:"project_id"`
	ApplicantOrgID   *uint     `gorm:"index" json:"applicant_org_id"`
	TargetOrgID      uint      `gorm:"not null;index" json:"target_org_id"`
	FormSubmissionID *uint     `gorm:"index" json:"form_submission_id"`
	Status           Status    `gorm:"type:application_status;default:'DRAFT';not null" json:"status"`
	Notes            string    `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}
