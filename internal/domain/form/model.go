package form

import (
	"time"

	"gorm.io/datatypes"
)

// Form is an admin-authored questionnaire projects fill in before applying.
type Form struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Structure   datatypes.JSON `gorm:"not null" json:"structure"`
	Version     int            `gorm:"default:1;not null" json:"version"`
	IsActive    bool           `gorm:"default:true;not null" json:"is_active"`
	CreatedByID uint           `gorm:"not null" json:"created_by_id"`
	Sections    []Section      `gorm:"foreignKey:FormID" json:"sections,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Form) TableName() string {
	return "forms"
}

type Section struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FormID      uint       `gorm:"not null;index" json:"form_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Order       int        `gorm:"column:sort_order;not null" json:"order"`
	Questions   []Question `gorm:"foreignKey:SectionID" json:"questions,omitempty"`
}

func (Section) TableName() string {
	return "form_sections"
}

type Question struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SectionID   uint           `gorm:"not null;index" json:"section_id"`
	Text        string         `gorm:"type:text;not null" json:"text"`
	Description string         `gorm:"type:text" json:"description"`
	Type        string         `gorm:"size:50;not null" json:"type"`
	IsRequired  bool           `gorm:"default:false;not null" json:"is_required"`
	Order       int            `gorm:"column:sort_order;not null" json:"order"`
	Options     datatypes.JSON `json:"options"`
}

func (Question) TableName() string {
	return "form_questions"
}

// Submission holds a user's answers to a form, pinned to the form version
// current at submit time. ProjectID links the answers to a project when the
// submission backs an application.
type Submission struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	FormID      uint           `gorm:"not null;index" json:"form_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	ProjectID   *uint          `gorm:"index" json:"project_id"`
	FormVersion int            `gorm:"not null" json:"form_version"`
	Data        datatypes.JSON `gorm:"not null" json:"data"`
	Status      string         `gorm:"size:50;default:'submitted';not null" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Submission) TableName() string {
	return "form_submissions"
}
