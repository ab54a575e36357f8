package form

import "gorm.io/datatypes"

type QuestionInput struct {
	Text        string         `json:"text" binding:"required"`
	Description string         `json:"description"`
	Type        string         `json:"type" binding:"required"`
	IsRequired  bool           `json:"is_required"`
	Options     datatypes.JSON `json:"options"`
}

type SectionInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
}

type CreateFormInput struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Structure   datatypes.JSON `json:"structure" binding:"required"`
	Sections    []SectionInput `json:"sections"`
}

type UpdateFormInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type SubmitFormInput struct {
	Data      datatypes.JSON `json:"data" binding:"required"`
	ProjectID *uint          `json:"project_id"`
}
