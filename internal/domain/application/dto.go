package application

type CreateApplicationInput struct {
	ProjectID        uint  `json:"project_id" binding:"required"`
	TargetOrgID      uint  `json:"target_org_id" binding:"required"`
	FormSubmissionID *uint `json:"form_submission_id"`
}

// UpdateStatusInput is the PATCH body for a status transition. Notes is a
// pointer so "not supplied" and "cleared" stay distinguishable.
type UpdateStatusInput struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}
