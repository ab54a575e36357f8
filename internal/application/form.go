package application

import (
	"errors"
	"fmt"

	"github.com/crypticbroker/platform-api/internal/domain/form"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
	"gorm.io/gorm"
)

type FormService struct {
	Repos *repository.Repos
	Audit Auditor
}

func NewFormService(repos *repository.Repos, audit Auditor) *FormService {
	return &FormService{Repos: repos, Audit: audit}
}

// CreateForm creates a form with its nested sections and questions in a
// single transaction. Section and question order follow input order.
func (s *FormService) CreateForm(actor *user.Actor, input form.CreateFormInput) (*form.Form, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}

	f := &form.Form{
		Title:       input.Title,
		Description: input.Description,
		Structure:   input.Structure,
		CreatedByID: actor.ID,
	}
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Form.CreateForm(f); err != nil {
			return err
		}
		for i, sec := range input.Sections {
			section := &form.Section{
				FormID:      f.ID,
				Title:       sec.Title,
				Description: sec.Description,
				Order:       i,
			}
			for j, q := range sec.Questions {
				section.Questions = append(section.Questions, form.Question{
					Text:        q.Text,
					Description: q.Description,
					Type:        q.Type,
					IsRequired:  q.IsRequired,
					Order:       j,
					Options:     q.Options,
				})
			}
			if err := r.Form.CreateSection(section); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "create", "form", fmt.Sprintf("id=%d", f.ID), nil, f, "")

	created, err := s.Repos.Form.GetFormWithSections(f.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *FormService) GetForm(id uint) (*form.Form, error) {
	f, err := s.Repos.Form.GetFormWithSections(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("form not found")
		}
		return nil, err
	}
	return &f, nil
}

func (s *FormService) ListForms() ([]form.Form, error) {
	return s.Repos.Form.ListActiveForms()
}

// UpdateForm patches form metadata and bumps the version so later
// submissions can be told apart from ones made against the old shape.
func (s *FormService) UpdateForm(actor *user.Actor, id uint, input form.UpdateFormInput) (*form.Form, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("form not found")
		}
		return nil, err
	}

	before := f
	if input.Title != nil {
		f.Title = *input.Title
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.IsActive != nil {
		f.IsActive = *input.IsActive
	}
	f.Version++

	if err := s.Repos.Form.UpdateForm(&f); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "update", "form", fmt.Sprintf("id=%d", f.ID), before, f, "")
	return &f, nil
}

// SubmitForm records a user's answers pinned to the form's current version.
func (s *FormService) SubmitForm(actor *user.Actor, formID uint, input form.SubmitFormInput) (*form.Submission, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("form not found")
		}
		return nil, err
	}
	if !f.IsActive {
		return nil, apperrors.BadRequest("this form is no longer accepting submissions")
	}
	if input.ProjectID != nil {
		p, err := s.Repos.Project.GetProjectByID(*input.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("project not found")
			}
			return nil, err
		}
		if !p.IsOwner(actor.ID) && !actor.IsAdmin() {
			return nil, apperrors.Forbidden("you can only submit forms for your own projects")
		}
	}

	sub := &form.Submission{
		FormID:      f.ID,
		UserID:      actor.ID,
		ProjectID:   input.ProjectID,
		FormVersion: f.Version,
		Data:        input.Data,
	}
	if err := s.Repos.Form.CreateSubmission(sub); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "create", "form_submission", fmt.Sprintf("id=%d", sub.ID), nil, sub, "")
	return sub, nil
}

func (s *FormService) GetSubmission(actor *user.Actor, id uint) (*form.Submission, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	sub, err := s.Repos.Form.GetSubmissionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("submission not found")
		}
		return nil, err
	}
	if sub.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("")
	}
	return &sub, nil
}

func (s *FormService) ListFormSubmissions(formID uint) ([]form.Submission, error) {
	if _, err := s.Repos.Form.GetFormByID(formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("form not found")
		}
		return nil, err
	}
	return s.Repos.Form.ListSubmissionsByForm(formID)
}

func (s *FormService) ListMySubmissions(actor *user.Actor) ([]form.Submission, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	return s.Repos.Form.ListSubmissionsByUser(actor.ID)
}
