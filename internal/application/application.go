package application

import (
	"errors"
	"fmt"

	appdomain "github.com/crypticbroker/platform-api/internal/domain/application"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
	"gorm.io/gorm"
)

// StatusNotifier receives application status-change events. Delivery is best
// effort; implementations must not block the request path.
type StatusNotifier interface {
	NotifyStatusChange(app *appdomain.Application, previous appdomain.Status)
}

type ApplicationService struct {
	Repos    *repository.Repos
	Audit    Auditor
	Notifier StatusNotifier
}

func NewApplicationService(repos *repository.Repos, audit Auditor) *ApplicationService {
	return &ApplicationService{
		Repos: repos,
		Audit: audit,
	}
}

// relationship resolves the ownership and membership facts the transition
// rules need for one application.
func (s *ApplicationService) relationship(app *appdomain.Application, actor user.Actor) (appdomain.Relationship, error) {
	var rel appdomain.Relationship

	p, err := s.Repos.Project.GetProjectByID(app.ProjectID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return rel, err
	}
	if err == nil {
		rel.ProjectOwner = p.IsOwner(actor.ID)
	}

	member, err := s.Repos.Organization.IsMember(app.TargetOrgID, actor.ID)
	if err != nil {
		return rel, err
	}
	rel.OrgMember = member

	return rel, nil
}

// CreateApplication files a new application for a project against a target
// organization. Status is forced to DRAFT no matter what the client sent.
func (s *ApplicationService) CreateApplication(actor *user.Actor, input appdomain.CreateApplicationInput) (*appdomain.Application, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	if input.ProjectID == 0 || input.TargetOrgID == 0 {
		return nil, apperrors.BadRequest("project ID and target organization ID are required")
	}

	p, err := s.Repos.Project.GetProjectByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("project not found")
		}
		return nil, err
	}
	if !p.IsOwner(actor.ID) {
		return nil, apperrors.Forbidden("you do not have permission to create an application for this project")
	}

	if _, err := s.Repos.Organization.GetOrganizationByID(input.TargetOrgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("target organization not found")
		}
		return nil, err
	}

	if input.FormSubmissionID != nil {
		sub, err := s.Repos.Form.GetSubmissionByID(*input.FormSubmissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("form submission not found")
			}
			return nil, err
		}
		if sub.UserID != actor.ID {
			return nil, apperrors.Forbidden("you do not have permission to use this form submission")
		}
	}

	// Record the applicant's organization, if they belong to one.
	var applicantOrgID *uint
	membership, err := s.Repos.Organization.FirstMembershipByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	if membership != nil {
		applicantOrgID = &membership.OrganizationID
	}

	app := &appdomain.Application{
		ProjectID:        input.ProjectID,
		ApplicantOrgID:   applicantOrgID,
		TargetOrgID:      input.TargetOrgID,
		FormSubmissionID: input.FormSubmissionID,
		Status:           appdomain.StatusDraft,
	}
	if err := s.Repos.Application.CreateApplication(app); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "create", "application", fmt.Sprintf("id=%d", app.ID), nil, app, "")

	return app, nil
}

// GetApplication loads an application, enforcing view access.
func (s *ApplicationService) GetApplication(actor *user.Actor, id uint) (*appdomain.Application, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}

	app, err := s.Repos.Application.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, err
	}

	rel, err := s.relationship(&app, *actor)
	if err != nil {
		return nil, err
	}
	if !appdomain.CanView(*actor, rel) {
		return nil, apperrors.Forbidden("you do not have permission to view this application")
	}

	return &app, nil
}

// ListMyApplications returns the applications filed over the actor's projects.
func (s *ApplicationService) ListMyApplications(actor *user.Actor) ([]appdomain.Application, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}

	projectIDs, err := s.Repos.Project.ListProjectIDsByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	return s.Repos.Application.ListApplicationsByProjects(projectIDs)
}

// ListOrganizationApplications returns applications targeting an organization.
// Only members of that organization (or admins) may list them.
func (s *ApplicationService) ListOrganizationApplications(actor *user.Actor, orgID uint) ([]appdomain.Application, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}

	member, err := s.Repos.Organization.IsMember(orgID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !member && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("you do not have permission to view applications for this organization")
	}

	return s.Repos.Application.ListApplicationsByTargetOrg(orgID)
}

// UpdateStatus moves an application to the requested status. Project owners
// may only submit; target-org members may only set review stages; admins may
// set anything. The write is a direct overwrite, not a successor check.
func (s *ApplicationService) UpdateStatus(actor *user.Actor, id uint, input appdomain.UpdateStatusInput) (*appdomain.Application, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}

	requested, ok := appdomain.ParseStatus(input.Status)
	if !ok {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid application status %q", input.Status))
	}

	app, err := s.Repos.Application.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, err
	}

	rel, err := s.relationship(&app, *actor)
	if err != nil {
		return nil, err
	}
	if !appdomain.CanTransition(*actor, rel, requested) {
		if !rel.ProjectOwner && !rel.OrgMember {
			return nil, apperrors.Forbidden("you do not have permission to update this application")
		}
		if rel.ProjectOwner {
			return nil, apperrors.Forbidden("project owners can only submit applications")
		}
		return nil, apperrors.Forbidden("invalid status update for organization member")
	}

	previous := app.Status
	oldApp := app

	app.Status = requested
	if input.Notes != nil {
		app.Notes = *input.Notes
	}

	if err := s.Repos.Application.UpdateApplication(&app); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "update", "application", fmt.Sprintf("id=%d", app.ID), oldApp, app, "status change")

	if s.Notifier != nil && previous != app.Status {
		s.Notifier.NotifyStatusChange(&app, previous)
	}

	return &app, nil
}

// DeleteApplication removes a draft application. Only the project owner (or
// an admin) may delete, and only while the status is still DRAFT.
func (s *ApplicationService) DeleteApplication(actor *user.Actor, id uint) error {
	if actor == nil {
		return apperrors.Unauthenticated("")
	}

	app, err := s.Repos.Application.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("application not found")
		}
		return err
	}

	rel, err := s.relationship(&app, *actor)
	if err != nil {
		return err
	}
	if !rel.ProjectOwner && !actor.IsAdmin() {
		return apperrors.Forbidden("you do not have permission to delete this application")
	}
	if appdomain.DeniedBecauseNotDraft(*actor, rel, app.Status) {
		return apperrors.BadRequest("only draft applications can be deleted")
	}

	if err := s.Repos.Application.DeleteApplication(id); err != nil {
		return err
	}

	s.Audit.Record(actor, "delete", "application", fmt.Sprintf("id=%d", app.ID), app, nil, "")

	return nil
}
