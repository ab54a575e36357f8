package application

import (
	"errors"
	"fmt"

	"github.com/crypticbroker/platform-api/internal/domain/project"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
	"gorm.io/gorm"
)

type ProjectService struct {
	Repos *repository.Repos
	Audit Auditor
}

func NewProjectService(repos *repository.Repos, audit Auditor) *ProjectService {
	return &ProjectService{Repos: repos, Audit: audit}
}

func (s *ProjectService) CreateProject(actor *user.Actor, input project.CreateProjectInput) (*project.Project, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}

	p := &project.Project{
		Name:                 input.Name,
		Description:          input.Description,
		Website:              input.Website,
		PitchDeckURL:         input.PitchDeckURL,
		Status:               project.StatusDraft,
		Blockchain:           input.Blockchain,
		OtherBlockchain:      input.OtherBlockchain,
		Features:             input.Features,
		TechStack:            input.TechStack,
		Security:             input.Security,
		TGEDate:              input.TGEDate,
		ListingExchanges:     input.ListingExchanges,
		MarketMaker:          input.MarketMaker,
		Tokenomics:           input.Tokenomics,
		PreviousFunding:      input.PreviousFunding,
		FundingTarget:        input.FundingTarget,
		InvestmentTypes:      input.InvestmentTypes,
		InterestedVCs:        input.InterestedVCs,
		KeyMetrics:           input.KeyMetrics,
		RequiredServices:     input.RequiredServices,
		ServiceDetails:       input.ServiceDetails,
		AdditionalServices:   input.AdditionalServices,
		CompanyStructure:     input.CompanyStructure,
		RegulatoryCompliance: input.RegulatoryCompliance,
		LegalAdvisor:         input.LegalAdvisor,
		ComplianceStrategy:   input.ComplianceStrategy,
		RiskFactors:          input.RiskFactors,
		OwnerID:              actor.ID,
	}

	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "create", "project", fmt.Sprintf("id=%d", p.ID), nil, p, "")
	return p, nil
}

// GetProject loads a project. Only the owner (or an admin) may read it; the
// row carries confidential material (tokenomics, funding, compliance).
func (s *ProjectService) GetProject(actor *user.Actor, id uint) (*project.Project, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("project not found")
		}
		return nil, err
	}
	if !p.IsOwner(actor.ID) && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only the project owner may view it")
	}
	return &p, nil
}

func (s *ProjectService) ListMyProjects(actor *user.Actor) ([]project.Project, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	return s.Repos.Project.ListProjectsByOwner(actor.ID)
}

func (s *ProjectService) UpdateProject(actor *user.Actor, id uint, input project.UpdateProjectInput) (*project.Project, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("project not found")
		}
		return nil, err
	}
	if !p.IsOwner(actor.ID) && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only the project owner may update it")
	}

	before := p
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Website != nil {
		p.Website = *input.Website
	}
	if input.PitchDeckURL != nil {
		p.PitchDeckURL = *input.PitchDeckURL
	}
	if input.Status != nil {
		status := project.Status(*input.Status)
		if !project.ValidStatus(status) {
			return nil, apperrors.BadRequest("unknown project status")
		}
		p.Status = status
	}

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "update", "project", fmt.Sprintf("id=%d", p.ID), before, p, "")
	return &p, nil
}

func (s *ProjectService) DeleteProject(actor *user.Actor, id uint) error {
	if actor == nil {
		return apperrors.Unauthenticated("")
	}
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("project not found")
		}
		return err
	}
	if !p.IsOwner(actor.ID) && !actor.IsAdmin() {
		return apperrors.Forbidden("only the project owner may delete it")
	}
	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return err
	}

	s.Audit.Record(actor, "delete", "project", fmt.Sprintf("id=%d", p.ID), p, nil, "")
	return nil
}
