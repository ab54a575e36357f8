package application

import (
	"errors"
	"fmt"

	"github.com/crypticbroker/platform-api/internal/domain/organization"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
	"gorm.io/gorm"
)

type OrganizationService struct {
	Repos *repository.Repos
	Audit Auditor
}

func NewOrganizationService(repos *repository.Repos, audit Auditor) *OrganizationService {
	return &OrganizationService{Repos: repos, Audit: audit}
}

// CreateOrganization creates the org and enrolls the creator as its first
// member in one transaction.
func (s *OrganizationService) CreateOrganization(actor *user.Actor, input organization.CreateOrganizationInput) (*organization.Organization, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}

	org := &organization.Organization{
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Website:     input.Website,
		OwnerID:     actor.ID,
	}
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Organization.CreateOrganization(org); err != nil {
			return err
		}
		member := &organization.Member{
			OrganizationID: org.ID,
			UserID:         actor.ID,
			Role:           "OWNER",
		}
		return r.Organization.AddMember(member)
	})
	if err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "create", "organization", fmt.Sprintf("id=%d", org.ID), nil, org, "organization created")
	return org, nil
}

func (s *OrganizationService) GetOrganization(id uint) (*organization.Organization, error) {
	org, err := s.Repos.Organization.GetOrganizationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

func (s *OrganizationService) ListOrganizations() ([]organization.Organization, error) {
	return s.Repos.Organization.ListOrganizations()
}

func (s *OrganizationService) UpdateOrganization(actor *user.Actor, id uint, input organization.UpdateOrganizationInput) (*organization.Organization, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	org, err := s.Repos.Organization.GetOrganizationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("organization not found")
		}
		return nil, err
	}
	if org.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only the organization owner may update it")
	}

	before := org
	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Type != nil {
		org.Type = *input.Type
	}
	if input.Description != nil {
		org.Description = *input.Description
	}
	if input.Website != nil {
		org.Website = *input.Website
	}
	if err := s.Repos.Organization.UpdateOrganization(&org); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "update", "organization", fmt.Sprintf("id=%d", org.ID), before, org, "organization updated")
	return &org, nil
}

func (s *OrganizationService) AddMember(actor *user.Actor, orgID uint, input organization.AddMemberInput) (*organization.Member, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	org, err := s.Repos.Organization.GetOrganizationByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("organization not found")
		}
		return nil, err
	}
	if org.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only the organization owner may add members")
	}
	if _, err := s.Repos.User.GetUserByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	already, err := s.Repos.Organization.IsMember(orgID, input.UserID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, apperrors.BadRequest("user is already a member of this organization")
	}

	role := input.Role
	if role == "" {
		role = "MEMBER"
	}
	member := &organization.Member{
		OrganizationID: orgID,
		UserID:         input.UserID,
		Role:           role,
	}
	if err := s.Repos.Organization.AddMember(member); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "create", "organization_member", fmt.Sprintf("id=%d", member.ID), nil, member, "member added")
	return member, nil
}

func (s *OrganizationService) RemoveMember(actor *user.Actor, orgID, userID uint) error {
	if actor == nil {
		return apperrors.Unauthenticated("")
	}
	org, err := s.Repos.Organization.GetOrganizationByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("organization not found")
		}
		return err
	}
	if org.OwnerID != actor.ID && !actor.IsAdmin() {
		return apperrors.Forbidden("only the organization owner may remove members")
	}
	member, err := s.Repos.Organization.GetMember(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("member not found")
		}
		return err
	}
	if member.UserID == org.OwnerID {
		return apperrors.BadRequest("the organization owner cannot be removed")
	}
	if err := s.Repos.Organization.RemoveMember(member.ID); err != nil {
		return err
	}

	s.Audit.Record(actor, "delete", "organization_member", fmt.Sprintf("id=%d", member.ID), member, nil, "member removed")
	return nil
}

func (s *OrganizationService) ListMembers(orgID uint) ([]organization.Member, error) {
	if _, err := s.Repos.Organization.GetOrganizationByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("organization not found")
		}
		return nil, err
	}
	return s.Repos.Organization.ListMembers(orgID)
}
