package repository

import (
	"errors"

	"github.com/crypticbroker/platform-api/internal/domain/organization"
	"gorm.io/gorm"
)

type OrganizationRepo interface {
	GetOrganizationByID(id uint) (organization.Organization, error)
	CreateOrganization(org *organization.Organization) error
	UpdateOrganization(org *organization.Organization) error
	ListOrganizations() ([]organization.Organization, error)
	AddMember(m *organization.Member) error
	RemoveMember(memberID uint) error
	GetMember(orgID, userID uint) (organization.Member, error)
	IsMember(orgID, userID uint) (bool, error)
	FirstMembershipByUser(userID uint) (*organization.Member, error)
	ListMembers(orgID uint) ([]organization.Member, error)
	WithTx(tx *gorm.DB) OrganizationRepo
}

type DBOrganizationRepo struct {
	db *gorm.DB
}

func NewOrganizationRepo(db *gorm.DB) *DBOrganizationRepo {
	return &DBOrganizationRepo{db: db}
}

func (r *DBOrganizationRepo) GetOrganizationByID(id uint) (organization.Organization, error) {
	var org organization.Organization
	err := r.db.First(&org, id).Error
	return org, err
}

func (r *DBOrganizationRepo) CreateOrganization(org *organization.Organization) error {
	return r.db.Create(org).Error
}

func (r *DBOrganizationRepo) UpdateOrganization(org *organization.Organization) error {
	return r.db.Save(org).Error
}

func (r *DBOrganizationRepo) ListOrganizations() ([]organization.Organization, error) {
	var orgs []organization.Organization
	err := r.db.Order("created_at desc").Find(&orgs).Error
	return orgs, err
}

func (r *DBOrganizationRepo) AddMember(m *organization.Member) error {
	return r.db.Create(m).Error
}

func (r *DBOrganizationRepo) RemoveMember(memberID uint) error {
	return r.db.Delete(&organization.Member{}, memberID).Error
}

func (r *DBOrganizationRepo) GetMember(orgID, userID uint) (organization.Member, error) {
	var m organization.Member
	err := r.db.Where("organization_id = ? AND user_id = ?", orgID, userID).First(&m).Error
	return m, err
}

// IsMember is the membership existence check the authorization rules rely on.
func (r *DBOrganizationRepo) IsMember(orgID, userID uint) (bool, error) {
	var m organization.Member
	err := r.db.Where("organization_id = ? AND user_id = ?", orgID, userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FirstMembershipByUser returns the user's first membership, or nil when they
// belong to no organization.
func (r *DBOrganizationRepo) FirstMembershipByUser(userID uint) (*organization.Member, error) {
	var m organization.Member
	err := r.db.Where("user_id = ?", userID).Order("id asc").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *DBOrganizationRepo) ListMembers(orgID uint) ([]organization.Member, error) {
	var members []organization.Member
	err := r.db.Where("organization_id = ?", orgID).Find(&members).Error
	return members, err
}

func (r *DBOrganizationRepo) WithTx(tx *gorm.DB) OrganizationRepo {
	if tx == nil {
		return r
	}
	return &DBOrganizationRepo{db: tx}
}
