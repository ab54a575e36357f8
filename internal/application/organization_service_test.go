package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/crypticbroker/platform-api/internal/domain/organization"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/repository/mock"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
)

type organizationMocks struct {
	Org  *mock.MockOrganizationRepo
	User *mock.MockUserRepo
}

func setupOrganizationServiceMocks(t *testing.T) (*OrganizationService, organizationMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := organizationMocks{
		Org:  mock.NewMockOrganizationRepo(ctrl),
		User: mock.NewMockUserRepo(ctrl),
	}
	repos := &repository.Repos{Organization: m.Org, User: m.User}
	svc := NewOrganizationService(repos, noopAuditor{})
	return svc, m
}

func TestCreateOrganization_EnrollsCreatorAsOwner(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().CreateOrganization(gomock.Any()).DoAndReturn(func(o *organization.Organization) error {
		o.ID = 20
		return nil
	})
	m.Org.EXPECT().AddMember(gomock.Any()).DoAndReturn(func(mem *organization.Member) error {
		assert.Equal(t, uint(20), mem.OrganizationID)
		assert.Equal(t, uint(1), mem.UserID)
		assert.Equal(t, "OWNER", mem.Role)
		return nil
	})

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	org, err := svc.CreateOrganization(actor, organization.CreateOrganizationInput{Name: "Apex Capital", Type: "VC"})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), org.OwnerID)
}

func TestUpdateOrganization_NonOwnerForbidden(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1}, nil)

	actor := &user.Actor{ID: 2, Role: user.RoleInvestor}
	_, err := svc.UpdateOrganization(actor, 20, organization.UpdateOrganizationInput{Name: strptr("New Name")})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestUpdateOrganization_AdminAllowed(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1, Name: "Old"}, nil)
	m.Org.EXPECT().UpdateOrganization(gomock.Any()).Return(nil)

	actor := &user.Actor{ID: 9, Role: user.RoleAdmin}
	org, err := svc.UpdateOrganization(actor, 20, organization.UpdateOrganizationInput{Name: strptr("New Name")})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", org.Name)
}

func TestAddMember_DuplicateRejected(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1}, nil)
	m.User.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	m.Org.EXPECT().IsMember(uint(20), uint(5)).Return(true, nil)

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	_, err := svc.AddMember(actor, 20, organization.AddMemberInput{UserID: 5})
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "user is already a member of this organization", err.Error())
}

func TestAddMember_DefaultsRoleToMember(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1}, nil)
	m.User.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	m.Org.EXPECT().IsMember(uint(20), uint(5)).Return(false, nil)
	m.Org.EXPECT().AddMember(gomock.Any()).Return(nil)

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	member, err := svc.AddMember(actor, 20, organization.AddMemberInput{UserID: 5})
	assert.NoError(t, err)
	assert.Equal(t, "MEMBER", member.Role)
}

func TestAddMember_UnknownUser(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1}, nil)
	m.User.EXPECT().GetUserByID(uint(5)).Return(user.User{}, gorm.ErrRecordNotFound)

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	_, err := svc.AddMember(actor, 20, organization.AddMemberInput{UserID: 5})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRemoveMember_OwnerCannotBeRemoved(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1}, nil)
	m.Org.EXPECT().GetMember(uint(20), uint(1)).Return(organization.Member{ID: 30, OrganizationID: 20, UserID: 1}, nil)

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	err := svc.RemoveMember(actor, 20, 1)
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "the organization owner cannot be removed", err.Error())
}

func TestRemoveMember_OwnerRemovesOther(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1}, nil)
	m.Org.EXPECT().GetMember(uint(20), uint(5)).Return(organization.Member{ID: 31, OrganizationID: 20, UserID: 5}, nil)
	m.Org.EXPECT().RemoveMember(uint(31)).Return(nil)

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	assert.NoError(t, svc.RemoveMember(actor, 20, 5))
}

func TestRemoveMember_NonOwnerForbidden(t *testing.T) {
	svc, m := setupOrganizationServiceMocks(t)

	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20, OwnerID: 1}, nil)

	actor := &user.Actor{ID: 2, Role: user.RoleInvestor}
	err := svc.RemoveMember(actor, 20, 5)
	assert.True(t, apperrors.IsForbidden(err))
}
