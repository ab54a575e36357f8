package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/crypticbroker/platform-api/internal/domain/application"
	"github.com/crypticbroker/platform-api/internal/domain/organization"
	"github.com/crypticbroker/platform-api/internal/domain/project"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/testutils"
)

func TestApplicationRepoAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	t.Cleanup(cleanup)

	repos := repository.New(gormDB)

	owner := &user.User{Email: "owner@example.com", PasswordHash: "x", Role: user.RoleProjectOwner}
	require.NoError(t, repos.User.CreateUser(owner))

	org := &organization.Organization{Name: "Apex Capital", Type: "VC", OwnerID: owner.ID}
	require.NoError(t, repos.Organization.CreateOrganization(org))

	proj := &project.Project{Name: "ChainScan", OwnerID: owner.ID, Status: project.StatusDraft}
	require.NoError(t, repos.Project.CreateProject(proj))

	app := &appdomain.Application{ProjectID: proj.ID, TargetOrgID: org.ID, Status: appdomain.StatusDraft}
	require.NoError(t, repos.Application.CreateApplication(app))
	require.NotZero(t, app.ID)

	t.Run("round trip preserves enum status", func(t *testing.T) {
		got, err := repos.Application.GetApplicationByID(app.ID)
		require.NoError(t, err)
		assert.Equal(t, appdomain.StatusDraft, got.Status)
		assert.Equal(t, proj.ID, got.ProjectID)
	})

	t.Run("status update persists", func(t *testing.T) {
		got, err := repos.Application.GetApplicationByID(app.ID)
		require.NoError(t, err)
		got.Status = appdomain.StatusSubmitted
		got.Notes = "ready for review"
		require.NoError(t, repos.Application.UpdateApplication(&got))

		reloaded, err := repos.Application.GetApplicationByID(app.ID)
		require.NoError(t, err)
		assert.Equal(t, appdomain.StatusSubmitted, reloaded.Status)
		assert.Equal(t, "ready for review", reloaded.Notes)
	})

	t.Run("list by target organization", func(t *testing.T) {
		apps, err := repos.Application.ListApplicationsByTargetOrg(org.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("list by owned projects", func(t *testing.T) {
		ids, err := repos.Project.ListProjectIDsByOwner(owner.ID)
		require.NoError(t, err)
		apps, err := repos.Application.ListApplicationsByProjects(ids)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repos.Application.DeleteApplication(app.ID))
		_, err := repos.Application.GetApplicationByID(app.ID)
		assert.Error(t, err)
	})
}

func TestOrganizationMembershipAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	t.Cleanup(cleanup)

	repos := repository.New(gormDB)

	owner := &user.User{Email: "founder@example.com", PasswordHash: "x", Role: user.RoleInvestor}
	require.NoError(t, repos.User.CreateUser(owner))
	analyst := &user.User{Email: "analyst@example.com", PasswordHash: "x", Role: user.RoleInvestor}
	require.NoError(t, repos.User.CreateUser(analyst))

	org := &organization.Organization{Name: "Apex Capital", Type: "VC", OwnerID: owner.ID}
	require.NoError(t, repos.Organization.CreateOrganization(org))
	require.NoError(t, repos.Organization.AddMember(&organization.Member{OrganizationID: org.ID, UserID: owner.ID, Role: "OWNER"}))

	isMember, err := repos.Organization.IsMember(org.ID, analyst.ID)
	require.NoError(t, err)
	assert.False(t, isMember)

	require.NoError(t, repos.Organization.AddMember(&organization.Member{OrganizationID: org.ID, UserID: analyst.ID, Role: "MEMBER"}))

	isMember, err = repos.Organization.IsMember(org.ID, analyst.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	first, err := repos.Organization.FirstMembershipByUser(analyst.ID)
	require.NoError(t, err)
	if assert.NotNil(t, first) {
		assert.Equal(t, org.ID, first.OrganizationID)
	}

	members, err := repos.Organization.ListMembers(org.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}
