package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/crypticbroker/platform-api/internal/domain/project"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/repository/mock"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
)

func setupProjectServiceMocks(t *testing.T) (*ProjectService, *mock.MockProjectRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	projectRepo := mock.NewMockProjectRepo(ctrl)
	svc := NewProjectService(&repository.Repos{Project: projectRepo}, noopAuditor{})
	return svc, projectRepo
}

func TestCreateProject_StartsAsDraft(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
		p.ID = 10
		return nil
	})

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	p, err := svc.CreateProject(actor, project.CreateProjectInput{Name: "ChainScan"})
	assert.NoError(t, err)
	assert.Equal(t, project.StatusDraft, p.Status)
	assert.Equal(t, uint(1), p.OwnerID)
}

func TestCreateProject_Unauthenticated(t *testing.T) {
	svc, _ := setupProjectServiceMocks(t)

	_, err := svc.CreateProject(nil, project.CreateProjectInput{Name: "ChainScan"})
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestGetProject_OwnerReads(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1, Tokenomics: "private"}, nil)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	p, err := svc.GetProject(actor, 10)
	assert.NoError(t, err)
	assert.Equal(t, "private", p.Tokenomics)
}

func TestGetProject_NonOwnerForbidden(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1, Tokenomics: "private"}, nil)

	actor := &user.Actor{ID: 2, Role: user.RoleInvestor}
	p, err := svc.GetProject(actor, 10)
	assert.Nil(t, p)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestGetProject_AdminReadsAny(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)

	actor := &user.Actor{ID: 9, Role: user.RoleAdmin}
	_, err := svc.GetProject(actor, 10)
	assert.NoError(t, err)
}

func TestGetProject_Unauthenticated(t *testing.T) {
	svc, _ := setupProjectServiceMocks(t)

	_, err := svc.GetProject(nil, 10)
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestUpdateProject_NonOwnerForbidden(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 99}, nil)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	_, err := svc.UpdateProject(actor, 10, project.UpdateProjectInput{Name: strptr("Renamed")})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestUpdateProject_UnknownStatus(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	_, err := svc.UpdateProject(actor, 10, project.UpdateProjectInput{Status: strptr("LAUNCHED")})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUpdateProject_OwnerPatchesFields(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1, Name: "Old", Description: "keep"}, nil)
	projectRepo.EXPECT().UpdateProject(gomock.Any()).Return(nil)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	p, err := svc.UpdateProject(actor, 10, project.UpdateProjectInput{Name: strptr("Renamed")})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", p.Name)
	assert.Equal(t, "keep", p.Description)
}

func TestDeleteProject_AdminAllowed(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)
	projectRepo.EXPECT().DeleteProject(uint(10)).Return(nil)

	actor := &user.Actor{ID: 9, Role: user.RoleAdmin}
	assert.NoError(t, svc.DeleteProject(actor, 10))
}

func TestDeleteProject_NotFound(t *testing.T) {
	svc, projectRepo := setupProjectServiceMocks(t)

	projectRepo.EXPECT().GetProjectByID(uint(10)).Return(project.Project{}, gorm.ErrRecordNotFound)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	err := svc.DeleteProject(actor, 10)
	assert.True(t, apperrors.IsNotFound(err))
}
