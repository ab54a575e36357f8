package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/crypticbroker/platform-api/internal/api/handlers"
	"github.com/crypticbroker/platform-api/internal/api/middleware"
	"github.com/crypticbroker/platform-api/internal/application"
	"github.com/crypticbroker/platform-api/internal/config"
	appdomain "github.com/crypticbroker/platform-api/internal/domain/application"
	"github.com/crypticbroker/platform-api/internal/domain/organization"
	"github.com/crypticbroker/platform-api/internal/domain/project"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/notify"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/repository/mock"
	"github.com/crypticbroker/platform-api/internal/testutils"
)

type silentAuditor struct{}

func (silentAuditor) Record(actor *user.Actor, action, resourceType, resourceID string, before, after any, description string) {
}

type httpMocks struct {
	App  *mock.MockApplicationRepo
	Proj *mock.MockProjectRepo
	Org  *mock.MockOrganizationRepo
}

func setupAPI(t *testing.T) (*gin.Engine, httpMocks) {
	config.JwtSecret = "test-secret"
	middleware.Init()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := httpMocks{
		App:  mock.NewMockApplicationRepo(ctrl),
		Proj: mock.NewMockProjectRepo(ctrl),
		Org:  mock.NewMockOrganizationRepo(ctrl),
	}
	repos := &repository.Repos{
		User:         mock.NewMockUserRepo(ctrl),
		Application:  m.App,
		Project:      m.Proj,
		Organization: m.Org,
		Form:         mock.NewMockFormRepo(ctrl),
		Audit:        mock.NewMockAuditRepo(ctrl),
	}

	audit := silentAuditor{}
	svc := &application.Services{
		Audit:        application.NewAuditService(repos),
		User:         application.NewUserService(repos),
		Organization: application.NewOrganizationService(repos, audit),
		Project:      application.NewProjectService(repos, audit),
		Form:         application.NewFormService(repos, audit),
		Application:  application.NewApplicationService(repos, audit),
		Upload:       application.NewUploadService(nil, audit),
	}

	h := handlers.New(svc, notify.NewBroker(), nil)
	return testutils.SetupRouter(h), m
}

func bearerFor(t *testing.T, userID uint, role string) string {
	token, err := middleware.GenerateToken(userID, "test@example.com", role, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func doJSON(r *gin.Engine, method, path, auth string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateApplicationEndpoint(t *testing.T) {
	r, m := setupAPI(t)

	m.Proj.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)
	m.Org.EXPECT().GetOrganizationByID(uint(20)).Return(organization.Organization{ID: 20}, nil)
	m.Org.EXPECT().FirstMembershipByUser(uint(1)).Return(nil, nil)
	m.App.EXPECT().CreateApplication(gomock.Any()).DoAndReturn(func(a *appdomain.Application) error {
		a.ID = 100
		return nil
	})

	w := doJSON(r, http.MethodPost, "/applications", bearerFor(t, 1, "PROJECT_OWNER"),
		gin.H{"project_id": 10, "target_org_id": 20})

	assert.Equal(t, http.StatusCreated, w.Code)
	var got appdomain.Application
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, appdomain.StatusDraft, got.Status)
}

func TestCreateApplicationEndpoint_RequiresAuth(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/applications", "", gin.H{"project_id": 10, "target_org_id": 20})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateStatusEndpoint_OwnerSubmits(t *testing.T) {
	r, m := setupAPI(t)

	app := appdomain.Application{ID: 100, ProjectID: 10, TargetOrgID: 20, Status: appdomain.StatusDraft}
	m.App.EXPECT().GetApplicationByID(uint(100)).Return(app, nil)
	m.Proj.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)
	m.Org.EXPECT().IsMember(uint(20), uint(1)).Return(false, nil)
	m.App.EXPECT().UpdateApplication(gomock.Any()).Return(nil)

	w := doJSON(r, http.MethodPatch, "/applications/100/status", bearerFor(t, 1, "PROJECT_OWNER"),
		gin.H{"status": "SUBMITTED"})

	assert.Equal(t, http.StatusOK, w.Code)
	var got appdomain.Application
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, appdomain.StatusSubmitted, got.Status)
}

func TestUpdateStatusEndpoint_OwnerAcceptGets403(t *testing.T) {
	r, m := setupAPI(t)

	app := appdomain.Application{ID: 100, ProjectID: 10, TargetOrgID: 20, Status: appdomain.StatusSubmitted}
	m.App.EXPECT().GetApplicationByID(uint(100)).Return(app, nil)
	m.Proj.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)
	m.Org.EXPECT().IsMember(uint(20), uint(1)).Return(false, nil)

	w := doJSON(r, http.MethodPatch, "/applications/100/status", bearerFor(t, 1, "PROJECT_OWNER"),
		gin.H{"status": "ACCEPTED"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateStatusEndpoint_UnknownStatusGets400(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodPatch, "/applications/100/status", bearerFor(t, 1, "PROJECT_OWNER"),
		gin.H{"status": "APPROVED"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteApplicationEndpoint_NonDraftGets400(t *testing.T) {
	r, m := setupAPI(t)

	app := appdomain.Application{ID: 100, ProjectID: 10, TargetOrgID: 20, Status: appdomain.StatusAccepted}
	m.App.EXPECT().GetApplicationByID(uint(100)).Return(app, nil)
	m.Proj.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)
	m.Org.EXPECT().IsMember(uint(20), uint(1)).Return(false, nil)

	w := doJSON(r, http.MethodDelete, "/applications/100", bearerFor(t, 1, "PROJECT_OWNER"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetApplicationEndpoint_BadIDParam(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodGet, "/applications/not-a-number", bearerFor(t, 1, "PROJECT_OWNER"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
