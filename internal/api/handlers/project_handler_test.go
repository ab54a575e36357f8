package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crypticbroker/platform-api/internal/domain/project"
)

func TestGetProjectEndpoint_OwnerReads(t *testing.T) {
	r, m := setupAPI(t)

	m.Proj.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1, Name: "ChainScan"}, nil)

	w := doJSON(r, http.MethodGet, "/projects/10", bearerFor(t, 1, "PROJECT_OWNER"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got project.Project
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ChainScan", got.Name)
}

func TestGetProjectEndpoint_NonOwnerGets403(t *testing.T) {
	r, m := setupAPI(t)

	m.Proj.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1, Tokenomics: "private"}, nil)

	w := doJSON(r, http.MethodGet, "/projects/10", bearerFor(t, 2, "INVESTOR"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), "private"))
}

func TestGetProjectEndpoint_AdminReadsAny(t *testing.T) {
	r, m := setupAPI(t)

	m.Proj.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, OwnerID: 1}, nil)

	w := doJSON(r, http.MethodGet, "/projects/10", bearerFor(t, 9, "ADMIN"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
