package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthenticated("")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(BadRequest("nope")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("gone")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("disk on fire")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading application: %w", NotFound("application not found"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsForbidden(err))
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "not authenticated", Unauthenticated("").Error())
	assert.Equal(t, "forbidden", Forbidden("").Error())
	assert.Equal(t, "session expired", Unauthenticated("session expired").Error())
}
