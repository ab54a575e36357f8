package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crypticbroker/platform-api/internal/api/middleware"
	appservice "github.com/crypticbroker/platform-api/internal/application"
	appdomain "github.com/crypticbroker/platform-api/internal/domain/application"
	"github.com/crypticbroker/platform-api/pkg/response"
)

type ApplicationHandler struct {
	svc *appservice.ApplicationService
}

func NewApplicationHandler(svc *appservice.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// CreateApplication godoc
// @Summary Apply to an organization with a project
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body application.CreateApplicationInput true "Application info"
// @Success 201 {object} application.Application
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var input appdomain.CreateApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	app, err := h.svc.CreateApplication(middleware.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GetApplication godoc
// @Summary Get a single application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} application.Application
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	app, err := h.svc.GetApplication(middleware.ActorFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListMyApplications godoc
// @Summary List applications for the caller's projects
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ListResponse
// @Router /applications [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	apps, err := h.svc.ListMyApplications(middleware.ActorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Results: len(apps), Data: apps})
}

// ListOrganizationApplications godoc
// @Summary List applications received by an organization
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Organization ID"
// @Success 200 {object} response.ListResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /organizations/{id}/applications [get]
func (h *ApplicationHandler) ListOrganizationApplications(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	apps, err := h.svc.ListOrganizationApplications(middleware.ActorFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Results: len(apps), Data: apps})
}

// UpdateStatus godoc
// @Summary Move an application through the review workflow
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param input body application.UpdateStatusInput true "New status and optional notes"
// @Success 200 {object} application.Application
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input appdomain.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	app, err := h.svc.UpdateStatus(middleware.ActorFromContext(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Delete a draft application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteApplication(middleware.ActorFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "application deleted"})
}
