package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crypticbroker/platform-api/internal/api/middleware"
	"github.com/crypticbroker/platform-api/internal/application"
	"github.com/crypticbroker/platform-api/internal/domain/organization"
	"github.com/crypticbroker/platform-api/pkg/response"
)

type OrganizationHandler struct {
	svc *application.OrganizationService
}

func NewOrganizationHandler(svc *application.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

// CreateOrganization godoc
// @Summary Create an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body organization.CreateOrganizationInput true "Organization info"
// @Success 201 {object} organization.Organization
// @Failure 400 {object} response.ErrorResponse
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var input organization.CreateOrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	org, err := h.svc.CreateOrganization(middleware.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	org, err := h.svc.GetOrganization(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.svc.ListOrganizations()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Results: len(orgs), Data: orgs})
}

// UpdateOrganization godoc
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Organization ID"
// @Param input body organization.UpdateOrganizationInput true "Fields to update"
// @Success 200 {object} organization.Organization
// @Failure 403 {object} response.ErrorResponse
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input organization.UpdateOrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	org, err := h.svc.UpdateOrganization(middleware.ActorFromContext(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// AddMember godoc
// @Summary Add a member to an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Organization ID"
// @Param input body organization.AddMemberInput true "Member info"
// @Success 201 {object} organization.Member
// @Failure 403 {object} response.ErrorResponse
// @Router /organizations/{id}/members [post]
func (h *OrganizationHandler) AddMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input organization.AddMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	member, err := h.svc.AddMember(middleware.ActorFromContext(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	orgID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.RemoveMember(middleware.ActorFromContext(c), orgID, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "member removed"})
}

func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	members, err := h.svc.ListMembers(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Results: len(members), Data: members})
}
