package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crypticbroker/platform-api/internal/api/middleware"
	"github.com/crypticbroker/platform-api/internal/application"
	"github.com/crypticbroker/platform-api/internal/domain/form"
	"github.com/crypticbroker/platform-api/pkg/response"
)

type FormHandler struct {
	svc *application.FormService
}

func NewFormHandler(svc *application.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// CreateForm godoc
// @Summary Create a form with sections and questions
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body form.CreateFormInput true "Form definition"
// @Success 201 {object} form.Form
// @Failure 400 {object} response.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	f, err := h.svc.CreateForm(middleware.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	f, err := h.svc.GetForm(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.svc.ListForms()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Results: len(forms), Data: forms})
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input form.UpdateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	f, err := h.svc.UpdateForm(middleware.ActorFromContext(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// SubmitForm godoc
// @Summary Submit answers to a form
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param input body form.SubmitFormInput true "Answers"
// @Success 201 {object} form.Submission
// @Failure 400 {object} response.ErrorResponse
// @Router /forms/{id}/submissions [post]
func (h *FormHandler) SubmitForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input form.SubmitFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input: " + err.Error()})
		return
	}

	sub, err := h.svc.SubmitForm(middleware.ActorFromContext(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *FormHandler) GetSubmission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	sub, err := h.svc.GetSubmission(middleware.ActorFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *FormHandler) ListFormSubmissions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	subs, err := h.svc.ListFormSubmissions(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Results: len(subs), Data: subs})
}

func (h *FormHandler) ListMySubmissions(c *gin.Context) {
	subs, err := h.svc.ListMySubmissions(middleware.ActorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Results: len(subs), Data: subs})
}
