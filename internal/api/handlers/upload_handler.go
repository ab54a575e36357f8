package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crypticbroker/platform-api/internal/api/middleware"
	"github.com/crypticbroker/platform-api/internal/application"
	"github.com/crypticbroker/platform-api/pkg/response"
)

type UploadHandler struct {
	svc *application.UploadService
}

func NewUploadHandler(svc *application.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload godoc
// @Summary Upload pitch decks or supporting documents
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Files to upload"
// @Success 201 {object} response.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid multipart form: " + err.Error()})
		return
	}

	files := form.File["files"]
	uploaded, err := h.svc.UploadFiles(c.Request.Context(), middleware.ActorFromContext(c), files)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ListResponse{Results: len(uploaded), Data: uploaded})
}

func (h *UploadHandler) Delete(c *gin.Context) {
	objectName := c.Param("object")
	if err := h.svc.DeleteFile(c.Request.Context(), middleware.ActorFromContext(c), objectName); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "file deleted"})
}
