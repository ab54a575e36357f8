package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/crypticbroker/platform-api/internal/api/handlers"
	"github.com/crypticbroker/platform-api/internal/api/routes"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r
}
