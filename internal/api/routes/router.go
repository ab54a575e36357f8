package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/crypticbroker/platform-api/internal/api/handlers"
	"github.com/crypticbroker/platform-api/internal/api/middleware"
)

// RegisterRoutes wires the HTTP surface onto the engine.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/signup", h.User.Signup)
	r.POST("/auth/login", h.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/applications", h.WS.WatchApplications)

		users := auth.Group("/users")
		{
			users.GET("/me", h.User.Me)
			users.GET("", middleware.Admin(), h.User.ListUsers)
			users.GET("/:id", middleware.UserOrAdmin(), h.User.GetUser)
			users.PUT("/:id", middleware.UserOrAdmin(), h.User.UpdateUser)
			users.DELETE("/:id", middleware.UserOrAdmin(), h.User.DeleteUser)
		}

		orgs := auth.Group("/organizations")
		{
			orgs.GET("", h.Organization.ListOrganizations)
			orgs.POST("", h.Organization.CreateOrganization)
			orgs.GET("/:id", h.Organization.GetOrganization)
			orgs.PUT("/:id", h.Organization.UpdateOrganization)
			orgs.GET("/:id/members", h.Organization.ListMembers)
			orgs.POST("/:id/members", h.Organization.AddMember)
			orgs.DELETE("/:id/members/:user_id", h.Organization.RemoveMember)
			orgs.GET("/:id/applications", h.Application.ListOrganizationApplications)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.ListMyProjects)
			projects.POST("", h.Project.CreateProject)
			projects.GET("/:id", h.Project.GetProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.ListForms)
			forms.POST("", middleware.Admin(), h.Form.CreateForm)
			forms.GET("/:id", h.Form.GetForm)
			forms.PUT("/:id", middleware.Admin(), h.Form.UpdateForm)
			forms.POST("/:id/submissions", h.Form.SubmitForm)
			forms.GET("/:id/submissions", middleware.Admin(), h.Form.ListFormSubmissions)
		}

		submissions := auth.Group("/submissions")
		{
			submissions.GET("/my", h.Form.ListMySubmissions)
			submissions.GET("/:id", h.Form.GetSubmission)
		}

		apps := auth.Group("/applications")
		{
			apps.GET("", h.Application.ListMyApplications)
			apps.POST("", h.Application.CreateApplication)
			apps.GET("/:id", h.Application.GetApplication)
			apps.PATCH("/:id/status", h.Application.UpdateStatus)
			apps.DELETE("/:id", h.Application.DeleteApplication)
		}

		auth.POST("/upload", h.Upload.Upload)
		auth.DELETE("/upload/:object", h.Upload.Delete)

		auth.GET("/audit-logs", middleware.Admin(), h.Audit.ListAuditLogs)
	}
}
