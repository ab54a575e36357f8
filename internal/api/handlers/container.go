package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/crypticbroker/platform-api/internal/application"
	"github.com/crypticbroker/platform-api/internal/notify"
)

type Handlers struct {
	User         *UserHandler
	Organization *OrganizationHandler
	Project      *ProjectHandler
	Form         *FormHandler
	Application  *ApplicationHandler
	Upload       *UploadHandler
	Audit        *AuditHandler
	WS           *WSHandler
	Router       *gin.Engine
}

func New(svc *application.Services, broker *notify.Broker, router *gin.Engine) *Handlers {
	return &Handlers{
		User:         NewUserHandler(svc.User),
		Organization: NewOrganizationHandler(svc.Organization),
		Project:      NewProjectHandler(svc.Project),
		Form:         NewFormHandler(svc.Form),
		Application:  NewApplicationHandler(svc.Application),
		Upload:       NewUploadHandler(svc.Upload),
		Audit:        NewAuditHandler(svc.Audit),
		WS:           NewWSHandler(broker),
		Router:       router,
	}
}
