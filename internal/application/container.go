package application

import (
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/storage"
)

type Services struct {
	Audit        *AuditService
	User         *UserService
	Organization *OrganizationService
	Project      *ProjectService
	Form         *FormService
	Application  *ApplicationService
	Upload       *UploadService
}

func New(repos *repository.Repos, store *storage.Store) *Services {
	audit := NewAuditService(repos)
	return &Services{
		Audit:        audit,
		User:         NewUserService(repos),
		Organization: NewOrganizationService(repos, audit),
		Project:      NewProjectService(repos, audit),
		Form:         NewFormService(repos, audit),
		Application:  NewApplicationService(repos, audit),
		Upload:       NewUploadService(store, audit),
	}
}
