package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/crypticbroker/platform-api/internal/domain/application"
	"github.com/crypticbroker/platform-api/internal/repository"
)

// Service delivers application status-change notifications over the
// websocket broker and, when SMTP is configured, by email to the project
// owner. It satisfies the application layer's StatusNotifier.
type Service struct {
	Broker *Broker
	Mailer *Mailer
	Repos  *repository.Repos
}

func NewService(broker *Broker, mailer *Mailer, repos *repository.Repos) *Service {
	return &Service{Broker: broker, Mailer: mailer, Repos: repos}
}

func (s *Service) NotifyStatusChange(app *application.Application, previous application.Status) {
	s.Broker.Publish(StatusEvent{
		ApplicationID: app.ID,
		ProjectID:     app.ProjectID,
		TargetOrgID:   app.TargetOrgID,
		Previous:      previous,
		Current:       app.Status,
		At:            time.Now(),
	})

	if s.Mailer == nil || !s.Mailer.Configured() {
		return
	}
	// Email delivery happens off the request path.
	go s.emailProjectOwner(app, previous)
}

func (s *Service) emailProjectOwner(app *application.Application, previous application.Status) {
	p, err := s.Repos.Project.GetProjectByID(app.ProjectID)
	if err != nil {
		log.Printf("notify: load project %d: %v", app.ProjectID, err)
		return
	}
	owner, err := s.Repos.User.GetUserByID(p.OwnerID)
	if err != nil {
		log.Printf("notify: load user %d: %v", p.OwnerID, err)
		return
	}

	subject := fmt.Sprintf("Application for %s: %s", p.Name, app.Status)
	body := fmt.Sprintf(
		"<p>Your application for <b>%s</b> moved from %s to <b>%s</b>.</p>",
		p.Name, previous, app.Status,
	)
	if err := s.Mailer.Send([]string{owner.Email}, subject, body); err != nil {
		log.Printf("notify: send mail to %s: %v", owner.Email, err)
	}
}
