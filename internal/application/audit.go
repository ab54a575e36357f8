package application

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"

	"github.com/crypticbroker/platform-api/internal/domain/audit"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
)

// Auditor is the write side of the audit trail. Services depend on the
// interface so tests can drop the background writer.
type Auditor interface {
	Record(actor *user.Actor, action, resourceType, resourceID string, before, after any, description string)
}

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}

// Record writes an audit entry in the background. Failures are logged, never
// surfaced: the audit trail must not fail the request that produced it.
func (s *AuditService) Record(actor *user.Actor, action, resourceType, resourceID string, before, after any, description string) {
	var oldData, newData []byte
	var err error

	if before != nil {
		if oldData, err = json.Marshal(before); err != nil {
			log.Printf("audit: marshal old data: %v", err)
		}
	}
	if after != nil {
		if newData, err = json.Marshal(after); err != nil {
			log.Printf("audit: marshal new data: %v", err)
		}
	}

	entry := &audit.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      datatypes.JSON(oldData),
		NewData:      datatypes.JSON(newData),
		Description:  description,
	}
	if actor != nil {
		entry.UserID = actor.ID
		entry.IP = actor.IP
		entry.UserAgent = actor.UserAgent
	}

	go func() {
		if err := s.Repos.Audit.CreateAuditLog(entry); err != nil {
			log.Printf("audit: create log: %v", err)
		}
	}()
}
