package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Organization OrganizationRepo
	Project      ProjectRepo
	Form         FormRepo
	Application  ApplicationRepo
	Audit        AuditRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Organization: NewOrganizationRepo(db),
		Project:      NewProjectRepo(db),
		Form:         NewFormRepo(db),
		Application:  NewApplicationRepo(db),
		Audit:        NewAuditRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Organization: r.Organization.WithTx(tx),
		Project:      r.Project.WithTx(tx),
		Form:         r.Form.WithTx(tx),
		Application:  r.Application.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a transaction bound to a copy of the container, so a
// multi-write operation is atomic from the caller's perspective. A container
// without a backing DB (mocked repos) runs fn against itself.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
