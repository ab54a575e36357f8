package repository

import (
	"github.com/crypticbroker/platform-api/internal/domain/application"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	GetApplicationByID(id uint) (application.Application, error)
	CreateApplication(a *application.Application) error
	UpdateApplication(a *application.Application) error
	DeleteApplication(id uint) error
	ListApplicationsByProjects(projectIDs []uint) ([]application.Application, error)
	ListApplicationsByTargetOrg(orgID uint) ([]application.Application, error)
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) GetApplicationByID(id uint) (application.Application, error) {
	var a application.Application
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBApplicationRepo) CreateApplication(a *application.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplicationRepo) UpdateApplication(a *application.Application) error {
	return r.db.Save(a).Error
}

func (r *DBApplicationRepo) DeleteApplication(id uint) error {
	return r.db.Delete(&application.Application{}, id).Error
}

func (r *DBApplicationRepo) ListApplicationsByProjects(projectIDs []uint) ([]application.Application, error) {
	var apps []application.Application
	if len(projectIDs) == 0 {
		return apps, nil
	}
	err := r.db.Where("project_id IN ?", projectIDs).Order("updated_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) ListApplicationsByTargetOrg(orgID uint) ([]application.Application, error) {
	var apps []application.Application
	err := r.db.Where("target_org_id = ?", orgID).Order("updated_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
