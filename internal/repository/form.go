package repository

import (
	"github.com/crypticbroker/platform-api/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	GetFormByID(id uint) (form.Form, error)
	GetFormWithSections(id uint) (form.Form, error)
	CreateForm(f *form.Form) error
	CreateSection(s *form.Section) error
	UpdateForm(f *form.Form) error
	ListActiveForms() ([]form.Form, error)
	CreateSubmission(s *form.Submission) error
	GetSubmissionByID(id uint) (form.Submission, error)
	ListSubmissionsByForm(formID uint) ([]form.Submission, error)
	ListSubmissionsByUser(userID uint) ([]form.Submission, error)
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) GetFormByID(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.First(&f, id).Error
	return f, err
}

func (r *DBFormRepo) GetFormWithSections(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("form_sections.sort_order asc")
		}).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("form_questions.sort_order asc")
		}).
		First(&f, id).Error
	return f, err
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) CreateSection(s *form.Section) error {
	return r.db.Create(s).Error
}

func (r *DBFormRepo) UpdateForm(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) ListActiveForms() ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Where("is_active = ?", true).Order("updated_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) CreateSubmission(s *form.Submission) error {
	return r.db.Create(s).Error
}

func (r *DBFormRepo) GetSubmissionByID(id uint) (form.Submission, error) {
	var s form.Submission
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBFormRepo) ListSubmissionsByForm(formID uint) ([]form.Submission, error) {
	var subs []form.Submission
	err := r.db.Where("form_id = ?", formID).Order("created_at desc").Find(&subs).Error
	return subs, err
}

func (r *DBFormRepo) ListSubmissionsByUser(userID uint) ([]form.Submission, error) {
	var subs []form.Submission
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&subs).Error
	return subs, err
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{db: tx}
}
