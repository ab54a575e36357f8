package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/crypticbroker/platform-api/internal/domain/form"
	"github.com/crypticbroker/platform-api/internal/domain/project"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/repository/mock"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
)

type formMocks struct {
	Form *mock.MockFormRepo
	Proj *mock.MockProjectRepo
}

func setupFormServiceMocks(t *testing.T) (*FormService, formMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := formMocks{
		Form: mock.NewMockFormRepo(ctrl),
		Proj: mock.NewMockProjectRepo(ctrl),
	}
	repos := &repository.Repos{Form: m.Form, Project: m.Proj}
	svc := NewFormService(repos, noopAuditor{})
	return svc, m
}

func TestCreateForm_OrdersSectionsAndQuestions(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.Form.EXPECT().CreateForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		f.ID = 40
		return nil
	})
	var created []*form.Section
	m.Form.EXPECT().CreateSection(gomock.Any()).DoAndReturn(func(sec *form.Section) error {
		created = append(created, sec)
		return nil
	}).Times(2)
	m.Form.EXPECT().GetFormWithSections(uint(40)).Return(form.Form{ID: 40, Title: "Due Diligence"}, nil)

	actor := &user.Actor{ID: 9, Role: user.RoleAdmin}
	input := form.CreateFormInput{
		Title:     "Due Diligence",
		Structure: datatypes.JSON(`{}`),
		Sections: []form.SectionInput{
			{Title: "Team", Questions: []form.QuestionInput{{Text: "Founders?", Type: "text"}, {Text: "Size?", Type: "number"}}},
			{Title: "Token"},
		},
	}
	f, err := svc.CreateForm(actor, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(40), f.ID)
	if assert.Len(t, created, 2) {
		assert.Equal(t, 0, created[0].Order)
		assert.Equal(t, 1, created[1].Order)
		if assert.Len(t, created[0].Questions, 2) {
			assert.Equal(t, 0, created[0].Questions[0].Order)
			assert.Equal(t, 1, created[0].Questions[1].Order)
		}
	}
}

func TestUpdateForm_BumpsVersion(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.Form.EXPECT().GetFormByID(uint(40)).Return(form.Form{ID: 40, Title: "Old", Version: 2, IsActive: true}, nil)
	m.Form.EXPECT().UpdateForm(gomock.Any()).Return(nil)

	actor := &user.Actor{ID: 9, Role: user.RoleAdmin}
	f, err := svc.UpdateForm(actor, 40, form.UpdateFormInput{Title: strptr("New")})
	assert.NoError(t, err)
	assert.Equal(t, 3, f.Version)
	assert.Equal(t, "New", f.Title)
}

func TestSubmitForm_InactiveFormRejected(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.Form.EXPECT().GetFormByID(uint(40)).Return(form.Form{ID: 40, IsActive: false}, nil)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	_, err := svc.SubmitForm(actor, 40, form.SubmitFormInput{Data: datatypes.JSON(`{}`)})
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "this form is no longer accepting submissions", err.Error())
}

func TestSubmitForm_PinsFormVersion(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.Form.EXPECT().GetFormByID(uint(40)).Return(form.Form{ID: 40, IsActive: true, Version: 3}, nil)
	m.Form.EXPECT().CreateSubmission(gomock.Any()).Return(nil)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	sub, err := svc.SubmitForm(actor, 40, form.SubmitFormInput{Data: datatypes.JSON(`{"q1":"a"}`)})
	assert.NoError(t, err)
	assert.Equal(t, 3, sub.FormVersion)
	assert.Equal(t, uint(1), sub.UserID)
}

func TestSubmitForm_ForeignProjectForbidden(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	projectID := uint(10)
	m.Form.EXPECT().GetFormByID(uint(40)).Return(form.Form{ID: 40, IsActive: true}, nil)
	m.Proj.EXPECT().GetProjectByID(projectID).Return(project.Project{ID: 10, OwnerID: 99}, nil)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	_, err := svc.SubmitForm(actor, 40, form.SubmitFormInput{Data: datatypes.JSON(`{}`), ProjectID: &projectID})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestGetSubmission_OnlySubmitterOrAdmin(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.Form.EXPECT().GetSubmissionByID(uint(7)).Return(form.Submission{ID: 7, UserID: 1}, nil).Times(3)

	submitter := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	stranger := &user.Actor{ID: 2, Role: user.RoleInvestor}
	admin := &user.Actor{ID: 9, Role: user.RoleAdmin}

	_, err := svc.GetSubmission(submitter, 7)
	assert.NoError(t, err)
	_, err = svc.GetSubmission(stranger, 7)
	assert.True(t, apperrors.IsForbidden(err))
	_, err = svc.GetSubmission(admin, 7)
	assert.NoError(t, err)
}

func TestListFormSubmissions_UnknownForm(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.Form.EXPECT().GetFormByID(uint(40)).Return(form.Form{}, gorm.ErrRecordNotFound)

	_, err := svc.ListFormSubmissions(40)
	assert.True(t, apperrors.IsNotFound(err))
}
