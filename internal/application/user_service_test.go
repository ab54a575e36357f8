package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/crypticbroker/platform-api/internal/api/middleware"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/internal/repository/mock"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	userRepo := mock.NewMockUserRepo(ctrl)
	svc := NewUserService(&repository.Repos{User: userRepo})
	return svc, userRepo
}

func stubToken(t *testing.T) {
	orig := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, email, role string, expire time.Duration) (string, error) {
		return "test-token", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })
}

func strptr(s string) *string { return &s }

func TestSignup_DefaultsToProjectOwner(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)
	stubToken(t)

	userRepo.EXPECT().GetUserByEmail("new@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 1
		return nil
	})

	u, token, err := svc.Signup(user.SignupInput{
		Email:     "new@example.com",
		Password:  "secret-pass",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	assert.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, user.RoleProjectOwner, u.Role)
	assert.NotEqual(t, "secret-pass", u.PasswordHash)
}

func TestSignup_ExplicitRole(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)
	stubToken(t)

	userRepo.EXPECT().GetUserByEmail("vc@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	userRepo.EXPECT().CreateUser(gomock.Any()).Return(nil)

	u, _, err := svc.Signup(user.SignupInput{
		Email:     "vc@example.com",
		Password:  "secret-pass",
		FirstName: "Grace",
		LastName:  "Hopper",
		Role:      strptr("INVESTOR"),
	})
	assert.NoError(t, err)
	assert.Equal(t, user.RoleInvestor, u.Role)
}

func TestSignup_UnknownRole(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)

	userRepo.EXPECT().GetUserByEmail("x@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Signup(user.SignupInput{
		Email:     "x@example.com",
		Password:  "secret-pass",
		FirstName: "A",
		LastName:  "B",
		Role:      strptr("SUPERUSER"),
	})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)

	userRepo.EXPECT().GetUserByEmail("taken@example.com").Return(user.User{ID: 1}, nil)

	_, _, err := svc.Signup(user.SignupInput{
		Email:     "taken@example.com",
		Password:  "secret-pass",
		FirstName: "A",
		LastName:  "B",
	})
	assert.True(t, apperrors.IsBadRequest(err))
	assert.Equal(t, "email already in use", err.Error())
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)
	stubToken(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.DefaultCost)
	userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(user.User{ID: 1, Email: "ada@example.com", PasswordHash: string(hashed)}, nil)

	u, token, err := svc.Login(user.LoginInput{Email: "ada@example.com", Password: "secret-pass"})
	assert.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, uint(1), u.ID)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.DefaultCost)
	userRepo.EXPECT().GetUserByEmail("ada@example.com").Return(user.User{ID: 1, PasswordHash: string(hashed)}, nil)
	userRepo.EXPECT().GetUserByEmail("ghost@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, errWrongPass := svc.Login(user.LoginInput{Email: "ada@example.com", Password: "nope"})
	_, _, errNoUser := svc.Login(user.LoginInput{Email: "ghost@example.com", Password: "nope"})

	assert.True(t, apperrors.IsBadRequest(errWrongPass))
	assert.True(t, apperrors.IsBadRequest(errNoUser))
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestUpdateUser_OtherUserForbidden(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	_, err := svc.UpdateUser(actor, 2, user.UpdateUserInput{FirstName: strptr("X")})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestUpdateUser_AdminMayUpdateAnyone(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)

	userRepo.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Email: "old@example.com"}, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

	actor := &user.Actor{ID: 9, Role: user.RoleAdmin}
	u, err := svc.UpdateUser(actor, 2, user.UpdateUserInput{FirstName: strptr("Renamed")})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", *u.FirstName)
	assert.Equal(t, "old@example.com", u.Email)
}

func TestUpdateUser_NoFields(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	actor := &user.Actor{ID: 1, Role: user.RoleProjectOwner}
	_, err := svc.UpdateUser(actor, 1, user.UpdateUserInput{})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestDeleteUser_SelfOK(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)

	userRepo.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1}, nil)
	userRepo.EXPECT().DeleteUser(uint(1)).Return(nil)

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	assert.NoError(t, svc.DeleteUser(actor, 1))
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, userRepo := setupUserServiceMocks(t)

	userRepo.EXPECT().GetUserByID(uint(1)).Return(user.User{}, gorm.ErrRecordNotFound)

	actor := &user.Actor{ID: 1, Role: user.RoleInvestor}
	err := svc.DeleteUser(actor, 1)
	assert.True(t, apperrors.IsNotFound(err))
}
