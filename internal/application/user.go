package application

import (
	"errors"
	"time"

	"github.com/crypticbroker/platform-api/internal/api/middleware"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/repository"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPasswordHashFailure = errors.New("failed to hash password")

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Signup registers a new account and returns it with a signed token.
func (s *UserService) Signup(input user.SignupInput) (*user.User, string, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if err == nil {
		return nil, "", apperrors.BadRequest("email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrPasswordHashFailure
	}

	role := user.RoleProjectOwner
	if input.Role != nil {
		role = user.Role(*input.Role)
		if !user.ValidRole(role) {
			return nil, "", apperrors.BadRequest("unknown role")
		}
	}

	u := &user.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		FirstName:    &input.FirstName,
		LastName:     &input.LastName,
		Role:         role,
	}
	if err := s.Repos.User.CreateUser(u); err != nil {
		return nil, "", err
	}

	token, err := middleware.GenerateToken(u.ID, u.Email, string(u.Role), 24*time.Hour)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and issues a token. Invalid email and invalid
// password are deliberately indistinguishable to the caller.
func (s *UserService) Login(input user.LoginInput) (*user.User, string, error) {
	u, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil {
		return nil, "", apperrors.BadRequest("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", apperrors.BadRequest("invalid email or password")
	}

	token, err := middleware.GenerateToken(u.ID, u.Email, string(u.Role), 24*time.Hour)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

func (s *UserService) GetUser(id uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

// UpdateUser patches profile fields. Nil fields are left unchanged.
func (s *UserService) UpdateUser(actor *user.Actor, id uint, input user.UpdateUserInput) (*user.User, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	if actor.ID != id && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("you may only update your own profile")
	}
	if input.FirstName == nil && input.LastName == nil && input.Email == nil {
		return nil, apperrors.BadRequest("please provide at least one field to update")
	}

	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}

	if input.FirstName != nil {
		u.FirstName = input.FirstName
	}
	if input.LastName != nil {
		u.LastName = input.LastName
	}
	if input.Email != nil {
		u.Email = *input.Email
	}

	if err := s.Repos.User.UpdateUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) DeleteUser(actor *user.Actor, id uint) error {
	if actor == nil {
		return apperrors.Unauthenticated("")
	}
	if actor.ID != id && !actor.IsAdmin() {
		return apperrors.Forbidden("you may only delete your own account")
	}
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return err
	}
	return s.Repos.User.DeleteUser(id)
}
