package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"gorm.io/gorm"
)

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	r repo.UserRepo
}

func NewUserService(r repo.UserRepo) UserService {
	return &userService{r: r}
}

type CreateUserInput struct {
	Email string
	Name  string
	Role  model.Role
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	switch {
	case in.Email == "":
		return nil, validationf("email is required")
	case in.Name == "":
		return nil, validationf("name is required")
	}

	_, err := s.r.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, validationf("el correo %q ya está registrado", in.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u := model.User{
		Email: in.Email,
		Name:  in.Name,
		Role:  in.Role,
	}
	if u.Role == "" {
		u.Role = model.RoleVisualizer
	}

	if err := s.r.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.r.List(ctx)
}
