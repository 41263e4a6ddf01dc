package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"gorm.io/gorm"
)

type ContactService interface {
	Create(ctx context.Context, in CreateContactInput) (*model.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	List(ctx context.Context, kind string) ([]model.Contact, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateContactInput) (*model.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	r repo.ContactRepo
}

func NewContactService(r repo.ContactRepo) ContactService {
	return &contactService{r: r}
}

type CreateContactInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Kind    model.ContactKind
	Notes   string
}

type UpdateContactInput struct {
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Kind    *model.ContactKind
	Notes   *string
}

func (s *contactService) Create(ctx context.Context, in CreateContactInput) (*model.Contact, error) {
	if in.Name == "" {
		return nil, validationf("name is required")
	}

	c := model.Contact{
		Name:    in.Name,
		Company: in.Company,
		Email:   in.Email,
		Phone:   in.Phone,
		Kind:    in.Kind,
		Notes:   in.Notes,
	}
	if c.Kind == "" {
		c.Kind = model.ContactSupplier
	}

	if err := s.r.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	c, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *contactService) List(ctx context.Context, kind string) ([]model.Contact, error) {
	return s.r.List(ctx, kind)
}

func (s *contactService) Update(ctx context.Context, id uuid.UUID, in UpdateContactInput) (*model.Contact, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, validationf("name cannot be empty")
		}
		fields["name"] = *in.Name
	}
	if in.Company != nil {
		fields["company"] = *in.Company
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Kind != nil {
		fields["kind"] = *in.Kind
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	c, err := s.r.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
