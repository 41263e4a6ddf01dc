package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type ContactRepo interface {
	Create(ctx context.Context, c *model.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	List(ctx context.Context, kind string) ([]model.Contact, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, c *model.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	var c model.Contact
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) List(ctx context.Context, kind string) ([]model.Contact, error) {
	q := r.db.WithContext(ctx)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var items []model.Contact
	return items, q.Order("created_at DESC").Find(&items).Error
}

func (r *contactRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Contact, error) {
	if len(fields) == 0 {
		fields = map[string]interface{}{"updated_at": time.Now()}
	}
	res := r.db.WithContext(ctx).Model(&model.Contact{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *contactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
