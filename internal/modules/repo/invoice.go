package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type InvoiceFilter struct {
	ProjectID *uuid.UUID
	Status    string
}

type InvoiceRepo interface {
	Create(ctx context.Context, inv *model.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*model.Invoice, error)
	List(ctx context.Context, f InvoiceFilter) ([]model.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkOverdue flips PENDING invoices whose due date passed to OVERDUE and
	// reports how many rows changed.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepo(db *gorm.DB) InvoiceRepo {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("CreatedBy").
		First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) GetByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).First(&inv, "invoice_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, f InvoiceFilter) ([]model.Invoice, error) {
	q := r.db.WithContext(ctx).
		Preload("Project").
		Preload("CreatedBy")
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var items []model.Invoice
	return items, q.Order("issue_date DESC").Find(&items).Error
}

func (r *invoiceRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Invoice, error) {
	if len(fields) == 0 {
		fields = map[string]interface{}{"updated_at": time.Now()}
	}
	res := r.db.WithContext(ctx).Model(&model.Invoice{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *invoiceRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", model.InvoicePending, now).
		Update("status", model.InvoiceOverdue)
	return res.RowsAffected, res.Error
}
