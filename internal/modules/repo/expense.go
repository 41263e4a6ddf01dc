package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type ExpenseFilter struct {
	ProjectID *uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

type ExpenseRepo interface {
	// CreateWithInvoice inserts the expense and, when it references an invoice
	// number and supplier not yet on file, the mirrored PAID invoice, in one
	// transaction. The returned invoice is nil when none was created.
	CreateWithInvoice(ctx context.Context, e *model.Expense) (*model.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context, f ExpenseFilter) ([]model.Expense, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Expense, error)
	// DeleteWithInvoice removes the expense together with any invoice sharing
	// its invoice number and project, in one transaction. A missing expense
	// returns gorm.ErrRecordNotFound and deletes nothing.
	DeleteWithInvoice(ctx context.Context, id uuid.UUID) error
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepo(db *gorm.DB) ExpenseRepo {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) CreateWithInvoice(ctx context.Context, e *model.Expense) (*model.Invoice, error) {
	var created *model.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}

		if !e.HasInvoiceRef() {
			return nil
		}

		// Invoice numbers are globally unique; an existing one is reused silently.
		var existing model.Invoice
		err := tx.First(&existing, "invoice_number = ?", *e.InvoiceNumber).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		inv := model.Invoice{
			ProjectID:     e.ProjectID,
			InvoiceNumber: *e.InvoiceNumber,
			Supplier:      *e.Supplier,
			Amount:        e.Amount,
			Currency:      e.Currency,
			ExchangeRate:  e.ExchangeRate,
			// An expense on file implies the invoice was already settled.
			Status:      model.InvoicePaid,
			IssueDate:   e.Date,
			Description: fmt.Sprintf("Factura generada desde gasto: %s", e.Description),
			CreatedByID: &e.CreatedByID,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		created = &inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *expenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("BudgetItem").
		Preload("CreatedBy").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) List(ctx context.Context, f ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).
		Preload("Project").
		Preload("CreatedBy")
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	var items []model.Expense
	return items, q.Order("date DESC").Find(&items).Error
}

func (r *expenseRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Expense, error) {
	if len(fields) == 0 {
		fields = map[string]interface{}{"updated_at": time.Now()}
	}
	res := r.db.WithContext(ctx).Model(&model.Expense{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *expenseRepo) DeleteWithInvoice(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e model.Expense
		if err := tx.First(&e, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Expense{}, "id = ?", id).Error; err != nil {
			return err
		}

		if e.InvoiceNumber != nil && *e.InvoiceNumber != "" {
			if err := tx.Delete(&model.Invoice{},
				"invoice_number = ? AND project_id = ?", *e.InvoiceNumber, e.ProjectID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
