package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
)

type ExpenseHandler struct {
	svc service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: s}
}

type CreateExpenseReq struct {
	ProjectID     uuid.UUID       `json:"projectId" binding:"required"`
	BudgetItemID  *uuid.UUID      `json:"budgetItemId"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	Category      string          `json:"category" binding:"required"`
	Date          time.Time       `json:"date"`
	InvoiceNumber *string         `json:"invoiceNumber"`
	Supplier      *string         `json:"supplier"`
	CreatedByID   uuid.UUID       `json:"createdById" binding:"required"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	req := CreateExpenseReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	e, err := h.svc.Create(c.Request.Context(), service.CreateExpenseInput{
		ProjectID:     req.ProjectID,
		BudgetItemID:  req.BudgetItemID,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      req.Currency,
		ExchangeRate:  req.ExchangeRate,
		Category:      req.Category,
		Date:          req.Date,
		InvoiceNumber: req.InvoiceNumber,
		Supplier:      req.Supplier,
		CreatedByID:   req.CreatedByID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	projectID, err := queryUUID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}

	f := repo.ExpenseFilter{
		ProjectID: projectID,
		Category:  c.Query("category"),
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid startDate", err))
			return
		}
		f.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid endDate", err))
			return
		}
		f.EndDate = &t
	}

	es, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, es)
}

type UpdateExpenseReq struct {
	BudgetItemID  *uuid.UUID       `json:"budgetItemId"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Currency      *string          `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate"`
	Category      *string          `json:"category"`
	Date          *time.Time       `json:"date"`
	InvoiceNumber *string          `json:"invoiceNumber"`
	Supplier      *string          `json:"supplier"`
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req := UpdateExpenseReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	e, err := h.svc.Update(c.Request.Context(), id, service.UpdateExpenseInput{
		BudgetItemID:  req.BudgetItemID,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      req.Currency,
		ExchangeRate:  req.ExchangeRate,
		Category:      req.Category,
		Date:          req.Date,
		InvoiceNumber: req.InvoiceNumber,
		Supplier:      req.Supplier,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}
