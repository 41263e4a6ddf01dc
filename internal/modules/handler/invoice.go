package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
)

type InvoiceHandler struct {
	svc service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: s}
}

type CreateInvoiceReq struct {
	ProjectID     uuid.UUID           `json:"projectId" binding:"required"`
	InvoiceNumber string              `json:"invoiceNumber" binding:"required"`
	Supplier      string              `json:"supplier" binding:"required"`
	Amount        decimal.Decimal     `json:"amount"`
	Currency      string              `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate  decimal.Decimal     `json:"exchangeRate"`
	Status        model.InvoiceStatus `json:"status"`
	IssueDate     time.Time           `json:"issueDate"`
	DueDate       *time.Time          `json:"dueDate"`
	Description   string              `json:"description"`
	CreatedByID   *uuid.UUID          `json:"createdById"`
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	req := CreateInvoiceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	inv, err := h.svc.Create(c.Request.Context(), service.CreateInvoiceInput{
		ProjectID:     req.ProjectID,
		InvoiceNumber: req.InvoiceNumber,
		Supplier:      req.Supplier,
		Amount:        req.Amount,
		Currency:      req.Currency,
		ExchangeRate:  req.ExchangeRate,
		Status:        req.Status,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Description:   req.Description,
		CreatedByID:   req.CreatedByID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	inv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	projectID, err := queryUUID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}

	invs, err := h.svc.List(c.Request.Context(), repo.InvoiceFilter{
		ProjectID: projectID,
		Status:    c.Query("status"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invs)
}

type UpdateInvoiceReq struct {
	Supplier    *string              `json:"supplier"`
	Amount      *decimal.Decimal     `json:"amount"`
	Currency    *string              `json:"currency" binding:"omitempty,currencycode"`
	Status      *model.InvoiceStatus `json:"status"`
	DueDate     *time.Time           `json:"dueDate"`
	Description *string              `json:"description"`
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req := UpdateInvoiceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	inv, err := h.svc.Update(c.Request.Context(), id, service.UpdateInvoiceInput{
		Supplier:    req.Supplier,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
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
