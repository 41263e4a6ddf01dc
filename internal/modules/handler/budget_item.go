package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
)

type BudgetItemHandler struct {
	svc service.BudgetItemService
}

func NewBudgetItemHandler(s service.BudgetItemService) *BudgetItemHandler {
	return &BudgetItemHandler{svc: s}
}

type CreateBudgetItemReq struct {
	ProjectID   uuid.UUID       `json:"projectId" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Currency    string          `json:"currency" binding:"omitempty,currencycode"`
	CreatedByID *uuid.UUID      `json:"createdById"`
}

func (h *BudgetItemHandler) Create(c *gin.Context) {
	req := CreateBudgetItemReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	b, err := h.svc.Create(c.Request.Context(), service.CreateBudgetItemInput{
		ProjectID:   req.ProjectID,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Currency:    req.Currency,
		CreatedByID: req.CreatedByID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BudgetItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BudgetItemHandler) List(c *gin.Context) {
	projectID, err := queryUUID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}

	bs, err := h.svc.List(c.Request.Context(), projectID, c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}

type UpdateBudgetItemReq struct {
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	Currency    *string          `json:"currency" binding:"omitempty,currencycode"`
}

func (h *BudgetItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req := UpdateBudgetItemReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	b, err := h.svc.Update(c.Request.Context(), id, service.UpdateBudgetItemInput{
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Currency:    req.Currency,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BudgetItemHandler) Delete(c *gin.Context) {
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
