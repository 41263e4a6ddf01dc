package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
)

type PurchaseOrderHandler struct {
	svc service.PurchaseOrderService
}

func NewPurchaseOrderHandler(s service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{svc: s}
}

type CreatePurchaseOrderReq struct {
	ProjectID   uuid.UUID       `json:"projectId" binding:"required"`
	OrderNumber string          `json:"orderNumber" binding:"required"`
	SupplierID  uuid.UUID       `json:"supplierId" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"omitempty,currencycode"`
	IsCommitted bool            `json:"isCommitted"`
	Notes       string          `json:"notes"`
	CreatedByID *uuid.UUID      `json:"createdById"`
}

func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	req := CreatePurchaseOrderReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	po, err := h.svc.Create(c.Request.Context(), service.CreatePurchaseOrderInput{
		ProjectID:   req.ProjectID,
		OrderNumber: req.OrderNumber,
		SupplierID:  req.SupplierID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		IsCommitted: req.IsCommitted,
		Notes:       req.Notes,
		CreatedByID: req.CreatedByID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *PurchaseOrderHandler) List(c *gin.Context) {
	projectID, err := queryUUID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}

	pos, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}
