package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
)

type MaterialHandler struct {
	svc service.MaterialService
}

func NewMaterialHandler(s service.MaterialService) *MaterialHandler {
	return &MaterialHandler{svc: s}
}

type CreateMaterialReq struct {
	Name      string          `json:"name" binding:"required"`
	Code      *string         `json:"code"`
	Unit      string          `json:"unit"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Currency  string          `json:"currency" binding:"omitempty,currencycode"`
}

func (h *MaterialHandler) Create(c *gin.Context) {
	req := CreateMaterialReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	m, err := h.svc.Create(c.Request.Context(), service.CreateMaterialInput{
		Name:      req.Name,
		Code:      req.Code,
		Unit:      req.Unit,
		BasePrice: req.BasePrice,
		Currency:  req.Currency,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MaterialHandler) List(c *gin.Context) {
	ms, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
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
