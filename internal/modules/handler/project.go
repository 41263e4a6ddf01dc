package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name            string              `json:"name" binding:"required"`
	Code            *string             `json:"code"`
	Status          model.ProjectStatus `json:"status"`
	EstimatedBudget decimal.Decimal     `json:"estimatedBudget"`
	Currency        string              `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate    decimal.Decimal     `json:"exchangeRate"`
	Details         datatypes.JSONMap   `json:"details"`
	CreatedByID     *uuid.UUID          `json:"createdById"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		Name:            req.Name,
		Code:            req.Code,
		Status:          req.Status,
		EstimatedBudget: req.EstimatedBudget,
		Currency:        req.Currency,
		ExchangeRate:    req.ExchangeRate,
		Details:         req.Details,
		CreatedByID:     req.CreatedByID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) List(c *gin.Context) {
	ps, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

type UpdateProjectReq struct {
	Name            *string              `json:"name"`
	Code            *string              `json:"code"`
	Status          *model.ProjectStatus `json:"status"`
	EstimatedBudget *decimal.Decimal     `json:"estimatedBudget"`
	Currency        *string              `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate    *decimal.Decimal     `json:"exchangeRate"`
	Details         datatypes.JSONMap    `json:"details"`
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, service.UpdateProjectInput{
		Name:            req.Name,
		Code:            req.Code,
		Status:          req.Status,
		EstimatedBudget: req.EstimatedBudget,
		Currency:        req.Currency,
		ExchangeRate:    req.ExchangeRate,
		Details:         req.Details,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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
