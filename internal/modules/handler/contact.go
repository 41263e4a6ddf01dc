package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{svc: s}
}

type CreateContactReq struct {
	Name    string            `json:"name" binding:"required"`
	Company string            `json:"company"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Kind    model.ContactKind `json:"kind"`
	Notes   string            `json:"notes"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	req := CreateContactReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ct, err := h.svc.Create(c.Request.Context(), service.CreateContactInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Kind:    req.Kind,
		Notes:   req.Notes,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ct, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (h *ContactHandler) List(c *gin.Context) {
	cts, err := h.svc.List(c.Request.Context(), c.Query("kind"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cts)
}

type UpdateContactReq struct {
	Name    *string            `json:"name"`
	Company *string            `json:"company"`
	Email   *string            `json:"email"`
	Phone   *string            `json:"phone"`
	Kind    *model.ContactKind `json:"kind"`
	Notes   *string            `json:"notes"`
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req := UpdateContactReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ct, err := h.svc.Update(c.Request.Context(), id, service.UpdateContactInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Kind:    req.Kind,
		Notes:   req.Notes,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (h *ContactHandler) Delete(c *gin.Context) {
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
