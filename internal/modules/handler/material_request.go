package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/middleware"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
)

type MaterialRequestHandler struct {
	svc service.MaterialRequestService
}

func NewMaterialRequestHandler(s service.MaterialRequestService) *MaterialRequestHandler {
	return &MaterialRequestHandler{svc: s}
}

type CreateMaterialRequestReq struct {
	ProjectID uuid.UUID                  `json:"projectId" binding:"required"`
	Items     model.MaterialRequestItems `json:"items" binding:"required"`
	Notes     string                     `json:"notes"`
}

func (h *MaterialRequestHandler) Create(c *gin.Context) {
	u := middleware.SessionUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	req := CreateMaterialRequestReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	mr, err := h.svc.Create(c.Request.Context(), service.CreateMaterialRequestInput{
		ProjectID:     req.ProjectID,
		Items:         req.Items,
		Notes:         req.Notes,
		RequestedByID: u.ID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, mr)
}

func (h *MaterialRequestHandler) List(c *gin.Context) {
	projectID, err := queryUUID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}

	mrs, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mrs)
}
