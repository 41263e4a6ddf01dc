package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
)

type ProjectMaterialHandler struct {
	svc service.ProjectMaterialService
}

func NewProjectMaterialHandler(s service.ProjectMaterialService) *ProjectMaterialHandler {
	return &ProjectMaterialHandler{svc: s}
}

type AssignMaterialReq struct {
	ProjectID  uuid.UUID        `json:"projectId" binding:"required"`
	MaterialID uuid.UUID        `json:"materialId" binding:"required"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	Currency   string           `json:"currency" binding:"omitempty,currencycode"`
}

func (h *ProjectMaterialHandler) Assign(c *gin.Context) {
	req := AssignMaterialReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	pm, err := h.svc.Assign(c.Request.Context(), service.AssignMaterialInput{
		ProjectID:  req.ProjectID,
		MaterialID: req.MaterialID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Currency:   req.Currency,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, pm)
}

func (h *ProjectMaterialHandler) List(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}

	pms, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pms)
}
