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
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type CreateTaskReq struct {
	ProjectID    uuid.UUID          `json:"projectId" binding:"required"`
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	Status       model.TaskStatus   `json:"status"`
	Priority     model.TaskPriority `json:"priority"`
	DueDate      *time.Time         `json:"dueDate"`
	AssignedToID *uuid.UUID         `json:"assignedTo"`
	CreatedByID  *uuid.UUID         `json:"createdById"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	req := CreateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	t, err := h.svc.Create(c.Request.Context(), service.CreateTaskInput{
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
		CreatedByID:  req.CreatedByID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TaskHandler) List(c *gin.Context) {
	projectID, err := queryUUID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	assignedTo, err := queryUUID(c, "assignedTo")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid assignedTo", err))
		return
	}

	ts, err := h.svc.List(c.Request.Context(), repo.TaskFilter{
		ProjectID:    projectID,
		Status:       c.Query("status"),
		Priority:     c.Query("priority"),
		AssignedToID: assignedTo,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

type UpdateTaskReq struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Status       *model.TaskStatus   `json:"status"`
	Priority     *model.TaskPriority `json:"priority"`
	DueDate      *time.Time          `json:"dueDate"`
	AssignedToID *uuid.UUID          `json:"assignedTo"`
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req := UpdateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, service.UpdateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TaskHandler) Delete(c *gin.Context) {
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
