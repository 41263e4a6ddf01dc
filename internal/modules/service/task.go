package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"gorm.io/gorm"
)

type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, f repo.TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	r repo.TaskRepo
}

func NewTaskService(r repo.TaskRepo) TaskService {
	return &taskService{r: r}
}

type CreateTaskInput struct {
	ProjectID    uuid.UUID
	Title        string
	Description  string
	Status       model.TaskStatus
	Priority     model.TaskPriority
	DueDate      *time.Time
	AssignedToID *uuid.UUID
	CreatedByID  *uuid.UUID
}

type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *model.TaskStatus
	Priority     *model.TaskPriority
	DueDate      *time.Time
	AssignedToID *uuid.UUID
}

func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	switch {
	case in.ProjectID == uuid.Nil:
		return nil, validationf("projectId is required")
	case in.Title == "":
		return nil, validationf("title is required")
	}

	t := model.Task{
		ProjectID:    in.ProjectID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       in.Status,
		Priority:     in.Priority,
		DueDate:      in.DueDate,
		AssignedToID: in.AssignedToID,
		CreatedByID:  in.CreatedByID,
	}
	if t.Status == "" {
		t.Status = model.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = model.TaskPriorityMedium
	}

	if err := s.r.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	t, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *taskService) List(ctx context.Context, f repo.TaskFilter) ([]model.Task, error) {
	return s.r.List(ctx, f)
}

func (s *taskService) Update(ctx context.Context, id uuid.UUID, in UpdateTaskInput) (*model.Task, error) {
	fields := map[string]interface{}{}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, validationf("title cannot be empty")
		}
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Priority != nil {
		fields["priority"] = *in.Priority
	}
	if in.DueDate != nil {
		fields["due_date"] = *in.DueDate
	}
	if in.AssignedToID != nil {
		fields["assigned_to_id"] = *in.AssignedToID
	}

	t, err := s.r.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
