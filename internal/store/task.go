package store

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"go.uber.org/zap"
)

// TaskStore mirrors /api/v1/tasks.
type TaskStore struct {
	client *Client
	policy DeletePolicy

	mu    sync.RWMutex
	items []model.Task
}

func NewTaskStore(client *Client, policy DeletePolicy) *TaskStore {
	return &TaskStore{client: client, policy: policy}
}

func (s *TaskStore) Fetch(ctx context.Context, projectID *uuid.UUID, status string) error {
	q := url.Values{}
	if projectID != nil {
		q.Set("projectId", projectID.String())
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/api/v1/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var items []model.Task
	if err := s.client.get(ctx, path, &items); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *TaskStore) List() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.items))
	copy(out, s.items)
	return out
}

func (s *TaskStore) Add(ctx context.Context, in any) (*model.Task, error) {
	var created model.Task
	if err := s.client.post(ctx, "/api/v1/tasks", in, &created); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]model.Task{created}, s.items...)
	s.mu.Unlock()
	return &created, nil
}

func (s *TaskStore) Update(ctx context.Context, id uuid.UUID, in any) (*model.Task, error) {
	var updated model.Task
	if err := s.client.put(ctx, "/api/v1/tasks/"+id.String(), in, &updated); err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return &updated, nil
}

func (s *TaskStore) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.client.delete(ctx, "/api/v1/tasks/"+id.String())
	if err != nil {
		if s.policy == DeleteRollback {
			return err
		}
		s.client.Logger.Warn("task delete failed, removing locally anyway",
			zap.String("id", id.String()),
			zap.Error(err))
	}

	s.mu.Lock()
	s.items = removeByID(s.items, func(t model.Task) uuid.UUID { return t.ID }, id)
	s.mu.Unlock()
	return nil
}

// ByStatus buckets cached tasks by status.
func (s *TaskStore) ByStatus() map[model.TaskStatus][]model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[model.TaskStatus][]model.Task)
	for _, t := range s.items {
		out[t.Status] = append(out[t.Status], t)
	}
	return out
}

// AssignedTo returns cached tasks assigned to one user.
func (s *TaskStore) AssignedTo(userID uuid.UUID) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Task
	for _, t := range s.items {
		if t.AssignedToID != nil && *t.AssignedToID == userID {
			out = append(out, t)
		}
	}
	return out
}
