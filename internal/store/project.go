package store

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"go.uber.org/zap"
)

// ProjectStore mirrors /api/v1/projects.
type ProjectStore struct {
	client *Client
	policy DeletePolicy

	mu    sync.RWMutex
	items []model.Project
}

func NewProjectStore(client *Client, policy DeletePolicy) *ProjectStore {
	return &ProjectStore{client: client, policy: policy}
}

func (s *ProjectStore) Fetch(ctx context.Context, status string) error {
	path := "/api/v1/projects"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var items []model.Project
	if err := s.client.get(ctx, path, &items); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *ProjectStore) List() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the cached project by id, nil when absent.
func (s *ProjectStore) Get(id uuid.UUID) *model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p
		}
	}
	return nil
}

func (s *ProjectStore) Add(ctx context.Context, in any) (*model.Project, error) {
	var created model.Project
	if err := s.client.post(ctx, "/api/v1/projects", in, &created); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]model.Project{created}, s.items...)
	s.mu.Unlock()
	return &created, nil
}

func (s *ProjectStore) Update(ctx context.Context, id uuid.UUID, in any) (*model.Project, error) {
	var updated model.Project
	if err := s.client.put(ctx, "/api/v1/projects/"+id.String(), in, &updated); err != nil {
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

func (s *ProjectStore) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.client.delete(ctx, "/api/v1/projects/"+id.String())
	if err != nil {
		if s.policy == DeleteRollback {
			return err
		}
		s.client.Logger.Warn("project delete failed, removing locally anyway",
			zap.String("id", id.String()),
			zap.Error(err))
	}

	s.mu.Lock()
	s.items = removeByID(s.items, func(p model.Project) uuid.UUID { return p.ID }, id)
	s.mu.Unlock()
	return nil
}

// ByStatus buckets cached projects by status.
func (s *ProjectStore) ByStatus() map[model.ProjectStatus][]model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[model.ProjectStatus][]model.Project)
	for _, p := range s.items {
		out[p.Status] = append(out[p.Status], p)
	}
	return out
}
