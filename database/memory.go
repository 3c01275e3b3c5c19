package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"saaarchi/models"
)

// MemoryStore is a process-local ProjectStore, selected with memory://.
// Contents are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]memoryProject
	seq      int
	now      func() time.Time
}

type memoryProject struct {
	project models.Project
	seq     int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: make(map[string]memoryProject),
		now:      time.Now,
	}
}

func (s *MemoryStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	_ = ctx

	s.mu.RLock()
	entries := make([]memoryProject, 0, len(s.projects))
	for _, e := range s.projects {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.project.CreatedAt.Equal(b.project.CreatedAt) {
			return a.project.CreatedAt.After(b.project.CreatedAt)
		}
		return a.seq > b.seq
	})

	projects := make([]models.Project, 0, len(entries))
	for _, e := range entries {
		projects = append(projects, copyProject(e.project))
	}
	return projects, nil
}

func (s *MemoryStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.projects[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	p := copyProject(e.project)
	return &p, nil
}

func (s *MemoryStore) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p = copyProject(p)
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.seq++
	s.projects[p.ID] = memoryProject{project: p, seq: s.seq}

	out := copyProject(p)
	return &out, nil
}

func (s *MemoryStore) UpdateProject(ctx context.Context, id string, p models.Project) (*models.Project, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.projects[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	p = copyProject(p)
	p.ID = id
	p.CreatedAt = e.project.CreatedAt
	p.UpdatedAt = s.now()
	s.projects[id] = memoryProject{project: p, seq: e.seq}

	out := copyProject(p)
	return &out, nil
}

func (s *MemoryStore) DeleteProject(ctx context.Context, id string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() {}

func copyProject(p models.Project) models.Project {
	p.Tags = append([]string{}, p.Tags...)
	p.Images = append([]string{}, p.Images...)
	return p
}
