package repos

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/loreweave/loreweave-backend/internal/types"
)

// MemProjectRepo is an in-memory ProjectRepo used by the service tests and
// for running the server without a database. Documents are deep-copied on
// the way in and out so callers never share state with the store.
type MemProjectRepo struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]*types.Project
}

func NewMemProjectRepo() *MemProjectRepo {
	return &MemProjectRepo{projects: make(map[uuid.UUID]*types.Project)}
}

func cloneProject(p *types.Project) *types.Project {
	if p == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil
	}
	var out types.Project
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

func (mr *MemProjectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return cloneProject(mr.projects[projectID]), nil
}

func (mr *MemProjectRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*types.Project, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	var results []*types.Project
	for _, p := range mr.projects {
		if p.OwnerID == ownerID {
			results = append(results, cloneProject(p))
		}
	}
	return results, nil
}

func (mr *MemProjectRepo) GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*types.Project, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	for _, p := range mr.projects {
		if p.OwnerID == ownerID && p.Name == name {
			return cloneProject(p), nil
		}
	}
	return nil, nil
}

func (mr *MemProjectRepo) Create(ctx context.Context, project *types.Project) (*types.Project, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.projects[project.ID] = cloneProject(project)
	return project, nil
}

func (mr *MemProjectRepo) Save(ctx context.Context, project *types.Project) (*types.Project, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.projects[project.ID] = cloneProject(project)
	return project, nil
}

func (mr *MemProjectRepo) DeleteByID(ctx context.Context, projectID uuid.UUID) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	delete(mr.projects, projectID)
	return nil
}
