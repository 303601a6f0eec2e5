package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/loreweave/loreweave-backend/internal/platform/apierr"
	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/repos"
	"github.com/loreweave/loreweave-backend/internal/types"
)

type EraCreate struct {
	Name        string
	Description string
}

type EraPatch struct {
	Name        *string
	Description *string
}

type EraService interface {
	Create(ctx context.Context, projectID uuid.UUID, input EraCreate) (*types.Era, error)
	List(ctx context.Context, projectID uuid.UUID) ([]types.Era, error)
	Update(ctx context.Context, projectID uuid.UUID, eraID string, patch EraPatch) (*types.Era, error)
	Delete(ctx context.Context, projectID uuid.UUID, eraID string) error
	Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []string) ([]types.Era, error)
}

type eraService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewEraService(log *logger.Logger, projectRepo repos.ProjectRepo) EraService {
	return &eraService{
		log:         log.With("service", "EraService"),
		projectRepo: projectRepo,
	}
}

// Create appends to the end of the visible sequence: the new era gets
// order max+1 (0 when the project has none), never interleaving.
func (es *eraService) Create(ctx context.Context, projectID uuid.UUID, input EraCreate) (*types.Era, error) {
	project, err := loadOwnedProject(ctx, es.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	nextOrder := 0
	for _, e := range project.Eras {
		if e.Order >= nextOrder {
			nextOrder = e.Order + 1
		}
	}
	era := types.Era{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Order:       nextOrder,
	}
	project.Eras = append(project.Eras, era)
	if _, err := es.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &era, nil
}

func (es *eraService) List(ctx context.Context, projectID uuid.UUID) ([]types.Era, error) {
	project, err := loadOwnedProject(ctx, es.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	return project.Eras, nil
}

func (es *eraService) Update(ctx context.Context, projectID uuid.UUID, eraID string, patch EraPatch) (*types.Era, error) {
	project, err := loadOwnedProject(ctx, es.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range project.Eras {
		if project.Eras[i].ID == eraID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierr.NotFound("era_not_found", errors.New("era does not exist in this project"))
	}
	era := project.Eras[idx]
	if patch.Name != nil {
		era.Name = *patch.Name
	}
	if patch.Description != nil {
		era.Description = *patch.Description
	}
	era.ID = eraID
	project.Eras[idx] = era
	if _, err := es.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &era, nil
}

// Delete does not cascade to the era's timeline events; they keep their
// era_id and stay in the project.
func (es *eraService) Delete(ctx context.Context, projectID uuid.UUID, eraID string) error {
	project, err := loadOwnedProject(ctx, es.projectRepo, projectID)
	if err != nil {
		return err
	}
	kept := make([]types.Era, 0, len(project.Eras))
	for _, e := range project.Eras {
		if e.ID != eraID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(project.Eras) {
		return apierr.NotFound("era_not_found", errors.New("era does not exist in this project"))
	}
	project.Eras = datatypes.NewJSONSlice(kept)
	_, err = es.projectRepo.Save(ctx, project)
	return err
}

// Reorder applies the caller's id sequence as positional indexes. Ids left
// out of orderedIDs keep their current order, so a client may reorder a
// filtered subset without disturbing the rest; ids that match nothing are
// ignored. The stored slice is then stably re-sorted so iteration order
// matches order values.
func (es *eraService) Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []string) ([]types.Era, error) {
	project, err := loadOwnedProject(ctx, es.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		position[id] = i
	}
	eras := make([]types.Era, len(project.Eras))
	copy(eras, project.Eras)
	for i := range eras {
		if idx, ok := position[eras[i].ID]; ok {
			eras[i].Order = idx
		}
	}
	sort.SliceStable(eras, func(i, j int) bool {
		return eras[i].Order < eras[j].Order
	})
	project.Eras = datatypes.NewJSONSlice(eras)
	if _, err := es.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return eras, nil
}
