package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/loreweave/loreweave-backend/internal/platform/apierr"
	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/repos"
	"github.com/loreweave/loreweave-backend/internal/types"
)

type WorldCreate struct {
	Name               string
	Theme              string
	Setting            string
	Description        string
	LinkedCharacterIDs []string
	LinkedWritingIDs   []string
	LinkedEventIDs     []string
}

type WorldPatch struct {
	Name               *string
	Theme              *string
	Setting            *string
	Description        *string
	LinkedCharacterIDs *[]string
	LinkedWritingIDs   *[]string
	LinkedEventIDs     *[]string
}

type WorldService interface {
	Create(ctx context.Context, projectID uuid.UUID, input WorldCreate) (*types.World, error)
	List(ctx context.Context, projectID uuid.UUID) ([]types.World, error)
	Update(ctx context.Context, projectID uuid.UUID, worldID string, patch WorldPatch) (*types.World, error)
	Delete(ctx context.Context, projectID uuid.UUID, worldID string) error
}

type worldService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewWorldService(log *logger.Logger, projectRepo repos.ProjectRepo) WorldService {
	return &worldService{
		log:         log.With("service", "WorldService"),
		projectRepo: projectRepo,
	}
}

func (ws *worldService) Create(ctx context.Context, projectID uuid.UUID, input WorldCreate) (*types.World, error) {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	world := types.World{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		Theme:              input.Theme,
		Setting:            input.Setting,
		Description:        input.Description,
		LinkedCharacterIDs: orEmpty(input.LinkedCharacterIDs),
		LinkedWritingIDs:   orEmpty(input.LinkedWritingIDs),
		LinkedEventIDs:     orEmpty(input.LinkedEventIDs),
	}
	project.Worlds = append(project.Worlds, world)
	if _, err := ws.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &world, nil
}

func (ws *worldService) List(ctx context.Context, projectID uuid.UUID) ([]types.World, error) {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	return project.Worlds, nil
}

func (ws *worldService) Update(ctx context.Context, projectID uuid.UUID, worldID string, patch WorldPatch) (*types.World, error) {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range project.Worlds {
		if project.Worlds[i].ID == worldID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierr.NotFound("world_not_found", errors.New("world does not exist in this project"))
	}
	world := project.Worlds[idx]
	if patch.Name != nil {
		world.Name = *patch.Name
	}
	if patch.Theme != nil {
		world.Theme = *patch.Theme
	}
	if patch.Setting != nil {
		world.Setting = *patch.Setting
	}
	if patch.Description != nil {
		world.Description = *patch.Description
	}
	if patch.LinkedCharacterIDs != nil {
		world.LinkedCharacterIDs = orEmpty(*patch.LinkedCharacterIDs)
	}
	if patch.LinkedWritingIDs != nil {
		world.LinkedWritingIDs = orEmpty(*patch.LinkedWritingIDs)
	}
	if patch.LinkedEventIDs != nil {
		world.LinkedEventIDs = orEmpty(*patch.LinkedEventIDs)
	}
	world.ID = worldID
	project.Worlds[idx] = world
	if _, err := ws.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &world, nil
}

func (ws *worldService) Delete(ctx context.Context, projectID uuid.UUID, worldID string) error {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return err
	}
	kept := make([]types.World, 0, len(project.Worlds))
	for _, w := range project.Worlds {
		if w.ID != worldID {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(project.Worlds) {
		return apierr.NotFound("world_not_found", errors.New("world does not exist in this project"))
	}
	project.Worlds = datatypes.NewJSONSlice(kept)
	_, err = ws.projectRepo.Save(ctx, project)
	return err
}
