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

type CatalogueItemCreate struct {
	Name               string
	Category           string
	Description        string
	LinkedCharacterIDs []string
	LinkedWorldID      *string
	LinkedEventIDs     []string
	LinkedWritingIDs   []string
}

type CatalogueItemPatch struct {
	Name               *string
	Category           *string
	Description        *string
	LinkedCharacterIDs *[]string
	LinkedWorldID      *string
	LinkedEventIDs     *[]string
	LinkedWritingIDs   *[]string
}

type CatalogueService interface {
	Create(ctx context.Context, projectID uuid.UUID, input CatalogueItemCreate) (*types.CatalogueItem, error)
	List(ctx context.Context, projectID uuid.UUID) ([]types.CatalogueItem, error)
	Update(ctx context.Context, projectID uuid.UUID, itemID string, patch CatalogueItemPatch) (*types.CatalogueItem, error)
	Delete(ctx context.Context, projectID uuid.UUID, itemID string) error
}

type catalogueService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewCatalogueService(log *logger.Logger, projectRepo repos.ProjectRepo) CatalogueService {
	return &catalogueService{
		log:         log.With("service", "CatalogueService"),
		projectRepo: projectRepo,
	}
}

func (cs *catalogueService) Create(ctx context.Context, projectID uuid.UUID, input CatalogueItemCreate) (*types.CatalogueItem, error) {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	item := types.CatalogueItem{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		Category:           input.Category,
		Description:        input.Description,
		LinkedCharacterIDs: orEmpty(input.LinkedCharacterIDs),
		LinkedWorldID:      normalizeLink(input.LinkedWorldID),
		LinkedEventIDs:     orEmpty(input.LinkedEventIDs),
		LinkedWritingIDs:   orEmpty(input.LinkedWritingIDs),
	}
	project.Catalogue = append(project.Catalogue, item)
	if _, err := cs.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &item, nil
}

func (cs *catalogueService) List(ctx context.Context, projectID uuid.UUID) ([]types.CatalogueItem, error) {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	return project.Catalogue, nil
}

func (cs *catalogueService) Update(ctx context.Context, projectID uuid.UUID, itemID string, patch CatalogueItemPatch) (*types.CatalogueItem, error) {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range project.Catalogue {
		if project.Catalogue[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierr.NotFound("catalogue_item_not_found", errors.New("catalogue item does not exist in this project"))
	}
	item := project.Catalogue[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.LinkedCharacterIDs != nil {
		item.LinkedCharacterIDs = orEmpty(*patch.LinkedCharacterIDs)
	}
	if patch.LinkedWorldID != nil {
		item.LinkedWorldID = normalizeLink(patch.LinkedWorldID)
	}
	if patch.LinkedEventIDs != nil {
		item.LinkedEventIDs = orEmpty(*patch.LinkedEventIDs)
	}
	if patch.LinkedWritingIDs != nil {
		item.LinkedWritingIDs = orEmpty(*patch.LinkedWritingIDs)
	}
	item.ID = itemID
	project.Catalogue[idx] = item
	if _, err := cs.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &item, nil
}

func (cs *catalogueService) Delete(ctx context.Context, projectID uuid.UUID, itemID string) error {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return err
	}
	kept := make([]types.CatalogueItem, 0, len(project.Catalogue))
	for _, item := range project.Catalogue {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(project.Catalogue) {
		return apierr.NotFound("catalogue_item_not_found", errors.New("catalogue item does not exist in this project"))
	}
	project.Catalogue = datatypes.NewJSONSlice(kept)
	_, err = cs.projectRepo.Save(ctx, project)
	return err
}
