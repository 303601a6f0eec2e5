package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/loreweave/loreweave-backend/internal/platform/apierr"
	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/repos"
	"github.com/loreweave/loreweave-backend/internal/types"
)

type WritingCreate struct {
	Title              string
	Content            string
	Tags               []string
	LinkedCharacterIDs []string
	LinkedWorldID      *string
	LinkedEventIDs     []string
}

type WritingPatch struct {
	Title              *string
	Content            *string
	Tags               *[]string
	LinkedCharacterIDs *[]string
	LinkedWorldID      *string
	LinkedEventIDs     *[]string
}

type WritingService interface {
	Create(ctx context.Context, projectID uuid.UUID, input WritingCreate) (*types.WritingEntry, error)
	List(ctx context.Context, projectID uuid.UUID) ([]types.WritingEntry, error)
	Update(ctx context.Context, projectID uuid.UUID, writingID string, patch WritingPatch) (*types.WritingEntry, error)
	Delete(ctx context.Context, projectID uuid.UUID, writingID string) error
}

type writingService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewWritingService(log *logger.Logger, projectRepo repos.ProjectRepo) WritingService {
	return &writingService{
		log:         log.With("service", "WritingService"),
		projectRepo: projectRepo,
	}
}

// Create stamps created_at == updated_at; the caller never supplies
// timestamps.
func (ws *writingService) Create(ctx context.Context, projectID uuid.UUID, input WritingCreate) (*types.WritingEntry, error) {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	writing := types.WritingEntry{
		ID:                 uuid.NewString(),
		Title:              input.Title,
		Content:            input.Content,
		Tags:               orEmpty(input.Tags),
		LinkedCharacterIDs: orEmpty(input.LinkedCharacterIDs),
		LinkedWorldID:      normalizeLink(input.LinkedWorldID),
		LinkedEventIDs:     orEmpty(input.LinkedEventIDs),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	project.Writings = append(project.Writings, writing)
	if _, err := ws.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &writing, nil
}

func (ws *writingService) List(ctx context.Context, projectID uuid.UUID) ([]types.WritingEntry, error) {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	return project.Writings, nil
}

// Update refreshes updated_at on every successful update and only then;
// created_at never changes after Create.
func (ws *writingService) Update(ctx context.Context, projectID uuid.UUID, writingID string, patch WritingPatch) (*types.WritingEntry, error) {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range project.Writings {
		if project.Writings[i].ID == writingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierr.NotFound("writing_not_found", errors.New("writing does not exist in this project"))
	}
	writing := project.Writings[idx]
	if patch.Title != nil {
		writing.Title = *patch.Title
	}
	if patch.Content != nil {
		writing.Content = *patch.Content
	}
	if patch.Tags != nil {
		writing.Tags = orEmpty(*patch.Tags)
	}
	if patch.LinkedCharacterIDs != nil {
		writing.LinkedCharacterIDs = orEmpty(*patch.LinkedCharacterIDs)
	}
	if patch.LinkedWorldID != nil {
		writing.LinkedWorldID = normalizeLink(patch.LinkedWorldID)
	}
	if patch.LinkedEventIDs != nil {
		writing.LinkedEventIDs = orEmpty(*patch.LinkedEventIDs)
	}
	writing.ID = writingID
	writing.UpdatedAt = time.Now().UTC()
	project.Writings[idx] = writing
	if _, err := ws.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &writing, nil
}

func (ws *writingService) Delete(ctx context.Context, projectID uuid.UUID, writingID string) error {
	project, err := loadOwnedProject(ctx, ws.projectRepo, projectID)
	if err != nil {
		return err
	}
	kept := make([]types.WritingEntry, 0, len(project.Writings))
	for _, w := range project.Writings {
		if w.ID != writingID {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(project.Writings) {
		return apierr.NotFound("writing_not_found", errors.New("writing does not exist in this project"))
	}
	project.Writings = datatypes.NewJSONSlice(kept)
	_, err = ws.projectRepo.Save(ctx, project)
	return err
}
