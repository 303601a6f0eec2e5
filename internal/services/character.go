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

type CharacterCreate struct {
	Name             string
	Species          string
	Traits           []types.CharacterTrait
	LinkedWorldID    *string
	LinkedEventIDs   []string
	LinkedWritingIDs []string
}

// CharacterPatch carries only the fields an update may touch; nil means
// leave unchanged. There is deliberately no ID field, so a payload can
// never change an entity's identity.
type CharacterPatch struct {
	Name             *string
	Species          *string
	Traits           *[]types.CharacterTrait
	LinkedWorldID    *string
	LinkedEventIDs   *[]string
	LinkedWritingIDs *[]string
}

type CharacterService interface {
	Create(ctx context.Context, projectID uuid.UUID, input CharacterCreate) (*types.Character, error)
	List(ctx context.Context, projectID uuid.UUID) ([]types.Character, error)
	Update(ctx context.Context, projectID uuid.UUID, characterID string, patch CharacterPatch) (*types.Character, error)
	Delete(ctx context.Context, projectID uuid.UUID, characterID string) error
}

type characterService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewCharacterService(log *logger.Logger, projectRepo repos.ProjectRepo) CharacterService {
	return &characterService{
		log:         log.With("service", "CharacterService"),
		projectRepo: projectRepo,
	}
}

func (cs *characterService) Create(ctx context.Context, projectID uuid.UUID, input CharacterCreate) (*types.Character, error) {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	character := types.Character{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Species:          input.Species,
		Traits:           orEmptyTraits(input.Traits),
		LinkedWorldID:    normalizeLink(input.LinkedWorldID),
		LinkedEventIDs:   orEmpty(input.LinkedEventIDs),
		LinkedWritingIDs: orEmpty(input.LinkedWritingIDs),
	}
	project.Characters = append(project.Characters, character)
	if _, err := cs.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &character, nil
}

func (cs *characterService) List(ctx context.Context, projectID uuid.UUID) ([]types.Character, error) {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	return project.Characters, nil
}

func (cs *characterService) Update(ctx context.Context, projectID uuid.UUID, characterID string, patch CharacterPatch) (*types.Character, error) {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range project.Characters {
		if project.Characters[i].ID == characterID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierr.NotFound("character_not_found", errors.New("character does not exist in this project"))
	}
	character := project.Characters[idx]
	if patch.Name != nil {
		character.Name = *patch.Name
	}
	if patch.Species != nil {
		character.Species = *patch.Species
	}
	if patch.Traits != nil {
		character.Traits = orEmptyTraits(*patch.Traits)
	}
	if patch.LinkedWorldID != nil {
		character.LinkedWorldID = normalizeLink(patch.LinkedWorldID)
	}
	if patch.LinkedEventIDs != nil {
		character.LinkedEventIDs = orEmpty(*patch.LinkedEventIDs)
	}
	if patch.LinkedWritingIDs != nil {
		character.LinkedWritingIDs = orEmpty(*patch.LinkedWritingIDs)
	}
	character.ID = characterID
	project.Characters[idx] = character
	if _, err := cs.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &character, nil
}

// Delete filters by id equality rather than index so a concurrent shuffle
// of the slice cannot make it remove the wrong entity.
func (cs *characterService) Delete(ctx context.Context, projectID uuid.UUID, characterID string) error {
	project, err := loadOwnedProject(ctx, cs.projectRepo, projectID)
	if err != nil {
		return err
	}
	kept := make([]types.Character, 0, len(project.Characters))
	for _, c := range project.Characters {
		if c.ID != characterID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(project.Characters) {
		return apierr.NotFound("character_not_found", errors.New("character does not exist in this project"))
	}
	project.Characters = datatypes.NewJSONSlice(kept)
	_, err = cs.projectRepo.Save(ctx, project)
	return err
}
