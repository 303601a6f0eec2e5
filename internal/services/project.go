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

type ProjectService interface {
	Create(ctx context.Context, name string) (*types.Project, error)
	List(ctx context.Context) ([]*types.Project, error)
	Get(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
	Rename(ctx context.Context, projectID uuid.UUID, newName string) (*types.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
}

type projectService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewProjectService(log *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	return &projectService{
		log:         log.With("service", "ProjectService"),
		projectRepo: projectRepo,
	}
}

func (ps *projectService) Create(ctx context.Context, name string) (*types.Project, error) {
	ownerID, err := principalID(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := ps.projectRepo.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("project_name_conflict", errors.New("a project with this name already exists"))
	}
	now := time.Now().UTC()
	project := &types.Project{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       name,
		Characters: datatypes.NewJSONSlice([]types.Character{}),
		Worlds:     datatypes.NewJSONSlice([]types.World{}),
		Writings:   datatypes.NewJSONSlice([]types.WritingEntry{}),
		Eras:       datatypes.NewJSONSlice([]types.Era{}),
		Timeline:   datatypes.NewJSONSlice([]types.TimelineEvent{}),
		Catalogue:  datatypes.NewJSONSlice([]types.CatalogueItem{}),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := ps.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	ps.log.Info("project created", "project_id", created.ID)
	return created, nil
}

func (ps *projectService) List(ctx context.Context) ([]*types.Project, error) {
	ownerID, err := principalID(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := ps.projectRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*types.Project{}
	}
	return projects, nil
}

func (ps *projectService) Get(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	return loadOwnedProject(ctx, ps.projectRepo, projectID)
}

// Rename re-checks name uniqueness against the owner's other projects;
// keeping the current name is not a conflict with itself.
func (ps *projectService) Rename(ctx context.Context, projectID uuid.UUID, newName string) (*types.Project, error) {
	project, err := loadOwnedProject(ctx, ps.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	if newName != project.Name {
		existing, err := ps.projectRepo.GetByOwnerAndName(ctx, project.OwnerID, newName)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != project.ID {
			return nil, apierr.Conflict("project_name_conflict", errors.New("a project with this name already exists"))
		}
		project.Name = newName
	}
	project.UpdatedAt = time.Now().UTC()
	return ps.projectRepo.Save(ctx, project)
}

// Delete removes the whole document; the embedded collections go with it.
func (ps *projectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	project, err := loadOwnedProject(ctx, ps.projectRepo, projectID)
	if err != nil {
		return err
	}
	if err := ps.projectRepo.DeleteByID(ctx, project.ID); err != nil {
		return err
	}
	ps.log.Info("project deleted", "project_id", project.ID)
	return nil
}
