package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/types"
)

// ProjectRepo is the document store for project aggregates. Every mutation
// goes through Save as a whole-document rewrite; there is no partial update
// and no version check, so the last write against a project wins.
type ProjectRepo interface {
	GetByID(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*types.Project, error)
	GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*types.Project, error)
	Create(ctx context.Context, project *types.Project) (*types.Project, error)
	Save(ctx context.Context, project *types.Project) (*types.Project, error)
	DeleteByID(ctx context.Context, projectID uuid.UUID) error
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

// GetByID returns (nil, nil) when no project has that id.
func (pr *projectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	var result types.Project
	if err := pr.db.WithContext(ctx).
		Where("id = ?", projectID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (pr *projectRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*types.Project, error) {
	var results []*types.Project
	if err := pr.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByOwnerAndName is the name-uniqueness probe; the match is exact and
// case-sensitive. Returns (nil, nil) when the owner has no project with
// that name.
func (pr *projectRepo) GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*types.Project, error) {
	var result types.Project
	if err := pr.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (pr *projectRepo) Create(ctx context.Context, project *types.Project) (*types.Project, error) {
	if err := pr.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (pr *projectRepo) Save(ctx context.Context, project *types.Project) (*types.Project, error) {
	if err := pr.db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (pr *projectRepo) DeleteByID(ctx context.Context, projectID uuid.UUID) error {
	return pr.db.WithContext(ctx).
		Where("id = ?", projectID).
		Delete(&types.Project{}).Error
}
