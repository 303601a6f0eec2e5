package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/loreweave/loreweave-backend/internal/platform/apierr"
	"github.com/loreweave/loreweave-backend/internal/repos"
	"github.com/loreweave/loreweave-backend/internal/requestdata"
	"github.com/loreweave/loreweave-backend/internal/types"
)

func principalID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apierr.Forbidden("forbidden", errors.New("no authenticated user in context"))
	}
	return rd.UserID, nil
}

// loadOwnedProject is the ownership guard every project-scoped operation
// runs first: resolve the aggregate, then verify the caller owns it. Owner
// ids are compared in canonical string form. Nothing is mutated on failure.
func loadOwnedProject(ctx context.Context, projectRepo repos.ProjectRepo, projectID uuid.UUID) (*types.Project, error) {
	userID, err := principalID(ctx)
	if err != nil {
		return nil, err
	}
	project, err := projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apierr.NotFound("project_not_found", errors.New("project does not exist"))
	}
	if project.OwnerID.String() != userID.String() {
		return nil, apierr.Forbidden("forbidden", errors.New("project is owned by another user"))
	}
	return project, nil
}
