package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/loreweave/loreweave-backend/internal/platform/apierr"
	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/repos"
	"github.com/loreweave/loreweave-backend/internal/requestdata"
	"github.com/loreweave/loreweave-backend/internal/types"
)

func ctxFor(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

type testEnv struct {
	repo      *repos.MemProjectRepo
	projects  ProjectService
	chars     CharacterService
	worlds    WorldService
	writings  WritingService
	eras      EraService
	timeline  TimelineService
	catalogue CatalogueService
}

func newTestEnv() *testEnv {
	log := logger.NewNop()
	repo := repos.NewMemProjectRepo()
	return &testEnv{
		repo:      repo,
		projects:  NewProjectService(log, repo),
		chars:     NewCharacterService(log, repo),
		worlds:    NewWorldService(log, repo),
		writings:  NewWritingService(log, repo),
		eras:      NewEraService(log, repo),
		timeline:  NewTimelineService(log, repo),
		catalogue: NewCatalogueService(log, repo),
	}
}

func mustCreateProject(t *testing.T, env *testEnv, ctx context.Context, name string) *types.Project {
	t.Helper()
	project, err := env.projects.Create(ctx, name)
	if err != nil {
		t.Fatalf("create project %q: %v", name, err)
	}
	return project
}

func wantAPIErrorStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	ae, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %T: %v", err, err)
	}
	if ae.Status != status {
		t.Fatalf("expected status %d, got %d (%v)", status, ae.Status, ae)
	}
}
