package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestCreateProject_StartsEmpty(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())

	project := mustCreateProject(t, env, ctx, "Shadows of Veldt")
	if project.Name != "Shadows of Veldt" {
		t.Fatalf("unexpected name %q", project.Name)
	}
	if len(project.Characters) != 0 || len(project.Worlds) != 0 || len(project.Writings) != 0 ||
		len(project.Eras) != 0 || len(project.Timeline) != 0 || len(project.Catalogue) != 0 {
		t.Fatalf("expected all collections empty on create")
	}

	stored, err := env.projects.Get(ctx, project.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ID != project.ID {
		t.Fatalf("round trip id mismatch: %s != %s", stored.ID, project.ID)
	}
}

func TestCreateProject_DuplicateNamePerOwner(t *testing.T) {
	env := newTestEnv()
	owner := ctxFor(uuid.New())
	other := ctxFor(uuid.New())

	mustCreateProject(t, env, owner, "Aurora")

	_, err := env.projects.Create(owner, "Aurora")
	wantAPIErrorStatus(t, err, http.StatusConflict)

	// Same name under a different owner is fine.
	if _, err := env.projects.Create(other, "Aurora"); err != nil {
		t.Fatalf("different owner should not conflict: %v", err)
	}
}

func TestOwnershipGuard_ForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv()
	owner := ctxFor(uuid.New())
	intruder := ctxFor(uuid.New())

	project := mustCreateProject(t, env, owner, "Private")

	if _, err := env.projects.Get(intruder, project.ID); err == nil {
		t.Fatalf("expected guard failure")
	} else {
		wantAPIErrorStatus(t, err, http.StatusForbidden)
	}
	_, err := env.projects.Rename(intruder, project.ID, "Stolen")
	wantAPIErrorStatus(t, err, http.StatusForbidden)
	err = env.projects.Delete(intruder, project.ID)
	wantAPIErrorStatus(t, err, http.StatusForbidden)
	_, err = env.chars.Create(intruder, project.ID, CharacterCreate{Name: "Spy"})
	wantAPIErrorStatus(t, err, http.StatusForbidden)
	_, err = env.eras.Reorder(intruder, project.ID, nil)
	wantAPIErrorStatus(t, err, http.StatusForbidden)

	// Nothing leaked through.
	stored, err := env.projects.Get(owner, project.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if stored.Name != "Private" || len(stored.Characters) != 0 {
		t.Fatalf("guarded failures must not mutate the project")
	}
}

func TestGuard_NotFoundBeforeForbidden(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())

	_, err := env.projects.Get(ctx, uuid.New())
	wantAPIErrorStatus(t, err, http.StatusNotFound)
}

func TestRenameProject_UniquenessAgainstOtherProjects(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())

	first := mustCreateProject(t, env, ctx, "First")
	mustCreateProject(t, env, ctx, "Second")

	// Keeping the current name is not a conflict with itself.
	if _, err := env.projects.Rename(ctx, first.ID, "First"); err != nil {
		t.Fatalf("rename to same name: %v", err)
	}

	_, err := env.projects.Rename(ctx, first.ID, "Second")
	wantAPIErrorStatus(t, err, http.StatusConflict)

	if _, err := env.projects.Rename(ctx, first.ID, "Third"); err != nil {
		t.Fatalf("rename to fresh name: %v", err)
	}
	stored, _ := env.projects.Get(ctx, first.ID)
	if stored.Name != "Third" {
		t.Fatalf("rename not persisted, got %q", stored.Name)
	}
}

func TestDeleteProject_RemovesWholeAggregate(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())

	project := mustCreateProject(t, env, ctx, "Doomed")
	if _, err := env.chars.Create(ctx, project.ID, CharacterCreate{Name: "Ghost"}); err != nil {
		t.Fatalf("create character: %v", err)
	}
	if err := env.projects.Delete(ctx, project.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := env.projects.Get(ctx, project.ID)
	wantAPIErrorStatus(t, err, http.StatusNotFound)

	projects, err := env.projects.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected no projects after delete, got %d", len(projects))
	}
}

func TestListProjects_OnlyOwn(t *testing.T) {
	env := newTestEnv()
	owner := ctxFor(uuid.New())
	other := ctxFor(uuid.New())

	mustCreateProject(t, env, owner, "Mine A")
	mustCreateProject(t, env, owner, "Mine B")
	mustCreateProject(t, env, other, "Theirs")

	projects, err := env.projects.List(owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
}
