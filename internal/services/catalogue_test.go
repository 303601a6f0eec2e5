package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestCatalogue_CreateAndCategories(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Compendium")

	item, err := env.catalogue.Create(ctx, project.ID, CatalogueItemCreate{
		Name:     "Sunblade",
		Category: "artifacts",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Category != "artifacts" {
		t.Fatalf("category lost")
	}
	if item.LinkedCharacterIDs == nil || item.LinkedEventIDs == nil || item.LinkedWritingIDs == nil {
		t.Fatalf("link sets must default to empty, not nil")
	}

	category := "relics"
	updated, err := env.catalogue.Update(ctx, project.ID, item.ID, CatalogueItemPatch{Category: &category})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != item.ID || updated.Name != "Sunblade" || updated.Category != "relics" {
		t.Fatalf("overlay wrong: %+v", updated)
	}
}

func TestCatalogue_DeleteNotFoundInOtherProject(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	first := mustCreateProject(t, env, ctx, "First")
	second := mustCreateProject(t, env, ctx, "Second")

	item, _ := env.catalogue.Create(ctx, first.ID, CatalogueItemCreate{Name: "Lone"})

	// The id exists, but not in the named project.
	err := env.catalogue.Delete(ctx, second.ID, item.ID)
	wantAPIErrorStatus(t, err, http.StatusNotFound)

	items, _ := env.catalogue.List(ctx, first.ID)
	if len(items) != 1 {
		t.Fatalf("item must survive a delete scoped to the wrong project")
	}
}
