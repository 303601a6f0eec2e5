package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestWorld_CreateUpdateDelete(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Atlas")

	world, err := env.worlds.Create(ctx, project.ID, WorldCreate{
		Name:    "Veldt",
		Theme:   "post-collapse pastoral",
		Setting: "grasslands",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if world.LinkedCharacterIDs == nil || world.LinkedWritingIDs == nil || world.LinkedEventIDs == nil {
		t.Fatalf("link sets must default to empty, not nil")
	}

	desc := "Endless grass under a pale sun."
	updated, err := env.worlds.Update(ctx, project.ID, world.ID, WorldPatch{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != world.ID || updated.Name != "Veldt" {
		t.Fatalf("overlay must keep identity and untouched fields")
	}
	if updated.Description != desc {
		t.Fatalf("description not applied")
	}

	if err := env.worlds.Delete(ctx, project.ID, world.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = env.worlds.Delete(ctx, project.ID, world.ID)
	wantAPIErrorStatus(t, err, http.StatusNotFound)
}

func TestDeleteWorld_LeavesDanglingReferences(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Atlas")

	world, _ := env.worlds.Create(ctx, project.ID, WorldCreate{Name: "Doomed"})
	character, _ := env.chars.Create(ctx, project.ID, CharacterCreate{Name: "Mira", LinkedWorldID: &world.ID})

	if err := env.worlds.Delete(ctx, project.ID, world.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// References are weak: the character still points at the deleted world.
	characters, _ := env.chars.List(ctx, project.ID)
	if characters[0].ID != character.ID || characters[0].LinkedWorldID == nil || *characters[0].LinkedWorldID != world.ID {
		t.Fatalf("deleting a world must not clear references to it")
	}
}
