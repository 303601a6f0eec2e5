package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/loreweave/loreweave-backend/internal/types"
)

func TestCreateCharacter_DefaultsLinkFields(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Saga")

	character, err := env.chars.Create(ctx, project.ID, CharacterCreate{Name: "Mira", Species: "Human"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if character.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
	if character.LinkedWorldID != nil {
		t.Fatalf("expected nil world link by default")
	}
	if character.Traits == nil || character.LinkedEventIDs == nil || character.LinkedWritingIDs == nil {
		t.Fatalf("link fields must default to empty, not nil")
	}
	if len(character.Traits) != 0 || len(character.LinkedEventIDs) != 0 {
		t.Fatalf("expected empty defaults")
	}
}

func TestCharacter_RoundTrip(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Saga")

	worldID := "world-1"
	input := CharacterCreate{
		Name:    "Kestrel",
		Species: "Corvid",
		Traits: []types.CharacterTrait{
			{ID: "t1", Label: "Temperament", Value: "Wry", IsCustom: true},
		},
		LinkedWorldID:    &worldID,
		LinkedEventIDs:   []string{"ev-1"},
		LinkedWritingIDs: []string{"wr-1", "wr-2"},
	}
	created, err := env.chars.Create(ctx, project.ID, input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	characters, err := env.chars.List(ctx, project.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var found *types.Character
	for i := range characters {
		if characters[i].ID == created.ID {
			found = &characters[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("created character not in list")
	}
	if found.Name != input.Name || found.Species != input.Species {
		t.Fatalf("round trip mismatch: %+v", found)
	}
	if found.LinkedWorldID == nil || *found.LinkedWorldID != worldID {
		t.Fatalf("world link lost in round trip")
	}
	if len(found.Traits) != 1 || found.Traits[0].Label != "Temperament" {
		t.Fatalf("traits lost in round trip: %+v", found.Traits)
	}
	if len(found.LinkedWritingIDs) != 2 {
		t.Fatalf("writing links lost in round trip")
	}
}

func TestUpdateCharacter_PreservesIdentityAndUntouchedFields(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Saga")

	created, _ := env.chars.Create(ctx, project.ID, CharacterCreate{Name: "Old Name", Species: "Elf"})

	name := "New Name"
	updated, err := env.chars.Update(ctx, project.ID, created.ID, CharacterPatch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed identity: %s != %s", updated.ID, created.ID)
	}
	if updated.Name != "New Name" {
		t.Fatalf("name not applied")
	}
	if updated.Species != "Elf" {
		t.Fatalf("untouched field changed: %q", updated.Species)
	}
}

func TestUpdateCharacter_ClearWorldLink(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Saga")

	worldID := "world-1"
	created, _ := env.chars.Create(ctx, project.ID, CharacterCreate{Name: "Mira", LinkedWorldID: &worldID})
	if created.LinkedWorldID == nil {
		t.Fatalf("precondition: world link set")
	}

	empty := ""
	updated, err := env.chars.Update(ctx, project.ID, created.ID, CharacterPatch{LinkedWorldID: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LinkedWorldID != nil {
		t.Fatalf("empty string must clear the world link")
	}
}

func TestUpdateCharacter_NotFound(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Saga")

	name := "Nobody"
	_, err := env.chars.Update(ctx, project.ID, "missing", CharacterPatch{Name: &name})
	wantAPIErrorStatus(t, err, http.StatusNotFound)
}

func TestDeleteCharacter_ByIDNotIndex(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Saga")

	a, _ := env.chars.Create(ctx, project.ID, CharacterCreate{Name: "A"})
	b, _ := env.chars.Create(ctx, project.ID, CharacterCreate{Name: "B"})

	if err := env.chars.Delete(ctx, project.ID, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	characters, _ := env.chars.List(ctx, project.ID)
	if len(characters) != 1 || characters[0].ID != b.ID {
		t.Fatalf("wrong character removed")
	}

	err := env.chars.Delete(ctx, project.ID, a.ID)
	wantAPIErrorStatus(t, err, http.StatusNotFound)
	characters, _ = env.chars.List(ctx, project.ID)
	if len(characters) != 1 {
		t.Fatalf("failed delete must leave collection unmodified")
	}
}
