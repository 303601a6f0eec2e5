package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/loreweave/loreweave-backend/internal/types"
)

func TestMemProjectRepo_CopiesOnWriteAndRead(t *testing.T) {
	repo := NewMemProjectRepo()
	ctx := context.Background()

	project := &types.Project{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Saga",
		Eras:    datatypes.NewJSONSlice([]types.Era{{ID: "e1", Name: "Dawn", Order: 0}}),
	}
	if _, err := repo.Create(ctx, project); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	project.Name = "Tampered"
	project.Eras[0].Name = "Tampered"

	stored, err := repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "Saga" || stored.Eras[0].Name != "Dawn" {
		t.Fatalf("store shares state with caller: %+v", stored)
	}

	// And mutating a read result must not change the store either.
	stored.Eras[0].Name = "Mutated"
	again, _ := repo.GetByID(ctx, project.ID)
	if again.Eras[0].Name != "Dawn" {
		t.Fatalf("reads share state with store")
	}
}

func TestMemProjectRepo_FindSemantics(t *testing.T) {
	repo := NewMemProjectRepo()
	ctx := context.Background()
	owner := uuid.New()

	if p, err := repo.GetByID(ctx, uuid.New()); err != nil || p != nil {
		t.Fatalf("missing id must be (nil, nil), got (%v, %v)", p, err)
	}
	if p, err := repo.GetByOwnerAndName(ctx, owner, "none"); err != nil || p != nil {
		t.Fatalf("missing name must be (nil, nil), got (%v, %v)", p, err)
	}

	a := &types.Project{ID: uuid.New(), OwnerID: owner, Name: "A"}
	b := &types.Project{ID: uuid.New(), OwnerID: owner, Name: "B"}
	other := &types.Project{ID: uuid.New(), OwnerID: uuid.New(), Name: "A"}
	for _, p := range []*types.Project{a, b, other} {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mine, err := repo.GetByOwner(ctx, owner)
	if err != nil || len(mine) != 2 {
		t.Fatalf("expected 2 owned projects, got %d (%v)", len(mine), err)
	}

	// Name matching is exact and case-sensitive, scoped per owner.
	if p, _ := repo.GetByOwnerAndName(ctx, owner, "a"); p != nil {
		t.Fatalf("name match must be case-sensitive")
	}
	found, _ := repo.GetByOwnerAndName(ctx, owner, "A")
	if found == nil || found.ID != a.ID {
		t.Fatalf("wrong project for owner+name probe")
	}

	if err := repo.DeleteByID(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if p, _ := repo.GetByID(ctx, a.ID); p != nil {
		t.Fatalf("delete did not remove the document")
	}
}
