package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWriting_TimestampsOnCreate(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Drafts")

	writing, err := env.writings.Create(ctx, project.ID, WritingCreate{Title: "Chapter One", Content: "It began."})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if writing.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
	if !writing.CreatedAt.Equal(writing.UpdatedAt) {
		t.Fatalf("created_at and updated_at must match on create: %v != %v", writing.CreatedAt, writing.UpdatedAt)
	}
}

func TestWriting_UpdateRefreshesUpdatedAtOnly(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Drafts")

	writing, _ := env.writings.Create(ctx, project.ID, WritingCreate{Title: "Chapter One"})
	time.Sleep(5 * time.Millisecond)

	content := "Revised."
	updated, err := env.writings.Update(ctx, project.ID, writing.ID, WritingPatch{Content: &content})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(writing.CreatedAt) {
		t.Fatalf("created_at must never change on update")
	}
	if !updated.UpdatedAt.After(writing.UpdatedAt) {
		t.Fatalf("updated_at must strictly increase: %v -> %v", writing.UpdatedAt, updated.UpdatedAt)
	}
	if updated.Content != "Revised." {
		t.Fatalf("content not applied")
	}
	if updated.Title != "Chapter One" {
		t.Fatalf("untouched field changed")
	}
}

func TestWriting_TagsDefaultAndOverlay(t *testing.T) {
	env := newTestEnv()
	ctx := ctxFor(uuid.New())
	project := mustCreateProject(t, env, ctx, "Drafts")

	writing, _ := env.writings.Create(ctx, project.ID, WritingCreate{Title: "Untagged"})
	if writing.Tags == nil || len(writing.Tags) != 0 {
		t.Fatalf("tags must default to empty, not nil")
	}

	tags := []string{"draft", "poem"}
	updated, err := env.writings.Update(ctx, project.ID, writing.ID, WritingPatch{Tags: &tags})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Tags) != 2 {
		t.Fatalf("tags not applied: %v", updated.Tags)
	}
}
