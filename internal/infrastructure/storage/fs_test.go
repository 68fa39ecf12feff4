package storage

import (
	"context"
	"testing"

	"svw.info/sudoku-engine/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "expert-42",
		Seed:       42,
		Difficulty: domain.Expert,
		Clues:      27,
		CreatedAt:  1700000000,
	}
	p.Grid[0][0] = 5
	p.Solution[0][0] = 5

	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx, "expert-42")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Seed != 42 || got.Difficulty != domain.Expert || got.Grid != p.Grid {
		t.Fatalf("loaded puzzle differs: %+v", got)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "expert-42" {
		t.Fatalf("list = %+v, want the single saved puzzle", metas)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("puzzle without ID must be rejected")
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); err == nil {
		t.Fatal("missing puzzle must return an error")
	}
}
