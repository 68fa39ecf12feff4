package usecase

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/validator"
)

func newService() *Service {
	s := solver.New()
	return NewService(s, generator.New(s), validator.New(), hint.New(), nil)
}

// Exercises the whole narrow API the host calls: generate, validate,
// solve, uniqueness, hints.
func TestEngineRoundTrip(t *testing.T) {
	uc := newService()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, _, err := uc.Generate(ctx, 99, domain.Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	unique, _, err := uc.HasUniqueSolution(ctx, &p.Grid)
	if err != nil || !unique {
		t.Fatalf("generated puzzle uniqueness: %v, err=%v", unique, err)
	}

	res, err := uc.Solve(ctx, &p.Grid, 5*time.Second)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !res.Solvable || *res.Solution != p.Solution {
		t.Fatal("solver disagrees with the generator's recorded solution")
	}

	// a clue cell must refuse modification through the facade too
	var clue domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if p.Grid[r][c] != 0 {
				clue = domain.CellCoord{Row: r, Col: c}
			}
		}
	}
	vr, err := uc.ValidateMove(ctx, &p.Grid, &p.Grid, clue.Row, clue.Col, 1, domain.MoveOptions{})
	if err != nil {
		t.Fatalf("ValidateMove failed: %v", err)
	}
	if vr.Valid || vr.Kind != domain.ErrModifyClue {
		t.Fatalf("clue modification slipped through: %+v", vr)
	}

	win, err := uc.ValidateGrid(ctx, &p.Solution)
	if err != nil || !win.Valid {
		t.Fatalf("solution grid failed win check: %+v err=%v", win, err)
	}

	if !uc.IsHintAllowed(domain.HintGeneralDirection, domain.HintUsage{}, domain.Easy) {
		t.Fatal("first hint of a game must be allowed")
	}
	h, err := uc.Hint(ctx, &p.Grid, domain.Easy, domain.HintGeneralDirection, domain.HintUsage{}, nil)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if h.Penalty != 5 {
		t.Fatalf("level-1 penalty = %d, want 5", h.Penalty)
	}
}

func TestNilDependenciesGuarded(t *testing.T) {
	uc := &Service{}
	ctx := context.Background()
	var g domain.Grid
	if _, err := uc.Solve(ctx, &g, time.Second); err == nil {
		t.Fatal("nil solver must error, not panic")
	}
	if _, _, err := uc.Generate(ctx, 1, domain.Easy); err == nil {
		t.Fatal("nil generator must error")
	}
	if err := uc.Save(ctx, &domain.Puzzle{ID: "x"}); err == nil {
		t.Fatal("nil storage must error")
	}
	if uc.IsHintAllowed(domain.HintGeneralDirection, domain.HintUsage{}, domain.Easy) {
		t.Fatal("nil hinter must deny")
	}
}
