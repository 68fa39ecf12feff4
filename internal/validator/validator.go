// Package validator detects conflicts for interactive play. It never
// mutates a grid; committing or blocking a move is the caller's business.
package validator

import (
	"context"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/rules"
)

type MoveValidator struct{}

func New() *MoveValidator { return &MoveValidator{} }

// ValidateMove checks a proposed placement against the current grid and
// the original clue grid. Check order: clue immutability, value range,
// clearing, then row/column/box conflicts. All conflicts from all three
// units are returned deduplicated; Kind reports the first unit hit, with
// row taking precedence over column over box.
func (v *MoveValidator) ValidateMove(ctx context.Context, g, original *domain.Grid, row, col int, value uint8, opts domain.MoveOptions) (domain.ValidationResult, error) {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return domain.ValidationResult{}, fmt.Errorf("cell (%d,%d) out of range", row, col)
	}
	if err := rules.WellFormed(g); err != nil {
		return domain.ValidationResult{}, err
	}

	// Clues are immutable regardless of options or proposed value.
	if original != nil && original[row][col] != 0 {
		return domain.ValidationResult{
			Valid:   false,
			Kind:    domain.ErrModifyClue,
			Message: fmt.Sprintf("cell (%d,%d) is a clue and cannot change", row, col),
		}, nil
	}
	if value > 9 {
		return domain.ValidationResult{
			Valid:   false,
			Kind:    domain.ErrInvalidNumber,
			Message: fmt.Sprintf("value %d is outside 0..9", value),
		}, nil
	}
	// Clearing a cell never conflicts.
	if value == 0 {
		return domain.ValidationResult{Valid: true}, nil
	}

	var conflicts []domain.CellCoord
	kind := domain.ErrNone
	add := func(p domain.CellCoord, k domain.ErrorKind) {
		for _, q := range conflicts {
			if q == p {
				return
			}
		}
		conflicts = append(conflicts, p)
		if kind == domain.ErrNone {
			kind = k
		}
	}

	for _, p := range rules.RowCells(row) {
		if p.Col != col && g[p.Row][p.Col] == value {
			add(p, domain.ErrRowDuplicate)
		}
	}
	for _, p := range rules.ColumnCells(col) {
		if p.Row != row && g[p.Row][p.Col] == value {
			add(p, domain.ErrColumnDuplicate)
		}
	}
	box := domain.CellCoord{Row: row, Col: col}.Box()
	for _, p := range rules.BoxCells(box) {
		if (p.Row != row || p.Col != col) && g[p.Row][p.Col] == value {
			add(p, domain.ErrBoxDuplicate)
		}
	}

	if len(conflicts) == 0 {
		return domain.ValidationResult{Valid: true}, nil
	}
	msg := fmt.Sprintf("%d conflict(s) placing %d at (%d,%d)", len(conflicts), value, row, col)
	if opts.StrictMode {
		msg += "; move should be blocked"
	}
	return domain.ValidationResult{
		Valid:     false,
		Conflicts: conflicts,
		Kind:      kind,
		Message:   msg,
	}, nil
}

// ValidateGrid re-checks every filled cell for placement legality. Used
// for final win detection.
func (v *MoveValidator) ValidateGrid(ctx context.Context, g *domain.Grid) (domain.ValidationResult, error) {
	if err := rules.WellFormed(g); err != nil {
		return domain.ValidationResult{}, err
	}
	var conflicts []domain.CellCoord
	kind := domain.ErrNone
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				continue
			}
			if !rules.ValidPlacement(g, r, c, g[r][c]) {
				conflicts = append(conflicts, domain.CellCoord{Row: r, Col: c})
				if kind == domain.ErrNone {
					kind = classify(g, r, c)
				}
			}
		}
	}
	if len(conflicts) == 0 {
		return domain.ValidationResult{Valid: true}, nil
	}
	return domain.ValidationResult{
		Valid:     false,
		Conflicts: conflicts,
		Kind:      kind,
		Message:   fmt.Sprintf("%d cell(s) violate row/column/box constraints", len(conflicts)),
	}, nil
}

// classify reports which unit a bad placement clashes in, row first.
func classify(g *domain.Grid, r, c int) domain.ErrorKind {
	v := g[r][c]
	for i := 0; i < 9; i++ {
		if i != c && g[r][i] == v {
			return domain.ErrRowDuplicate
		}
	}
	for i := 0; i < 9; i++ {
		if i != r && g[i][c] == v {
			return domain.ErrColumnDuplicate
		}
	}
	return domain.ErrBoxDuplicate
}
