// Package rules holds the pure constraint functions of the 9x9 board.
// Nothing here mutates a grid or keeps state; every other engine package
// builds on these checks.
package rules

import (
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
)

// CandSet is a bitmask of candidate digits; bit v set means digit v fits.
type CandSet uint16

const allCandidates CandSet = 0b1111111110 // bits 1..9

// Has reports whether digit v is a member.
func (s CandSet) Has(v uint8) bool { return s&(1<<v) != 0 }

// Count returns the number of candidates in the set.
func (s CandSet) Count() int {
	n := 0
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			n++
		}
	}
	return n
}

// Values lists the member digits in ascending order.
func (s CandSet) Values() []uint8 {
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Sole returns the single member of a one-element set.
func (s CandSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return s.Values()[0], true
}

// WellFormed rejects grids holding values outside 0..9. Row/col bounds are
// guaranteed by the array type; only cell values can violate the contract.
func WellFormed(g *domain.Grid) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return fmt.Errorf("malformed grid: cell (%d,%d) holds %d", r, c, g[r][c])
			}
		}
	}
	return nil
}

// ValidPlacement reports whether value v at (r,c) duplicates nothing in its
// row, column, or box. The cell itself is excluded so re-checking a filled
// grid works. v == 0 (clearing) is always legal.
func ValidPlacement(g *domain.Grid, r, c int, v uint8) bool {
	if v == 0 {
		return true
	}
	for i := 0; i < 9; i++ {
		if i != c && g[r][i] == v {
			return false
		}
		if i != r && g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && g[rr][cc] == v {
				return false
			}
		}
	}
	return true
}

// Complete reports whether the grid is fully filled and every placement is
// legal.
func Complete(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 || !ValidPlacement(g, r, c, g[r][c]) {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists all empty positions in reading order.
func EmptyCells(g *domain.Grid) []domain.CellCoord {
	out := make([]domain.CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				out = append(out, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Candidates returns the digits that may go in the empty cell (r,c).
// A filled cell has no candidates.
func Candidates(g *domain.Grid, r, c int) CandSet {
	if g[r][c] != 0 {
		return 0
	}
	s := allCandidates
	for i := 0; i < 9; i++ {
		s &^= 1 << g[r][i]
		s &^= 1 << g[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			s &^= 1 << g[br+dr][bc+dc]
		}
	}
	return s & allCandidates
}

// RowCells returns the 9 positions of row r.
func RowCells(r int) []domain.CellCoord {
	out := make([]domain.CellCoord, 9)
	for c := 0; c < 9; c++ {
		out[c] = domain.CellCoord{Row: r, Col: c}
	}
	return out
}

// ColumnCells returns the 9 positions of column c.
func ColumnCells(c int) []domain.CellCoord {
	out := make([]domain.CellCoord, 9)
	for r := 0; r < 9; r++ {
		out[r] = domain.CellCoord{Row: r, Col: c}
	}
	return out
}

// BoxCells returns the 9 positions of box b (0..8, reading order).
func BoxCells(b int) []domain.CellCoord {
	br, bc := (b/3)*3, (b%3)*3
	out := make([]domain.CellCoord, 0, 9)
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			out = append(out, domain.CellCoord{Row: br + dr, Col: bc + dc})
		}
	}
	return out
}
