package solver

import (
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/rules"
)

type propStatus int

const (
	propStuck propStatus = iota // consistent but incomplete
	propSolved
	propContradiction
)

// propagate fills forced cells until a fixpoint: naked singles (a cell
// with one candidate) and hidden singles (a digit with one spot in a
// unit). Each placement counts as one propagation step.
func propagate(g *domain.Grid, st *state) propStatus {
	for {
		changed := false

		// Naked singles. An empty cell with no candidates at all is a
		// contradiction.
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if g[r][c] != 0 {
					continue
				}
				cands := rules.Candidates(g, r, c)
				switch cands.Count() {
				case 0:
					return propContradiction
				case 1:
					v, _ := cands.Sole()
					g[r][c] = v
					st.metrics.PropagationSteps++
					changed = true
				}
			}
		}

		// Hidden singles per row, column and box.
		for u := 0; u < 27; u++ {
			unit := unitCells(u)
			for v := uint8(1); v <= 9; v++ {
				spot, spots := domain.CellCoord{}, 0
				for _, p := range unit {
					if g[p.Row][p.Col] == 0 && rules.Candidates(g, p.Row, p.Col).Has(v) {
						spot = p
						spots++
					}
				}
				if spots == 1 {
					g[spot.Row][spot.Col] = v
					st.metrics.PropagationSteps++
					changed = true
				}
			}
		}

		if !changed {
			break
		}
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return propStuck
			}
		}
	}
	return propSolved
}

// unitCells enumerates the 27 units: rows 0..8, columns 9..17, boxes 18..26.
func unitCells(u int) []domain.CellCoord {
	switch {
	case u < 9:
		return rules.RowCells(u)
	case u < 18:
		return rules.ColumnCells(u - 9)
	default:
		return rules.BoxCells(u - 18)
	}
}
