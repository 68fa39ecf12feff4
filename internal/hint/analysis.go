package hint

import (
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/rules"
)

// move is an analyzed placement with its justification.
type move struct {
	cell       domain.CellCoord
	value      uint8
	technique  domain.Technique
	related    []domain.CellCoord
	confidence float64
	candidates []uint8 // set only by the fallback
}

// nextMove scans for the simplest justified placement: naked singles in
// reading order first, then hidden singles per unit. Mirrors the solver's
// propagation phase so a hinted move is always one the solver would make.
func nextMove(g *domain.Grid, excluded []domain.Technique) (move, bool) {
	skip := map[domain.Technique]bool{}
	for _, t := range excluded {
		skip[t] = true
	}

	if !skip[domain.TechniqueNakedSingle] {
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if g[r][c] != 0 {
					continue
				}
				if v, ok := rules.Candidates(g, r, c).Sole(); ok {
					cell := domain.CellCoord{Row: r, Col: c}
					return move{
						cell:       cell,
						value:      v,
						technique:  domain.TechniqueNakedSingle,
						related:    peers(cell),
						confidence: 1.0,
					}, true
				}
			}
		}
	}

	if !skip[domain.TechniqueHiddenSingle] {
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
					return move{
						cell:       spot,
						value:      v,
						technique:  domain.TechniqueHiddenSingle,
						related:    unit,
						confidence: 1.0,
					}, true
				}
			}
		}
	}
	return move{}, false
}

// fallbackMove picks the most constrained empty cell when no single
// applies. The suggestion lists candidates rather than asserting a value,
// so its confidence is reduced.
func fallbackMove(g *domain.Grid) (move, bool) {
	best, bestSet, bestCount := domain.CellCoord{Row: -1}, rules.CandSet(0), 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			s := rules.Candidates(g, r, c)
			if n := s.Count(); n > 0 && n < bestCount {
				best, bestSet, bestCount = domain.CellCoord{Row: r, Col: c}, s, n
			}
		}
	}
	if best.Row == -1 {
		return move{}, false
	}
	vals := bestSet.Values()
	return move{
		cell:       best,
		value:      vals[0],
		candidates: vals,
		related:    peers(best),
		confidence: 0.5,
	}, true
}

// render shapes a move into the requested disclosure level.
func render(g *domain.Grid, mv move, level domain.HintLevel) domain.Hint {
	h := domain.Hint{
		Level:      level,
		Technique:  mv.technique,
		Confidence: mv.confidence,
		Penalty:    Penalty(level),
	}
	switch level {
	case domain.HintGeneralDirection:
		box := busiestBox(g)
		h.Message = fmt.Sprintf("Look at the %s 3x3 box", boxName(box))
		h.Cells = rules.BoxCells(box)
		h.Technique = "" // the area nudge names no technique
	case domain.HintSpecificTechnique:
		h.Message = techniqueMessage(mv)
		h.Cells = []domain.CellCoord{mv.cell}
		h.Related = mv.related
	case domain.HintExactLocation:
		h.Message = fmt.Sprintf("Focus on row %d, column %d", mv.cell.Row+1, mv.cell.Col+1)
		h.Cells = []domain.CellCoord{mv.cell}
		h.Related = mv.related
	case domain.HintDirectSolution:
		h.Message = fmt.Sprintf("Place %d at row %d, column %d", mv.value, mv.cell.Row+1, mv.cell.Col+1)
		h.Cells = []domain.CellCoord{mv.cell}
		h.Value = mv.value
	}
	return h
}

func techniqueMessage(mv move) string {
	switch mv.technique {
	case domain.TechniqueNakedSingle:
		return "A cell here has only one possible value (naked single)"
	case domain.TechniqueHiddenSingle:
		return "One digit fits only a single cell in this unit (hidden single)"
	default:
		return fmt.Sprintf("Consider the possible values %v for the marked cell", mv.candidates)
	}
}

// busiestBox returns the box whose empty cells are the most constrained,
// measured by total placed peers over its empty cells.
func busiestBox(g *domain.Grid) int {
	best, bestScore := 0, -1
	for b := 0; b < 9; b++ {
		score, empties := 0, 0
		for _, p := range rules.BoxCells(b) {
			if g[p.Row][p.Col] != 0 {
				continue
			}
			empties++
			score += 9 - rules.Candidates(g, p.Row, p.Col).Count()
		}
		if empties > 0 && score > bestScore {
			best, bestScore = b, score
		}
	}
	return best
}

func boxName(b int) string {
	rows := [3]string{"top", "middle", "bottom"}
	cols := [3]string{"left", "center", "right"}
	if b == 4 {
		return "center"
	}
	return rows[b/3] + "-" + cols[b%3]
}

// peers lists the row, column and box cells of a position, deduplicated.
func peers(p domain.CellCoord) []domain.CellCoord {
	seen := map[domain.CellCoord]bool{p: true}
	out := make([]domain.CellCoord, 0, 20)
	add := func(q domain.CellCoord) {
		if !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	for _, q := range rules.RowCells(p.Row) {
		add(q)
	}
	for _, q := range rules.ColumnCells(p.Col) {
		add(q)
	}
	for _, q := range rules.BoxCells(p.Box()) {
		add(q)
	}
	return out
}

// unitCells enumerates rows 0..8, columns 9..17, boxes 18..26.
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
