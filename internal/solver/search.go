package solver

import (
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/rules"
)

// state carries the per-call search bookkeeping. Every Solve/Unique call
// builds its own, so concurrent calls never share a working grid.
type state struct {
	deadline time.Time
	metrics  *domain.SolveMetrics
	timedOut bool
}

// pickCell selects the next cell to branch on: minimum remaining values,
// ties broken by the degree heuristic (most empty peers). A cell with a
// single candidate short-circuits tie evaluation. Returns ok=false when
// the grid is full, and dead=true when some empty cell admits nothing.
func pickCell(g *domain.Grid) (best domain.CellCoord, cands rules.CandSet, ok, dead bool) {
	bestCount := 10
	bestDegree := -1
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			s := rules.Candidates(g, r, c)
			n := s.Count()
			if n == 0 {
				return domain.CellCoord{}, 0, true, true
			}
			if n == 1 {
				return domain.CellCoord{Row: r, Col: c}, s, true, false
			}
			if n < bestCount {
				bestCount, bestDegree = n, -1
			}
			if n == bestCount {
				d := degree(g, r, c)
				if d > bestDegree {
					best = domain.CellCoord{Row: r, Col: c}
					cands = s
					bestDegree = d
					ok = true
				}
			}
		}
	}
	return best, cands, ok, false
}

// degree counts the empty peers sharing the cell's row, column or box.
func degree(g *domain.Grid, r, c int) int {
	n := 0
	for i := 0; i < 9; i++ {
		if i != c && g[r][i] == 0 {
			n++
		}
		if i != r && g[i][c] == 0 {
			n++
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if rr != r && cc != c && g[rr][cc] == 0 {
				n++
			}
		}
	}
	return n
}

// search finds one completion of g in place. It reports false on dead
// ends and on an exhausted deadline; st.timedOut tells the two apart.
func (st *state) search(g *domain.Grid, depth int) bool {
	if time.Now().After(st.deadline) {
		st.timedOut = true
		return false
	}
	if depth > st.metrics.MaxDepth {
		st.metrics.MaxDepth = depth
	}

	cell, cands, ok, dead := pickCell(g)
	if dead {
		return false
	}
	if !ok {
		return true // no empty cells left
	}
	for _, v := range cands.Values() {
		st.metrics.Nodes++
		g[cell.Row][cell.Col] = v
		if st.search(g, depth+1) {
			return true
		}
		g[cell.Row][cell.Col] = 0
		st.metrics.BacktrackSteps++
		if st.timedOut {
			return false
		}
	}
	return false
}

// countSolutions counts completions of g up to limit using the same
// MRV+degree selection as the main search, so uniqueness checks cost
// about the same as a solve. The second result reports whether the
// deadline cut the count short; a truncated count proves nothing and
// callers must not treat it as a verdict.
func (e *Engine) countSolutions(g *domain.Grid, limit int, deadline time.Time, m *domain.SolveMetrics) (int, bool) {
	st := &state{deadline: deadline, metrics: m}
	count := 0
	var dfs func(depth int) bool
	dfs = func(depth int) bool {
		if time.Now().After(st.deadline) {
			st.timedOut = true
			return true // stop early
		}
		if depth > m.MaxDepth {
			m.MaxDepth = depth
		}
		cell, cands, ok, dead := pickCell(g)
		if dead {
			return false
		}
		if !ok {
			count++
			return count >= limit
		}
		for _, v := range cands.Values() {
			m.Nodes++
			g[cell.Row][cell.Col] = v
			if dfs(depth + 1) {
				g[cell.Row][cell.Col] = 0
				return true
			}
			g[cell.Row][cell.Col] = 0
			m.BacktrackSteps++
		}
		return false
	}
	dfs(0)
	return count, st.timedOut
}
