// Package solver implements the two-phase solve: constraint propagation
// (naked and hidden singles) followed by backtracking search with
// MRV cell selection and a degree tie-break.
package solver

import (
	"context"
	"errors"
	"sync"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/rules"
)

// ErrTimedOut reports a solution count cut short by its deadline. The
// truncated count proves nothing, so no verdict accompanies it.
var ErrTimedOut = errors.New("solution counting timed out")

const (
	// DefaultTimeout bounds a solve call when the caller passes none.
	DefaultTimeout = 5 * time.Second

	uniqueTimeout = 2 * time.Second
	cacheLimit    = 1000
)

// Engine is the solver. Safe for concurrent use: each call works on its
// own grid copy and the uniqueness cache is the only shared state.
type Engine struct {
	mu         sync.Mutex
	cache      map[domain.Grid]bool
	cacheOrder []domain.Grid // FIFO eviction
}

func New() *Engine {
	return &Engine{cache: make(map[domain.Grid]bool)}
}

// Solve runs propagation then search on a copy of g. A timeout of zero
// means DefaultTimeout. TimedOut in the result distinguishes an exhausted
// deadline from a proven lack of solutions.
func (e *Engine) Solve(ctx context.Context, g *domain.Grid, timeout time.Duration) (*domain.SolveResult, error) {
	if err := rules.WellFormed(g); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	start := time.Now()
	deadline := start.Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	res := &domain.SolveResult{}
	defer func() { res.Metrics.Duration = time.Since(start) }()

	// Fast-fail: an illegally placed given can never be solved around.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 && !rules.ValidPlacement(g, r, c, g[r][c]) {
				return res, nil
			}
		}
	}

	work := g.Clone()
	st := &state{deadline: deadline, metrics: &res.Metrics}

	switch propagate(&work, st) {
	case propContradiction:
		return res, nil
	case propSolved:
		// fall through with a complete grid
	case propStuck:
		if !st.search(&work, 0) {
			res.TimedOut = st.timedOut
			return res, nil
		}
	}

	res.Solvable = true
	sol := work.Clone()
	res.Solution = &sol

	// Uniqueness only when time remains; counting restarts from the input
	// with its own bookkeeping so search metrics stay pure. A count cut
	// short by the deadline proves nothing, so Unique/SolutionCount stay
	// unset and TimedOut marks the verdict as undetermined.
	if time.Now().Before(deadline) {
		puzzle := g.Clone()
		var um domain.SolveMetrics
		count, truncated := e.countSolutions(&puzzle, 2, deadline, &um)
		res.Metrics.Nodes += um.Nodes
		if truncated {
			res.TimedOut = true
		} else {
			res.SolutionCount = count
			res.Unique = count == 1
		}
	} else {
		res.TimedOut = true
	}
	return res, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
// Results are memoized in a bounded cache keyed by grid content. A count
// cut short by the deadline returns ErrTimedOut and is never cached.
func (e *Engine) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := rules.WellFormed(g); err != nil {
		return false, ports.Stats{}, err
	}
	key := g.Clone()

	e.mu.Lock()
	if cached, ok := e.cache[key]; ok {
		e.mu.Unlock()
		return cached, ports.Stats{Duration: time.Since(start)}, nil
	}
	e.mu.Unlock()

	deadline := start.Add(uniqueTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	work := g.Clone()
	var m domain.SolveMetrics
	count, truncated := e.countSolutions(&work, 2, deadline, &m)
	if truncated {
		return false, ports.Stats{Nodes: m.Nodes, Duration: time.Since(start)}, ErrTimedOut
	}
	unique := count == 1

	e.mu.Lock()
	if _, ok := e.cache[key]; !ok {
		if len(e.cacheOrder) >= cacheLimit {
			oldest := e.cacheOrder[0]
			e.cacheOrder = e.cacheOrder[1:]
			delete(e.cache, oldest)
		}
		e.cache[key] = unique
		e.cacheOrder = append(e.cacheOrder, key)
	}
	e.mu.Unlock()

	return unique, ports.Stats{Nodes: m.Nodes, Duration: time.Since(start)}, nil
}

// CountSolutions counts completions of g up to limit. Exposed for the
// generator and for tests; results are not cached. Returns ErrTimedOut
// alongside the partial count when the deadline cut the search short.
func (e *Engine) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, error) {
	if err := rules.WellFormed(g); err != nil {
		return 0, err
	}
	deadline := time.Now().Add(uniqueTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	work := g.Clone()
	var m domain.SolveMetrics
	count, truncated := e.countSolutions(&work, limit, deadline, &m)
	if truncated {
		return count, ErrTimedOut
	}
	return count, nil
}
