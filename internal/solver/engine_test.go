package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/rules"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestSolveClassicSample(t *testing.T) {
	e := New()
	in := sample.Clone()
	res, err := e.Solve(context.Background(), &in, time.Second)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !res.Solvable || res.TimedOut {
		t.Fatalf("solvable=%v timedOut=%v, want solvable", res.Solvable, res.TimedOut)
	}
	if res.Solution == nil {
		t.Fatal("no solution grid returned")
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := res.Solution[r][c]
			if v == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
			if !rules.ValidPlacement(res.Solution, r, c, v) {
				t.Fatalf("illegal placement %d at r=%d c=%d", v, r, c)
			}
		}
	}
	if *res.Solution != sampleSolution {
		t.Fatal("classic sample solved to an unexpected grid")
	}
	if !res.Unique || res.SolutionCount != 1 {
		t.Fatalf("unique=%v count=%d, want the single known solution", res.Unique, res.SolutionCount)
	}
	// the caller's grid must stay untouched
	if in != sample {
		t.Fatal("input grid was mutated by Solve")
	}
}

func TestSolveDuplicateGivensUnsolvable(t *testing.T) {
	e := New()
	var g domain.Grid
	g[0][0], g[0][1] = 1, 1
	res, err := e.Solve(context.Background(), &g, time.Second)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Solvable || res.Solution != nil {
		t.Fatalf("duplicate givens: solvable=%v solution=%v, want unsolvable with nil solution", res.Solvable, res.Solution)
	}
	if res.TimedOut {
		t.Fatal("fast-fail must not be reported as a timeout")
	}
}

func TestSolveLastCellByPropagationOnly(t *testing.T) {
	e := New()
	g := sampleSolution.Clone()
	g[4][4] = 0
	res, err := e.Solve(context.Background(), &g, time.Second)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !res.Solvable || res.Solution[4][4] != sampleSolution[4][4] {
		t.Fatalf("last cell resolved to %d, want %d", res.Solution[4][4], sampleSolution[4][4])
	}
	if res.Metrics.BacktrackSteps != 0 {
		t.Fatalf("naked single needed %d backtracking steps, want 0", res.Metrics.BacktrackSteps)
	}
	if res.Metrics.PropagationSteps == 0 {
		t.Fatal("expected at least one propagation step")
	}
}

func TestSolveIdempotentOnCompleteGrid(t *testing.T) {
	e := New()
	g := sampleSolution.Clone()
	res, err := e.Solve(context.Background(), &g, time.Second)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !res.Solvable || *res.Solution != sampleSolution {
		t.Fatal("solving a complete valid grid must return it unchanged")
	}
	if res.Metrics.Nodes != 0 || res.Metrics.BacktrackSteps != 0 {
		t.Fatalf("complete grid explored %d nodes, %d backtracks; want none",
			res.Metrics.Nodes, res.Metrics.BacktrackSteps)
	}
}

func TestSolveTimeout(t *testing.T) {
	e := New()
	var empty domain.Grid
	res, err := e.Solve(context.Background(), &empty, time.Nanosecond)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Solvable {
		t.Fatal("a nanosecond budget cannot search an empty grid")
	}
	if !res.TimedOut {
		t.Fatal("exhausted deadline must set TimedOut, not plain unsolvable")
	}
}

func TestUnique(t *testing.T) {
	e := New()
	g := sample.Clone()
	ok, st, err := e.Unique(context.Background(), &g)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !ok {
		t.Fatal("classic sample must have exactly one solution")
	}

	// strip most of a row: plenty of completions remain
	multi := sample.Clone()
	for c := 0; c < 9; c++ {
		multi[0][c] = 0
		multi[1][c] = 0
		multi[2][c] = 0
	}
	ok, _, err = e.Unique(context.Background(), &multi)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if ok {
		t.Fatal("heavily stripped grid reported unique")
	}

	// second lookup comes from the cache and must agree
	g2 := sample.Clone()
	ok2, st2, err := e.Unique(context.Background(), &g2)
	if err != nil {
		t.Fatalf("cached Unique failed: %v", err)
	}
	if !ok2 {
		t.Fatal("cached result disagrees with the first computation")
	}
	if st2.Nodes != 0 {
		t.Fatalf("cache hit explored %d nodes (first run: %d), want 0", st2.Nodes, st.Nodes)
	}
}

func TestUniqueTimeoutNotCached(t *testing.T) {
	e := New()
	g := sample.Clone()

	// an already-expired deadline cuts the count short before any node
	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, _, err := e.Unique(expired, &g)
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("truncated count returned err=%v, want ErrTimedOut", err)
	}

	// the truncated verdict must not have been cached: a fresh call still
	// proves the sample unique
	g2 := sample.Clone()
	ok, _, err := e.Unique(context.Background(), &g2)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !ok {
		t.Fatal("uniquely solvable grid reported non-unique after an earlier timed-out call")
	}
}

func TestSolveUniquenessUndeterminedOnExpiredDeadline(t *testing.T) {
	e := New()
	// propagation alone fills the hole, so the solve succeeds even with a
	// spent budget; the uniqueness count then has no time left
	g := sampleSolution.Clone()
	g[4][4] = 0
	res, err := e.Solve(context.Background(), &g, time.Nanosecond)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !res.Solvable {
		t.Fatal("propagation-only solve must still succeed")
	}
	if !res.TimedOut {
		t.Fatal("skipped uniqueness count must be flagged via TimedOut")
	}
	if res.Unique || res.SolutionCount != 0 {
		t.Fatalf("unique=%v count=%d from a count that never ran, want unset",
			res.Unique, res.SolutionCount)
	}
}

func TestCountSolutions(t *testing.T) {
	e := New()
	g := sample.Clone()
	n, err := e.CountSolutions(context.Background(), &g, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestSolveMalformedGrid(t *testing.T) {
	e := New()
	var g domain.Grid
	g[2][2] = 10
	if _, err := e.Solve(context.Background(), &g, time.Second); err == nil {
		t.Fatal("cell value 10 must be a hard error")
	}
}
