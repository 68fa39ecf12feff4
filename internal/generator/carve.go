package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/rules"
)

// minClueFloor is the known minimum for a uniquely solvable 9x9 Sudoku.
// Digging never goes below it regardless of the difficulty target.
const minClueFloor = 17

// symmetryFloor is the minimum rotational-symmetry score a puzzle must
// reach to pass the quality gate.
const symmetryFloor = 0.6

// Generate creates a puzzle at the requested difficulty. seed == 0 draws
// one from system entropy; any other seed reproduces the identical puzzle.
// Failed quality gates retry with a derived per-attempt seed up to
// MaxAttempts before reporting ErrGenerationFailed.
func (g *Generator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if seed == 0 {
		var err error
		if seed, err = randomSeed(); err != nil {
			return nil, ports.Stats{}, err
		}
	}

	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	nodes := 0
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		// Derived offset keeps retries deterministic under a fixed seed.
		rng := rand.New(rand.NewSource(seed + int64(attempt)*0x9E3779B9))

		p, st, err := g.attempt(ctx, rng, diff, attempt == attempts-1)
		nodes += st.Nodes
		if err != nil {
			continue
		}
		p.Seed = seed
		p.ID = fmt.Sprintf("%s-%d", diff, seed)
		p.CreatedAt = time.Now().UnixNano()
		return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
		fmt.Errorf("%w: %d attempt(s) at %s", ErrGenerationFailed, attempts, diff)
}

// attempt runs one fill+carve+gate cycle. The quality gate is waived on
// the final attempt so a bounded budget still yields a playable puzzle.
func (g *Generator) attempt(ctx context.Context, rng *rand.Rand, diff domain.Difficulty, last bool) (*domain.Puzzle, ports.Stats, error) {
	var nodes int

	var full domain.Grid
	if !fillRandom(ctx, rng, &full, time.Now().Add(g.FillTimeout)) {
		return nil, ports.Stats{Nodes: nodes}, fmt.Errorf("solution fill timed out")
	}

	settings := rules.Settings(diff)
	puz := full.Clone()

	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	clues := 81
	for _, pos := range positions {
		if ctx.Err() != nil {
			break
		}
		if clues <= settings.TargetClues || clues <= minClueFloor {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		if old == 0 {
			continue
		}
		puz[r][c] = 0
		unique, st, err := g.Solver.Unique(ctx, &puz)
		nodes += st.Nodes
		if err != nil || !unique {
			puz[r][c] = old // removal would allow a second solution
			continue
		}
		clues--
	}

	if clues > settings.MaxClues {
		return nil, ports.Stats{Nodes: nodes}, fmt.Errorf("carved only to %d clues, want <=%d", clues, settings.MaxClues)
	}
	if !last {
		if !rules.Balanced(&puz) {
			return nil, ports.Stats{Nodes: nodes}, fmt.Errorf("digit distribution unbalanced")
		}
		if rules.SymmetryScore(&puz) < symmetryFloor {
			return nil, ports.Stats{Nodes: nodes}, fmt.Errorf("symmetry below %.2f", symmetryFloor)
		}
	}

	return &domain.Puzzle{
		Difficulty:       diff,
		Grid:             puz,
		Solution:         full,
		Clues:            clues,
		EstimatedMinutes: settings.EstimatedMinutes,
		Techniques:       rules.DetectableTechniques(&puz),
	}, ports.Stats{Nodes: nodes}, nil
}

// fillRandom completes an empty grid into a full random solution. Cell
// selection mirrors the solver's MRV heuristic; candidate order is
// shuffled by the seeded rng so every solution grid is a fresh draw.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *domain.Grid, deadline time.Time) bool {
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || time.Now().After(deadline) {
			return false
		}
		best, bestCount := domain.CellCoord{Row: -1}, 10
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if grid[r][c] != 0 {
					continue
				}
				n := rules.Candidates(grid, r, c).Count()
				if n == 0 {
					return false
				}
				if n < bestCount {
					best, bestCount = domain.CellCoord{Row: r, Col: c}, n
				}
			}
		}
		if best.Row == -1 {
			return true // grid is full
		}
		values := rules.Candidates(grid, best.Row, best.Col).Values()
		rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
		for _, v := range values {
			grid[best.Row][best.Col] = v
			if dfs() {
				return true
			}
			grid[best.Row][best.Col] = 0
		}
		return false
	}
	return dfs()
}
