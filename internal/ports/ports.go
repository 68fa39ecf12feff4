package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a grid and can test uniqueness. Implementations copy the
// input grid before mutating; the caller's grid is never touched.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid, timeout time.Duration) (*domain.SolveResult, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty. A zero seed asks
// for a fresh unpredictable puzzle; any other seed reproduces one exactly.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs move and whole-grid constraint checks.
type Validator interface {
	ValidateMove(ctx context.Context, g, original *domain.Grid, row, col int, value uint8, opts domain.MoveOptions) (domain.ValidationResult, error)
	ValidateGrid(ctx context.Context, g *domain.Grid) (domain.ValidationResult, error)
}

// Hinter returns the next logical step rendered at the requested level.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, d domain.Difficulty, level domain.HintLevel, usage domain.HintUsage, excluded []domain.Technique) (domain.Hint, error)
	Allowed(level domain.HintLevel, usage domain.HintUsage, d domain.Difficulty) bool
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
