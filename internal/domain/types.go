package domain

import "time"

// Grid holds cell values for a 9x9 board; 0 means empty.
type Grid [9][9]uint8

// Clone returns an independent copy. Grids are value types, but engine
// entry points copy explicitly so callers can keep reusing their instance.
func (g *Grid) Clone() Grid { return *g }

// CountClues returns the number of filled cells.
func (g *Grid) CountClues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Box returns the 3x3 box index (0..8) of the cell. Derived from row/col,
// never stored, so the three coordinates cannot drift apart.
func (p CellCoord) Box() int { return (p.Row/3)*3 + p.Col/3 }

// InBounds reports whether the coordinate is on the board.
func (p CellCoord) InBounds() bool {
	return p.Row >= 0 && p.Row < 9 && p.Col >= 0 && p.Col < 9
}

// MoveOptions tunes move validation. With StrictMode the caller is
// expected to block a conflicting move; without it the result is
// informational and the move may still be committed for
// error-highlighting play.
type MoveOptions struct {
	StrictMode bool `json:"strictMode"`
}

// ValidationResult describes the outcome of a move or whole-grid check.
// Conflicts lists every clashing position, deduplicated; Kind carries the
// first violation encountered (row before column before box).
type ValidationResult struct {
	Valid     bool        `json:"valid"`
	Conflicts []CellCoord `json:"conflicts,omitempty"`
	Kind      ErrorKind   `json:"kind,omitempty"`
	Message   string      `json:"message,omitempty"`
}

// SolveMetrics captures performance characteristics of a solve call.
type SolveMetrics struct {
	Duration         time.Duration `json:"duration"`
	PropagationSteps int           `json:"propagationSteps"`
	BacktrackSteps   int           `json:"backtrackSteps"`
	Nodes            int           `json:"nodes"`
	MaxDepth         int           `json:"maxDepth"`
}

// SolveResult is the full outcome of a solver run. TimedOut distinguishes
// an exhausted deadline from a proven lack of solutions.
type SolveResult struct {
	Solvable      bool         `json:"solvable"`
	Solution      *Grid        `json:"solution,omitempty"`
	Unique        bool         `json:"unique"`
	SolutionCount int          `json:"solutionCount"`
	TimedOut      bool         `json:"timedOut"`
	Metrics       SolveMetrics `json:"metrics"`
}

// Hint describes a tiered suggestion for the UI.
type Hint struct {
	Level      HintLevel   `json:"level"`
	Message    string      `json:"message"`
	Technique  Technique   `json:"technique,omitempty"`
	Cells      []CellCoord `json:"cells,omitempty"`
	Related    []CellCoord `json:"related,omitempty"`
	Value      uint8       `json:"value,omitempty"`
	Confidence float64     `json:"confidence"`
	Penalty    int         `json:"penalty"`
}

// HintUsage is the per-game hint history supplied by the caller. The engine
// keeps no state between requests; the host owns the running totals.
type HintUsage struct {
	Total   int    `json:"total"`
	ByLevel [5]int `json:"byLevel"` // indexed by HintLevel, slot 0 unused
}

// Puzzle is a generated Sudoku with metadata.
type Puzzle struct {
	ID               string      `json:"id,omitempty"`
	Seed             int64       `json:"seed,omitempty"`
	Difficulty       Difficulty  `json:"difficulty"`
	Grid             Grid        `json:"grid"`
	Solution         Grid        `json:"solution"`
	Clues            int         `json:"clues"`
	EstimatedMinutes int         `json:"estimatedMinutes,omitempty"`
	Techniques       []Technique `json:"techniques,omitempty"`
	CreatedAt        int64       `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
