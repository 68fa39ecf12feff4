// Package hint renders the next logically justified move at one of four
// escalating levels, from a nudge toward a region to the value itself.
package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/rules"
)

// ErrLimitExceeded gates requests past the per-game hint budget.
var ErrLimitExceeded = errors.New("hint limit exceeded")

// ErrNoHint means the grid is complete or malformed enough that no move
// can be suggested.
var ErrNoHint = errors.New("no hint available")

// penalties is the fixed per-level rating penalty in percent.
var penalties = [5]int{0, 5, 10, 20, 50}

// Penalty returns the rating penalty for a hint level.
func Penalty(l domain.HintLevel) int {
	if !l.Valid() {
		return 0
	}
	return penalties[l]
}

// LimitPolicy is the per-difficulty hint budget. TotalPerGame < 0 means
// unlimited; MaxLevel caps how explicit hints may get. Direct-solution
// hints are additionally capped at DirectPerGame for every difficulty.
type LimitPolicy struct {
	TotalPerGame  int
	DirectPerGame int
	MaxLevel      domain.HintLevel
}

// limitTable is the single authoritative budget, shared by engine and UI.
var limitTable = map[domain.Difficulty]LimitPolicy{
	domain.Beginner: {TotalPerGame: -1, DirectPerGame: 3, MaxLevel: domain.HintSpecificTechnique},
	domain.Easy:     {TotalPerGame: 10, DirectPerGame: 3, MaxLevel: domain.HintDirectSolution},
	domain.Medium:   {TotalPerGame: 7, DirectPerGame: 3, MaxLevel: domain.HintDirectSolution},
	domain.Hard:     {TotalPerGame: 5, DirectPerGame: 3, MaxLevel: domain.HintDirectSolution},
	domain.Expert:   {TotalPerGame: 3, DirectPerGame: 3, MaxLevel: domain.HintGeneralDirection},
}

// Limits returns the budget for a difficulty.
func Limits(d domain.Difficulty) LimitPolicy {
	if p, ok := limitTable[d]; ok {
		return p
	}
	return limitTable[domain.Medium]
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Allowed reports whether one more hint at the given level fits the
// difficulty's budget. This is a hard gate, not advice.
func (e *Engine) Allowed(level domain.HintLevel, usage domain.HintUsage, d domain.Difficulty) bool {
	if !level.Valid() {
		return false
	}
	p := Limits(d)
	if level > p.MaxLevel {
		return false
	}
	if level == domain.HintDirectSolution && usage.ByLevel[level] >= p.DirectPerGame {
		return false
	}
	if p.TotalPerGame >= 0 && usage.Total >= p.TotalPerGame {
		return false
	}
	return true
}

// Hint finds the next justified move and renders it at the requested
// level. Excluded techniques are skipped so the caller can ask for an
// alternative explanation of the same position.
func (e *Engine) Hint(ctx context.Context, g *domain.Grid, d domain.Difficulty, level domain.HintLevel, usage domain.HintUsage, excluded []domain.Technique) (domain.Hint, error) {
	if !level.Valid() {
		return domain.Hint{}, fmt.Errorf("hint level %d outside 1..4", level)
	}
	if err := rules.WellFormed(g); err != nil {
		return domain.Hint{}, err
	}
	if !e.Allowed(level, usage, d) {
		return domain.Hint{}, fmt.Errorf("%w: level %s at %s", ErrLimitExceeded, level, d)
	}
	if rules.Complete(g) {
		return domain.Hint{}, ErrNoHint
	}

	mv, ok := nextMove(g, excluded)
	if !ok {
		// No single applies; fall back to the cell with fewest candidates.
		mv, ok = fallbackMove(g)
		if !ok {
			return domain.Hint{}, ErrNoHint
		}
	}
	return render(g, mv, level), nil
}
