// Package generator produces puzzles with a unique solution: a randomized
// complete fill, then hole digging that keeps every removal unique.
package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"svw.info/sudoku-engine/internal/ports"
)

// ErrGenerationFailed reports an exhausted attempt budget. Distinct from
// input errors so hosts can retry or fall back to bundled puzzles.
var ErrGenerationFailed = errors.New("puzzle generation failed")

// Generator carves puzzles using an injected solver for uniqueness checks.
type Generator struct {
	Solver ports.Solver

	// MaxAttempts bounds whole-generation retries after quality gate
	// failures; FillTimeout bounds the solution-fill step of one attempt.
	MaxAttempts int
	FillTimeout time.Duration
}

func New(s ports.Solver) *Generator {
	return &Generator{
		Solver:      s,
		MaxAttempts: 10,
		FillTimeout: 900 * time.Millisecond,
	}
}

// randomSeed draws a fresh seed from the system entropy source. Only used
// when the caller supplies none; seeded generation never touches it.
func randomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("seed entropy: %w", err)
	}
	s := int64(binary.LittleEndian.Uint64(b[:]) &^ (1 << 63))
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return s, nil
}
