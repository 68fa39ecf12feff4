// Package usecase exposes the narrow synchronous API the surrounding
// application calls into. It only routes; all logic lives in the engine
// packages behind the ports.
package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid, timeout time.Duration) (*domain.SolveResult, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	return u.Solver.Solve(ctx, g, timeout)
}

func (u *Service) HasUniqueSolution(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) ValidateMove(ctx context.Context, g, original *domain.Grid, row, col int, value uint8, opts domain.MoveOptions) (domain.ValidationResult, error) {
	if u.Validator == nil {
		return domain.ValidationResult{}, errNotConfigured
	}
	return u.Validator.ValidateMove(ctx, g, original, row, col, value, opts)
}

func (u *Service) ValidateGrid(ctx context.Context, g *domain.Grid) (domain.ValidationResult, error) {
	if u.Validator == nil {
		return domain.ValidationResult{}, errNotConfigured
	}
	return u.Validator.ValidateGrid(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid, d domain.Difficulty, level domain.HintLevel, usage domain.HintUsage, excluded []domain.Technique) (domain.Hint, error) {
	if u.Hinter == nil {
		return domain.Hint{}, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, d, level, usage, excluded)
}

func (u *Service) IsHintAllowed(level domain.HintLevel, usage domain.HintUsage, d domain.Difficulty) bool {
	if u.Hinter == nil {
		return false
	}
	return u.Hinter.Allowed(level, usage, d)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
