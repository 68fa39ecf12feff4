package rules

import (
	"testing"

	"svw.info/sudoku-engine/internal/domain"
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

func TestValidPlacement(t *testing.T) {
	g := sample.Clone()
	cases := []struct {
		name    string
		r, c    int
		v       uint8
		want    bool
	}{
		{"zero always valid", 0, 2, 0, true},
		{"legal placement", 0, 2, 4, true},
		{"row duplicate", 0, 2, 5, false},
		{"column duplicate", 2, 0, 6, false},
		{"box duplicate", 1, 1, 9, false},
		{"own cell excluded", 0, 0, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidPlacement(&g, tc.r, tc.c, tc.v); got != tc.want {
				t.Fatalf("ValidPlacement(%d,%d,%d) = %v, want %v", tc.r, tc.c, tc.v, got, tc.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	full := sampleSolution.Clone()
	if !Complete(&full) {
		t.Fatal("solution grid should be complete")
	}
	partial := sample.Clone()
	if Complete(&partial) {
		t.Fatal("puzzle grid with holes should not be complete")
	}
	// filled but contradictory
	bad := full.Clone()
	bad[0][0], bad[0][1] = bad[0][1], bad[0][0]
	bad[0][1] = bad[0][0]
	if Complete(&bad) {
		t.Fatal("duplicate-in-row grid should not be complete")
	}
}

func TestCandidates(t *testing.T) {
	g := sample.Clone()
	// filled cells admit nothing
	if got := Candidates(&g, 0, 0); got != 0 {
		t.Fatalf("filled cell candidates = %v, want empty", got.Values())
	}
	// (0,2): row has 5,3,7; col has 8; box has 5,3,6,9,8 -> {1,2,4}
	want := []uint8{1, 2, 4}
	got := Candidates(&g, 0, 2).Values()
	if len(got) != len(want) {
		t.Fatalf("candidates(0,2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates(0,2) = %v, want %v", got, want)
		}
	}
}

func TestEmptyCells(t *testing.T) {
	g := sample.Clone()
	empties := EmptyCells(&g)
	if len(empties) != 81-g.CountClues() {
		t.Fatalf("empty cells %d + clues %d != 81", len(empties), g.CountClues())
	}
	full := sampleSolution.Clone()
	if n := len(EmptyCells(&full)); n != 0 {
		t.Fatalf("complete grid reports %d empty cells", n)
	}
}

func TestUnitCells(t *testing.T) {
	for _, p := range RowCells(3) {
		if p.Row != 3 {
			t.Fatalf("RowCells(3) returned %+v", p)
		}
	}
	for _, p := range ColumnCells(7) {
		if p.Col != 7 {
			t.Fatalf("ColumnCells(7) returned %+v", p)
		}
	}
	for _, p := range BoxCells(4) {
		if p.Box() != 4 {
			t.Fatalf("BoxCells(4) returned %+v in box %d", p, p.Box())
		}
	}
}

func TestSettingsMonotonic(t *testing.T) {
	order := []domain.Difficulty{domain.Beginner, domain.Easy, domain.Medium, domain.Hard, domain.Expert}
	prev := 82
	for _, d := range order {
		s := Settings(d)
		if s.TargetClues >= prev {
			t.Fatalf("target clues not decreasing at %s: %d >= %d", d, s.TargetClues, prev)
		}
		if s.MinClues < 17 {
			t.Fatalf("%s min clues %d below the 17-clue floor", d, s.MinClues)
		}
		if !(s.MinClues <= s.TargetClues && s.TargetClues <= s.MaxClues) {
			t.Fatalf("%s band broken: min=%d target=%d max=%d", d, s.MinClues, s.TargetClues, s.MaxClues)
		}
		prev = s.TargetClues
	}
}

func TestSymmetryScore(t *testing.T) {
	var empty domain.Grid
	if got := SymmetryScore(&empty); got != 1.0 {
		t.Fatalf("empty grid symmetry = %v, want 1.0", got)
	}
	full := sampleSolution.Clone()
	if got := SymmetryScore(&full); got != 1.0 {
		t.Fatalf("full grid symmetry = %v, want 1.0", got)
	}
	// one asymmetric hole
	lopsided := sampleSolution.Clone()
	lopsided[0][0] = 0
	if got := SymmetryScore(&lopsided); got >= 1.0 {
		t.Fatalf("asymmetric grid symmetry = %v, want < 1.0", got)
	}
}

func TestBalanced(t *testing.T) {
	full := sampleSolution.Clone()
	if !Balanced(&full) {
		t.Fatal("complete grid uses each digit 9 times and must be balanced")
	}
	// strip every 9 so the spread exceeds the threshold
	skew := sampleSolution.Clone()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if skew[r][c] == 9 || skew[r][c] == 8 {
				skew[r][c] = 0
			}
		}
	}
	dist := DigitDistribution(&skew)
	if dist[9] != 0 || dist[8] != 0 {
		t.Fatalf("distribution miscounts: %v", dist)
	}
	if Balanced(&skew) {
		t.Fatal("grid missing two digits entirely should be unbalanced")
	}
}

func TestDetectableTechniques(t *testing.T) {
	// one hole: trivially a naked single
	g := sampleSolution.Clone()
	g[8][8] = 0
	found := DetectableTechniques(&g)
	has := func(w domain.Technique) bool {
		for _, tq := range found {
			if tq == w {
				return true
			}
		}
		return false
	}
	if !has(domain.TechniqueNakedSingle) {
		t.Fatalf("techniques %v missing naked single", found)
	}
}
