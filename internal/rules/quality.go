package rules

import "svw.info/sudoku-engine/internal/domain"

// balanceThreshold caps the spread between the most and least used digit
// among a puzzle's clues.
const balanceThreshold = 5

// DigitDistribution counts how often each digit 1..9 appears. Index 0 is
// unused.
func DigitDistribution(g *domain.Grid) [10]int {
	var dist [10]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			dist[g[r][c]]++
		}
	}
	dist[0] = 0
	return dist
}

// Balanced reports whether no digit dominates the clues: the gap between
// the most and least frequent digit stays within the threshold.
func Balanced(g *domain.Grid) bool {
	dist := DigitDistribution(g)
	min, max := 81, 0
	for v := 1; v <= 9; v++ {
		if dist[v] < min {
			min = dist[v]
		}
		if dist[v] > max {
			max = dist[v]
		}
	}
	return max-min <= balanceThreshold
}

// SymmetryScore measures 180-degree rotational symmetry of the clue
// pattern: the fraction of cell pairs (r,c)/(8-r,8-c) whose filled/empty
// status agrees. 1.0 is perfectly symmetric.
func SymmetryScore(g *domain.Grid) float64 {
	pairs, matching := 0, 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			or, oc := 8-r, 8-c
			// count each pair once; the center cell pairs with itself
			if r*9+c > or*9+oc {
				continue
			}
			pairs++
			if (g[r][c] == 0) == (g[or][oc] == 0) {
				matching++
			}
		}
	}
	return float64(matching) / float64(pairs)
}

// DetectableTechniques labels a puzzle with the techniques visibly present
// in its starting position. Used only to annotate generated puzzles; the
// solver never consults these labels.
func DetectableTechniques(g *domain.Grid) []domain.Technique {
	var out []domain.Technique
	if hasNakedSingle(g) {
		out = append(out, domain.TechniqueNakedSingle)
	}
	if hasHiddenSingle(g) {
		out = append(out, domain.TechniqueHiddenSingle)
	}
	if hasNakedPair(g) {
		out = append(out, domain.TechniqueNakedPair)
	}
	return out
}

func hasNakedSingle(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 && Candidates(g, r, c).Count() == 1 {
				return true
			}
		}
	}
	return false
}

func hasHiddenSingle(g *domain.Grid) bool {
	units := make([][]domain.CellCoord, 0, 27)
	for i := 0; i < 9; i++ {
		units = append(units, RowCells(i), ColumnCells(i), BoxCells(i))
	}
	for _, unit := range units {
		for v := uint8(1); v <= 9; v++ {
			spots := 0
			for _, p := range unit {
				if g[p.Row][p.Col] == 0 && Candidates(g, p.Row, p.Col).Has(v) {
					spots++
				}
			}
			if spots == 1 {
				return true
			}
		}
	}
	return false
}

func hasNakedPair(g *domain.Grid) bool {
	units := make([][]domain.CellCoord, 0, 27)
	for i := 0; i < 9; i++ {
		units = append(units, RowCells(i), ColumnCells(i), BoxCells(i))
	}
	for _, unit := range units {
		seen := map[CandSet]int{}
		for _, p := range unit {
			if g[p.Row][p.Col] != 0 {
				continue
			}
			s := Candidates(g, p.Row, p.Col)
			if s.Count() == 2 {
				seen[s]++
				if seen[s] == 2 {
					return true
				}
			}
		}
	}
	return false
}
