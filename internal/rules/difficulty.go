package rules

import "svw.info/sudoku-engine/internal/domain"

// DifficultySettings is the fixed per-level tuning band. Target/min/max
// clue counts decrease monotonically with difficulty; the min never drops
// below 17, the known minimum for a uniquely solvable 9x9 Sudoku.
type DifficultySettings struct {
	TargetClues      int
	MinClues         int
	MaxClues         int
	EstimatedMinutes int
	Techniques       []domain.Technique
}

var difficultyTable = map[domain.Difficulty]DifficultySettings{
	domain.Beginner: {
		TargetClues:      58,
		MinClues:         55,
		MaxClues:         62,
		EstimatedMinutes: 10,
		Techniques:       []domain.Technique{domain.TechniqueNakedSingle},
	},
	domain.Easy: {
		TargetClues:      52,
		MinClues:         48,
		MaxClues:         56,
		EstimatedMinutes: 15,
		Techniques:       []domain.Technique{domain.TechniqueNakedSingle, domain.TechniqueHiddenSingle},
	},
	domain.Medium: {
		TargetClues:      42,
		MinClues:         38,
		MaxClues:         46,
		EstimatedMinutes: 25,
		Techniques: []domain.Technique{
			domain.TechniqueNakedSingle, domain.TechniqueHiddenSingle, domain.TechniqueNakedPair,
		},
	},
	domain.Hard: {
		TargetClues:      32,
		MinClues:         28,
		MaxClues:         36,
		EstimatedMinutes: 40,
		Techniques: []domain.Technique{
			domain.TechniqueNakedSingle, domain.TechniqueHiddenSingle,
			domain.TechniqueNakedPair, domain.TechniqueHiddenPair,
		},
	},
	domain.Expert: {
		TargetClues:      27,
		MinClues:         22,
		MaxClues:         30,
		EstimatedMinutes: 60,
		Techniques: []domain.Technique{
			domain.TechniqueNakedSingle, domain.TechniqueHiddenSingle,
			domain.TechniqueNakedPair, domain.TechniqueHiddenPair,
		},
	},
}

// Settings returns the tuning band for a difficulty. Unknown values fall
// back to Medium so a zero Difficulty stays playable.
func Settings(d domain.Difficulty) DifficultySettings {
	if s, ok := difficultyTable[d]; ok {
		return s
	}
	return difficultyTable[domain.Medium]
}
