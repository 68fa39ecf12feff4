package domain

import (
	"fmt"
	"strings"
)

// Difficulty labels target puzzle generation, hint limits & grading.
type Difficulty int

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a user-facing label to a Difficulty.
// An empty string defaults to Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return Beginner, nil
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// ErrorKind classifies why a move or grid is invalid.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrRowDuplicate
	ErrColumnDuplicate
	ErrBoxDuplicate
	ErrInvalidNumber
	ErrModifyClue
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrRowDuplicate:
		return "row-duplicate"
	case ErrColumnDuplicate:
		return "column-duplicate"
	case ErrBoxDuplicate:
		return "box-duplicate"
	case ErrInvalidNumber:
		return "invalid-number"
	case ErrModifyClue:
		return "modify-clue"
	}
	return fmt.Sprintf("errorkind(%d)", int(k))
}

// Technique names a solving technique used for hints and puzzle labeling.
type Technique string

const (
	TechniqueNakedSingle  Technique = "naked-single"
	TechniqueHiddenSingle Technique = "hidden-single"
	TechniqueNakedPair    Technique = "naked-pair"
	TechniqueHiddenPair   Technique = "hidden-pair"
)

// HintLevel orders hints from vague to explicit.
type HintLevel int

const (
	HintGeneralDirection  HintLevel = 1
	HintSpecificTechnique HintLevel = 2
	HintExactLocation     HintLevel = 3
	HintDirectSolution    HintLevel = 4
)

func (l HintLevel) Valid() bool {
	return l >= HintGeneralDirection && l <= HintDirectSolution
}

func (l HintLevel) String() string {
	switch l {
	case HintGeneralDirection:
		return "general-direction"
	case HintSpecificTechnique:
		return "specific-technique"
	case HintExactLocation:
		return "exact-location"
	case HintDirectSolution:
		return "direct-solution"
	}
	return fmt.Sprintf("hintlevel(%d)", int(l))
}
