package main

import "fmt"

// GameVariant is a closed set: the rule engine dispatches on it rather than
// on open-ended subclassing.
type GameVariant int

const (
	VariantClassic GameVariant = iota
	VariantRemoval
)

// ModeCode is the discriminator the external search engine expects.
func (v GameVariant) ModeCode() int {
	if v == VariantRemoval {
		return SearchModeRemoval
	}
	return SearchModeClassic
}

func (v GameVariant) String() string {
	if v == VariantRemoval {
		return "removal"
	}
	return "classic"
}

func ParseVariant(name string) (GameVariant, error) {
	switch name {
	case "classic", "":
		return VariantClassic, nil
	case "removal":
		return VariantRemoval, nil
	}
	return VariantClassic, fmt.Errorf("unknown variant %q", name)
}

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// SearchDepth maps the difficulty to the minimax depth handed to the search
// engine. Callers never supply raw depths.
func (d Difficulty) SearchDepth() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 6
	default:
		return 4
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}

func ParseDifficulty(name string) (Difficulty, error) {
	switch name {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q", name)
}

type GameSettings struct {
	Variant    GameVariant
	SoloMode   bool
	Difficulty Difficulty
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		Variant:    VariantClassic,
		SoloMode:   false,
		Difficulty: DifficultyMedium,
	}
}
