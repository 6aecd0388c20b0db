package game

import "fmt"

// Outcome is a player's slate: whether their team will win the chosen category
type Outcome int

const (
	Loss Outcome = iota
	Win
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Loss:
		return "Loss"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}

// Category is the wager category that decides a player's outcome bet
type Category int

const (
	CategoryBlack Category = iota
	CategoryRed
	CategoryMulticolor
)

// NumCategories is the number of wager categories
const NumCategories = 3

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case CategoryBlack:
		return "Black"
	case CategoryRed:
		return "Red"
	case CategoryMulticolor:
		return "Multicolor"
	default:
		return "Unknown"
	}
}

// Categories lists every category in prompt order
func Categories() []Category {
	return []Category{CategoryBlack, CategoryRed, CategoryMulticolor}
}

func outcomeFromInt(v int) (Outcome, error) {
	if v < int(Loss) || v > int(Win) {
		return Loss, fmt.Errorf("outcome %d: %w", v, ErrInvalidIndex)
	}
	return Outcome(v), nil
}

func categoryFromInt(v int) (Category, error) {
	if v < int(CategoryBlack) || v > int(CategoryMulticolor) {
		return CategoryBlack, fmt.Errorf("category %d: %w", v, ErrInvalidIndex)
	}
	return Category(v), nil
}
