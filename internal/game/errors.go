package game

import "errors"

// Sentinel errors returned by board, player and driver operations.
// Callers match them with errors.Is; they are wrapped with context.
var (
	ErrInvalidIndex      = errors.New("index out of range")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrHandFull          = errors.New("hand is full")
	ErrTableFull         = errors.New("played area is full")
	ErrInvalidTeam       = errors.New("invalid team")
	ErrInvalidSeating    = errors.New("invalid seating")
	ErrInvalidPhase      = errors.New("invalid phase transition")
	ErrCardConservation  = errors.New("card conservation violated")
)
