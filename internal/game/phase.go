package game

import "fmt"

// Phase is a step of the per-round state machine. Phases only move forward.
type Phase int

const (
	PhaseDealt Phase = iota
	PhaseWagerOutcome
	PhaseWagerColor
	PhaseStaking
	PhasePlaying
	PhaseResolving
	PhaseSettled
	PhaseRetiring
	PhaseComplete
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseDealt:
		return "Dealt"
	case PhaseWagerOutcome:
		return "Wagering(outcome)"
	case PhaseWagerColor:
		return "Wagering(color)"
	case PhaseStaking:
		return "Staking"
	case PhasePlaying:
		return "Playing"
	case PhaseResolving:
		return "Resolving"
	case PhaseSettled:
		return "Settled"
	case PhaseRetiring:
		return "Retiring"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Next returns the phase that follows p
func (p Phase) Next() (Phase, error) {
	if p >= PhaseComplete {
		return p, fmt.Errorf("no phase after %s: %w", p, ErrInvalidPhase)
	}
	return p + 1, nil
}
