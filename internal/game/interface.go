package game

import "context"

// PromptKind identifies which decision a prompt asks for
type PromptKind int

const (
	PromptOutcome PromptKind = iota
	PromptCategory
	PromptStake
	PromptCardCount
	PromptCard
)

// String returns the string representation of a prompt kind
func (k PromptKind) String() string {
	switch k {
	case PromptOutcome:
		return "outcome"
	case PromptCategory:
		return "category"
	case PromptStake:
		return "stake"
	case PromptCardCount:
		return "card_count"
	case PromptCard:
		return "card"
	default:
		return "unknown"
	}
}

// Prompt asks a player for an integer in [Min, Max]
type Prompt struct {
	Kind     PromptKind
	Round    int
	Seat     int
	PlayerID int
	Message  string
	Min      int
	Max      int
	// Player is a read-only view of the asking player, for providers that show the hand
	Player PlayerSnapshot
}

// InRange reports whether v answers the prompt
func (p Prompt) InRange(v int) bool {
	return v >= p.Min && v <= p.Max
}

// InputProvider supplies player decisions. PromptInt blocks until it has an
// answer; providers re-ask on unparseable input themselves.
type InputProvider interface {
	PromptInt(ctx context.Context, prompt Prompt) (int, error)
}

// Renderer displays game state. It receives copies and never mutates the game.
type Renderer interface {
	Message(msg string)
	RenderBoard(snapshot BoardSnapshot) error
	RenderEndGame(snapshot BoardSnapshot, result GameResult) error
}

// NopRenderer discards all output
type NopRenderer struct{}

func (NopRenderer) Message(string)                                {}
func (NopRenderer) RenderBoard(BoardSnapshot) error               { return nil }
func (NopRenderer) RenderEndGame(BoardSnapshot, GameResult) error { return nil }
