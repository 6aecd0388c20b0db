package game

import (
	"time"

	"github.com/lox/colorbet/internal/card"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart    EventType = "round_start"
	EventTypePhaseChange   EventType = "phase_change"
	EventTypeWager         EventType = "wager"
	EventTypeCardPlayed    EventType = "card_played"
	EventTypeRoundResolved EventType = "round_resolved"
	EventTypeGameEnd       EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a round begins
type RoundStartEvent struct {
	GameID    string
	Round     int
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// PhaseChangeEvent is published on every state machine transition
type PhaseChangeEvent struct {
	Round     int
	From      Phase
	To        Phase
	timestamp time.Time
}

func (e PhaseChangeEvent) EventType() EventType { return EventTypePhaseChange }
func (e PhaseChangeEvent) Timestamp() time.Time { return e.timestamp }

// WagerEvent is published when a player commits a prediction or stake
type WagerEvent struct {
	Round     int
	PlayerID  int
	Phase     Phase
	Outcome   Outcome
	Category  Category
	Stake     int
	timestamp time.Time
}

func (e WagerEvent) EventType() EventType { return EventTypeWager }
func (e WagerEvent) Timestamp() time.Time { return e.timestamp }

// CardPlayedEvent is published when a card moves to the played area
type CardPlayedEvent struct {
	Round     int
	PlayerID  int
	Card      card.Card
	timestamp time.Time
}

func (e CardPlayedEvent) EventType() EventType { return EventTypeCardPlayed }
func (e CardPlayedEvent) Timestamp() time.Time { return e.timestamp }

// RoundResolvedEvent is published once chips are settled
type RoundResolvedEvent struct {
	Result    RoundResult
	timestamp time.Time
}

func (e RoundResolvedEvent) EventType() EventType { return EventTypeRoundResolved }
func (e RoundResolvedEvent) Timestamp() time.Time { return e.timestamp }

// GameEndEvent is published after the last round
type GameEndEvent struct {
	Result    GameResult
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventRecorder keeps every event it sees, in order
type EventRecorder struct {
	Events []GameEvent
}

// OnEvent implements EventSubscriber
func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events with the given type
func (r *EventRecorder) OfType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.Events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}
