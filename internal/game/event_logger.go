package game

import "github.com/charmbracelet/log"

// EventLogger writes game events to a logger
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger creates a subscriber that logs every event
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// OnEvent implements EventSubscriber
func (l *EventLogger) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case RoundStartEvent:
		l.logger.Info("Round started", "game", e.GameID, "round", e.Round)
	case WagerEvent:
		switch e.Phase {
		case PhaseWagerOutcome:
			l.logger.Debug("Slate placed", "round", e.Round, "player", e.PlayerID, "outcome", e.Outcome)
		case PhaseWagerColor:
			l.logger.Debug("Category chosen", "round", e.Round, "player", e.PlayerID, "category", e.Category)
		case PhaseStaking:
			l.logger.Debug("Chips staked", "round", e.Round, "player", e.PlayerID, "stake", e.Stake)
		}
	case CardPlayedEvent:
		l.logger.Debug("Card played", "round", e.Round, "player", e.PlayerID, "card", e.Card)
	case RoundResolvedEvent:
		winners := make([]int, 0, len(e.Result.Payouts))
		for _, p := range e.Result.Payouts {
			if p.Won {
				winners = append(winners, p.PlayerID)
			}
		}
		l.logger.Info("Round settled",
			"round", e.Result.Round,
			"winners", winners,
			"scores", e.Result.TeamScores,
			"retired", e.Result.Retired)
	case GameEndEvent:
		l.logger.Debug("Game end published", "game", e.Result.GameID)
	}
}
