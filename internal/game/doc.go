// Package game implements a two-team colour betting card game.
//
// Four players sit at a Board, two to a team. Each round every player bets
// Win or Loss on one category (Black, Red or Multicolor), stakes chips from
// their balance, and plays one or two cards face up. The Resolver compares
// each team's black, red and grand totals; players whose prediction matches
// their team's result are paid twice their stake.
//
// # Basic Usage
//
// Run a complete game with any InputProvider and Renderer:
//
//	g, err := game.NewGame(game.DefaultSettings(), input, renderer, logger)
//	if err != nil {
//	    return err
//	}
//	result, err := g.Run(ctx)
//
// # Deterministic Testing
//
// Settings.Seed fixes the deal, WithGameID fixes the identifier and WithClock
// accepts a quartz mock, so a scripted input replays a game exactly.
//
// # Architecture
//
// Game delegates each round to a RoundDriver state machine:
//   - Board: owns the players and the retired pile
//   - Resolve: computes totals and winners without mutating the board
//   - AttributeChips: settles stakes
//   - EventBus: publishes every transition to loggers, narrators and statistics
package game
