package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/colorbet/internal/card"
)

func TestFormatWager(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{})

	assert.Equal(t, "Player 1: bets Win", ef.FormatWager(WagerEvent{PlayerID: 1, Phase: PhaseWagerOutcome, Outcome: Win}))
	assert.Equal(t, "Player 2: picks Multicolor", ef.FormatWager(WagerEvent{PlayerID: 2, Phase: PhaseWagerColor, Category: CategoryMulticolor}))
	assert.Equal(t, "Player 3: stakes 5", ef.FormatWager(WagerEvent{PlayerID: 3, Phase: PhaseStaking, Stake: 5}))
}

func TestFormatHidesPhasesUnlessAsked(t *testing.T) {
	event := PhaseChangeEvent{Round: 1, From: PhaseDealt, To: PhaseWagerOutcome}

	assert.Nil(t, NewEventFormatter(FormattingOptions{}).Format(event))
	assert.Equal(t, []string{"-- " + PhaseWagerOutcome.String() + " --"},
		NewEventFormatter(FormattingOptions{ShowPhases: true}).Format(event))
}

func TestFormatTimestamps(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{ShowTimestamps: true})
	at := time.Date(2025, 1, 2, 13, 4, 5, 0, time.UTC)

	lines := ef.Format(CardPlayedEvent{PlayerID: 4, Card: card.New(0, 3, card.Black), timestamp: at})
	assert.Equal(t, []string{"13:04:05 Player 4: plays 3♠"}, lines)

	lines = ef.Format(RoundStartEvent{Round: 2, timestamp: at})
	assert.Equal(t, []string{"", "13:04:05 *** ROUND 2 ***"}, lines)
}

func TestFormatRoundOfExampleBoard(t *testing.T) {
	b := exampleRoundBoard()
	driver := NewRoundDriver(b, &scriptInput{answers: exampleRoundScript()}, quietLogger(), DriverConfig{})
	result, err := driver.Play(context.Background(), 1)
	require.NoError(t, err)

	lines := NewEventFormatter(FormattingOptions{}).FormatRound(result)
	text := strings.Join(lines, "\n")

	assert.Equal(t, "--- Round 1 resolved ---", lines[0])
	assert.Contains(t, text, "Team 1 played black 3, red 2, total 5")
	assert.Contains(t, text, "Team 2 played black 1, red 4, total 5")
	assert.Contains(t, text, "Black to Team 1, Red to Team 2, Multicolor tied")
	assert.Contains(t, text, "Player 1: wins 30 chips")
	assert.Contains(t, text, "Player 2: wins 20 chips")
	assert.Contains(t, text, "Player 3: loses 5 chips")
	assert.Contains(t, text, "Scores: Team 1 50, Team 2 50")
}

func TestFormatGameEnd(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{})
	assert.Equal(t, "Game g1 won by Team 2 with 60 chips", ef.FormatGameEnd(GameResult{GameID: "g1", WinningTeam: 1, HighScore: 60}))
	assert.Equal(t, "Game g2 ends in a draw at 40 chips", ef.FormatGameEnd(GameResult{GameID: "g2", WinningTeam: -1, Draw: true, HighScore: 40}))
}

func TestNarratorForwardsLines(t *testing.T) {
	renderer := &recordingRenderer{}
	n := NewNarrator(renderer, FormattingOptions{})

	n.OnEvent(CardPlayedEvent{PlayerID: 2, Card: card.New(1, 5, card.Red)})
	n.OnEvent(PhaseChangeEvent{To: PhasePlaying})
	n.OnEvent(GameEndEvent{Result: GameResult{WinningTeam: 0}})

	assert.Equal(t, []string{"Player 2: plays 5♥"}, renderer.messages)
}

type memoryHistory struct {
	files map[string]string
	err   error
}

func (m *memoryHistory) WriteHistory(gameID, content string) error {
	if m.err != nil {
		return m.err
	}
	if m.files == nil {
		m.files = map[string]string{}
	}
	m.files[gameID] = content
	return nil
}

func TestHistoryRecorderWritesOnGameEnd(t *testing.T) {
	writer := &memoryHistory{}
	recorder := NewHistoryRecorder(writer)

	bus := NewEventBus()
	bus.Subscribe(recorder)

	settings := DefaultSettings()
	settings.Seed = 21
	g, _ := newTestGame(t, settings, 22, WithEventBus(bus))
	_, err := g.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, recorder.Err())

	content, ok := writer.files["test-game"]
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(content, "Colour bet game test-game\n"))
	assert.Contains(t, content, "*** ROUND 1 ***")
	assert.Contains(t, content, "*** ROUND 3 ***")
	assert.Contains(t, content, "--- Round 3 resolved ---")
	assert.Contains(t, content, "Game test-game")
}

func TestHistoryRecorderReportsWriteErrors(t *testing.T) {
	boom := errors.New("disk full")
	recorder := NewHistoryRecorder(&memoryHistory{err: boom})

	recorder.OnEvent(GameEndEvent{Result: GameResult{GameID: "x"}})
	assert.ErrorIs(t, recorder.Err(), boom)
}

func TestFileHistoryWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")
	w := NewFileHistoryWriter(dir)

	require.NoError(t, w.WriteHistory("abc", "line one\n"))

	data, err := os.ReadFile(filepath.Join(dir, "game_abc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "line one\n", string(data))
	assert.Equal(t, filepath.Join(dir, "game_abc.txt"), w.Path("abc"))
}
