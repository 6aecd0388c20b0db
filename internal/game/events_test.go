package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestEventBusSubscribeUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	a, b := &EventRecorder{}, &EventRecorder{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Publish(RoundStartEvent{Round: 1})
	bus.Unsubscribe(a)
	bus.Publish(RoundStartEvent{Round: 2})

	assert.Len(t, a.Events, 1)
	assert.Len(t, b.Events, 2)
	assert.Equal(t, 2, b.Events[1].(RoundStartEvent).Round)
}

func TestEventTimestampsFromClock(t *testing.T) {
	clock := quartz.NewMock(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	clock.Set(now)

	rec := &EventRecorder{}
	bus := NewEventBus()
	bus.Subscribe(rec)

	d := NewRoundDriver(NewStandardBoard(), nil, quietLogger(), DriverConfig{EventBus: bus, Clock: clock})
	d.phase = PhaseDealt
	assert.NoError(t, d.enter(PhaseWagerOutcome))

	events := rec.OfType(EventTypePhaseChange)
	if assert.Len(t, events, 1) {
		assert.Equal(t, now, events[0].Timestamp())
		e := events[0].(PhaseChangeEvent)
		assert.Equal(t, PhaseDealt, e.From)
		assert.Equal(t, PhaseWagerOutcome, e.To)
	}
}
