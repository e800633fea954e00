package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventBus(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	a, b := &recorder{}, &recorder{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Publish(SolvedEvent{Score: 10})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)

	bus.Unsubscribe(a)
	bus.Publish(SolvedEvent{Score: 11})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 2)
}

func TestEventSubscriberFunc(t *testing.T) {
	t.Parallel()

	var got []EventType
	bus := NewEventBus()
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) {
		got = append(got, e.EventType())
	}))

	bus.Publish(RayEvent{})
	bus.Publish(GuessEvent{})
	assert.Equal(t, []EventType{EventTypeRay, EventTypeGuess}, got)
}

func TestEventFormatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		event    GameEvent
		expected string
	}{
		{
			name: "exiting ray",
			event: RayEvent{
				Shot:       Shot{Number: 1, Entry: C(0, 5), Outcome: ExitedAt(C(9, 5)), Points: 2},
				ScoreAfter: 23,
			},
			expected: "ray 1 from (0,5): exits at (9,5), -2 (score 23)",
		},
		{
			name: "absorbed ray",
			event: RayEvent{
				Shot:       Shot{Number: 2, Entry: C(0, 2), Outcome: AbsorbedOutcome(), Points: 1},
				ScoreAfter: 22,
			},
			expected: "ray 2 from (0,2): absorbed, -1 (score 22)",
		},
		{
			name: "free reflection",
			event: RayEvent{
				Shot:       Shot{Number: 3, Entry: C(0, 5), Outcome: ExitedAt(C(0, 5))},
				ScoreAfter: 22,
			},
			expected: "ray 3 from (0,5): reflected, free (score 22)",
		},
		{
			name:     "correct guess",
			event:    GuessEvent{Coord: C(3, 2), Correct: true, AtomsRemaining: 3},
			expected: "guess (3,2): atom found, 3 left",
		},
		{
			name:     "wrong guess",
			event:    GuessEvent{Coord: C(5, 5), Points: 5, ScoreAfter: 17},
			expected: "guess (5,5): no atom, -5 (score 17)",
		},
		{
			name:     "repeated wrong guess",
			event:    GuessEvent{Coord: C(5, 5), ScoreAfter: 17},
			expected: "guess (5,5): no atom (already guessed)",
		},
		{
			name:     "solved",
			event:    SolvedEvent{Score: 17, Shots: 4, Elapsed: 95*time.Second + 300*time.Millisecond},
			expected: "all atoms found with score 17 after 4 shots in 1m35s",
		},
	}

	var f EventFormatter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.event))
		})
	}
}
