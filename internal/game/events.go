package game

import (
	"fmt"
	"time"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRay    EventType = "ray"
	EventTypeGuess  EventType = "guess"
	EventTypeSolved EventType = "solved"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent is anything a session reports to its subscribers.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RayEvent is published after every shot.
type RayEvent struct {
	SessionID  string
	Shot       Shot
	ScoreAfter int
	timestamp  time.Time
}

func (e RayEvent) EventType() EventType { return EventTypeRay }
func (e RayEvent) Timestamp() time.Time { return e.timestamp }

// GuessEvent is published after every guess.
type GuessEvent struct {
	SessionID      string
	Coord          Coord
	Correct        bool
	Points         int
	ScoreAfter     int
	AtomsRemaining int
	timestamp      time.Time
}

func (e GuessEvent) EventType() EventType { return EventTypeGuess }
func (e GuessEvent) Timestamp() time.Time { return e.timestamp }

// SolvedEvent is published once, when the last atom is found.
type SolvedEvent struct {
	SessionID string
	Score     int
	Shots     int
	Elapsed   time.Duration
	timestamp time.Time
}

func (e SolvedEvent) EventType() EventType { return EventTypeSolved }
func (e SolvedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a plain function to EventSubscriber.
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers cannot be compared and must be wrapped in a pointer type to
// be removable.
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

// EventFormatter turns events into one-line, human-readable descriptions.
type EventFormatter struct{}

// Format describes any session event.
func (EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case RayEvent:
		return FormatShot(e.Shot) + fmt.Sprintf(" (score %d)", e.ScoreAfter)
	case GuessEvent:
		if e.Correct {
			return fmt.Sprintf("guess %s: atom found, %d left", e.Coord, e.AtomsRemaining)
		}
		if e.Points == 0 {
			return fmt.Sprintf("guess %s: no atom (already guessed)", e.Coord)
		}
		return fmt.Sprintf("guess %s: no atom, -%d (score %d)", e.Coord, e.Points, e.ScoreAfter)
	case SolvedEvent:
		return fmt.Sprintf("all atoms found with score %d after %d shots in %s",
			e.Score, e.Shots, e.Elapsed.Round(time.Second))
	default:
		return event.EventType().String()
	}
}

// FormatShot describes a shot's result and cost.
func FormatShot(s Shot) string {
	var result string
	switch {
	case s.Outcome.Kind == Absorbed:
		result = "absorbed"
	case s.Outcome.IsReflection(s.Entry):
		result = "reflected"
	default:
		result = fmt.Sprintf("exits at %s", s.Outcome.Exit)
	}
	cost := "free"
	if s.Points > 0 {
		cost = fmt.Sprintf("-%d", s.Points)
	}
	return fmt.Sprintf("ray %d from %s: %s, %s", s.Number, s.Entry, result, cost)
}
