package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	rules    Rules
	logger   *log.Logger
	clock    quartz.Clock
	eventBus EventBus
	id       string
}

func defaultSessionConfig() *sessionConfig {
	return &sessionConfig{
		rules: DefaultRules(),
	}
}

// WithRules overrides the default 25/1/5 scoring.
func WithRules(rules Rules) SessionOption {
	return func(c *sessionConfig) { c.rules = rules }
}

// WithLogger sets the logger for debug tracing. Default discards output.
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) { c.logger = logger }
}

// WithClock sets the clock used for timestamps and elapsed time.
// Tests pass quartz.NewMock.
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) { c.clock = clock }
}

// WithEventBus publishes session events to bus.
func WithEventBus(bus EventBus) SessionOption {
	return func(c *sessionConfig) { c.eventBus = bus }
}

// WithID fixes the session ID instead of generating one.
func WithID(id string) SessionOption {
	return func(c *sessionConfig) { c.id = id }
}

func (c *sessionConfig) finish() {
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.eventBus == nil {
		c.eventBus = NewEventBus()
	}
}
