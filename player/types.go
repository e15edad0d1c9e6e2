// SPDX-License-Identifier: MIT

package player

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/internal/logging"
)

// State is the controller state.
type State string

// States.
const (
	StateIdle     State = "idle"
	StatePaused   State = "paused"
	StatePlaying  State = "playing"
	StateFinished State = "finished"
)

// String returns the state name.
func (s State) String() string { return string(s) }

// Speed bounds and defaults.
const (
	MinSpeed         = 0.5
	MaxSpeed         = 10.0
	DefaultSpeed     = 1.0
	DefaultBaseDelay = time.Second
)

// Sentinel errors.
var (
	// ErrNilSequence is returned by Load for a nil sequence.
	ErrNilSequence = errors.New("player: sequence is nil")

	// ErrEmptySequence is returned by Load for a sequence with no steps.
	ErrEmptySequence = errors.New("player: sequence is empty")

	// ErrOptionViolation is returned by New for meaningless option values.
	ErrOptionViolation = errors.New("player: invalid option supplied")
)

// Frame is what a renderer sees after each change.
type Frame struct {
	// LoadID identifies the Load the frame belongs to; uuid.Nil before any Load.
	LoadID uuid.UUID `json:"load_id" yaml:"load_id"`

	// Name is the algorithm name of the loaded sequence.
	Name string `json:"name" yaml:"name"`

	State State `json:"state" yaml:"state"`

	// Position is the cursor, always in [0, Total-1] once loaded.
	Position int `json:"position" yaml:"position"`

	Total int `json:"total" yaml:"total"`

	// Speed is the effective speed multiplier.
	Speed float64 `json:"speed" yaml:"speed"`

	// Note is the current step's description when the sequence provides one.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Loaded reports whether the frame belongs to a loaded sequence.
func (f Frame) Loaded() bool { return f.LoadID != uuid.Nil }

// AtEnd reports whether the cursor sits on the terminal step.
func (f Frame) AtEnd() bool { return f.Total > 0 && f.Position == f.Total-1 }

// Options configure a Controller.
type Options struct {
	Clock     Clock
	Logger    *slog.Logger
	Metrics   Metrics
	BaseDelay time.Duration
	Speed     float64

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a real clock, a nop logger, no metrics, a one
// second base delay and speed 1.
func DefaultOptions() Options {
	return Options{
		Clock:     RealClock{},
		Logger:    logging.NewNop(),
		Metrics:   NoopMetrics{},
		BaseDelay: DefaultBaseDelay,
		Speed:     DefaultSpeed,
	}
}

// WithClock replaces the time source. Panics on nil.
func WithClock(c Clock) Option {
	if c == nil {
		panic("player: WithClock(nil)")
	}
	return func(o *Options) { o.Clock = c }
}

// WithLogger sets the logger used for transition traces at debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("player: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics sink. Panics on nil.
func WithMetrics(m Metrics) Option {
	if m == nil {
		panic("player: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = m }
}

// WithBaseDelay sets the delay between auto-advances at speed 1.
// A non-positive delay makes New fail with ErrOptionViolation.
func WithBaseDelay(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.BaseDelay = d
	}
}

// WithSpeed sets the initial speed multiplier, clamped like SetSpeed.
func WithSpeed(x float64) Option {
	return func(o *Options) { o.Speed = ClampSpeed(x) }
}

// ClampSpeed clamps x into [MinSpeed, MaxSpeed]. NaN maps to DefaultSpeed.
func ClampSpeed(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return DefaultSpeed
	case x < MinSpeed:
		return MinSpeed
	case x > MaxSpeed:
		return MaxSpeed
	}
	return x
}

// Delay returns the auto-advance interval for base at speed x.
func Delay(base time.Duration, x float64) time.Duration {
	return time.Duration(float64(base) / ClampSpeed(x))
}
