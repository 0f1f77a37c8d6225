// Package timer implements the work-session countdown and the inactivity
// watchdog. Both are driven by coarse wall-clock polling against a captured
// end time or last-activity timestamp, not by precise scheduled alarms.
package timer

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/focusdeck-io/focusdeck/internal/log"
)

// Clock abstracts wall-clock time for tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Sink receives timer output.
type Sink interface {
	// TimerTick is emitted on every poll with the mm:ss countdown.
	TimerTick(display string)
	// TimerDone is emitted exactly once when the countdown reaches zero.
	TimerDone()
	// InactivityAlert is level-triggered: it re-fires on every watchdog
	// poll for as long as the user stays idle past the threshold.
	InactivityAlert(idle time.Duration)
}

// Threshold reports whether inactivity alerts are enabled and the idle
// threshold in minutes. It is consulted on every watchdog poll so settings
// changes take effect without a restart.
type Threshold func() (enabled bool, minutes int)

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithTickInterval sets the countdown poll interval.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) { e.tickEvery = d }
}

// WithPollInterval sets the watchdog poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) { e.pollEvery = d }
}

// Engine runs at most one live countdown tick stream plus a process-scoped
// inactivity watchdog.
type Engine struct {
	mu        sync.Mutex
	clock     Clock
	sink      Sink
	tickEvery time.Duration
	pollEvery time.Duration
	log       *logrus.Entry

	running bool
	endTime time.Time
	gen     int // incremented on every Start; stale tick streams exit

	lastActivity time.Time
	threshold    Threshold
}

// NewEngine creates an engine emitting to the given sink.
func NewEngine(sink Sink, opts ...Option) *Engine {
	e := &Engine{
		clock:     systemClock{},
		sink:      sink,
		tickEvery: time.Second,
		pollEvery: time.Minute,
		log:       log.New("timer"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.lastActivity = e.clock.Now()
	return e
}

// Running reports whether a countdown is in progress.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Start begins a countdown of the given duration. If a countdown is already
// running it is cancelled and restarted; session progress is not carried
// over. The first tick is emitted immediately.
func (e *Engine) Start(d time.Duration) {
	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.running = true
	e.endTime = e.clock.Now().Add(d)
	e.mu.Unlock()

	e.log.WithField("duration", d).Info("work session started")
	e.sink.TimerTick(FormatRemaining(d))

	go e.run(gen)
}

func (e *Engine) run(gen int) {
	t := time.NewTicker(e.tickEvery)
	defer t.Stop()
	for range t.C {
		if e.tick(gen) {
			return
		}
	}
}

// tick emits one countdown update. It returns true when this tick stream
// should stop, either because the session finished or a newer Start
// superseded it.
func (e *Engine) tick(gen int) bool {
	e.mu.Lock()
	if gen != e.gen || !e.running {
		e.mu.Unlock()
		return true
	}
	remaining := e.endTime.Sub(e.clock.Now())
	if remaining < 0 {
		remaining = 0
	}
	done := remaining == 0
	if done {
		e.running = false
	}
	e.mu.Unlock()

	e.sink.TimerTick(FormatRemaining(remaining))
	if done {
		e.log.Info("work session complete")
		e.sink.TimerDone()
	}
	return done
}

// RecordActivity updates the last-activity timestamp. Called whenever the
// host reports a user-activity signal.
func (e *Engine) RecordActivity() {
	e.mu.Lock()
	e.lastActivity = e.clock.Now()
	e.mu.Unlock()
}

// StartWatchdog begins the inactivity poll. It is established once at
// startup and runs for the life of the process.
func (e *Engine) StartWatchdog(threshold Threshold) {
	e.mu.Lock()
	e.threshold = threshold
	e.mu.Unlock()

	go func() {
		t := time.NewTicker(e.pollEvery)
		defer t.Stop()
		for range t.C {
			e.checkInactivity()
		}
	}()
}

func (e *Engine) checkInactivity() {
	e.mu.Lock()
	threshold := e.threshold
	idle := e.clock.Now().Sub(e.lastActivity)
	e.mu.Unlock()

	if threshold == nil {
		return
	}
	enabled, minutes := threshold()
	if !enabled || minutes <= 0 {
		return
	}
	if idle >= time.Duration(minutes)*time.Minute {
		e.sink.InactivityAlert(idle)
	}
}

// FormatRemaining renders a countdown as mm:ss, rounded to the nearest
// second.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
