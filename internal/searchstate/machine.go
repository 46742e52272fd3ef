// Package searchstate tracks the lifecycle of a polled flight search as an
// explicit state machine. The normalization pipeline itself is stateless; this
// package holds the caller-side state: which search is in flight, whether it
// timed out, and whether arriving results are stale.
package searchstate

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
	"github.com/flight-search/itinerary-normalization-service/internal/infrastructure/timeutil"
)

// State represents a phase of the search lifecycle.
type State string

// Search lifecycle states.
const (
	// StateIdle means no search has been started or the machine was reset
	StateIdle State = "idle"

	// StateLoading means a search is in flight and results are being polled
	StateLoading State = "loading"

	// StateSuccess means a result batch was accepted for the current search
	StateSuccess State = "success"

	// StateError means the search failed (timeout or repeated failures)
	StateError State = "error"

	// StateStopped means the user stopped the search before completion
	StateStopped State = "stopped"
)

// Default lifecycle thresholds.
const (
	// DefaultPollingTimeout bounds how long a search may stay in loading
	DefaultPollingTimeout = 2 * time.Minute

	// DefaultMaxConsecutiveFailures is the poll-failure count that aborts
	// the search
	DefaultMaxConsecutiveFailures = 5
)

// Lifecycle errors reported through LastError.
var (
	// ErrPollingTimeout indicates the search stayed in loading past the
	// polling timeout.
	ErrPollingTimeout = errors.New("search polling timed out")

	// ErrTooManyFailures indicates too many consecutive poll failures.
	ErrTooManyFailures = errors.New("too many consecutive poll failures")
)

// Config contains configuration options for the state machine.
type Config struct {
	PollingTimeout         time.Duration
	MaxConsecutiveFailures int
}

// DefaultConfig returns the default lifecycle thresholds.
func DefaultConfig() Config {
	return Config{
		PollingTimeout:         DefaultPollingTimeout,
		MaxConsecutiveFailures: DefaultMaxConsecutiveFailures,
	}
}

// Machine is a thread-safe search lifecycle state machine. A new search
// supersedes the previous one: events carrying a correlation id from a
// superseded search are discarded.
type Machine struct {
	mu                  sync.Mutex
	clock               timeutil.Clock
	cfg                 Config
	state               State
	correlationID       string
	startedAt           time.Time
	consecutiveFailures int
	lastErr             error
	batch               *domain.NormalizedBatch
}

// NewMachine creates a Machine in the idle state. If clock is nil the system
// clock is used; if config is nil the defaults are used.
func NewMachine(clock timeutil.Clock, config *Config) *Machine {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	cfg := DefaultConfig()
	if config != nil {
		if config.PollingTimeout > 0 {
			cfg.PollingTimeout = config.PollingTimeout
		}
		if config.MaxConsecutiveFailures > 0 {
			cfg.MaxConsecutiveFailures = config.MaxConsecutiveFailures
		}
	}

	return &Machine{
		clock: clock,
		cfg:   cfg,
		state: StateIdle,
	}
}

// StartSearch begins a new search and returns its correlation id. Any search
// already in flight is superseded; its late events will be discarded.
func (m *Machine) StartSearch() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateLoading
	m.correlationID = uuid.New().String()
	m.startedAt = m.clock.Now()
	m.consecutiveFailures = 0
	m.lastErr = nil
	m.batch = nil
	return m.correlationID
}

// ResultReceived records a successful result batch for the given search.
// It returns false when the event is stale (superseded correlation id or the
// machine is no longer loading) and the batch was discarded.
func (m *Machine) ResultReceived(correlationID string, batch *domain.NormalizedBatch) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.acceptsLocked(correlationID) {
		return false
	}

	m.state = StateSuccess
	m.consecutiveFailures = 0
	m.batch = batch
	return true
}

// Failure records a failed poll attempt. After the configured number of
// consecutive failures the machine moves to the error state. It returns false
// when the event is stale.
func (m *Machine) Failure(correlationID string, err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.acceptsLocked(correlationID) {
		return false
	}

	m.consecutiveFailures++
	if m.consecutiveFailures >= m.cfg.MaxConsecutiveFailures {
		m.state = StateError
		m.lastErr = errors.Join(ErrTooManyFailures, err)
	}
	return true
}

// PollTick checks the polling timeout for the given search. It returns true
// while polling should continue; once the timeout elapses the machine moves to
// the error state and PollTick returns false. Stale ticks also return false.
func (m *Machine) PollTick(correlationID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.acceptsLocked(correlationID) {
		return false
	}

	if m.clock.Now().Sub(m.startedAt) >= m.cfg.PollingTimeout {
		m.state = StateError
		m.lastErr = ErrPollingTimeout
		return false
	}
	return true
}

// Stop halts the current search. Late results for it will be discarded.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateLoading {
		m.state = StateStopped
	}
}

// Reset returns the machine to idle and clears all search state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateIdle
	m.correlationID = ""
	m.startedAt = time.Time{}
	m.consecutiveFailures = 0
	m.lastErr = nil
	m.batch = nil
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CorrelationID returns the id of the current search, or "" when idle.
func (m *Machine) CorrelationID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.correlationID
}

// Batch returns the accepted result batch, or nil before success.
func (m *Machine) Batch() *domain.NormalizedBatch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batch
}

// LastError returns the error that moved the machine to the error state.
func (m *Machine) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// ConsecutiveFailures returns the current consecutive poll-failure count.
func (m *Machine) ConsecutiveFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.consecutiveFailures
}

// acceptsLocked reports whether an event for the given correlation id applies
// to the current search. Callers must hold m.mu.
func (m *Machine) acceptsLocked(correlationID string) bool {
	return m.state == StateLoading && correlationID == m.correlationID
}
