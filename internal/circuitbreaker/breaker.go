// Package circuitbreaker stops calling a backend that keeps failing and
// probes it again after a cool-down.
package circuitbreaker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrOpen is returned while the breaker rejects calls
var ErrOpen = errors.New("circuit breaker open")

// State represents the current state of the circuit breaker
type State int

// Circuit breaker states
const (
	StateClosed   State = iota // Normal operation
	StateOpen                  // Tripped, no new calls allowed
	StateHalfOpen              // Probing whether the backend has recovered
)

// String returns the lowercase state name
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker guards calls to a single backend.
type CircuitBreaker struct {
	name string

	thresholds Thresholds

	// Current state of the circuit breaker (Closed, Open, HalfOpen)
	state State

	// Timestamp of the last circuit trip
	lastTrip time.Time

	// Duration before auto-reset attempt
	resetDelay time.Duration

	mu sync.RWMutex

	// Consecutive failures while closed
	failureCount int

	// Count of consecutive successful calls in HalfOpen state
	successCount int

	// Number of successful calls required to close the circuit
	successThreshold int

	onTripCallback func(name, reason string)
}

// Thresholds defines the limits that will trigger the circuit breaker
type Thresholds struct {
	// Consecutive failures that open the circuit
	MaxConsecutiveFailures int `json:"max_consecutive_failures"`
}

// New creates a new CircuitBreaker for the named backend
func New(name string, t Thresholds) *CircuitBreaker {
	if t.MaxConsecutiveFailures <= 0 {
		t.MaxConsecutiveFailures = 1
	}
	return &CircuitBreaker{
		name:             name,
		thresholds:       t,
		state:            StateClosed,
		resetDelay:       30 * time.Second,
		successThreshold: 1,
	}
}

// WithResetDelay sets a custom reset delay and returns the circuit breaker
func (cb *CircuitBreaker) WithResetDelay(delay time.Duration) *CircuitBreaker {
	cb.resetDelay = delay
	return cb
}

// WithSuccessThreshold sets the number of successful calls needed to close the circuit
func (cb *CircuitBreaker) WithSuccessThreshold(threshold int) *CircuitBreaker {
	cb.successThreshold = threshold
	return cb
}

// WithTripCallback sets a callback function that is called when the circuit trips
func (cb *CircuitBreaker) WithTripCallback(callback func(name, reason string)) *CircuitBreaker {
	cb.onTripCallback = callback
	return cb
}

// Name returns the guarded backend's name
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Allow reports whether a call may proceed. While open it returns ErrOpen
// until the reset delay has passed, then lets probe calls through.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.RLock()
	state := cb.state
	lastTripTime := cb.lastTrip
	cb.mu.RUnlock()

	if state != StateOpen {
		return nil
	}
	if time.Since(lastTripTime) > cb.resetDelay {
		cb.transitionToHalfOpen()
		return nil
	}
	return fmt.Errorf("%s: %w", cb.name, ErrOpen)
}

// RecordSuccess notes a successful call
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount = 0
	if cb.state == StateHalfOpen {
		cb.successCount++
		if cb.successCount >= cb.successThreshold {
			cb.state = StateClosed
			cb.successCount = 0
			logrus.WithField("backend", cb.name).Info("Circuit breaker closed: backend has recovered")
		}
	}
}

// RecordFailure notes a failed call and trips the circuit when the
// threshold is reached. Any failure while half-open trips immediately.
func (cb *CircuitBreaker) RecordFailure(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateHalfOpen {
		cb.trip(fmt.Sprintf("probe failed: %v", err))
		return
	}

	cb.failureCount++
	if cb.state == StateClosed && cb.failureCount >= cb.thresholds.MaxConsecutiveFailures {
		cb.trip(fmt.Sprintf("%d consecutive failures, last: %v", cb.failureCount, err))
	}
}

// Execute runs fn when the breaker allows it and records the outcome.
// Every error counts as a failure.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	return cb.ExecuteClassified(fn, nil)
}

// ExecuteClassified is Execute with a classifier deciding which errors count
// as backend failures. Errors it rejects are returned without being recorded.
// A nil classifier counts every error.
func (cb *CircuitBreaker) ExecuteClassified(fn func() error, isFailure func(error) bool) error {
	if err := cb.Allow(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		if isFailure == nil || isFailure(err) {
			cb.RecordFailure(err)
		}
		return err
	}
	cb.RecordSuccess()
	return nil
}

// GetState returns the current state of the circuit breaker
func (cb *CircuitBreaker) GetState() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Reset forcibly resets the circuit breaker to closed state
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.state = StateClosed
	cb.failureCount = 0
	cb.successCount = 0
	logrus.WithField("backend", cb.name).Info("Circuit breaker manually reset to closed state")
}

// transitionToHalfOpen changes the circuit state to half-open for testing recovery
func (cb *CircuitBreaker) transitionToHalfOpen() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == StateOpen {
		cb.state = StateHalfOpen
		cb.successCount = 0
		logrus.WithField("backend", cb.name).Info("Circuit breaker half-open: probing backend")
	}
}

// trip sets the circuit breaker to open state with the current time.
// Callers hold cb.mu.
func (cb *CircuitBreaker) trip(reason string) {
	cb.state = StateOpen
	cb.lastTrip = time.Now()
	cb.failureCount = 0
	cb.successCount = 0
	logrus.WithField("backend", cb.name).Warnf("Circuit breaker tripped: %s", reason)

	if cb.onTripCallback != nil {
		go cb.onTripCallback(cb.name, reason)
	}
}
