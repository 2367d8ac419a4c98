// Package resilience guards calls to the championship API.
package resilience

import (
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var ErrCircuitOpen = crerr.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// withDefaults fills every unset limit; Enabled is kept as given.
func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	d := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = d.HalfOpenMaxReq
	}
	return c
}

// CircuitBreaker stops calling the API after FailureThreshold consecutive
// dependency failures. Once OpenTimeout has passed, up to HalfOpenMaxReq probes
// go through; they must all succeed to close the circuit again.
type CircuitBreaker struct {
	cfg      CircuitBreakerConfig
	onChange func(from, to CircuitState)
	now      func() time.Time

	mu        sync.Mutex
	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	successes int
}

// NewCircuitBreaker builds a breaker from cfg. onChange, when set, is called
// outside the lock on every state transition.
func NewCircuitBreaker(cfg CircuitBreakerConfig, onChange func(from, to CircuitState)) *CircuitBreaker {
	return &CircuitBreaker{
		cfg:      cfg.withDefaults(),
		onChange: onChange,
		now:      time.Now,
		state:    CircuitStateClosed,
	}
}

func (b *CircuitBreaker) Enabled() bool {
	return b.cfg.Enabled
}

// Execute runs fn under the breaker. isFailure picks the errors that count
// against the dependency; nil counts every error. A disabled breaker only runs
// fn.
func (b *CircuitBreaker) Execute(fn func() error, isFailure func(error) bool) error {
	if !b.cfg.Enabled {
		return fn()
	}
	if err := b.admit(); err != nil {
		return err
	}

	err := fn()
	b.record(err == nil || (isFailure != nil && !isFailure(err)))
	return err
}

// State reports the current state. An open circuit whose timeout has elapsed
// reads as half-open even before the next probe.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) admit() error {
	b.mu.Lock()
	from := b.state
	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.moveTo(CircuitStateHalfOpen)
	}
	if b.state == CircuitStateHalfOpen {
		if b.probes >= b.cfg.HalfOpenMaxReq {
			to := b.state
			b.mu.Unlock()
			b.notify(from, to)
			return ErrCircuitOpen
		}
		b.probes++
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
	return nil
}

func (b *CircuitBreaker) record(ok bool) {
	b.mu.Lock()
	from := b.state
	switch b.state {
	case CircuitStateClosed:
		if ok {
			b.failures = 0
			break
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.moveTo(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.probes = max(b.probes-1, 0)
		if !ok {
			b.moveTo(CircuitStateOpen)
			break
		}
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.moveTo(CircuitStateClosed)
		}
	case CircuitStateOpen:
		if !ok {
			b.openedAt = b.now()
		}
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
}

// moveTo resets the per-state counters. Callers hold mu.
func (b *CircuitBreaker) moveTo(to CircuitState) {
	b.state = to
	b.probes = 0
	b.successes = 0
	switch to {
	case CircuitStateOpen:
		b.openedAt = b.now()
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	}
}

func (b *CircuitBreaker) notify(from, to CircuitState) {
	if from != to && b.onChange != nil {
		b.onChange(from, to)
	}
}
