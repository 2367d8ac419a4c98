package resilience

import (
	"errors"
	"testing"
	"time"
)

type transition struct {
	from, to CircuitState
}

func newTestBreaker(cfg CircuitBreakerConfig) (*CircuitBreaker, *time.Time, *[]transition) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	var seen []transition
	b := NewCircuitBreaker(cfg, func(from, to CircuitState) {
		seen = append(seen, transition{from, to})
	})
	b.now = func() time.Time { return now }
	return b, &now, &seen
}

func TestCircuitBreaker_OpensThenRecoversThroughProbe(t *testing.T) {
	b, now, seen := newTestBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})
	errDown := errors.New("connection refused")
	fail := func() error { return errDown }
	succeed := func() error { return nil }

	if err := b.Execute(fail, nil); !errors.Is(err, errDown) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Execute(fail, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Execute(succeed, nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit to reject, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open once the timeout passed, got %s", state)
	}
	if err := b.Execute(succeed, nil); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}

	want := []transition{
		{CircuitStateClosed, CircuitStateOpen},
		{CircuitStateOpen, CircuitStateHalfOpen},
		{CircuitStateHalfOpen, CircuitStateClosed},
	}
	if len(*seen) != len(want) {
		t.Fatalf("expected transitions %v, got %v", want, *seen)
	}
	for i := range want {
		if (*seen)[i] != want[i] {
			t.Fatalf("transition %d: expected %v, got %v", i, want[i], (*seen)[i])
		}
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	b, now, _ := newTestBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 1})
	errDown := errors.New("timeout")

	_ = b.Execute(func() error { return errDown }, nil)
	*now = now.Add(2 * time.Second)
	_ = b.Execute(func() error { return errDown }, nil)

	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected failed probe to reopen, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteIgnoresNonDependencyFailures(t *testing.T) {
	b, _, _ := newTestBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})
	errClient := errors.New("bad request")
	errTransport := errors.New("connection refused")
	isTransport := func(err error) bool { return errors.Is(err, errTransport) }

	if err := b.Execute(func() error { return errClient }, isTransport); !errors.Is(err, errClient) {
		t.Fatalf("expected client error to pass through, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("client errors must not open the breaker, got %s", state)
	}

	_ = b.Execute(func() error { return errTransport }, isTransport)
	if err := b.Execute(func() error { return nil }, isTransport); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open breaker to reject, got %v", err)
	}
}

func TestCircuitBreaker_DisabledNeverRejects(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1}, nil)
	errDown := errors.New("down")

	for i := 0; i < 3; i++ {
		if err := b.Execute(func() error { return errDown }, nil); !errors.Is(err, errDown) {
			t.Fatalf("attempt %d: expected dependency error, got %v", i, err)
		}
	}
	if b.Enabled() {
		t.Fatalf("expected breaker to report disabled")
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	cfg := CircuitBreakerConfig{Enabled: true}.withDefaults()
	if cfg != DefaultCircuitBreakerConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	custom := CircuitBreakerConfig{FailureThreshold: 3, OpenTimeout: time.Second, HalfOpenMaxReq: 1}.withDefaults()
	if custom.FailureThreshold != 3 || custom.OpenTimeout != time.Second || custom.HalfOpenMaxReq != 1 || custom.Enabled {
		t.Fatalf("expected explicit limits kept, got %+v", custom)
	}
}
