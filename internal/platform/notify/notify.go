// Package notify keeps the single transient message shown to the operator.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/mahotsav/championship-admin/internal/platform/logging"
)

// DismissAfter is how long a notification stays visible. It is fixed on purpose
// and applies only to notifications, never to network calls.
const DismissAfter = 3 * time.Second

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	ID      uint64
	Level   Level
	Message string
	ShownAt time.Time
}

func (n Notification) IsError() bool {
	return n.Level == LevelError
}

type timer interface {
	Stop() bool
}

// Center shows one notification at a time. A newer notification replaces the
// visible one, and each dismisses itself after DismissAfter.
type Center struct {
	mu        sync.Mutex
	active    *Notification
	seq       uint64
	pending   timer
	listeners []func(Notification)

	logger    *logging.Logger
	now       func() time.Time
	afterFunc func(time.Duration, func()) timer
}

func NewCenter(logger *logging.Logger) *Center {
	if logger == nil {
		logger = logging.Default()
	}
	return &Center{
		logger: logger,
		now:    time.Now,
		afterFunc: func(d time.Duration, fn func()) timer {
			return time.AfterFunc(d, fn)
		},
	}
}

// Subscribe registers fn to receive every notification as it is shown.
func (c *Center) Subscribe(fn func(Notification)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

func (c *Center) Success(ctx context.Context, message string) {
	c.show(ctx, LevelSuccess, message)
}

func (c *Center) Error(ctx context.Context, message string) {
	c.show(ctx, LevelError, message)
}

// Active returns the currently visible notification, if any.
func (c *Center) Active() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return Notification{}, false
	}
	return *c.active, true
}

func (c *Center) show(ctx context.Context, level Level, message string) {
	c.mu.Lock()
	c.seq++
	item := Notification{
		ID:      c.seq,
		Level:   level,
		Message: message,
		ShownAt: c.now(),
	}
	c.active = &item
	if c.pending != nil {
		c.pending.Stop()
	}
	id := item.ID
	c.pending = c.afterFunc(DismissAfter, func() { c.dismiss(id) })
	listeners := append([]func(Notification){}, c.listeners...)
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "notification shown", "level", string(level), "message", message)
	for _, fn := range listeners {
		fn(item)
	}
}

func (c *Center) dismiss(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil && c.active.ID == id {
		c.active = nil
		c.pending = nil
	}
}
