package notify

import (
	"context"
	"testing"
	"time"
)

type fakeTimer struct {
	d       time.Duration
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	f.stopped = true
	return true
}

func newTestCenter() (*Center, *[]*fakeTimer) {
	timers := make([]*fakeTimer, 0)
	c := NewCenter(nil)
	c.afterFunc = func(d time.Duration, fn func()) timer {
		ft := &fakeTimer{d: d, fn: fn}
		timers = append(timers, ft)
		return ft
	}
	return c, &timers
}

func TestCenter_DismissesAfterFixedWindow(t *testing.T) {
	c, timers := newTestCenter()

	c.Error(context.Background(), "Operation Failed. Check console for details.")

	active, ok := c.Active()
	if !ok || !active.IsError() {
		t.Fatalf("expected visible error notification, got %+v ok=%v", active, ok)
	}
	if len(*timers) != 1 || (*timers)[0].d != 3*time.Second {
		t.Fatalf("expected one 3s dismiss timer, got %+v", *timers)
	}

	(*timers)[0].fn()
	if _, ok := c.Active(); ok {
		t.Fatalf("expected notification to be dismissed")
	}
}

func TestCenter_StaleTimerDoesNotDismissNewerNotification(t *testing.T) {
	c, timers := newTestCenter()

	c.Success(context.Background(), "Team created successfully!")
	c.Error(context.Background(), "Failed to fetch data from /teams.")

	if !(*timers)[0].stopped {
		t.Fatalf("expected first timer to be stopped when replaced")
	}

	(*timers)[0].fn()
	active, ok := c.Active()
	if !ok || active.Message != "Failed to fetch data from /teams." {
		t.Fatalf("expected newer notification to survive stale timer, got %+v ok=%v", active, ok)
	}
}

func TestCenter_SubscribersReceiveEveryNotification(t *testing.T) {
	c, _ := newTestCenter()
	var got []Notification
	c.Subscribe(func(n Notification) { got = append(got, n) })

	c.Success(context.Background(), "a")
	c.Error(context.Background(), "b")

	if len(got) != 2 || got[0].Level != LevelSuccess || got[1].Level != LevelError {
		t.Fatalf("unexpected notifications: %+v", got)
	}
}
