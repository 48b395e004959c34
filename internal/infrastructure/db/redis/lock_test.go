package redis

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRenewInterval(t *testing.T) {
	cases := []struct {
		ttl  time.Duration
		want time.Duration
	}{
		{10 * time.Second, 10 * time.Second / 3},
		{3 * time.Second, time.Second},
		{30 * time.Millisecond, retryInterval},
	}
	for _, tc := range cases {
		if got := renewInterval(tc.ttl); got != tc.want {
			t.Errorf("renewInterval(%v) = %v, want %v", tc.ttl, got, tc.want)
		}
	}
}

// A holder that outlives one interval keeps renewing until it lets go.
func TestKeepAlive_RenewsUntilStopped(t *testing.T) {
	var calls atomic.Int32
	stop := make(chan struct{})
	done := keepAlive(stop, 5*time.Millisecond, func() { calls.Add(1) })

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 renewals, got %d", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("keepAlive did not exit after stop")
	}

	n := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != n {
		t.Fatalf("renewed after stop: %d -> %d", n, calls.Load())
	}
}
