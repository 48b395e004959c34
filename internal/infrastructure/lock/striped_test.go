package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/systrack/systrack-api/internal/core/domain"
)

func TestStriped_SerializesSameKey(t *testing.T) {
	l := NewStriped(16)
	ctx := context.Background()

	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "system:1", "employee:1")
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("expected exclusive access, saw %d holders at once", maxSeen)
	}
}

func TestStriped_OppositeOrderDoesNotDeadlock(t *testing.T) {
	l := NewStriped(0)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "a", "b")
			if err != nil {
				t.Errorf("acquire a,b: %v", err)
				return
			}
			release()
		}()
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "b", "a")
			if err != nil {
				t.Errorf("acquire b,a: %v", err)
				return
			}
			release()
		}()
	}
	wg.Wait()
}

func TestStriped_TimeoutReturnsConflict(t *testing.T) {
	l := NewStriped(4)

	release, err := l.Acquire(context.Background(), "system:1")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := l.Acquire(ctx, "system:1"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
