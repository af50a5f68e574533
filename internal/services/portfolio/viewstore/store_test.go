package viewstore

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestPutGetDelete(t *testing.T) {
	t.Parallel()

	s := New[string](4, time.Minute)
	s.Put("a", "alpha")

	got, ok := s.Get("a")
	if !ok || got != "alpha" {
		t.Fatalf("Get(a) = (%q, %v), want (alpha, true)", got, ok)
	}
	s.Put("a", "again")
	if got, _ := s.Get("a"); got != "again" {
		t.Fatalf("Get(a) after replace = %q, want again", got)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	s.Delete("a")
	if _, ok := s.Get("a"); ok {
		t.Fatal("expected a to be deleted")
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected missing id to be absent")
	}
}

func TestEmptyIDIsIgnored(t *testing.T) {
	t.Parallel()

	s := New[int](4, time.Minute)
	s.Put("", 1)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestEntriesExpireAfterInactivity(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := New[int](4, time.Minute, WithClock(clock.Now))
	s.Put("a", 1)
	s.Put("b", 2)

	clock.Advance(40 * time.Second)
	if _, ok := s.Get("a"); !ok {
		t.Fatal("a expired early")
	}
	clock.Advance(40 * time.Second)

	if _, ok := s.Get("a"); !ok {
		t.Fatal("Get should have refreshed a")
	}
	if _, ok := s.Get("b"); ok {
		t.Fatal("b should have expired")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestPutEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	s := New[int](2, time.Hour)
	s.Put("a", 1)
	s.Put("b", 2)
	s.Get("a")
	s.Put("c", 3)

	if _, ok := s.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	for _, id := range []string{"a", "c"} {
		if _, ok := s.Get(id); !ok {
			t.Fatalf("%s should still be stored", id)
		}
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	s := New[int](0, 0)
	if s.capacity != DefaultCapacity || s.ttl != DefaultTTL {
		t.Fatalf("defaults = (%d, %v), want (%d, %v)", s.capacity, s.ttl, DefaultCapacity, DefaultTTL)
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	t.Parallel()

	var s *Store[int]
	s.Put("a", 1)
	s.Delete("a")
	if _, ok := s.Get("a"); ok {
		t.Fatal("nil store returned a value")
	}
	if s.Len() != 0 {
		t.Fatal("nil store should be empty")
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := New[int](16, time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := fmt.Sprintf("%d-%d", worker, j%20)
				s.Put(id, j)
				s.Get(id)
				if j%7 == 0 {
					s.Delete(id)
				}
			}
		}(i)
	}
	wg.Wait()
	if s.Len() > 16 {
		t.Fatalf("Len() = %d, want at most 16", s.Len())
	}
}
