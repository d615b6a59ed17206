package cache

import (
	"sync"
	"testing"
)

// constant returns a create func that counts its calls.
func constant[V any](v V, calls *int) func() V {
	return func() V {
		*calls++
		return v
	}
}

func TestCacheGetOrCreateHit(t *testing.T) {
	c := New[string, int](0)

	calls := 0
	if v := c.GetOrCreate("a", constant(1, &calls)); v != 1 {
		t.Errorf("GetOrCreate(a) = %d, want 1", v)
	}
	if v := c.GetOrCreate("a", constant(2, &calls)); v != 1 {
		t.Errorf("cached GetOrCreate(a) = %d, want 1", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](2)

	calls := 0
	c.GetOrCreate(1, constant("one", &calls))
	c.GetOrCreate(2, constant("two", &calls))
	c.GetOrCreate(1, constant("one", &calls)) // 2 is now oldest
	c.GetOrCreate(3, constant("three", &calls))
	if calls != 3 {
		t.Fatalf("create called %d times, want 3", calls)
	}

	for _, k := range []int{1, 3} {
		c.GetOrCreate(k, constant("again", &calls))
	}
	if calls != 3 {
		t.Errorf("entries 1 and 3 should still be cached, create called %d times", calls)
	}
	if v := c.GetOrCreate(2, constant("again", &calls)); v != "again" {
		t.Errorf("entry 2 = %q, want it evicted and recreated", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestCacheGetOrCreateConcurrent(t *testing.T) {
	c := New[int, int](4)

	calls := 0
	create := constant(42, &calls)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v := c.GetOrCreate(7, create); v != 42 {
				t.Errorf("GetOrCreate = %d, want 42", v)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}
