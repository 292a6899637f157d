package cache

import (
	"sync"
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory[string](time.Minute, 0)

	m.Set("a", "alpha")
	if v, ok := m.Get("a"); !ok || v != "alpha" {
		t.Errorf("Expected alpha, got %q (found=%v)", v, ok)
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Expected missing key not to be found")
	}

	m.Delete("a")
	if _, ok := m.Get("a"); ok {
		t.Error("Expected deleted key not to be found")
	}
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory[int](10*time.Millisecond, 0)

	m.Set("short", 1)
	time.Sleep(30 * time.Millisecond)

	if _, ok := m.Get("short"); ok {
		t.Error("Expected entry to expire")
	}
}

func TestMemory_TouchExtendsExpiry(t *testing.T) {
	m := NewMemory[int](50*time.Millisecond, 0)

	m.Set("key", 1)
	time.Sleep(30 * time.Millisecond)
	m.Touch("key")
	time.Sleep(30 * time.Millisecond)

	if _, ok := m.Get("key"); !ok {
		t.Error("Expected touched entry to outlive its original expiry")
	}
}

func TestMemory_GetOrAdd(t *testing.T) {
	m := NewMemory[*int](time.Minute, 0)

	var wg sync.WaitGroup
	results := make([]*int, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.GetOrAdd("key", func() *int {
				v := i
				return &v
			})
		}(i)
	}
	wg.Wait()

	stored, _ := m.Get("key")
	for i, r := range results {
		if r != stored {
			t.Fatalf("Caller %d received a different value than the stored one", i)
		}
	}
}
