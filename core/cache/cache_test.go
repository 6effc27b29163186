package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/FocuswithJustin/gabc2volpiano/core/volpiano"
)

func TestLRUCache_BasicOperations(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 3})

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if v, ok := cache.Get(key); !ok || v != want {
			t.Errorf("Get(%s) = %d, %v; want %d, true", key, v, ok, want)
		}
	}
	if _, ok := cache.Get("d"); ok {
		t.Error("Get(d) should return false")
	}

	cache.Put("a", 10)
	if v, _ := cache.Get("a"); v != 10 {
		t.Errorf("Get(a) after update = %d, want 10", v)
	}

	cache.Remove("b")
	if _, ok := cache.Get("b"); ok {
		t.Error("Get(b) after Remove should return false")
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	var evicted []string
	cache := NewLRUCache[string, int](Config{
		MaxSize: 2,
		OnEvict: func(key, value interface{}) {
			evicted = append(evicted, key.(string))
		},
	})

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Get("a") // b is now least recently used
	cache.Put("c", 3)

	if _, ok := cache.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if len(evicted) != 1 || evicted[0] != "b" {
		t.Errorf("evicted = %v, want [b]", evicted)
	}

	stats := cache.Stats()
	if stats.Evictions != 1 || stats.Size != 2 || stats.MaxSize != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", stats.Hits, stats.Misses)
	}
}

func TestLRUCache_Unlimited(t *testing.T) {
	cache := NewLRUCache[int, int](Config{MaxSize: -1})
	for i := 0; i < 1000; i++ {
		cache.Put(i, i)
	}
	if cache.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", cache.Len())
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 50})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", (g*100+i)%75)
				cache.Put(key, i)
				cache.Get(key)
			}
		}(g)
	}
	wg.Wait()
	if cache.Len() > 50 {
		t.Errorf("Len() = %d exceeds MaxSize", cache.Len())
	}
}

func TestChantCache(t *testing.T) {
	c := NewDefaultChantCache()

	chant := &volpiano.Chant{Text: "Ky-ri-e", Volpiano: "1---f-gh-h"}
	c.Put("digest-a", Result{Chant: chant})
	failure := errors.New("missing clef")
	c.Put("digest-b", Result{Err: failure})

	got, ok := c.Get("digest-a")
	if !ok || got.Chant != chant || got.Err != nil {
		t.Errorf("Get(digest-a) = %+v, %v", got, ok)
	}
	got, ok = c.Get("digest-b")
	if !ok || got.Err != failure {
		t.Errorf("Get(digest-b) = %+v, %v", got, ok)
	}
	if _, ok := c.Get("digest-c"); ok {
		t.Error("Get(digest-c) should miss")
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if s := c.Stats(); s.Hits != 2 || s.Misses != 1 || s.MaxSize != DefaultConfig().MaxSize {
		t.Errorf("unexpected stats: %+v", s)
	}
}
