package cache

import (
	"errors"
	"testing"
)

func value(v int) func() (int, error) {
	return func() (int, error) { return v, nil }
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.GetOrCreate("a", value(1))
	c.GetOrCreate("b", value(2))
	c.GetOrCreate("a", value(0))
	c.GetOrCreate("c", value(3))

	tests := []struct {
		key     string
		want    int
		created bool
	}{
		{"a", 1, false},
		{"c", 3, false},
		{"b", -1, true},
	}
	for _, tt := range tests {
		created := false
		got, err := c.GetOrCreate(tt.key, func() (int, error) { created = true; return -1, nil })
		if err != nil || got != tt.want || created != tt.created {
			t.Errorf("GetOrCreate(%q) = %d, %v, created %v; want %d, created %v",
				tt.key, got, err, created, tt.want, tt.created)
		}
	}
	if s := c.Stats(); s.Evictions != 2 || s.Len != 2 || s.Capacity != 2 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](4)
	calls := 0
	create := func() (string, error) { calls++; return "v", nil }

	for range 3 {
		if v, err := c.GetOrCreate(1, create); err != nil || v != "v" {
			t.Fatalf("GetOrCreate = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrCreate(2, func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if c.Stats().Len != 1 {
		t.Error("failed create was cached")
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 2 {
		t.Errorf("hits %d misses %d, want 2 and 2", s.Hits, s.Misses)
	}
	if r := s.HitRate(); r != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", r)
	}
}

func TestCapacityAtLeastOne(t *testing.T) {
	c := New[int, int](0)
	if c.Stats().Capacity != 1 {
		t.Errorf("capacity = %d, want 1", c.Stats().Capacity)
	}
	c.GetOrCreate(1, value(1))
	c.GetOrCreate(2, value(2))
	if s := c.Stats(); s.Len != 1 || s.Evictions != 1 {
		t.Errorf("Stats() = %+v, want one entry after one eviction", s)
	}
	if (Stats{}).HitRate() != 0 {
		t.Error("HitRate before any lookup is not 0")
	}
}
