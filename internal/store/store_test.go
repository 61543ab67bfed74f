package store

import (
	"strings"
	"testing"
	"time"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(
		WithClock(func() time.Time { return testNow }),
		WithSeed(domain.DefaultSeed(testNow)),
	)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func newEmptyStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	s := newEmptyStore(t)
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		c := s.AddCustomer(domain.Customer{Name: "c"})
		if c.ID == 0 {
			t.Fatalf("customer %d got zero id", i)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestNewRefShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		ref := newRef()
		if !strings.HasPrefix(ref, "TD-") || len(ref) != 9 {
			t.Fatalf("unexpected ref %q", ref)
		}
		if ref != strings.ToUpper(ref) {
			t.Fatalf("ref not uppercase: %q", ref)
		}
	}
}
