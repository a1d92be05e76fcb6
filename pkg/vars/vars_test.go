package vars

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_SetAndLookup(t *testing.T) {
	var s Store
	if _, ok := s.Lookup("x"); ok {
		t.Errorf("zero Store has x")
	}

	if added := s.Set("x", 5); !added {
		t.Errorf("Set(x) on empty store reports not added")
	}
	s.Set("y", 2)
	if added := s.Set("x", 7); added {
		t.Errorf("Set(x) again reports added")
	}

	if v, ok := s.Lookup("x"); v != 7 || !ok {
		t.Errorf("Lookup(x) -> (%v, %v), want (7, true)", v, ok)
	}
	// Redefinition overwrites in place.
	want := []Variable{{"x", 7}, {"y", 2}}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
}

func TestStore_SetAppendsInOrder(t *testing.T) {
	var s Store
	var want []Variable
	for i := 0; i < 100; i++ {
		v := Variable{fmt.Sprintf("v%d", i), float64(i)}
		s.Set(v.Name, v.Value)
		want = append(want, v)
	}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
	if v, ok := s.Lookup("v64"); v != 64 || !ok {
		t.Errorf("Lookup(v64) -> (%v, %v), want (64, true)", v, ok)
	}
}

func TestStore_Remove(t *testing.T) {
	var s Store
	if err := s.Remove("x"); err != ErrNothingToRemove {
		t.Errorf("Remove on empty store -> %v, want ErrNothingToRemove", err)
	}

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)

	if err := s.Remove("nope"); err != (NotDefined{"nope"}) {
		t.Errorf("Remove(nope) -> %v, want NotDefined", err)
	}
	if err := s.Remove("a"); err != nil {
		t.Errorf("Remove(a) -> %v", err)
	}
	// The last variable fills the gap.
	want := []Variable{{"c", 3}, {"b", 2}}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
	if _, ok := s.Lookup("a"); ok {
		t.Errorf("a still defined after Remove")
	}
}

func TestStore_Pop(t *testing.T) {
	var s Store
	if err := s.Pop(); err != ErrNothingToPop {
		t.Errorf("Pop on empty store -> %v, want ErrNothingToPop", err)
	}
	s.Set("a", 1)
	s.Set("b", 2)
	if err := s.Pop(); err != nil {
		t.Errorf("Pop -> %v", err)
	}
	if diff := cmp.Diff([]Variable{{"a", 1}}, s.All()); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
	if s.Len() != 1 {
		t.Errorf("Len() -> %d, want 1", s.Len())
	}
}

func TestStore_CopyIsIndependent(t *testing.T) {
	var s Store
	s.Set("a", 1)
	c := s
	c.Set("a", 2)
	c.Set("b", 3)

	if v, _ := s.Lookup("a"); v != 1 {
		t.Errorf("original a = %v after modifying copy, want 1", v)
	}
	if s.Len() != 1 {
		t.Errorf("original Len() = %d after modifying copy, want 1", s.Len())
	}
}

func TestNotDefined_Error(t *testing.T) {
	if got := (NotDefined{"x"}).Error(); got != "'x' is not defined" {
		t.Errorf("Error() -> %q", got)
	}
}
