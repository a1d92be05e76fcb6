// Package vars implements the variable store of the calculator.
//
// Variables are kept in the order they were first defined, so that the most
// recently added one can be popped. Lookup is linear in the number of
// variables.
package vars

import (
	"errors"
	"fmt"

	"github.com/xiaq/persistent/vector"
)

// Variable is a named value.
type Variable struct {
	Name  string
	Value float64
}

// Errors returned by Store methods.
var (
	ErrNothingToPop    = errors.New("no variables to pop")
	ErrNothingToRemove = errors.New("no variables to remove")
)

// NotDefined is returned when removing a variable that does not exist.
type NotDefined struct{ Name string }

func (e NotDefined) Error() string { return fmt.Sprintf("'%s' is not defined", e.Name) }

// Store is an ordered collection of variables with unique names. The zero
// value is an empty Store ready to use.
//
// Copying a Store is cheap and the copy is independent of the original; the
// underlying persistent vector shares structure between versions.
type Store struct {
	list vector.Vector
}

func (s *Store) vec() vector.Vector {
	if s.list == nil {
		return vector.Empty
	}
	return s.list
}

// Len returns the number of variables.
func (s *Store) Len() int { return s.vec().Len() }

func (s *Store) at(i int) Variable {
	v, _ := s.vec().Index(i)
	return v.(Variable)
}

func (s *Store) find(name string) int {
	for i := 0; i < s.Len(); i++ {
		if s.at(i).Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the value of the named variable.
func (s *Store) Lookup(name string) (float64, bool) {
	if i := s.find(name); i != -1 {
		return s.at(i).Value, true
	}
	return 0, false
}

// Set defines a variable. An existing variable with the same name is updated
// in place and keeps its position; otherwise the variable is appended. It
// reports whether the variable is new.
func (s *Store) Set(name string, value float64) bool {
	v := Variable{name, value}
	if i := s.find(name); i != -1 {
		s.list = s.vec().Assoc(i, v)
		return false
	}
	s.list = s.vec().Cons(v)
	return true
}

// Remove deletes the named variable. The last variable takes the place of
// the removed one.
func (s *Store) Remove(name string) error {
	n := s.Len()
	if n == 0 {
		return ErrNothingToRemove
	}
	i := s.find(name)
	if i == -1 {
		return NotDefined{name}
	}
	s.list = s.vec().Assoc(i, s.at(n-1)).Pop()
	return nil
}

// Pop deletes the most recently added variable.
func (s *Store) Pop() error {
	if s.Len() == 0 {
		return ErrNothingToPop
	}
	s.list = s.vec().Pop()
	return nil
}

// All returns all variables in order.
func (s *Store) All() []Variable {
	vs := make([]Variable, 0, s.Len())
	for it := s.vec().Iterator(); it.HasElem(); it.Next() {
		vs = append(vs, it.Elem().(Variable))
	}
	return vs
}
