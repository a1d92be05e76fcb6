package vars

import (
	"fmt"
	"strings"
	"unicode"
)

// InvalidName is returned when the left side of an assignment is not a valid
// variable name.
type InvalidName struct{ Name string }

func (e InvalidName) Error() string {
	if e.Name == "" {
		return "missing variable name before '='"
	}
	return fmt.Sprintf("'%s' is not a valid variable name", e.Name)
}

// IsAssignment reports whether a line is an assignment of the form
// "name = expr".
func IsAssignment(line string) bool { return strings.Contains(line, "=") }

// SplitAssignment splits an assignment at its first '='. It returns the name
// with surrounding whitespace removed, and the index in line where the
// expression starts. Names must be nonempty and contain no whitespace.
func SplitAssignment(line string) (name string, exprStart int, err error) {
	eq := strings.IndexByte(line, '=')
	if eq == -1 {
		return "", -1, fmt.Errorf("%q is not an assignment", line)
	}
	name = strings.TrimSpace(line[:eq])
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) != -1 {
		return "", -1, InvalidName{name}
	}
	return name, eq + 1, nil
}
