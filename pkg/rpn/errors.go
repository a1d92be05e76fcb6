package rpn

import (
	"errors"
	"fmt"

	"src.rpncalc.dev/pkg/diag"
)

// InvalidToken is returned when an item of an expression is not an operator,
// ans, a constant, a variable reference or a number.
type InvalidToken struct {
	Item string
	diag.Ranging
}

func (e *InvalidToken) Error() string {
	return fmt.Sprintf("'%s' is an invalid token", e.Item)
}

// ErrorType returns the type shown in diagnostics.
func (e *InvalidToken) ErrorType() string { return "invalid token" }

// UndefinedVariable is returned when a $name reference names no variable.
type UndefinedVariable struct {
	Name string
	diag.Ranging
}

func (e *UndefinedVariable) Error() string {
	return fmt.Sprintf("'%s' is not defined", e.Name)
}

// ErrorType returns the type shown in diagnostics.
func (e *UndefinedVariable) ErrorType() string { return "undefined variable" }

// NotANumber is returned when an operator finds an operand slot that holds no
// number. Sequences built by Tokenize never trigger it unless an operator has
// nothing at all to its left.
type NotANumber struct {
	Index int
	Token Token
}

func (e *NotANumber) Error() string {
	return fmt.Sprintf("internal error: slot %d holds %v, not a number", e.Index, e.Token)
}

// Source is an expression along with a name for use in diagnostics.
type Source struct {
	Name string
	Code string
}

type positionedError interface {
	error
	diag.Ranger
	ErrorType() string
}

// Contextualize converts an error that carries the position of an item into a
// *diag.Error showing that item in src. The position is shifted by offset
// bytes first, for expressions that are a suffix of src.Code. Other errors are
// returned unchanged.
func Contextualize(src Source, offset int, err error) error {
	var perr positionedError
	if !errors.As(err, &perr) {
		return err
	}
	return &diag.Error{
		Type:    perr.ErrorType(),
		Message: perr.Error(),
		Context: *diag.NewContext(src.Name, src.Code, perr.Range().Shift(offset)),
	}
}
