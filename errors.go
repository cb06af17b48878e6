package ui

import (
	"errors"
	"fmt"
)

// ErrNotInvertible is returned by Matrix.Invert when the determinant is zero.
var ErrNotInvertible = errors.New("ui: matrix is not invertible")

// ContractError describes a violated caller precondition.
//
// Contract errors are never returned; they are the panic value raised by
// Violation. They mark bugs in the calling code (parenting a top-level
// window, mutating an ended path, reading a table value with the wrong tag),
// and continuing after one would corrupt the data model.
type ContractError struct {
	// Op is the operation whose precondition failed, e.g. "Path.LineTo".
	Op string
	// Msg describes the violation.
	Msg string
}

func (e *ContractError) Error() string {
	return "ui: contract violation in " + e.Op + ": " + e.Msg
}

// Violation reports a contract violation in op. It logs the violation at
// error level and panics with a *ContractError.
func Violation(op, format string, args ...any) {
	err := &ContractError{Op: op, Msg: fmt.Sprintf(format, args...)}
	Logger().Error("contract violation", "op", op, "msg", err.Msg)
	panic(err)
}

// IsContractError reports whether v, typically a value obtained from
// recover, is a contract violation.
func IsContractError(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var ce *ContractError
	return errors.As(err, &ce)
}
