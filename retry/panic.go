package retry

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the error an operation panic is converted into when the
// retrier was built with WithRecoverPanics(true).
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("retrier: panic in operation: %v", e.Value)
}

func newPanicError(value any) *PanicError {
	return &PanicError{
		Value: value,
		Stack: debug.Stack(),
	}
}
