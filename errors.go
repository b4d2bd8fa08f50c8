package goscheme

import "fmt"

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	ErrUndefinedSymbol ErrorKind = iota
	ErrType
	ErrArityMismatch
	ErrNotCallable
	ErrOther
)

// EvalError is the error type produced by Eval and the builtins. The
// first error encountered aborts the enclosing evaluation; mutations
// performed before the failure are retained.
type EvalError struct {
	Kind ErrorKind
	Msg  string // symbol name for ErrUndefinedSymbol, detail otherwise
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrUndefinedSymbol:
		return "undefined symbol: " + e.Msg
	case ErrType:
		return "type error: " + e.Msg
	case ErrArityMismatch:
		return "arity mismatch"
	case ErrNotCallable:
		return "not callable"
	default:
		return e.Msg
	}
}

func undefinedSymbol(name string) error {
	return &EvalError{Kind: ErrUndefinedSymbol, Msg: name}
}

func typeErrorf(format string, args ...any) error {
	return &EvalError{Kind: ErrType, Msg: fmt.Sprintf(format, args...)}
}

func arityMismatch() error {
	return &EvalError{Kind: ErrArityMismatch}
}

func notCallable() error {
	return &EvalError{Kind: ErrNotCallable}
}

func otherErrorf(format string, args ...any) error {
	return &EvalError{Kind: ErrOther, Msg: fmt.Sprintf(format, args...)}
}
