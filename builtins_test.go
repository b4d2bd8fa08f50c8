package goscheme

import (
	"errors"
	"testing"
)

func testBuiltin(t *testing.T, fn Builtin, args []Value, want Value) {
	t.Helper()
	got, err := fn(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValuesEqual(got, want) {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func testBuiltinError(t *testing.T, fn Builtin, args []Value, kind ErrorKind) {
	t.Helper()
	got, err := fn(args)
	if err == nil {
		t.Fatalf("expected error, got %s", got)
	}
	var ee *EvalError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *EvalError, got %T: %v", err, err)
	}
	if ee.Kind != kind {
		t.Fatalf("expected error kind %d, got %d (%v)", kind, ee.Kind, err)
	}
}

func nums(ns ...int64) []Value {
	args := make([]Value, len(ns))
	for i, n := range ns {
		args[i] = NumberVal(n)
	}
	return args
}

func TestBuiltinAdd(t *testing.T) {
	testBuiltin(t, builtinAdd, nums(1, 2, 3), NumberVal(6))
	// Sum of no numbers is 0.
	testBuiltin(t, builtinAdd, nil, NumberVal(0))
	testBuiltinError(t, builtinAdd, []Value{NumberVal(1), StringVal("bad")}, ErrType)
}

func TestBuiltinSub(t *testing.T) {
	testBuiltin(t, builtinSub, nums(10, 3, 2), NumberVal(5))
	// Single argument is identity, not negation.
	testBuiltin(t, builtinSub, nums(5), NumberVal(5))
	testBuiltinError(t, builtinSub, []Value{NumberVal(1), BoolVal(true)}, ErrType)
	testBuiltinError(t, builtinSub, nil, ErrOther)
}

func TestBuiltinMul(t *testing.T) {
	testBuiltin(t, builtinMul, nums(2, 3, 4), NumberVal(24))
	// Product of no numbers is 1.
	testBuiltin(t, builtinMul, nil, NumberVal(1))
	testBuiltinError(t, builtinMul, []Value{NumberVal(2), BoolVal(true)}, ErrType)
}

func TestBuiltinDiv(t *testing.T) {
	testBuiltin(t, builtinDiv, nums(20, 2, 2), NumberVal(5))
	testBuiltin(t, builtinDiv, nums(7), NumberVal(7))
	testBuiltinError(t, builtinDiv, nums(10, 0), ErrOther)
	testBuiltinError(t, builtinDiv, nums(10, 2, 0), ErrOther)
	testBuiltinError(t, builtinDiv, nil, ErrOther)
	testBuiltinError(t, builtinDiv, []Value{StringVal("x")}, ErrType)
}

func TestBuiltinEq(t *testing.T) {
	testBuiltin(t, builtinEq, nums(5, 5, 5), BoolVal(true))
	testBuiltin(t, builtinEq, nums(5, 6), BoolVal(false))
	// Fewer than two arguments are trivially equal.
	testBuiltin(t, builtinEq, nums(5), BoolVal(true))
	testBuiltin(t, builtinEq, nil, BoolVal(true))
	testBuiltin(t, builtinEq, []Value{NumberVal(1), StringVal("1")}, BoolVal(false))
	testBuiltin(t, builtinEq,
		[]Value{ListVal(nums(1, 2)), ListVal(nums(1, 2))}, BoolVal(true))
}

func TestBuiltinLt(t *testing.T) {
	testBuiltin(t, builtinLt, nums(1, 2, 3), BoolVal(true))
	testBuiltin(t, builtinLt, nums(1, 3, 2), BoolVal(false))
	testBuiltin(t, builtinLt, nums(1, 1), BoolVal(false))
	// Zero or one argument is vacuously ordered.
	testBuiltin(t, builtinLt, nums(1), BoolVal(true))
	testBuiltin(t, builtinLt, nil, BoolVal(true))
	testBuiltinError(t, builtinLt, []Value{NumberVal(1), StringVal("x")}, ErrType)
}

func TestBuiltinGt(t *testing.T) {
	testBuiltin(t, builtinGt, nums(5, 3, 1), BoolVal(true))
	testBuiltin(t, builtinGt, nums(5, 6), BoolVal(false))
	testBuiltin(t, builtinGt, nums(5, 5), BoolVal(false))
	testBuiltin(t, builtinGt, nums(5), BoolVal(true))
}

func TestBuiltinAnd(t *testing.T) {
	testBuiltin(t, builtinAnd, []Value{BoolVal(true), BoolVal(true)}, BoolVal(true))
	testBuiltin(t, builtinAnd, []Value{BoolVal(true), BoolVal(false)}, BoolVal(false))
	testBuiltin(t, builtinAnd, nil, BoolVal(true))
	testBuiltinError(t, builtinAnd, []Value{BoolVal(true), NumberVal(1)}, ErrType)
	// Short circuit: the decisive #f wins before the bad argument is seen.
	testBuiltin(t, builtinAnd, []Value{BoolVal(false), NumberVal(1)}, BoolVal(false))
}

func TestBuiltinOr(t *testing.T) {
	testBuiltin(t, builtinOr, []Value{BoolVal(false), BoolVal(true)}, BoolVal(true))
	testBuiltin(t, builtinOr, []Value{BoolVal(false), BoolVal(false)}, BoolVal(false))
	testBuiltin(t, builtinOr, nil, BoolVal(false))
	testBuiltinError(t, builtinOr, []Value{BoolVal(false), NumberVal(42)}, ErrType)
	testBuiltin(t, builtinOr, []Value{BoolVal(true), NumberVal(42)}, BoolVal(true))
}

func TestBuiltinNot(t *testing.T) {
	testBuiltin(t, builtinNot, []Value{BoolVal(true)}, BoolVal(false))
	testBuiltin(t, builtinNot, []Value{BoolVal(false)}, BoolVal(true))
	testBuiltinError(t, builtinNot, nil, ErrArityMismatch)
	testBuiltinError(t, builtinNot, []Value{BoolVal(true), BoolVal(false)}, ErrArityMismatch)
	testBuiltinError(t, builtinNot, []Value{NumberVal(1)}, ErrType)
}

func TestBuiltinList(t *testing.T) {
	testBuiltin(t, builtinList, nums(1, 2, 3), ListVal(nums(1, 2, 3)))
	testBuiltin(t, builtinList, nil, ListVal(nil))
}

func TestBuiltinCar(t *testing.T) {
	testBuiltin(t, builtinCar, []Value{ListVal(nums(42, 7))}, NumberVal(42))
	testBuiltinError(t, builtinCar, []Value{ListVal(nil)}, ErrType)
	testBuiltinError(t, builtinCar, []Value{NumberVal(1)}, ErrType)
	testBuiltinError(t, builtinCar, nil, ErrType)
}

func TestBuiltinCdr(t *testing.T) {
	testBuiltin(t, builtinCdr, []Value{ListVal(nums(10, 20, 30))}, ListVal(nums(20, 30)))
	testBuiltin(t, builtinCdr, []Value{ListVal(nums(10))}, ListVal(nil))
	testBuiltinError(t, builtinCdr, []Value{ListVal(nil)}, ErrType)
	testBuiltinError(t, builtinCdr, []Value{StringVal("x")}, ErrType)
}

func TestBuiltinCons(t *testing.T) {
	testBuiltin(t, builtinCons,
		[]Value{NumberVal(1), ListVal(nums(2, 3))}, ListVal(nums(1, 2, 3)))
	testBuiltin(t, builtinCons,
		[]Value{NumberVal(1), ListVal(nil)}, ListVal(nums(1)))
	testBuiltinError(t, builtinCons, nums(1, 2), ErrType)
	testBuiltinError(t, builtinCons, []Value{NumberVal(1)}, ErrType)
}

func TestConsDoesNotMutate(t *testing.T) {
	tail := ListVal(nums(2, 3))
	out, err := builtinCons([]Value{NumberVal(1), tail})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValuesEqual(out, ListVal(nums(1, 2, 3))) {
		t.Fatalf("cons result wrong: %s", out)
	}
	if !ValuesEqual(tail, ListVal(nums(2, 3))) {
		t.Fatalf("cons mutated its argument: %s", tail)
	}
}

func TestDefaultEnvIsIndependent(t *testing.T) {
	a := DefaultEnv()
	b := DefaultEnv()
	a.Define("x", NumberVal(1))
	if _, ok := b.Get("x"); ok {
		t.Fatal("DefaultEnv instances must not share state")
	}
	if _, ok := b.Get("+"); !ok {
		t.Fatal("expected + to be registered")
	}
}
