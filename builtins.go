package goscheme

// DefaultEnv returns a fresh root frame with every builtin registered.
// Each call produces an independent top-level scope, so sessions and
// tests never share state.
func DefaultEnv() *Env {
	env := NewEnv()
	register := func(name string, fn Builtin) {
		env.Define(name, BuiltinVal(name, fn))
	}

	register("+", builtinAdd)
	register("-", builtinSub)
	register("*", builtinMul)
	register("/", builtinDiv)

	register("=", builtinEq)
	register("<", builtinLt)
	register(">", builtinGt)

	register("and", builtinAnd)
	register("or", builtinOr)
	register("not", builtinNot)

	register("list", builtinList)
	register("car", builtinCar)
	register("cdr", builtinCdr)
	register("cons", builtinCons)

	return env
}

// numberArgs validates that every argument is a number before any
// arithmetic runs, so a type error always wins over an arity error.
func numberArgs(args []Value) ([]int64, error) {
	nums := make([]int64, len(args))
	for i, arg := range args {
		if arg.Kind != ValNumber {
			return nil, typeErrorf("expected number, got %s", arg.KindName())
		}
		nums[i] = arg.Num
	}
	return nums, nil
}

// (+ ...) sums zero or more numbers; the empty sum is 0.
func builtinAdd(args []Value) (Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return Value{}, err
	}
	var sum int64
	for _, n := range nums {
		sum += n
	}
	return NumberVal(sum), nil
}

// (- a b c) folds left to right: a-b-c. A single argument is returned
// unchanged; - does not negate.
func builtinSub(args []Value) (Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 0 {
		return Value{}, otherErrorf("expected at least one argument")
	}
	result := nums[0]
	for _, n := range nums[1:] {
		result -= n
	}
	return NumberVal(result), nil
}

// (* ...) multiplies zero or more numbers; the empty product is 1.
func builtinMul(args []Value) (Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return Value{}, err
	}
	var product int64 = 1
	for _, n := range nums {
		product *= n
	}
	return NumberVal(product), nil
}

// (/ a b c) folds left to right, checking each divisor for zero.
func builtinDiv(args []Value) (Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 0 {
		return Value{}, otherErrorf("expected at least one argument")
	}
	result := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return Value{}, otherErrorf("division by zero")
		}
		result /= n
	}
	return NumberVal(result), nil
}

// (= ...) is structural equality over all arguments; fewer than two
// arguments are trivially equal.
func builtinEq(args []Value) (Value, error) {
	if len(args) < 2 {
		return BoolVal(true), nil
	}
	first := args[0]
	for _, arg := range args[1:] {
		if !ValuesEqual(first, arg) {
			return BoolVal(false), nil
		}
	}
	return BoolVal(true), nil
}

// (< ...) is true iff the arguments are strictly increasing.
func builtinLt(args []Value) (Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return Value{}, err
	}
	for i := 1; i < len(nums); i++ {
		if nums[i-1] >= nums[i] {
			return BoolVal(false), nil
		}
	}
	return BoolVal(true), nil
}

// (> ...) is true iff the arguments are strictly decreasing.
func builtinGt(args []Value) (Value, error) {
	nums, err := numberArgs(args)
	if err != nil {
		return Value{}, err
	}
	for i := 1; i < len(nums); i++ {
		if nums[i-1] <= nums[i] {
			return BoolVal(false), nil
		}
	}
	return BoolVal(true), nil
}

// (and ...) returns #f at the first false argument. Arguments were
// already evaluated during application, so the short circuit only
// skips validation of the rest.
func builtinAnd(args []Value) (Value, error) {
	for _, arg := range args {
		if arg.Kind != ValBool {
			return Value{}, typeErrorf("expected boolean, got %s", arg.KindName())
		}
		if !arg.Bool {
			return BoolVal(false), nil
		}
	}
	return BoolVal(true), nil
}

// (or ...) returns #t at the first true argument.
func builtinOr(args []Value) (Value, error) {
	for _, arg := range args {
		if arg.Kind != ValBool {
			return Value{}, typeErrorf("expected boolean, got %s", arg.KindName())
		}
		if arg.Bool {
			return BoolVal(true), nil
		}
	}
	return BoolVal(false), nil
}

// (not b) takes exactly one boolean.
func builtinNot(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, arityMismatch()
	}
	if args[0].Kind != ValBool {
		return Value{}, typeErrorf("expected boolean, got %s", args[0].KindName())
	}
	return BoolVal(!args[0].Bool), nil
}

// (list ...) wraps zero or more arguments into a list value.
func builtinList(args []Value) (Value, error) {
	return ListVal(args), nil
}

// (car l) returns the first element of a non-empty list.
func builtinCar(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != ValList || len(args[0].List) == 0 {
		return Value{}, typeErrorf("expected non-empty list")
	}
	return args[0].List[0], nil
}

// (cdr l) returns a non-empty list without its first element.
func builtinCdr(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != ValList || len(args[0].List) == 0 {
		return Value{}, typeErrorf("expected non-empty list")
	}
	rest := make([]Value, len(args[0].List)-1)
	copy(rest, args[0].List[1:])
	return ListVal(rest), nil
}

// (cons x l) prepends x to the list l, producing a new list.
func builtinCons(args []Value) (Value, error) {
	if len(args) != 2 || args[1].Kind != ValList {
		return Value{}, typeErrorf("expected value and list")
	}
	out := make([]Value, 0, len(args[1].List)+1)
	out = append(out, args[0])
	out = append(out, args[1].List...)
	return ListVal(out), nil
}
