package goscheme

// ValueKind identifies the variant of a runtime value.
type ValueKind int

const (
	ValNumber ValueKind = iota
	ValBool
	ValString
	ValSymbol
	ValBuiltin
	ValLambda
	ValList
)

// Builtin is a native function implemented in Go, called with eagerly
// evaluated arguments. Builtins own their arity and type validation.
type Builtin func(args []Value) (Value, error)

// Lambda is a user-defined function: parameter names, a single body
// expression, and the frame captured where the lambda literal was
// evaluated. Free variables resolve through that frame at call time,
// never through the caller's.
type Lambda struct {
	Params []string
	Body   *Node
	Env    *Env
}

// Value is the runtime value sum type. Values are immutable once
// constructed; list contents are never mutated in place.
type Value struct {
	Kind    ValueKind
	Num     int64
	Bool    bool
	Str     string // string contents, symbol name, or builtin name
	Builtin Builtin
	Lambda  *Lambda
	List    []Value
}

func NumberVal(n int64) Value  { return Value{Kind: ValNumber, Num: n} }
func BoolVal(b bool) Value     { return Value{Kind: ValBool, Bool: b} }
func StringVal(s string) Value { return Value{Kind: ValString, Str: s} }
func SymbolVal(s string) Value { return Value{Kind: ValSymbol, Str: s} }
func LambdaVal(l *Lambda) Value {
	return Value{Kind: ValLambda, Lambda: l}
}
func BuiltinVal(name string, fn Builtin) Value {
	return Value{Kind: ValBuiltin, Str: name, Builtin: fn}
}
func ListVal(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Kind: ValList, List: elems}
}

// KindName returns a human-readable name for the value's variant,
// used in error messages.
func (v Value) KindName() string {
	switch v.Kind {
	case ValNumber:
		return "number"
	case ValBool:
		return "boolean"
	case ValString:
		return "string"
	case ValSymbol:
		return "symbol"
	case ValBuiltin:
		return "builtin"
	case ValLambda:
		return "lambda"
	case ValList:
		return "list"
	default:
		return "unknown"
	}
}
