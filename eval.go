package goscheme

import "fmt"

// Eval evaluates one expression node against an environment frame and
// returns a value or the first error encountered.
//
// Literals evaluate to themselves, symbols resolve through the frame
// chain, and a non-empty list is either one of the reserved special
// forms (define, lambda, begin, if, let) or a function application.
// Evaluation is strict and single-threaded; recursion depth is bounded
// by the host call stack.
func Eval(node *Node, env *Env) (Value, error) {
	switch node.Kind {
	case NodeNumber:
		return NumberVal(node.Num), nil
	case NodeBool:
		return BoolVal(node.Bool), nil
	case NodeString:
		return StringVal(node.Str), nil
	case NodeSymbol:
		if val, ok := env.Get(node.Str); ok {
			return val, nil
		}
		return Value{}, undefinedSymbol(node.Str)
	case NodeList:
		if len(node.Children) == 0 {
			return ListVal(nil), nil
		}
		if head := node.Children[0]; head.Kind == NodeSymbol {
			switch head.Str {
			case "define":
				return evalDefine(node.Children, env)
			case "lambda":
				return evalLambda(node.Children, env)
			case "begin":
				return evalBegin(node.Children, env)
			case "if":
				return evalIf(node.Children, env)
			case "let":
				return evalLet(node.Children, env)
			}
		}
		return evalApplication(node.Children, env)
	default:
		return Value{}, fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// (define name expr) evaluates expr, binds name in the current frame,
// and yields the bound value.
func evalDefine(form []*Node, env *Env) (Value, error) {
	if len(form) != 3 {
		return Value{}, arityMismatch()
	}
	name := form[1]
	if name.Kind != NodeSymbol {
		return Value{}, typeErrorf("expected symbol after define")
	}
	val, err := Eval(form[2], env)
	if err != nil {
		return Value{}, err
	}
	env.Define(name.Str, val)
	return val, nil
}

// (lambda (p1 p2 ...) body) captures the current frame by reference.
// The body is a single expression; multi-statement bodies go through
// begin.
func evalLambda(form []*Node, env *Env) (Value, error) {
	if len(form) != 3 {
		return Value{}, arityMismatch()
	}
	if form[1].Kind != NodeList {
		return Value{}, typeErrorf("expected list of params")
	}
	params := make([]string, len(form[1].Children))
	for i, p := range form[1].Children {
		if p.Kind != NodeSymbol {
			return Value{}, typeErrorf("expected symbol in parameter list")
		}
		params[i] = p.Str
	}
	return LambdaVal(&Lambda{Params: params, Body: form[2], Env: env}), nil
}

// (begin e1 e2 ... en) evaluates left to right and yields the last
// value. An empty begin yields #f, not an error.
func evalBegin(form []*Node, env *Env) (Value, error) {
	result := BoolVal(false)
	for _, expr := range form[1:] {
		val, err := Eval(expr, env)
		if err != nil {
			return Value{}, err
		}
		result = val
	}
	return result, nil
}

// (if cond then else) requires a boolean condition; there is no
// implicit truthiness. Only the chosen branch is evaluated.
func evalIf(form []*Node, env *Env) (Value, error) {
	if len(form) != 4 {
		return Value{}, arityMismatch()
	}
	cond, err := Eval(form[1], env)
	if err != nil {
		return Value{}, err
	}
	if cond.Kind != ValBool {
		return Value{}, typeErrorf("expected boolean in if condition, got %s", cond.KindName())
	}
	if cond.Bool {
		return Eval(form[2], env)
	}
	return Eval(form[3], env)
}

// (let ((n1 v1) (n2 v2) ...) body) binds in parallel: every binding
// expression is evaluated in the outer frame, so bindings cannot see
// each other. The body runs in one fresh child frame.
func evalLet(form []*Node, env *Env) (Value, error) {
	if len(form) != 3 {
		return Value{}, arityMismatch()
	}
	if form[1].Kind != NodeList {
		return Value{}, typeErrorf("expected list of bindings in let")
	}
	child := Extend(env)
	for _, pair := range form[1].Children {
		if pair.Kind != NodeList || len(pair.Children) != 2 {
			return Value{}, typeErrorf("invalid binding in let")
		}
		name := pair.Children[0]
		if name.Kind != NodeSymbol {
			return Value{}, typeErrorf("expected symbol in let binding")
		}
		val, err := Eval(pair.Children[1], env)
		if err != nil {
			return Value{}, err
		}
		child.Define(name.Str, val)
	}
	return Eval(form[2], child)
}

// Application: evaluate the operator, then every operand left to
// right, then invoke. Arguments are fully evaluated before the call.
func evalApplication(form []*Node, env *Env) (Value, error) {
	fn, err := Eval(form[0], env)
	if err != nil {
		return Value{}, err
	}
	args := make([]Value, len(form)-1)
	for i, argNode := range form[1:] {
		val, err := Eval(argNode, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = val
	}
	switch fn.Kind {
	case ValBuiltin:
		return fn.Builtin(args)
	case ValLambda:
		return applyLambda(fn.Lambda, args)
	default:
		return Value{}, notCallable()
	}
}

// applyLambda binds arguments in a fresh frame extending the lambda's
// captured environment, never the caller's. This is what keeps scoping
// lexical rather than dynamic.
func applyLambda(fn *Lambda, args []Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return Value{}, arityMismatch()
	}
	call := Extend(fn.Env)
	for i, param := range fn.Params {
		call.Define(param, args[i])
	}
	return Eval(fn.Body, call)
}
