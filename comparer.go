package goscheme

// ValuesEqual reports deep structural equality between two values.
func ValuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValNumber:
		return a.Num == b.Num
	case ValBool:
		return a.Bool == b.Bool
	case ValString, ValSymbol, ValBuiltin:
		return a.Str == b.Str
	case ValLambda:
		return lambdasEqual(a.Lambda, b.Lambda)
	case ValList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !ValuesEqual(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Lambdas are equal when they share params, body, and captured frame.
// There is no function identity beyond these three fields.
func lambdasEqual(a, b *Lambda) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Env != b.Env || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return NodesEqual(a.Body, b.Body)
}

// NodesEqual reports structural equality between two expression trees.
func NodesEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NodeNumber:
		return a.Num == b.Num
	case NodeBool:
		return a.Bool == b.Bool
	case NodeString, NodeSymbol:
		return a.Str == b.Str
	case NodeList:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !NodesEqual(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
