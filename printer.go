package goscheme

import (
	"fmt"
	"strconv"
	"strings"
)

func (v Value) String() string {
	switch v.Kind {
	case ValNumber:
		return strconv.FormatInt(v.Num, 10)
	case ValBool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case ValString:
		return fmt.Sprintf("%q", v.Str)
	case ValSymbol:
		return v.Str
	case ValBuiltin:
		return "#<builtin " + v.Str + ">"
	case ValLambda:
		return "#<lambda (" + strings.Join(v.Lambda.Params, " ") + ")>"
	case ValList:
		parts := make([]string, len(v.List))
		for i, elem := range v.List {
			parts[i] = elem.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "#<unknown>"
	}
}

func (n *Node) String() string {
	switch n.Kind {
	case NodeNumber:
		return strconv.FormatInt(n.Num, 10)
	case NodeBool:
		if n.Bool {
			return "#t"
		}
		return "#f"
	case NodeString:
		return fmt.Sprintf("%q", n.Str)
	case NodeSymbol:
		return n.Str
	case NodeList:
		parts := make([]string, len(n.Children))
		for i, child := range n.Children {
			parts[i] = child.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "#<unknown>"
	}
}
