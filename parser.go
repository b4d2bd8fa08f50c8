package goscheme

import "fmt"

// NodeKind identifies the variant of an expression tree node.
type NodeKind int

const (
	NodeNumber NodeKind = iota
	NodeBool
	NodeString
	NodeSymbol
	NodeList
)

// Node is one parsed expression: a literal, a symbol, or an ordered
// list of sub-expressions. Lists are the only compound form; an empty
// list is a valid node.
type Node struct {
	Kind     NodeKind
	Num      int64
	Bool     bool
	Str      string // string literal contents or symbol name
	Children []*Node
}

type parser struct {
	tokens []Token
	pos    int
}

// Parse groups a token sequence into exactly one expression tree.
// Leftover tokens after the first expression are an error.
func Parse(tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	p := &parser{tokens: tokens}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, fmt.Errorf("unexpected token after expression: %s", p.tokens[p.pos])
	}
	return node, nil
}

func (p *parser) parseNode() (*Node, error) {
	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("unexpected end of input")
	}
	tok := p.tokens[p.pos]
	switch tok.Kind {
	case TokLParen:
		return p.parseList()
	case TokRParen:
		return nil, fmt.Errorf("unexpected )")
	case TokNumber:
		p.pos++
		return &Node{Kind: NodeNumber, Num: tok.Num}, nil
	case TokBool:
		p.pos++
		return &Node{Kind: NodeBool, Bool: tok.Bool}, nil
	case TokString:
		p.pos++
		return &Node{Kind: NodeString, Str: tok.Str}, nil
	default:
		p.pos++
		return &Node{Kind: NodeSymbol, Str: tok.Str}, nil
	}
}

func (p *parser) parseList() (*Node, error) {
	p.pos++ // skip (
	children := []*Node{}
	for {
		if p.pos >= len(p.tokens) {
			return nil, fmt.Errorf("unclosed list")
		}
		if p.tokens[p.pos].Kind == TokRParen {
			p.pos++
			return &Node{Kind: NodeList, Children: children}, nil
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}
