package goscheme

import (
	"fmt"
	"strconv"
)

// TokenKind identifies the variant of a lexed token.
type TokenKind int

const (
	TokLParen TokenKind = iota
	TokRParen
	TokNumber
	TokSymbol
	TokString
	TokBool
)

// Token is one lexical unit of source text.
type Token struct {
	Kind TokenKind
	Num  int64
	Str  string // symbol name or string contents
	Bool bool
}

func (t Token) String() string {
	switch t.Kind {
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	case TokNumber:
		return strconv.FormatInt(t.Num, 10)
	case TokString:
		return fmt.Sprintf("%q", t.Str)
	case TokBool:
		if t.Bool {
			return "#t"
		}
		return "#f"
	default:
		return t.Str
	}
}

type lexer struct {
	input []rune
	pos   int
}

// Tokenize splits source text into a flat token sequence: parentheses,
// numbers, booleans, string literals, and symbols. Whitespace separates
// tokens and ; comments run to end of line.
func Tokenize(input string) ([]Token, error) {
	lx := &lexer{input: []rune(input)}
	var tokens []Token

	for lx.pos < len(lx.input) {
		ch := lx.input[lx.pos]
		switch {
		case ch == '(':
			lx.pos++
			tokens = append(tokens, Token{Kind: TokLParen})
		case ch == ')':
			lx.pos++
			tokens = append(tokens, Token{Kind: TokRParen})
		case ch == ';':
			lx.skipComment()
		case isWhitespace(ch):
			lx.pos++
		case ch == '"':
			tok, err := lx.lexString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case ch == '#':
			tok, err := lx.lexBool()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isDigit(ch), ch == '-' && lx.peekDigit():
			tok, err := lx.lexNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			tokens = append(tokens, lx.lexSymbol())
		}
	}

	return tokens, nil
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// peekDigit reports whether the rune after the current one is a digit,
// distinguishing a negative number literal from the - symbol.
func (lx *lexer) peekDigit() bool {
	return lx.pos+1 < len(lx.input) && isDigit(lx.input[lx.pos+1])
}

func (lx *lexer) skipComment() {
	for lx.pos < len(lx.input) && lx.input[lx.pos] != '\n' {
		lx.pos++
	}
}

func (lx *lexer) lexString() (Token, error) {
	lx.pos++ // opening quote
	var out []rune
	for lx.pos < len(lx.input) {
		ch := lx.input[lx.pos]
		lx.pos++
		switch ch {
		case '"':
			return Token{Kind: TokString, Str: string(out)}, nil
		case '\\':
			if lx.pos >= len(lx.input) {
				return Token{}, fmt.Errorf("unterminated string literal")
			}
			esc := lx.input[lx.pos]
			lx.pos++
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				return Token{}, fmt.Errorf("invalid escape sequence \\%c", esc)
			}
		default:
			out = append(out, ch)
		}
	}
	return Token{}, fmt.Errorf("unterminated string literal")
}

func (lx *lexer) lexBool() (Token, error) {
	lx.pos++ // #
	if lx.pos >= len(lx.input) {
		return Token{}, fmt.Errorf("invalid token %q", "#")
	}
	ch := lx.input[lx.pos]
	lx.pos++
	switch ch {
	case 't':
		return Token{Kind: TokBool, Bool: true}, nil
	case 'f':
		return Token{Kind: TokBool, Bool: false}, nil
	default:
		return Token{}, fmt.Errorf("invalid token %q", "#"+string(ch))
	}
}

func (lx *lexer) lexNumber() (Token, error) {
	start := lx.pos
	if lx.input[lx.pos] == '-' {
		lx.pos++
	}
	for lx.pos < len(lx.input) && isDigit(lx.input[lx.pos]) {
		lx.pos++
	}
	text := string(lx.input[start:lx.pos])
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("invalid number %q", text)
	}
	return Token{Kind: TokNumber, Num: n}, nil
}

func (lx *lexer) lexSymbol() Token {
	start := lx.pos
	for lx.pos < len(lx.input) {
		ch := lx.input[lx.pos]
		if isWhitespace(ch) || ch == '(' || ch == ')' {
			break
		}
		lx.pos++
	}
	return Token{Kind: TokSymbol, Str: string(lx.input[start:lx.pos])}
}
