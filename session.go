package goscheme

import (
	"fmt"
	"strings"
)

// Goodbye is returned when a session receives an exit sentinel.
const Goodbye = "Goodbye and thanks for all the fish!"

// Session is one independent evaluation session: a root frame seeded
// with the builtin library. The frame persists across lines, so a
// define on one line is visible to later lines. Sessions share no
// state with each other.
type Session struct {
	env *Env
}

func NewSession() *Session {
	return &Session{env: DefaultEnv()}
}

// Run feeds one line of source through tokenize, parse, and eval and
// returns the printable outcome. The inputs exit and quit (after
// trimming whitespace) are termination signals: they yield the goodbye
// message and a false flag without ever reaching the evaluator.
func (s *Session) Run(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "exit" || trimmed == "quit" {
		return Goodbye, false
	}

	tokens, err := Tokenize(trimmed)
	if err != nil {
		return fmt.Sprintf("lex error: %v", err), true
	}
	node, err := Parse(tokens)
	if err != nil {
		return fmt.Sprintf("parse error: %v", err), true
	}
	val, err := Eval(node, s.env)
	if err != nil {
		return fmt.Sprintf("eval error: %v", err), true
	}
	return val.String(), true
}

// Eval runs one expression against the session's root frame and
// returns the raw value, for embedding and tests.
func (s *Session) Eval(src string) (Value, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return Value{}, err
	}
	node, err := Parse(tokens)
	if err != nil {
		return Value{}, err
	}
	return Eval(node, s.env)
}
