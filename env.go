package goscheme

// Env is one frame of the environment chain: a mutable name-to-value
// mapping plus an optional parent. Frames are shared by pointer, so a
// Define through one holder is immediately visible to every closure
// and child frame holding the same frame.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv creates an empty root frame with no parent.
func NewEnv() *Env {
	return &Env{vars: map[string]Value{}}
}

// Extend creates an empty frame whose lookups fall through to parent.
// Parent bindings are not copied.
func Extend(parent *Env) *Env {
	return &Env{vars: map[string]Value{}, parent: parent}
}

// Define binds name in this frame, overwriting any previous binding.
// Ancestor frames are never touched.
func (e *Env) Define(name string, val Value) {
	e.vars[name] = val
}

// Get walks from this frame up through its ancestors and returns the
// first binding found. The boolean is false when the walk reaches a
// root frame without a match.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.vars[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}
