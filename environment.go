package minerva

// Environment is a lexically scoped mapping from name to Value, linked to
// an optional parent scope. Environments are always handled through a
// pointer: duplicating the pointer is "shared ownership" for free, since a
// map held behind a pointer is naturally visible to every holder, which is
// exactly how recursive bindings are realised (define f in the enclosing
// scope, then evaluate a body that captured that same scope).
type Environment struct {
	bindings map[string]Value
	parent   *Environment
}

// NewEnvironment returns an empty root environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Value)}
}

// NewEnvironmentFromBindings returns a root environment pre-populated from
// m. m is copied so that later mutation of the caller's map doesn't leak
// into the environment (used to install the initial set of primitive
// procedures ahead of evaluation).
func NewEnvironmentFromBindings(m map[string]Value) *Environment {
	bindings := make(map[string]Value, len(m))
	for k, v := range m {
		bindings[k] = v
	}
	return &Environment{bindings: bindings}
}

// Extend creates a fresh, empty scope whose parent is e.
func (e *Environment) Extend() *Environment {
	return &Environment{bindings: make(map[string]Value), parent: e}
}

// Lookup searches e, then e's parent chain, returning the first binding
// found. The second return value is false if name is bound nowhere in the
// chain.
func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings[name]; ok {
			return v, true
		}
	}
	return Value(0), false
}

// Define installs name -> value in e's own scope, shadowing any binding of
// the same name in a parent scope. It is visible immediately to every
// other holder of e.
func (e *Environment) Define(name string, value Value) {
	e.bindings[name] = value
}

// CloneForProcedure returns a shallow copy of e's local bindings and parent
// reference. Binding procedure parameters into the clone, rather than into
// e itself, keeps argument installation from leaking into the defining
// scope.
func (e *Environment) CloneForProcedure() *Environment {
	bindings := make(map[string]Value, len(e.bindings))
	for k, v := range e.bindings {
		bindings[k] = v
	}
	return &Environment{bindings: bindings, parent: e.parent}
}

// Keys returns the names bound in e's own scope, not the parent chain.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.bindings))
	for k := range e.bindings {
		keys = append(keys, k)
	}
	return keys
}

// Equal always reports false: Environments are mutable, so identity is not
// stable under comparison. This is observable only if an Environment leaks
// into a Value, which it cannot — closures hold their Environment
// internally and are themselves compared by pointer identity at the Value
// level.
func (e *Environment) Equal(other *Environment) bool { return false }

// mark marks every Value bound in e and walks the parent chain, so that
// marking a closure's captured environment reaches every Value it can
// still observe.
func (e *Environment) mark() {
	for env := e; env != nil; env = env.parent {
		for _, v := range env.bindings {
			Mark(v)
		}
	}
}
