package minerva

// Interner is the process-wide symbol table assumed by §6 as an external
// collaborator: intern(str) -> SymbolID stable within a process, and the
// inverse lookup. This package provides a concrete implementation since a
// runnable core needs *something* behind SymbolValue/ToSymbol; the
// concurrency model (§5) is single-threaded, so no locking is attempted.
type Interner struct {
	strings []string
	ids     map[string]SymbolID
}

// NewInterner returns an empty interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]SymbolID)}
}

// DefaultInterner is the interner used by the package-level reader entry
// point (Parse) and by Value.String. Callers that need an isolated symbol
// table (tests, multiple independent readers) should construct their own
// Interner and use ParseWith / Display instead.
var DefaultInterner = NewInterner()

// Intern returns the stable SymbolID for s, assigning a new one the first
// time s is seen.
func (in *Interner) Intern(s string) SymbolID {
	if id, ok := in.ids[s]; ok {
		return id
	}
	id := SymbolID(len(in.strings))
	in.strings = append(in.strings, s)
	in.ids[s] = id
	return id
}

// Lookup returns the text behind id, or false if id was never interned by
// this Interner.
func (in *Interner) Lookup(id SymbolID) (string, bool) {
	if int(id) >= len(in.strings) {
		return "", false
	}
	return in.strings[id], true
}
