package minerva

import "fmt"

// Position is a byte offset paired with its 1-based line and column,
// attached to every lex/parse error so the caller can report where in the
// source text it was detected. Column counts bytes, not runes: the lexer
// only ever handles ASCII structural characters itself and passes
// multi-byte UTF-8 through uninspected (inside strings and symbols), so
// it advances column once per byte rather than decoding runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
