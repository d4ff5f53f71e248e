package minerva

import (
	"math/big"
	"strconv"
	"strings"
)

// Parse lexes and parses source text into an ordered sequence of top-level
// Values, using DefaultHeap and DefaultInterner. See ParseWith for a
// version that takes its own Heap/Interner.
func Parse(source string) ([]Value, error) {
	return ParseWith(DefaultHeap, DefaultInterner, source)
}

// ParseWith is the reader's public entry point, matching §6: lexing and
// AST building are internal detail behind this one call.
func ParseWith(heap *Heap, interner *Interner, source string) ([]Value, error) {
	toks, err := newLexer(source).tokens()
	if err != nil {
		return nil, err
	}
	return buildAST(heap, interner, toks)
}

func buildAST(heap *Heap, interner *Interner, tokens []Token) ([]Value, error) {
	var exprs []Value
	idx := 0
	for idx < len(tokens) {
		val, next, err := readDatum(heap, interner, tokens, idx)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, val)
		idx = next
	}
	return exprs, nil
}

// readDatum reads exactly one top-level datum starting at tokens[idx],
// returning the Value built and the index just past it.
func readDatum(heap *Heap, interner *Interner, tokens []Token, idx int) (Value, int, error) {
	if idx >= len(tokens) {
		return 0, 0, ReadError{Kind: ErrEOF, Pos: posAt(tokens, idx)}
	}
	tok := tokens[idx]
	switch tok.Kind {
	case TokenRightParen:
		return 0, 0, ReadError{Kind: ErrToken, Pos: tok.Pos}
	case TokenLeftParen:
		return readList(heap, interner, tokens, idx+1)
	case TokenQuote:
		inner, next, err := readDatum(heap, interner, tokens, idx+1)
		if err != nil {
			return 0, 0, err
		}
		quote := SymbolValue(interner.Intern("quote"))
		quoted := heap.NewPair(quote, heap.NewPair(inner, NilValue()))
		return quoted, next, nil
	default:
		v, err := literalValue(heap, interner, tok)
		if err != nil {
			return 0, 0, err
		}
		return v, idx + 1, nil
	}
}

// readList reads list elements until the matching RightParen. idx points
// just past the opening LeftParen already consumed by the caller.
func readList(heap *Heap, interner *Interner, tokens []Token, idx int) (Value, int, error) {
	var items []Value
	for {
		if idx >= len(tokens) {
			return 0, 0, ReadError{Kind: ErrEOF, Pos: posAt(tokens, idx)}
		}
		if tokens[idx].Kind == TokenRightParen {
			return buildProperList(heap, items), idx + 1, nil
		}
		val, next, err := readDatum(heap, interner, tokens, idx)
		if err != nil {
			return 0, 0, err
		}
		items = append(items, val)
		idx = next
	}
}

func buildProperList(heap *Heap, items []Value) Value {
	result := NilValue()
	for i := len(items) - 1; i >= 0; i-- {
		result = heap.NewPair(items[i], result)
	}
	return result
}

func posAt(tokens []Token, idx int) Position {
	if idx < len(tokens) {
		return tokens[idx].Pos
	}
	if len(tokens) == 0 {
		return Position{Line: 1, Column: 1}
	}
	return tokens[len(tokens)-1].Pos
}

func literalValue(heap *Heap, interner *Interner, tok Token) (Value, error) {
	switch tok.Kind {
	case TokenNil:
		return NilValue(), nil
	case TokenBool:
		return BoolValue(tok.Bool), nil
	case TokenString:
		return heap.NewString([]byte(tok.Text)), nil
	case TokenSymbol:
		return SymbolValue(interner.Intern(tok.Text)), nil
	case TokenNumber:
		return parseNumberLiteral(heap, tok)
	default:
		return 0, ReadError{Kind: ErrToken, Pos: tok.Pos}
	}
}

// parseNumberLiteral resolves the Open Question on numeric literal width:
// a digit string with exactly one interior '.' reads as Float; otherwise it
// reads as Integer when it fits in int32, or is promoted to a heap BigInt
// (reserved tag 110) when it doesn't.
func parseNumberLiteral(heap *Heap, tok Token) (Value, error) {
	text := tok.Text
	if strings.Contains(text, ".") {
		if strings.HasSuffix(text, ".") {
			return 0, ReadError{Kind: ErrInput, Pos: tok.Pos}
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, ReadError{Kind: ErrInput, Pos: tok.Pos}
		}
		return FloatValue(f), nil
	}
	if i, err := strconv.ParseInt(text, 10, 32); err == nil {
		return IntegerValue(int32(i)), nil
	}
	bi, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return 0, ReadError{Kind: ErrInput, Pos: tok.Pos}
	}
	return heap.NewBigInt(bi), nil
}
