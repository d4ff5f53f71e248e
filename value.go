package minerva

import (
	"math"
	"strconv"
	"unsafe"
)

// Value is a single 64-bit NaN-boxed machine word. Every runtime value of
// every kind produced by this package fits in one Value: immediates are
// packed into the bit patterns of IEEE-754 doubles that are never valid
// finite numbers (the exponent-all-ones region), while heap-allocated
// objects are represented as a tagged 48-bit address of their header.
type Value uint64

// SymbolID identifies an interned symbol. It is deliberately capped at 32
// bits; see Interner.
type SymbolID uint32

const (
	// nanBits is the bit pattern of +Infinity: sign=0, exponent all ones,
	// mantissa zero. Any word whose exponent field is all ones ANDs down
	// to this value, which is how the non-float branch is recognised.
	nanBits uint64 = 0x7FF0000000000000

	tagMask uint64 = 0b111 << 48
	immMask uint64 = 0b1111 << 44

	immTag uint64 = 0b000 << 48

	voidTag uint64 = 0b0001 << 44
	nilTag  uint64 = 0b0010 << 44
	boolTag uint64 = 0b0011 << 44
	intTag  uint64 = 0b0100 << 44
	symTag  uint64 = 0b0101 << 44

	closureTag uint64 = 0b001 << 48
	pairTag    uint64 = 0b010 << 48
	vectorTag  uint64 = 0b011 << 48
	stringTag  uint64 = 0b100 << 48
	hashMapTag uint64 = 0b101 << 48
	bigIntTag  uint64 = 0b110 << 48

	pointerMask uint64 = (1 << 48) - 1

	trueBit  uint64 = 1
	falseBit uint64 = 0
)

func isImmediate(v Value, subtag uint64) bool {
	w := uint64(v)
	return w&nanBits == nanBits && w&tagMask == immTag && w&immMask == subtag
}

func isPointer(v Value, tag uint64) bool {
	w := uint64(v)
	return w&nanBits == nanBits && w&tagMask == tag
}

// ---- Immediate constructors ----

// VoidValue returns the Value representing the absence of a result.
func VoidValue() Value { return Value(nanBits | immTag | voidTag) }

// NilValue returns the empty list.
func NilValue() Value { return Value(nanBits | immTag | nilTag) }

// TrueValue and FalseValue are the two Bool immediates.
func TrueValue() Value { return Value(nanBits | immTag | boolTag | trueBit) }
func FalseValue() Value { return Value(nanBits | immTag | boolTag | falseBit) }

// BoolValue builds a Bool immediate from a native bool.
func BoolValue(b bool) Value {
	if b {
		return TrueValue()
	}
	return FalseValue()
}

// IntegerValue packs a signed 32-bit integer.
func IntegerValue(i int32) Value {
	return Value(nanBits | immTag | intTag | uint64(uint32(i)))
}

// SymbolValue packs an interned SymbolID.
func SymbolValue(id SymbolID) Value {
	return Value(nanBits | immTag | symTag | uint64(id))
}

// FloatValue wraps a float64 directly in its IEEE-754 bit pattern. Any NaN
// is canonicalised to Go's quiet NaN so that runtime-constructed NaNs are at
// least stable bit patterns; per the NaN-boxing scheme above, an
// exponent-all-ones word always falls on the non-float side of IsFloat
// regardless of its mantissa, so NaN and +/-Inf float values are not
// round-trippable through this representation (a limitation inherited from
// the NaN-boxing technique itself, not something this package papers over).
func FloatValue(f float64) Value {
	if math.IsNaN(f) {
		f = math.NaN()
	}
	return Value(math.Float64bits(f))
}

// ---- Predicates ----

func (v Value) IsVoid() bool { return isImmediate(v, voidTag) }
func (v Value) IsNil() bool { return isImmediate(v, nilTag) }
func (v Value) IsBool() bool { return isImmediate(v, boolTag) }
func (v Value) IsInteger() bool { return isImmediate(v, intTag) }
func (v Value) IsSymbol() bool { return isImmediate(v, symTag) }

// IsFloat is true for any word that is not classified into the immediate or
// pointer tag space, i.e. every ordinary IEEE-754 double whose exponent
// isn't all ones.
func (v Value) IsFloat() bool { return uint64(v)&nanBits != nanBits }

func (v Value) IsClosure() bool { return isPointer(v, closureTag) }
func (v Value) IsPair() bool { return isPointer(v, pairTag) }
func (v Value) IsVector() bool { return isPointer(v, vectorTag) }
func (v Value) IsString() bool { return isPointer(v, stringTag) }
func (v Value) IsHashMap() bool { return isPointer(v, hashMapTag) }
func (v Value) IsBigInt() bool { return isPointer(v, bigIntTag) }

// IsTrue and IsFalse report whether v is exactly the Bool immediate asked
// for; calling either on a non-Bool value simply returns false.
func (v Value) IsTrue() bool { return v == TrueValue() }
func (v Value) IsFalse() bool { return v == FalseValue() }

// ---- Immediate accessors ----

// ToInteger returns the signed 32-bit payload. Calling it on a non-Integer
// Value is a contract violation; see debugAssertKind.
func (v Value) ToInteger() int32 {
	debugAssertKind(v.IsInteger(), "ToInteger", v)
	return int32(uint32(v))
}

// ToFloat reinterprets the word as float64.
func (v Value) ToFloat() float64 {
	debugAssertKind(v.IsFloat(), "ToFloat", v)
	return math.Float64frombits(uint64(v))
}

// ToSymbol returns the interned SymbolID payload.
func (v Value) ToSymbol() SymbolID {
	debugAssertKind(v.IsSymbol(), "ToSymbol", v)
	return SymbolID(uint32(v))
}

// signExtend48 takes the low 48 bits of w and sign-extends them through bits
// 48-63, exactly reconstructing a canonical 64-bit address from the
// pointer-tagged word (any tag bits above bit 47 are discarded by the left
// shift before the arithmetic right shift restores the sign).
func signExtend48(w uint64) uint64 {
	return uint64(int64(w<<16) >> 16)
}

// pointerAddr reconstructs the heap address embedded in a pointer-tagged
// Value. It is only meaningful when one of the pointer predicates holds.
func (v Value) pointerAddr() uintptr {
	return uintptr(signExtend48(uint64(v)))
}

func newPointerValue(tag uint64, p unsafe.Pointer) Value {
	addr := uint64(uintptr(p)) & pointerMask
	return Value(nanBits | tag | addr)
}

func (v Value) header() *objHeader {
	switch {
	case v.IsClosure(), v.IsPair(), v.IsVector(), v.IsString(), v.IsHashMap(), v.IsBigInt():
		return (*objHeader)(unsafe.Pointer(v.pointerAddr()))
	default:
		return nil
	}
}

// ---- Printing ----

// String implements fmt.Stringer using the package's DefaultInterner to
// resolve symbols. Use Display to print against a specific Interner.
func (v Value) String() string {
	return v.Display(DefaultInterner)
}

// Display renders v as canonical S-expression text, per §4.1 of the value
// representation: Void prints nothing, Nil prints "()", pairs print as
// "(e1 e2 ... eN)" or, for improper lists, "(e1 ... eK . tail)". Printing a
// Value whose pair spine is circular does not terminate; this mirrors the
// documented limitation of the reference printer.
func (v Value) Display(in *Interner) string {
	switch {
	case v.IsVoid():
		return ""
	case v.IsNil():
		return "()"
	case v.IsTrue():
		return "#t"
	case v.IsFalse():
		return "#f"
	case v.IsInteger():
		return strconv.FormatInt(int64(v.ToInteger()), 10)
	case v.IsFloat():
		return strconv.FormatFloat(v.ToFloat(), 'g', -1, 64)
	case v.IsSymbol():
		if s, ok := in.Lookup(v.ToSymbol()); ok {
			return s
		}
		return "#<unknown-symbol>"
	case v.IsPair():
		return v.displayPair(in)
	case v.IsString():
		return "\"" + v.AsString().Text() + "\""
	case v.IsVector():
		return v.displayVector(in)
	case v.IsHashMap():
		return "#<hash-map>"
	case v.IsClosure():
		return "#<procedure>"
	case v.IsBigInt():
		return v.AsBigInt().Int().String()
	default:
		return "#<unknown>"
	}
}

func (v Value) displayPair(in *Interner) string {
	var b []byte
	b = append(b, '(')
	b = append(b, v.AsPair().Car().Display(in)...)
	cur := v.AsPair().Cdr()
	for cur.IsPair() {
		b = append(b, ' ')
		b = append(b, cur.AsPair().Car().Display(in)...)
		cur = cur.AsPair().Cdr()
	}
	if cur.IsNil() {
		b = append(b, ')')
	} else {
		b = append(b, " . "...)
		b = append(b, cur.Display(in)...)
		b = append(b, ')')
	}
	return string(b)
}

func (v Value) displayVector(in *Interner) string {
	vec := v.AsVector()
	b := []byte{'#', '('}
	for i := 0; i < vec.Len(); i++ {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = append(b, vec.At(i).Display(in)...)
	}
	b = append(b, ')')
	return string(b)
}
