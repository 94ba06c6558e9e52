package tokentest

import (
	"bytes"
	"fmt"
	"math"
)

// Kind enumerates the structural events a codec can observe. The set is
// closed: the verifier and the driver switch exhaustively over it.
type Kind int

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindRune
	KindStr         // transient string, the default flavor
	KindBorrowedStr // string borrowed for the scope of the script
	KindOwnedStr    // owned string
	KindBytes       // transient byte slice
	KindByteBuf     // owned byte buffer
	KindNone
	KindSome
	KindUnit
	KindUnitStruct
	KindNewtypeStruct
	KindSeq
	KindSeqEnd
	KindTuple
	KindTupleEnd
	KindTupleStruct
	KindTupleStructEnd
	KindMap
	KindMapEnd
	KindStruct
	KindStructEnd
	KindEnum
	KindUnitVariant
	KindNewtypeVariant
	KindTupleVariant
	KindTupleVariantEnd
	KindStructVariant
	KindStructVariantEnd
	KindSkipField
)

// NoLen marks a composite opener whose length hint is absent.
const NoLen = -1

// Token is one scripted structural event. Tokens are cheap value types;
// only the fields relevant to Kind are set, everything else stays zero.
// Scripts are ordered []Token slices, traversed but never mutated.
type Token struct {
	Kind    Kind
	Bool    bool
	Int     int64 // signed integer widths and rune
	Uint    uint64
	Float   float64
	Str     string
	Bytes   []byte
	Name    string // type name, or the skipped field name for SkipField
	Variant string
	Len     int // length hint; NoLen when absent
}

// Scalar constructors.

func Bool(v bool) Token       { return Token{Kind: KindBool, Bool: v} }
func Int8(v int8) Token       { return Token{Kind: KindInt8, Int: int64(v)} }
func Int16(v int16) Token     { return Token{Kind: KindInt16, Int: int64(v)} }
func Int32(v int32) Token     { return Token{Kind: KindInt32, Int: int64(v)} }
func Int64(v int64) Token     { return Token{Kind: KindInt64, Int: v} }
func Uint8(v uint8) Token     { return Token{Kind: KindUint8, Uint: uint64(v)} }
func Uint16(v uint16) Token   { return Token{Kind: KindUint16, Uint: uint64(v)} }
func Uint32(v uint32) Token   { return Token{Kind: KindUint32, Uint: uint64(v)} }
func Uint64(v uint64) Token   { return Token{Kind: KindUint64, Uint: v} }
func Float32(v float32) Token { return Token{Kind: KindFloat32, Float: float64(v)} }
func Float64(v float64) Token { return Token{Kind: KindFloat64, Float: v} }
func Rune(v rune) Token       { return Token{Kind: KindRune, Int: int64(v)} }

// Str is the transient string flavor, matched by default when a value
// encodes a string. BorrowedStr and OwnedStr assert a specific ownership
// flavor instead.
func Str(v string) Token         { return Token{Kind: KindStr, Str: v} }
func BorrowedStr(v string) Token { return Token{Kind: KindBorrowedStr, Str: v} }
func OwnedStr(v string) Token    { return Token{Kind: KindOwnedStr, Str: v} }

// Bytes is the transient byte-slice flavor; ByteBuf asserts the owned one.
func Bytes(v []byte) Token   { return Token{Kind: KindBytes, Bytes: v} }
func ByteBuf(v []byte) Token { return Token{Kind: KindByteBuf, Bytes: v} }

func None() Token { return Token{Kind: KindNone} }
func Some() Token { return Token{Kind: KindSome} }
func Unit() Token { return Token{Kind: KindUnit} }

func UnitStruct(name string) Token    { return Token{Kind: KindUnitStruct, Name: name} }
func NewtypeStruct(name string) Token { return Token{Kind: KindNewtypeStruct, Name: name} }

// Composite openers and their closers. Openers and closers must nest and
// pair exactly; a mismatched closer is a verification failure.

func Seq(n int) Token    { return Token{Kind: KindSeq, Len: n} }
func SeqEnd() Token      { return Token{Kind: KindSeqEnd} }
func Tuple(n int) Token  { return Token{Kind: KindTuple, Len: n} }
func TupleEnd() Token    { return Token{Kind: KindTupleEnd} }
func Map(n int) Token    { return Token{Kind: KindMap, Len: n} }
func MapEnd() Token      { return Token{Kind: KindMapEnd} }

func TupleStruct(name string, n int) Token {
	return Token{Kind: KindTupleStruct, Name: name, Len: n}
}
func TupleStructEnd() Token { return Token{Kind: KindTupleStructEnd} }

func Struct(name string, n int) Token {
	return Token{Kind: KindStruct, Name: name, Len: n}
}
func StructEnd() Token { return Token{Kind: KindStructEnd} }

// Enum is the open variant-group opener: only the type name is scripted and
// the driver resolves tag and payload shape from the following tokens. The
// four closed forms below carry the variant name directly.
func Enum(name string) Token { return Token{Kind: KindEnum, Name: name} }

func UnitVariant(name, variant string) Token {
	return Token{Kind: KindUnitVariant, Name: name, Variant: variant}
}
func NewtypeVariant(name, variant string) Token {
	return Token{Kind: KindNewtypeVariant, Name: name, Variant: variant}
}
func TupleVariant(name, variant string, n int) Token {
	return Token{Kind: KindTupleVariant, Name: name, Variant: variant, Len: n}
}
func TupleVariantEnd() Token { return Token{Kind: KindTupleVariantEnd} }
func StructVariant(name, variant string, n int) Token {
	return Token{Kind: KindStructVariant, Name: name, Variant: variant, Len: n}
}
func StructVariantEnd() Token { return Token{Kind: KindStructVariantEnd} }

// SkipField directs the decode side to silently ignore the named struct
// field. The encode side consumes it inside EncodeField; the decode cursor
// never surfaces it to the driven visitor.
func SkipField(name string) Token { return Token{Kind: KindSkipField, Name: name} }

// Equal reports whether two tokens describe the same structural event.
// Floats compare by bit pattern, so a scripted NaN matches a produced NaN
// and no epsilon tolerance ever applies. Bytes compare by content.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindBool:
		return t.Bool == o.Bool
	case KindInt8, KindInt16, KindInt32, KindInt64, KindRune:
		return t.Int == o.Int
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return t.Uint == o.Uint
	case KindFloat32:
		return math.Float32bits(float32(t.Float)) == math.Float32bits(float32(o.Float))
	case KindFloat64:
		return math.Float64bits(t.Float) == math.Float64bits(o.Float)
	case KindStr, KindBorrowedStr, KindOwnedStr:
		return t.Str == o.Str
	case KindBytes, KindByteBuf:
		return bytes.Equal(t.Bytes, o.Bytes)
	case KindUnitStruct, KindNewtypeStruct, KindEnum, KindSkipField:
		return t.Name == o.Name
	case KindSeq, KindTuple, KindMap:
		return t.Len == o.Len
	case KindTupleStruct, KindStruct:
		return t.Name == o.Name && t.Len == o.Len
	case KindUnitVariant, KindNewtypeVariant:
		return t.Name == o.Name && t.Variant == o.Variant
	case KindTupleVariant, KindStructVariant:
		return t.Name == o.Name && t.Variant == o.Variant && t.Len == o.Len
	default:
		// None, Some, Unit and every closer carry no payload.
		return true
	}
}

// String renders the token the way a script spells it, for failure messages.
func (t Token) String() string {
	switch t.Kind {
	case KindBool:
		return fmt.Sprintf("Bool(%t)", t.Bool)
	case KindInt8:
		return fmt.Sprintf("Int8(%d)", t.Int)
	case KindInt16:
		return fmt.Sprintf("Int16(%d)", t.Int)
	case KindInt32:
		return fmt.Sprintf("Int32(%d)", t.Int)
	case KindInt64:
		return fmt.Sprintf("Int64(%d)", t.Int)
	case KindUint8:
		return fmt.Sprintf("Uint8(%d)", t.Uint)
	case KindUint16:
		return fmt.Sprintf("Uint16(%d)", t.Uint)
	case KindUint32:
		return fmt.Sprintf("Uint32(%d)", t.Uint)
	case KindUint64:
		return fmt.Sprintf("Uint64(%d)", t.Uint)
	case KindFloat32:
		return fmt.Sprintf("Float32(%v)", float32(t.Float))
	case KindFloat64:
		return fmt.Sprintf("Float64(%v)", t.Float)
	case KindRune:
		return fmt.Sprintf("Rune(%q)", rune(t.Int))
	case KindStr:
		return fmt.Sprintf("Str(%q)", t.Str)
	case KindBorrowedStr:
		return fmt.Sprintf("BorrowedStr(%q)", t.Str)
	case KindOwnedStr:
		return fmt.Sprintf("OwnedStr(%q)", t.Str)
	case KindBytes:
		return fmt.Sprintf("Bytes(%v)", t.Bytes)
	case KindByteBuf:
		return fmt.Sprintf("ByteBuf(%v)", t.Bytes)
	case KindNone:
		return "None"
	case KindSome:
		return "Some"
	case KindUnit:
		return "Unit"
	case KindUnitStruct:
		return fmt.Sprintf("UnitStruct(%q)", t.Name)
	case KindNewtypeStruct:
		return fmt.Sprintf("NewtypeStruct(%q)", t.Name)
	case KindSeq:
		return "Seq(" + lenHint(t.Len) + ")"
	case KindSeqEnd:
		return "SeqEnd"
	case KindTuple:
		return fmt.Sprintf("Tuple(%d)", t.Len)
	case KindTupleEnd:
		return "TupleEnd"
	case KindTupleStruct:
		return fmt.Sprintf("TupleStruct(%q, %d)", t.Name, t.Len)
	case KindTupleStructEnd:
		return "TupleStructEnd"
	case KindMap:
		return "Map(" + lenHint(t.Len) + ")"
	case KindMapEnd:
		return "MapEnd"
	case KindStruct:
		return fmt.Sprintf("Struct(%q, %d)", t.Name, t.Len)
	case KindStructEnd:
		return "StructEnd"
	case KindEnum:
		return fmt.Sprintf("Enum(%q)", t.Name)
	case KindUnitVariant:
		return fmt.Sprintf("UnitVariant(%q, %q)", t.Name, t.Variant)
	case KindNewtypeVariant:
		return fmt.Sprintf("NewtypeVariant(%q, %q)", t.Name, t.Variant)
	case KindTupleVariant:
		return fmt.Sprintf("TupleVariant(%q, %q, %d)", t.Name, t.Variant, t.Len)
	case KindTupleVariantEnd:
		return "TupleVariantEnd"
	case KindStructVariant:
		return fmt.Sprintf("StructVariant(%q, %q, %d)", t.Name, t.Variant, t.Len)
	case KindStructVariantEnd:
		return "StructVariantEnd"
	case KindSkipField:
		return fmt.Sprintf("SkipField(%q)", t.Name)
	default:
		return fmt.Sprintf("Token(kind=%d)", int(t.Kind))
	}
}

func lenHint(n int) string {
	if n == NoLen {
		return "?"
	}
	return fmt.Sprintf("%d", n)
}
