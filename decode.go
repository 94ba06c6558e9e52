package tokentest

// Unmarshaler is the type-level decode capability. The method mutates its
// receiver, so the same implementation serves both the constructing pass
// (the comparator starts from a fresh zero value) and the in-place pass
// (the comparator reuses an already-populated value).
type Unmarshaler interface {
	UnmarshalTokens(d Decoder) error
}

// Decoder is the input driver an Unmarshaler reads from. DecodeAny is the
// self-describing fallback used when the caller does not know what shape to
// expect; the shape-specific entry points accept the exact matching token
// or defer to DecodeAny when the upcoming token is a different compatible
// shape.
type Decoder interface {
	DecodeAny(v Visitor) error
	DecodeOption(v Visitor) error
	DecodeUnitStruct(name string, v Visitor) error
	DecodeNewtypeStruct(name string, v Visitor) error
	DecodeTuple(n int, v Visitor) error
	DecodeTupleStruct(name string, n int, v Visitor) error
	DecodeStruct(name string, fields []string, v Visitor) error
	DecodeEnum(name string, variants []string, v Visitor) error
}

// Visitor receives the decoded shape through the single most specific
// method for it. Embed BaseVisitor and override only the shapes a value
// accepts.
type Visitor interface {
	VisitBool(v bool) error
	VisitInt8(v int8) error
	VisitInt16(v int16) error
	VisitInt32(v int32) error
	VisitInt64(v int64) error
	VisitUint8(v uint8) error
	VisitUint16(v uint16) error
	VisitUint32(v uint32) error
	VisitUint64(v uint64) error
	VisitFloat32(v float32) error
	VisitFloat64(v float64) error
	VisitRune(v rune) error
	VisitString(v string) error
	VisitBytes(v []byte) error
	VisitNone() error
	VisitSome(d Decoder) error
	VisitUnit() error
	VisitNewtype(d Decoder) error
	VisitSeq(seq SeqAccess) error
	VisitMap(m MapAccess) error
	VisitEnum(e EnumAccess) error
}

// SeqAccess hands a sequence region to a visitor one element at a time.
type SeqAccess interface {
	// NextElement decodes the next element into el and reports whether one
	// was present. ok is false once the region's closer is the next token.
	NextElement(el Unmarshaler) (ok bool, err error)
	// SizeHint returns the remaining declared length, NoLen when the opener
	// carried no hint. It saturates at zero rather than going negative.
	SizeHint() int
}

// MapAccess hands a map region to a visitor one entry at a time. NextValue
// must follow a successful NextKey.
type MapAccess interface {
	NextKey(key Unmarshaler) (ok bool, err error)
	NextValue(val Unmarshaler) error
	SizeHint() int
}

// EnumAccess resolves a variant tag. The tag is decoded into tag exactly
// once; the returned VariantAccess then decodes the payload.
type EnumAccess interface {
	Variant(tag Unmarshaler) (VariantAccess, error)
}

// VariantAccess decodes the payload of a resolved variant in whichever of
// the four forms the caller expects.
type VariantAccess interface {
	UnitVariant() error
	NewtypeVariant(v Unmarshaler) error
	TupleVariant(n int, v Visitor) error
	StructVariant(fields []string, v Visitor) error
}

// BaseVisitor fails every visit with an unexpected-shape error. Embed it so
// a visitor only spells out the shapes it accepts.
type BaseVisitor struct{}

func (BaseVisitor) VisitBool(bool) error       { return NewError("unexpected bool") }
func (BaseVisitor) VisitInt8(int8) error       { return NewError("unexpected int8") }
func (BaseVisitor) VisitInt16(int16) error     { return NewError("unexpected int16") }
func (BaseVisitor) VisitInt32(int32) error     { return NewError("unexpected int32") }
func (BaseVisitor) VisitInt64(int64) error     { return NewError("unexpected int64") }
func (BaseVisitor) VisitUint8(uint8) error     { return NewError("unexpected uint8") }
func (BaseVisitor) VisitUint16(uint16) error   { return NewError("unexpected uint16") }
func (BaseVisitor) VisitUint32(uint32) error   { return NewError("unexpected uint32") }
func (BaseVisitor) VisitUint64(uint64) error   { return NewError("unexpected uint64") }
func (BaseVisitor) VisitFloat32(float32) error { return NewError("unexpected float32") }
func (BaseVisitor) VisitFloat64(float64) error { return NewError("unexpected float64") }
func (BaseVisitor) VisitRune(rune) error       { return NewError("unexpected rune") }
func (BaseVisitor) VisitString(string) error   { return NewError("unexpected string") }
func (BaseVisitor) VisitBytes([]byte) error    { return NewError("unexpected bytes") }
func (BaseVisitor) VisitNone() error           { return NewError("unexpected none") }
func (BaseVisitor) VisitSome(Decoder) error    { return NewError("unexpected some") }
func (BaseVisitor) VisitUnit() error           { return NewError("unexpected unit") }
func (BaseVisitor) VisitNewtype(Decoder) error { return NewError("unexpected newtype struct") }
func (BaseVisitor) VisitSeq(SeqAccess) error   { return NewError("unexpected seq") }
func (BaseVisitor) VisitMap(MapAccess) error   { return NewError("unexpected map") }
func (BaseVisitor) VisitEnum(EnumAccess) error { return NewError("unexpected enum") }
