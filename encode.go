package tokentest

// Marshaler is the value-level encode capability: the value drives the
// Encoder with one callback per primitive or structural event it contains.
// This package supplies the mock Encoder that checks those callbacks
// against a token script.
type Marshaler interface {
	MarshalTokens(e Encoder) error
}

// Encoder is the output sink a Marshaler writes to. Composite entry points
// return a scoped sub-encoder bound to the same script cursor; the caller
// must call End exactly once when the region is complete.
type Encoder interface {
	EncodeBool(v bool) error
	EncodeInt8(v int8) error
	EncodeInt16(v int16) error
	EncodeInt32(v int32) error
	EncodeInt64(v int64) error
	EncodeUint8(v uint8) error
	EncodeUint16(v uint16) error
	EncodeUint32(v uint32) error
	EncodeUint64(v uint64) error
	EncodeFloat32(v float32) error
	EncodeFloat64(v float64) error
	EncodeRune(v rune) error
	EncodeString(v string) error
	EncodeBytes(v []byte) error

	EncodeNone() error
	EncodeSome(v Marshaler) error
	EncodeUnit() error

	EncodeUnitStruct(name string) error
	EncodeNewtypeStruct(name string, v Marshaler) error
	EncodeUnitVariant(name, variant string) error
	EncodeNewtypeVariant(name, variant string, v Marshaler) error

	// n is the length hint; pass NoLen when the length is unknown up front.
	EncodeSeq(n int) (SeqEncoder, error)
	EncodeTuple(n int) (SeqEncoder, error)
	EncodeTupleStruct(name string, n int) (SeqEncoder, error)
	EncodeTupleVariant(name, variant string, n int) (SeqEncoder, error)
	EncodeMap(n int) (MapEncoder, error)
	EncodeStruct(name string, n int) (StructEncoder, error)
	EncodeStructVariant(name, variant string, n int) (StructEncoder, error)
}

// SeqEncoder writes the elements of a sequence, tuple, or tuple-shaped
// variant payload.
type SeqEncoder interface {
	EncodeElement(v Marshaler) error
	End() error
}

// MapEncoder writes alternating keys and values of a map region.
type MapEncoder interface {
	EncodeKey(k Marshaler) error
	EncodeValue(v Marshaler) error
	End() error
}

// StructEncoder writes named fields of a struct or struct-shaped variant
// payload.
type StructEncoder interface {
	EncodeField(name string, v Marshaler) error
	End() error
}
