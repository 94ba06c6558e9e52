package tokentest

// Serializer is an Encoder that checks every encode call a value makes
// against an expected token script. It owns its cursor exclusively: the
// only state is the remaining-tokens slice.
type Serializer struct {
	tokens []Token
}

// NewSerializer builds a verifier over the given script. The script is
// traversed, never mutated.
func NewSerializer(tokens []Token) *Serializer {
	return &Serializer{tokens: tokens}
}

// Remaining reports how many scripted tokens were not consumed. After a
// successful encode pass it must be zero.
func (s *Serializer) Remaining() int { return len(s.tokens) }

func (s *Serializer) nextToken() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	t := s.tokens[0]
	s.tokens = s.tokens[1:]
	return t, true
}

func (s *Serializer) peekKind() Kind {
	if len(s.tokens) == 0 {
		return Kind(-1)
	}
	return s.tokens[0].Kind
}

// assertNext consumes one scripted token and checks it matches what the
// value just serialized. produced describes the actual encode call.
func (s *Serializer) assertNext(produced Token) error {
	expected, ok := s.nextToken()
	if !ok {
		return Errorf("expected end of tokens, but %s was serialized", produced)
	}
	if !expected.Equal(produced) {
		return Errorf("expected %s but serialized as %s", expected, produced)
	}
	return nil
}

// peekEnum reports whether the script continues with the open variant-group
// form for the named enum, which switches variant encoding to the compact
// [Enum, tag, payload] convention.
func (s *Serializer) peekEnum(name string) bool {
	return len(s.tokens) > 0 && s.tokens[0].Kind == KindEnum && s.tokens[0].Name == name
}

func (s *Serializer) EncodeBool(v bool) error       { return s.assertNext(Bool(v)) }
func (s *Serializer) EncodeInt8(v int8) error       { return s.assertNext(Int8(v)) }
func (s *Serializer) EncodeInt16(v int16) error     { return s.assertNext(Int16(v)) }
func (s *Serializer) EncodeInt32(v int32) error     { return s.assertNext(Int32(v)) }
func (s *Serializer) EncodeInt64(v int64) error     { return s.assertNext(Int64(v)) }
func (s *Serializer) EncodeUint8(v uint8) error     { return s.assertNext(Uint8(v)) }
func (s *Serializer) EncodeUint16(v uint16) error   { return s.assertNext(Uint16(v)) }
func (s *Serializer) EncodeUint32(v uint32) error   { return s.assertNext(Uint32(v)) }
func (s *Serializer) EncodeUint64(v uint64) error   { return s.assertNext(Uint64(v)) }
func (s *Serializer) EncodeFloat32(v float32) error { return s.assertNext(Float32(v)) }
func (s *Serializer) EncodeFloat64(v float64) error { return s.assertNext(Float64(v)) }
func (s *Serializer) EncodeRune(v rune) error       { return s.assertNext(Rune(v)) }

// EncodeString matches the specific ownership flavor when the script asks
// for one, and the transient flavor otherwise.
func (s *Serializer) EncodeString(v string) error {
	switch s.peekKind() {
	case KindBorrowedStr:
		return s.assertNext(BorrowedStr(v))
	case KindOwnedStr:
		return s.assertNext(OwnedStr(v))
	default:
		return s.assertNext(Str(v))
	}
}

func (s *Serializer) EncodeBytes(v []byte) error {
	if s.peekKind() == KindByteBuf {
		return s.assertNext(ByteBuf(v))
	}
	return s.assertNext(Bytes(v))
}

func (s *Serializer) EncodeNone() error { return s.assertNext(None()) }

func (s *Serializer) EncodeSome(v Marshaler) error {
	if err := s.assertNext(Some()); err != nil {
		return err
	}
	return v.MarshalTokens(s)
}

func (s *Serializer) EncodeUnit() error { return s.assertNext(Unit()) }

func (s *Serializer) EncodeUnitStruct(name string) error {
	return s.assertNext(UnitStruct(name))
}

func (s *Serializer) EncodeNewtypeStruct(name string, v Marshaler) error {
	if err := s.assertNext(NewtypeStruct(name)); err != nil {
		return err
	}
	return v.MarshalTokens(s)
}

func (s *Serializer) EncodeUnitVariant(name, variant string) error {
	if s.peekEnum(name) {
		s.nextToken()
		if err := s.assertNext(Str(variant)); err != nil {
			return err
		}
		return s.assertNext(Unit())
	}
	return s.assertNext(UnitVariant(name, variant))
}

func (s *Serializer) EncodeNewtypeVariant(name, variant string, v Marshaler) error {
	if s.peekEnum(name) {
		s.nextToken()
		if err := s.assertNext(Str(variant)); err != nil {
			return err
		}
	} else if err := s.assertNext(NewtypeVariant(name, variant)); err != nil {
		return err
	}
	return v.MarshalTokens(s)
}

func (s *Serializer) EncodeSeq(n int) (SeqEncoder, error) {
	if err := s.assertNext(Seq(n)); err != nil {
		return nil, err
	}
	return &compositeSerializer{ser: s, end: SeqEnd()}, nil
}

func (s *Serializer) EncodeTuple(n int) (SeqEncoder, error) {
	if err := s.assertNext(Tuple(n)); err != nil {
		return nil, err
	}
	return &compositeSerializer{ser: s, end: TupleEnd()}, nil
}

func (s *Serializer) EncodeTupleStruct(name string, n int) (SeqEncoder, error) {
	if err := s.assertNext(TupleStruct(name, n)); err != nil {
		return nil, err
	}
	return &compositeSerializer{ser: s, end: TupleStructEnd()}, nil
}

func (s *Serializer) EncodeTupleVariant(name, variant string, n int) (SeqEncoder, error) {
	if s.peekEnum(name) {
		s.nextToken()
		if err := s.assertNext(Str(variant)); err != nil {
			return nil, err
		}
		if err := s.assertNext(Seq(n)); err != nil {
			return nil, err
		}
		return &compositeSerializer{ser: s, end: SeqEnd()}, nil
	}
	if err := s.assertNext(TupleVariant(name, variant, n)); err != nil {
		return nil, err
	}
	return &compositeSerializer{ser: s, end: TupleVariantEnd()}, nil
}

func (s *Serializer) EncodeMap(n int) (MapEncoder, error) {
	if err := s.assertNext(Map(n)); err != nil {
		return nil, err
	}
	return &compositeSerializer{ser: s, end: MapEnd()}, nil
}

func (s *Serializer) EncodeStruct(name string, n int) (StructEncoder, error) {
	if err := s.assertNext(Struct(name, n)); err != nil {
		return nil, err
	}
	return &compositeSerializer{ser: s, end: StructEnd()}, nil
}

func (s *Serializer) EncodeStructVariant(name, variant string, n int) (StructEncoder, error) {
	if s.peekEnum(name) {
		s.nextToken()
		if err := s.assertNext(Str(variant)); err != nil {
			return nil, err
		}
		if err := s.assertNext(Map(n)); err != nil {
			return nil, err
		}
		return &compositeSerializer{ser: s, end: MapEnd()}, nil
	}
	if err := s.assertNext(StructVariant(name, variant, n)); err != nil {
		return nil, err
	}
	return &compositeSerializer{ser: s, end: StructVariantEnd()}, nil
}

// compositeSerializer is the scoped sub-verifier for one composite region.
// It shares the parent cursor and remembers which closer token it owes;
// End must run exactly once.
type compositeSerializer struct {
	ser *Serializer
	end Token
}

func (c *compositeSerializer) EncodeElement(v Marshaler) error {
	return v.MarshalTokens(c.ser)
}

func (c *compositeSerializer) EncodeKey(k Marshaler) error {
	return k.MarshalTokens(c.ser)
}

func (c *compositeSerializer) EncodeValue(v Marshaler) error {
	return v.MarshalTokens(c.ser)
}

// EncodeField consumes a scripted skip marker for this field instead of
// asserting the field's tokens, which lets scripts state that a field is
// skipped without spelling out its would-be value.
func (c *compositeSerializer) EncodeField(name string, v Marshaler) error {
	if len(c.ser.tokens) > 0 && c.ser.tokens[0].Equal(SkipField(name)) {
		c.ser.nextToken()
		return nil
	}
	if err := c.ser.EncodeString(name); err != nil {
		return err
	}
	return v.MarshalTokens(c.ser)
}

func (c *compositeSerializer) End() error {
	return c.ser.assertNext(c.end)
}
