package tokentest

// Deserializer is a Decoder that replays a token script as if it were a
// live, lazily-advancing structured source. It owns its cursor exclusively;
// decoding is a single left-to-right consumption of the script with never
// more than one token of peek, plus the tag-then-next double peek for the
// open variant-group form.
type Deserializer struct {
	tokens []Token
}

// NewDeserializer builds a driver over the given script.
func NewDeserializer(tokens []Token) *Deserializer {
	return &Deserializer{tokens: tokens}
}

// Remaining reports how many scripted tokens were not consumed, counting
// skip-field markers still sitting in the script.
func (d *Deserializer) Remaining() int { return len(d.tokens) }

// peekToken returns the next token that is not a skip-field marker without
// consuming anything.
func (d *Deserializer) peekToken() (Token, bool) {
	for _, t := range d.tokens {
		if t.Kind != KindSkipField {
			return t, true
		}
	}
	return Token{}, false
}

// nextToken consumes and returns the next token, silently discarding
// skip-field markers on the way. Skip markers never reach the driven
// visitor; this holds on every read, not just at field boundaries.
func (d *Deserializer) nextToken() (Token, bool) {
	for len(d.tokens) > 0 {
		t := d.tokens[0]
		d.tokens = d.tokens[1:]
		if t.Kind != KindSkipField {
			return t, true
		}
	}
	return Token{}, false
}

func endOfTokens() *Error {
	return NewError("ran out of tokens to deserialize")
}

func unexpected(t Token) *Error {
	return Errorf("deserialization did not expect this token: %s", t)
}

// assertNext consumes one token and checks it is the one decoding wants.
func (d *Deserializer) assertNext(expected Token) error {
	t, ok := d.nextToken()
	if !ok {
		return Errorf("end of tokens but deserialization wants %s", expected)
	}
	if !t.Equal(expected) {
		return Errorf("expected %s but deserialization wants %s", t, expected)
	}
	return nil
}

// visitSeq drives the visitor over one sequence-shaped region whose opener
// was already consumed, then asserts the remembered closer.
func (d *Deserializer) visitSeq(n int, end Token, v Visitor) error {
	if err := v.VisitSeq(&seqAccess{d: d, len: n, end: end}); err != nil {
		return err
	}
	return d.assertNext(end)
}

// visitMap is visitSeq for map-shaped regions.
func (d *Deserializer) visitMap(n int, end Token, v Visitor) error {
	if err := v.VisitMap(&mapAccess{d: d, len: n, end: end}); err != nil {
		return err
	}
	return d.assertNext(end)
}

// DecodeAny consumes one value in whatever shape the script supplies and
// hands it to the single most specific visitor method. A closer token where
// a value is expected is a hard failure.
func (d *Deserializer) DecodeAny(v Visitor) error {
	t, ok := d.nextToken()
	if !ok {
		return endOfTokens()
	}
	switch t.Kind {
	case KindBool:
		return v.VisitBool(t.Bool)
	case KindInt8:
		return v.VisitInt8(int8(t.Int))
	case KindInt16:
		return v.VisitInt16(int16(t.Int))
	case KindInt32:
		return v.VisitInt32(int32(t.Int))
	case KindInt64:
		return v.VisitInt64(t.Int)
	case KindUint8:
		return v.VisitUint8(uint8(t.Uint))
	case KindUint16:
		return v.VisitUint16(uint16(t.Uint))
	case KindUint32:
		return v.VisitUint32(uint32(t.Uint))
	case KindUint64:
		return v.VisitUint64(t.Uint)
	case KindFloat32:
		return v.VisitFloat32(float32(t.Float))
	case KindFloat64:
		return v.VisitFloat64(t.Float)
	case KindRune:
		return v.VisitRune(rune(t.Int))
	case KindStr, KindBorrowedStr, KindOwnedStr:
		return v.VisitString(t.Str)
	case KindBytes, KindByteBuf:
		return v.VisitBytes(t.Bytes)
	case KindNone:
		return v.VisitNone()
	case KindSome:
		return v.VisitSome(d)
	case KindUnit, KindUnitStruct:
		return v.VisitUnit()
	case KindNewtypeStruct:
		return v.VisitNewtype(d)
	case KindSeq:
		return d.visitSeq(t.Len, SeqEnd(), v)
	case KindTuple:
		return d.visitSeq(t.Len, TupleEnd(), v)
	case KindTupleStruct:
		return d.visitSeq(t.Len, TupleStructEnd(), v)
	case KindMap:
		return d.visitMap(t.Len, MapEnd(), v)
	case KindStruct:
		// A struct read generically is a map of (field name, value) pairs.
		return d.visitMap(t.Len, StructEnd(), v)
	case KindEnum:
		return d.decodeOpenEnum(v)
	case KindUnitVariant:
		return v.VisitString(t.Variant)
	case KindNewtypeVariant:
		return v.VisitMap(newEnumMapAccess(d, Str(t.Variant), enumAny))
	case KindTupleVariant:
		return v.VisitMap(newEnumMapAccess(d, Str(t.Variant), enumSeq))
	case KindStructVariant:
		return v.VisitMap(newEnumMapAccess(d, Str(t.Variant), enumMap))
	default:
		return unexpected(t)
	}
}

// decodeOpenEnum handles the open variant-group form after its opener was
// consumed: read the tag token, then peek once more to decide between the
// unit form (tag followed immediately by unit) and the payload form.
func (d *Deserializer) decodeOpenEnum(v Visitor) error {
	tag, ok := d.nextToken()
	if !ok {
		return endOfTokens()
	}
	next, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	if next.Kind == KindUnit {
		d.nextToken()
		switch tag.Kind {
		case KindStr, KindBorrowedStr, KindOwnedStr:
			return v.VisitString(tag.Str)
		case KindBytes, KindByteBuf:
			return v.VisitBytes(tag.Bytes)
		case KindUint8:
			return v.VisitUint8(uint8(tag.Uint))
		case KindUint16:
			return v.VisitUint16(uint16(tag.Uint))
		case KindUint32:
			return v.VisitUint32(uint32(tag.Uint))
		case KindUint64:
			return v.VisitUint64(tag.Uint)
		default:
			return unexpected(tag)
		}
	}
	return v.VisitMap(newEnumMapAccess(d, tag, enumAny))
}

// DecodeOption treats a bare unit token as an equivalent none signal.
func (d *Deserializer) DecodeOption(v Visitor) error {
	t, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	switch t.Kind {
	case KindUnit, KindNone:
		d.nextToken()
		return v.VisitNone()
	case KindSome:
		d.nextToken()
		return v.VisitSome(d)
	default:
		return d.DecodeAny(v)
	}
}

func (d *Deserializer) DecodeUnitStruct(name string, v Visitor) error {
	t, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	if t.Kind == KindUnitStruct {
		if err := d.assertNext(UnitStruct(name)); err != nil {
			return err
		}
		return v.VisitUnit()
	}
	return d.DecodeAny(v)
}

func (d *Deserializer) DecodeNewtypeStruct(name string, v Visitor) error {
	t, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	if t.Kind == KindNewtypeStruct {
		if err := d.assertNext(NewtypeStruct(name)); err != nil {
			return err
		}
		return v.VisitNewtype(d)
	}
	return d.DecodeAny(v)
}

func (d *Deserializer) DecodeTuple(n int, v Visitor) error {
	t, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	switch t.Kind {
	case KindUnit, KindUnitStruct:
		d.nextToken()
		return v.VisitUnit()
	case KindSeq:
		d.nextToken()
		return d.visitSeq(n, SeqEnd(), v)
	case KindTuple:
		d.nextToken()
		return d.visitSeq(n, TupleEnd(), v)
	case KindTupleStruct:
		d.nextToken()
		return d.visitSeq(n, TupleStructEnd(), v)
	default:
		return d.DecodeAny(v)
	}
}

func (d *Deserializer) DecodeTupleStruct(name string, n int, v Visitor) error {
	t, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	switch t.Kind {
	case KindUnit:
		d.nextToken()
		return v.VisitUnit()
	case KindUnitStruct:
		if err := d.assertNext(UnitStruct(name)); err != nil {
			return err
		}
		return v.VisitUnit()
	case KindSeq:
		d.nextToken()
		return d.visitSeq(n, SeqEnd(), v)
	case KindTuple:
		d.nextToken()
		return d.visitSeq(n, TupleEnd(), v)
	case KindTupleStruct:
		// The name must match exactly; the scripted length is taken as-is.
		if err := d.assertNext(TupleStruct(name, t.Len)); err != nil {
			return err
		}
		return d.visitSeq(n, TupleStructEnd(), v)
	default:
		return d.DecodeAny(v)
	}
}

func (d *Deserializer) DecodeStruct(name string, fields []string, v Visitor) error {
	t, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	switch t.Kind {
	case KindStruct:
		if err := d.assertNext(Struct(name, t.Len)); err != nil {
			return err
		}
		return d.visitMap(len(fields), StructEnd(), v)
	case KindMap:
		// Duck-typed structural match, no name to check.
		d.nextToken()
		return d.visitMap(len(fields), MapEnd(), v)
	default:
		return d.DecodeAny(v)
	}
}

func (d *Deserializer) DecodeEnum(name string, variants []string, v Visitor) error {
	t, ok := d.peekToken()
	if !ok {
		return endOfTokens()
	}
	switch t.Kind {
	case KindEnum:
		if t.Name == name {
			d.nextToken()
			return v.VisitEnum(&enumAccess{d: d})
		}
	case KindUnitVariant, KindNewtypeVariant, KindTupleVariant, KindStructVariant:
		if t.Name == name {
			return v.VisitEnum(&enumAccess{d: d})
		}
	}
	return d.DecodeAny(v)
}

// decrementLen is the saturating remaining-length step shared by the
// sequence and map accessors.
func decrementLen(n int) int {
	if n == NoLen || n == 0 {
		return n
	}
	return n - 1
}

// seqAccess walks one sequence region: each read peeks first and stops when
// the remembered closer is next.
type seqAccess struct {
	d   *Deserializer
	len int
	end Token
}

func (a *seqAccess) NextElement(el Unmarshaler) (bool, error) {
	if t, ok := a.d.peekToken(); ok && t.Equal(a.end) {
		return false, nil
	}
	a.len = decrementLen(a.len)
	if err := el.UnmarshalTokens(a.d); err != nil {
		return false, err
	}
	return true, nil
}

func (a *seqAccess) SizeHint() int { return a.len }

// mapAccess is seqAccess for key/value pairs.
type mapAccess struct {
	d   *Deserializer
	len int
	end Token
}

func (a *mapAccess) NextKey(key Unmarshaler) (bool, error) {
	if t, ok := a.d.peekToken(); ok && t.Equal(a.end) {
		return false, nil
	}
	a.len = decrementLen(a.len)
	if err := key.UnmarshalTokens(a.d); err != nil {
		return false, err
	}
	return true, nil
}

func (a *mapAccess) NextValue(val Unmarshaler) error {
	return val.UnmarshalTokens(a.d)
}

func (a *mapAccess) SizeHint() int { return a.len }

// enumAccess resolves the variant tag for DecodeEnum callers.
type enumAccess struct {
	d *Deserializer
}

func (a *enumAccess) Variant(tag Unmarshaler) (VariantAccess, error) {
	t, ok := a.d.peekToken()
	if !ok {
		return nil, endOfTokens()
	}
	switch t.Kind {
	case KindUnitVariant, KindNewtypeVariant, KindTupleVariant, KindStructVariant:
		// The closed forms already carry the tag; surface it without
		// consuming the token, which the payload call still needs.
		if err := tag.UnmarshalTokens(newTokenDecoder(Str(t.Variant))); err != nil {
			return nil, err
		}
	default:
		if err := tag.UnmarshalTokens(a.d); err != nil {
			return nil, err
		}
	}
	return &variantAccess{d: a.d}, nil
}

// variantAccess decodes the payload of the variant its enumAccess resolved.
type variantAccess struct {
	d *Deserializer
}

func (a *variantAccess) UnitVariant() error {
	t, ok := a.d.peekToken()
	if !ok {
		return endOfTokens()
	}
	if t.Kind == KindUnitVariant {
		a.d.nextToken()
		return nil
	}
	// Scripts may encode unit variants through the generic path; accept
	// whatever decodes as a plain unit.
	return a.d.DecodeAny(unitOnlyVisitor{})
}

func (a *variantAccess) NewtypeVariant(v Unmarshaler) error {
	if t, ok := a.d.peekToken(); ok && t.Kind == KindNewtypeVariant {
		a.d.nextToken()
	}
	return v.UnmarshalTokens(a.d)
}

func (a *variantAccess) TupleVariant(n int, v Visitor) error {
	t, ok := a.d.peekToken()
	if !ok {
		return endOfTokens()
	}
	switch {
	case t.Kind == KindTupleVariant:
		a.d.nextToken()
		if t.Len != n {
			return unexpected(t)
		}
		return a.d.visitSeq(n, TupleVariantEnd(), v)
	case t.Kind == KindSeq && t.Len != NoLen:
		a.d.nextToken()
		if t.Len != n {
			return unexpected(t)
		}
		return a.d.visitSeq(n, SeqEnd(), v)
	default:
		return a.d.DecodeAny(v)
	}
}

func (a *variantAccess) StructVariant(fields []string, v Visitor) error {
	t, ok := a.d.peekToken()
	if !ok {
		return endOfTokens()
	}
	switch {
	case t.Kind == KindStructVariant:
		a.d.nextToken()
		if t.Len != len(fields) {
			return unexpected(t)
		}
		return a.d.visitMap(len(fields), StructVariantEnd(), v)
	case t.Kind == KindMap && t.Len != NoLen:
		a.d.nextToken()
		if t.Len != len(fields) {
			return unexpected(t)
		}
		return a.d.visitMap(len(fields), MapEnd(), v)
	default:
		return a.d.DecodeAny(v)
	}
}

// unitOnlyVisitor accepts exactly a unit value.
type unitOnlyVisitor struct{ BaseVisitor }

func (unitOnlyVisitor) VisitUnit() error { return nil }

type enumFormat int

const (
	enumSeq enumFormat = iota
	enumMap
	enumAny
)

// enumMapAccess exposes one resolved variant as a single-entry map whose
// key is the tag and whose value is the payload, reusing the seq/map
// accessors so one generic enum visitor works across all four forms.
type enumMapAccess struct {
	d       *Deserializer
	variant *Token
	format  enumFormat
}

func newEnumMapAccess(d *Deserializer, variant Token, format enumFormat) *enumMapAccess {
	return &enumMapAccess{d: d, variant: &variant, format: format}
}

func (a *enumMapAccess) NextKey(key Unmarshaler) (bool, error) {
	if a.variant == nil {
		return false, nil
	}
	tag := *a.variant
	a.variant = nil
	switch tag.Kind {
	case KindStr, KindBorrowedStr, KindOwnedStr,
		KindBytes, KindByteBuf,
		KindUint8, KindUint16, KindUint32, KindUint64:
		if err := key.UnmarshalTokens(newTokenDecoder(tag)); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, unexpected(tag)
	}
}

func (a *enumMapAccess) NextValue(val Unmarshaler) error {
	switch a.format {
	case enumSeq:
		seq := &seqAccess{d: a.d, len: NoLen, end: TupleVariantEnd()}
		if err := val.UnmarshalTokens(newSeqDecoder(seq)); err != nil {
			return err
		}
		return a.d.assertNext(TupleVariantEnd())
	case enumMap:
		m := &mapAccess{d: a.d, len: NoLen, end: StructVariantEnd()}
		if err := val.UnmarshalTokens(newMapDecoder(m)); err != nil {
			return err
		}
		return a.d.assertNext(StructVariantEnd())
	default:
		return val.UnmarshalTokens(a.d)
	}
}

func (a *enumMapAccess) SizeHint() int { return NoLen }

// forwardToAny gives a one-shot Decoder its shape-agnostic entry points:
// a source that carries no shape information of its own defers everything
// to its DecodeAny.
type forwardToAny struct {
	d Decoder
}

func (f forwardToAny) DecodeOption(v Visitor) error                        { return f.d.DecodeAny(v) }
func (f forwardToAny) DecodeUnitStruct(_ string, v Visitor) error          { return f.d.DecodeAny(v) }
func (f forwardToAny) DecodeNewtypeStruct(_ string, v Visitor) error       { return f.d.DecodeAny(v) }
func (f forwardToAny) DecodeTuple(_ int, v Visitor) error                  { return f.d.DecodeAny(v) }
func (f forwardToAny) DecodeTupleStruct(_ string, _ int, v Visitor) error  { return f.d.DecodeAny(v) }
func (f forwardToAny) DecodeStruct(_ string, _ []string, v Visitor) error  { return f.d.DecodeAny(v) }
func (f forwardToAny) DecodeEnum(_ string, _ []string, v Visitor) error    { return f.d.DecodeAny(v) }

// tokenDecoder replays a single already-resolved token, used to surface
// variant tags as decoded values.
type tokenDecoder struct {
	forwardToAny
	tok Token
}

func newTokenDecoder(tok Token) *tokenDecoder {
	td := &tokenDecoder{tok: tok}
	td.forwardToAny.d = td
	return td
}

func (t *tokenDecoder) DecodeAny(v Visitor) error {
	switch t.tok.Kind {
	case KindStr, KindBorrowedStr, KindOwnedStr:
		return v.VisitString(t.tok.Str)
	case KindBytes, KindByteBuf:
		return v.VisitBytes(t.tok.Bytes)
	case KindUint8:
		return v.VisitUint8(uint8(t.tok.Uint))
	case KindUint16:
		return v.VisitUint16(uint16(t.tok.Uint))
	case KindUint32:
		return v.VisitUint32(uint32(t.tok.Uint))
	case KindUint64:
		return v.VisitUint64(t.tok.Uint)
	default:
		return unexpected(t.tok)
	}
}

// seqDecoder presents an in-flight sequence region as a value of its own,
// used for tuple-shaped variant payloads.
type seqDecoder struct {
	forwardToAny
	seq SeqAccess
}

func newSeqDecoder(seq SeqAccess) *seqDecoder {
	sd := &seqDecoder{seq: seq}
	sd.forwardToAny.d = sd
	return sd
}

func (s *seqDecoder) DecodeAny(v Visitor) error { return v.VisitSeq(s.seq) }

// mapDecoder is seqDecoder for struct-shaped variant payloads.
type mapDecoder struct {
	forwardToAny
	m MapAccess
}

func newMapDecoder(m MapAccess) *mapDecoder {
	md := &mapDecoder{m: m}
	md.forwardToAny.d = md
	return md
}

func (m *mapDecoder) DecodeAny(v Visitor) error { return v.VisitMap(m.m) }
