package tokentest_test

// Fixture types shared by the test suite. They stand in for the
// macro-generated encode/decode implementations a real codec user would
// bring: a two-field struct (with a strict variant rejecting unknown
// fields), a unit struct, a newtype struct, a tuple struct, and a
// four-variant enum.

import (
	tokentest "github.com/reoring/tokentest"
	"github.com/reoring/tokentest/codec"
)

type twoFields struct {
	A uint8
	B uint8
}

func (r twoFields) MarshalTokens(e tokentest.Encoder) error {
	enc, err := e.EncodeStruct("twoFields", 2)
	if err != nil {
		return err
	}
	if err := enc.EncodeField("a", (*codec.Uint8)(&r.A)); err != nil {
		return err
	}
	if err := enc.EncodeField("b", (*codec.Uint8)(&r.B)); err != nil {
		return err
	}
	return enc.End()
}

func (r *twoFields) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeStruct("twoFields", []string{"a", "b"}, &twoFieldsVisitor{dst: r})
}

// strictTwoFields decodes like twoFields but rejects unknown fields.
type strictTwoFields twoFields

func (r *strictTwoFields) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeStruct("twoFields", []string{"a", "b"}, &twoFieldsVisitor{
		dst:    (*twoFields)(r),
		strict: true,
	})
}

type twoFieldsVisitor struct {
	tokentest.BaseVisitor
	dst    *twoFields
	strict bool
}

func (v *twoFieldsVisitor) VisitMap(m tokentest.MapAccess) error {
	for {
		var key codec.String
		ok, err := m.NextKey(&key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch string(key) {
		case "a":
			if err := m.NextValue((*codec.Uint8)(&v.dst.A)); err != nil {
				return err
			}
		case "b":
			if err := m.NextValue((*codec.Uint8)(&v.dst.B)); err != nil {
				return err
			}
		default:
			if v.strict {
				return tokentest.Errorf("unknown field %q, expected %q or %q", string(key), "a", "b")
			}
			var skip codec.Ignored
			if err := m.NextValue(&skip); err != nil {
				return err
			}
		}
	}
}

type marker struct{}

func (marker) MarshalTokens(e tokentest.Encoder) error {
	return e.EncodeUnitStruct("marker")
}

func (*marker) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeUnitStruct("marker", markerVisitor{})
}

type markerVisitor struct{ tokentest.BaseVisitor }

func (markerVisitor) VisitUnit() error { return nil }

type meters struct {
	M uint32
}

func (m meters) MarshalTokens(e tokentest.Encoder) error {
	return e.EncodeNewtypeStruct("meters", (*codec.Uint32)(&m.M))
}

func (m *meters) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeNewtypeStruct("meters", metersVisitor{dst: m})
}

type metersVisitor struct {
	tokentest.BaseVisitor
	dst *meters
}

func (v metersVisitor) VisitNewtype(d tokentest.Decoder) error {
	return (*codec.Uint32)(&v.dst.M).UnmarshalTokens(d)
}

type pair struct {
	X int32
	Y int32
}

func (p pair) MarshalTokens(e tokentest.Encoder) error {
	enc, err := e.EncodeTupleStruct("pair", 2)
	if err != nil {
		return err
	}
	if err := enc.EncodeElement((*codec.Int32)(&p.X)); err != nil {
		return err
	}
	if err := enc.EncodeElement((*codec.Int32)(&p.Y)); err != nil {
		return err
	}
	return enc.End()
}

func (p *pair) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeTupleStruct("pair", 2, pairVisitor{dst: p})
}

type pairVisitor struct {
	tokentest.BaseVisitor
	dst *pair
}

func (v pairVisitor) VisitSeq(seq tokentest.SeqAccess) error {
	for _, dst := range []*int32{&v.dst.X, &v.dst.Y} {
		ok, err := seq.NextElement((*codec.Int32)(dst))
		if err != nil {
			return err
		}
		if !ok {
			return tokentest.NewError("missing tuple element")
		}
	}
	return nil
}

// shape is the four-variant enum fixture: Empty (unit), Single (newtype of
// uint8), Pair (tuple of two int32), Full (struct with fields x, y).
type shape struct {
	Tag string
	N   uint8
	A   int32
	B   int32
	X   uint8
	Y   uint8
}

func (s shape) MarshalTokens(e tokentest.Encoder) error {
	switch s.Tag {
	case "Empty":
		return e.EncodeUnitVariant("shape", "Empty")
	case "Single":
		return e.EncodeNewtypeVariant("shape", "Single", (*codec.Uint8)(&s.N))
	case "Pair":
		enc, err := e.EncodeTupleVariant("shape", "Pair", 2)
		if err != nil {
			return err
		}
		if err := enc.EncodeElement((*codec.Int32)(&s.A)); err != nil {
			return err
		}
		if err := enc.EncodeElement((*codec.Int32)(&s.B)); err != nil {
			return err
		}
		return enc.End()
	case "Full":
		enc, err := e.EncodeStructVariant("shape", "Full", 2)
		if err != nil {
			return err
		}
		if err := enc.EncodeField("x", (*codec.Uint8)(&s.X)); err != nil {
			return err
		}
		if err := enc.EncodeField("y", (*codec.Uint8)(&s.Y)); err != nil {
			return err
		}
		return enc.End()
	default:
		return tokentest.Errorf("unknown variant %q", s.Tag)
	}
}

func (s *shape) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeEnum("shape", []string{"Empty", "Single", "Pair", "Full"}, &shapeVisitor{dst: s})
}

type shapeVisitor struct {
	tokentest.BaseVisitor
	dst *shape
}

func (v *shapeVisitor) VisitEnum(ea tokentest.EnumAccess) error {
	var tag codec.String
	va, err := ea.Variant(&tag)
	if err != nil {
		return err
	}
	*v.dst = shape{Tag: string(tag)}
	switch string(tag) {
	case "Empty":
		return va.UnitVariant()
	case "Single":
		return va.NewtypeVariant((*codec.Uint8)(&v.dst.N))
	case "Pair":
		return va.TupleVariant(2, shapePairVisitor{dst: v.dst})
	case "Full":
		return va.StructVariant([]string{"x", "y"}, shapeFullVisitor{dst: v.dst})
	default:
		return tokentest.Errorf("unknown variant %q", string(tag))
	}
}

type shapePairVisitor struct {
	tokentest.BaseVisitor
	dst *shape
}

func (v shapePairVisitor) VisitSeq(seq tokentest.SeqAccess) error {
	for _, dst := range []*int32{&v.dst.A, &v.dst.B} {
		ok, err := seq.NextElement((*codec.Int32)(dst))
		if err != nil {
			return err
		}
		if !ok {
			return tokentest.NewError("missing tuple element")
		}
	}
	return nil
}

type shapeFullVisitor struct {
	tokentest.BaseVisitor
	dst *shape
}

func (v shapeFullVisitor) VisitMap(m tokentest.MapAccess) error {
	for {
		var key codec.String
		ok, err := m.NextKey(&key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch string(key) {
		case "x":
			if err := m.NextValue((*codec.Uint8)(&v.dst.X)); err != nil {
				return err
			}
		case "y":
			if err := m.NextValue((*codec.Uint8)(&v.dst.Y)); err != nil {
				return err
			}
		default:
			return tokentest.Errorf("unknown field %q, expected %q or %q", string(key), "x", "y")
		}
	}
}
