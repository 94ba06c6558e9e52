package codec

import (
	"github.com/reoring/tokentest"
)

// Any decodes whatever shape the script supplies into a generic Go value:
// scalars keep their native type, none and unit become nil, sequences
// become []any, and map-shaped regions (including structs and resolved
// variants) become map[any]any. Byte-slice map keys are converted to
// strings so they stay comparable.
type Any struct {
	Value any
}

func (a *Any) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(&anyVisitor{dst: a})
}

type anyVisitor struct {
	tokentest.BaseVisitor
	dst *Any
}

func (v *anyVisitor) VisitBool(b bool) error       { v.dst.Value = b; return nil }
func (v *anyVisitor) VisitInt8(n int8) error       { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitInt16(n int16) error     { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitInt32(n int32) error     { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitInt64(n int64) error     { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitUint8(n uint8) error     { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitUint16(n uint16) error   { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitUint32(n uint32) error   { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitUint64(n uint64) error   { v.dst.Value = n; return nil }
func (v *anyVisitor) VisitFloat32(f float32) error { v.dst.Value = f; return nil }
func (v *anyVisitor) VisitFloat64(f float64) error { v.dst.Value = f; return nil }
func (v *anyVisitor) VisitRune(r rune) error       { v.dst.Value = r; return nil }
func (v *anyVisitor) VisitString(s string) error   { v.dst.Value = s; return nil }

func (v *anyVisitor) VisitBytes(b []byte) error {
	v.dst.Value = append([]byte(nil), b...)
	return nil
}

func (v *anyVisitor) VisitNone() error { v.dst.Value = nil; return nil }
func (v *anyVisitor) VisitUnit() error { v.dst.Value = nil; return nil }

func (v *anyVisitor) VisitSome(d tokentest.Decoder) error {
	var inner Any
	if err := inner.UnmarshalTokens(d); err != nil {
		return err
	}
	v.dst.Value = inner.Value
	return nil
}

func (v *anyVisitor) VisitNewtype(d tokentest.Decoder) error {
	var inner Any
	if err := inner.UnmarshalTokens(d); err != nil {
		return err
	}
	v.dst.Value = inner.Value
	return nil
}

func (v *anyVisitor) VisitSeq(seq tokentest.SeqAccess) error {
	var arr []any
	for {
		var el Any
		ok, err := seq.NextElement(&el)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		arr = append(arr, el.Value)
	}
	v.dst.Value = arr
	return nil
}

func (v *anyVisitor) VisitMap(ma tokentest.MapAccess) error {
	out := make(map[any]any)
	for {
		var key Any
		ok, err := ma.NextKey(&key)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		var val Any
		if err := ma.NextValue(&val); err != nil {
			return err
		}
		k := key.Value
		if b, isBytes := k.([]byte); isBytes {
			k = string(b)
		}
		out[k] = val.Value
	}
	v.dst.Value = out
	return nil
}

// Ignored consumes exactly one value of any shape and discards it, the
// counterpart a visitor can hand to NextValue for fields it does not want.
type Ignored struct{}

func (*Ignored) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(ignoredVisitor{})
}

type ignoredVisitor struct {
	tokentest.BaseVisitor
}

func (ignoredVisitor) VisitBool(bool) error       { return nil }
func (ignoredVisitor) VisitInt8(int8) error       { return nil }
func (ignoredVisitor) VisitInt16(int16) error     { return nil }
func (ignoredVisitor) VisitInt32(int32) error     { return nil }
func (ignoredVisitor) VisitInt64(int64) error     { return nil }
func (ignoredVisitor) VisitUint8(uint8) error     { return nil }
func (ignoredVisitor) VisitUint16(uint16) error   { return nil }
func (ignoredVisitor) VisitUint32(uint32) error   { return nil }
func (ignoredVisitor) VisitUint64(uint64) error   { return nil }
func (ignoredVisitor) VisitFloat32(float32) error { return nil }
func (ignoredVisitor) VisitFloat64(float64) error { return nil }
func (ignoredVisitor) VisitRune(rune) error       { return nil }
func (ignoredVisitor) VisitString(string) error   { return nil }
func (ignoredVisitor) VisitBytes([]byte) error    { return nil }
func (ignoredVisitor) VisitNone() error           { return nil }
func (ignoredVisitor) VisitUnit() error           { return nil }

func (ignoredVisitor) VisitSome(d tokentest.Decoder) error {
	var skip Ignored
	return skip.UnmarshalTokens(d)
}

func (ignoredVisitor) VisitNewtype(d tokentest.Decoder) error {
	var skip Ignored
	return skip.UnmarshalTokens(d)
}

func (ignoredVisitor) VisitSeq(seq tokentest.SeqAccess) error {
	for {
		var el Ignored
		ok, err := seq.NextElement(&el)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func (ignoredVisitor) VisitMap(ma tokentest.MapAccess) error {
	for {
		var key Ignored
		ok, err := ma.NextKey(&key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		var val Ignored
		if err := ma.NextValue(&val); err != nil {
			return err
		}
	}
}

func (ignoredVisitor) VisitEnum(e tokentest.EnumAccess) error {
	var tag Ignored
	va, err := e.Variant(&tag)
	if err != nil {
		return err
	}
	var payload Ignored
	return va.NewtypeVariant(&payload)
}
