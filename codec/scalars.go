// Package codec provides ready-made Marshaler/Unmarshaler wrappers for Go
// scalar types and generic containers, the building blocks of conformance
// tests. Each wrapper is strict: it decodes exactly its own shape and width.
package codec

import (
	"github.com/reoring/tokentest"
)

// Value constrains a pointer to T to both codec capabilities. Container
// wrappers use it to address their elements.
type Value[T any] interface {
	*T
	tokentest.Marshaler
	tokentest.Unmarshaler
}

type Bool bool

func (v Bool) MarshalTokens(e tokentest.Encoder) error { return e.EncodeBool(bool(v)) }
func (v *Bool) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(boolVisitor{dst: v})
}

type boolVisitor struct {
	tokentest.BaseVisitor
	dst *Bool
}

func (v boolVisitor) VisitBool(b bool) error { *v.dst = Bool(b); return nil }

type Int8 int8

func (v Int8) MarshalTokens(e tokentest.Encoder) error { return e.EncodeInt8(int8(v)) }
func (v *Int8) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(int8Visitor{dst: v})
}

type int8Visitor struct {
	tokentest.BaseVisitor
	dst *Int8
}

func (v int8Visitor) VisitInt8(n int8) error { *v.dst = Int8(n); return nil }

type Int16 int16

func (v Int16) MarshalTokens(e tokentest.Encoder) error { return e.EncodeInt16(int16(v)) }
func (v *Int16) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(int16Visitor{dst: v})
}

type int16Visitor struct {
	tokentest.BaseVisitor
	dst *Int16
}

func (v int16Visitor) VisitInt16(n int16) error { *v.dst = Int16(n); return nil }

type Int32 int32

func (v Int32) MarshalTokens(e tokentest.Encoder) error { return e.EncodeInt32(int32(v)) }
func (v *Int32) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(int32Visitor{dst: v})
}

type int32Visitor struct {
	tokentest.BaseVisitor
	dst *Int32
}

func (v int32Visitor) VisitInt32(n int32) error { *v.dst = Int32(n); return nil }

type Int64 int64

func (v Int64) MarshalTokens(e tokentest.Encoder) error { return e.EncodeInt64(int64(v)) }
func (v *Int64) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(int64Visitor{dst: v})
}

type int64Visitor struct {
	tokentest.BaseVisitor
	dst *Int64
}

func (v int64Visitor) VisitInt64(n int64) error { *v.dst = Int64(n); return nil }

type Uint8 uint8

func (v Uint8) MarshalTokens(e tokentest.Encoder) error { return e.EncodeUint8(uint8(v)) }
func (v *Uint8) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(uint8Visitor{dst: v})
}

type uint8Visitor struct {
	tokentest.BaseVisitor
	dst *Uint8
}

func (v uint8Visitor) VisitUint8(n uint8) error { *v.dst = Uint8(n); return nil }

type Uint16 uint16

func (v Uint16) MarshalTokens(e tokentest.Encoder) error { return e.EncodeUint16(uint16(v)) }
func (v *Uint16) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(uint16Visitor{dst: v})
}

type uint16Visitor struct {
	tokentest.BaseVisitor
	dst *Uint16
}

func (v uint16Visitor) VisitUint16(n uint16) error { *v.dst = Uint16(n); return nil }

type Uint32 uint32

func (v Uint32) MarshalTokens(e tokentest.Encoder) error { return e.EncodeUint32(uint32(v)) }
func (v *Uint32) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(uint32Visitor{dst: v})
}

type uint32Visitor struct {
	tokentest.BaseVisitor
	dst *Uint32
}

func (v uint32Visitor) VisitUint32(n uint32) error { *v.dst = Uint32(n); return nil }

type Uint64 uint64

func (v Uint64) MarshalTokens(e tokentest.Encoder) error { return e.EncodeUint64(uint64(v)) }
func (v *Uint64) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(uint64Visitor{dst: v})
}

type uint64Visitor struct {
	tokentest.BaseVisitor
	dst *Uint64
}

func (v uint64Visitor) VisitUint64(n uint64) error { *v.dst = Uint64(n); return nil }

type Float32 float32

func (v Float32) MarshalTokens(e tokentest.Encoder) error { return e.EncodeFloat32(float32(v)) }
func (v *Float32) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(float32Visitor{dst: v})
}

type float32Visitor struct {
	tokentest.BaseVisitor
	dst *Float32
}

func (v float32Visitor) VisitFloat32(f float32) error { *v.dst = Float32(f); return nil }

type Float64 float64

func (v Float64) MarshalTokens(e tokentest.Encoder) error { return e.EncodeFloat64(float64(v)) }
func (v *Float64) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(float64Visitor{dst: v})
}

type float64Visitor struct {
	tokentest.BaseVisitor
	dst *Float64
}

func (v float64Visitor) VisitFloat64(f float64) error { *v.dst = Float64(f); return nil }

type Rune rune

func (v Rune) MarshalTokens(e tokentest.Encoder) error { return e.EncodeRune(rune(v)) }
func (v *Rune) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(runeVisitor{dst: v})
}

type runeVisitor struct {
	tokentest.BaseVisitor
	dst *Rune
}

func (v runeVisitor) VisitRune(r rune) error { *v.dst = Rune(r); return nil }

type String string

func (v String) MarshalTokens(e tokentest.Encoder) error { return e.EncodeString(string(v)) }
func (v *String) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(stringVisitor{dst: v})
}

type stringVisitor struct {
	tokentest.BaseVisitor
	dst *String
}

func (v stringVisitor) VisitString(s string) error { *v.dst = String(s); return nil }

type Bytes []byte

func (v Bytes) MarshalTokens(e tokentest.Encoder) error { return e.EncodeBytes([]byte(v)) }
func (v *Bytes) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(bytesVisitor{dst: v})
}

type bytesVisitor struct {
	tokentest.BaseVisitor
	dst *Bytes
}

func (v bytesVisitor) VisitBytes(b []byte) error {
	*v.dst = append((*v.dst)[:0], b...)
	return nil
}

// Unit is the zero-size value.
type Unit struct{}

func (Unit) MarshalTokens(e tokentest.Encoder) error { return e.EncodeUnit() }
func (*Unit) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(unitVisitor{})
}

type unitVisitor struct{ tokentest.BaseVisitor }

func (unitVisitor) VisitUnit() error { return nil }
