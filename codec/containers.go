package codec

import (
	"cmp"
	"slices"

	"github.com/reoring/tokentest"
)

// Option is an optional value: unset encodes the none token, set encodes
// some followed by the wrapped value's tokens.
type Option[T any, PT Value[T]] struct {
	Set   bool
	Value T
}

// SomeOf builds a set Option.
func SomeOf[T any, PT Value[T]](v T) Option[T, PT] {
	return Option[T, PT]{Set: true, Value: v}
}

func (o Option[T, PT]) MarshalTokens(e tokentest.Encoder) error {
	if !o.Set {
		return e.EncodeNone()
	}
	return e.EncodeSome(PT(&o.Value))
}

func (o *Option[T, PT]) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeOption(optionVisitor[T, PT]{dst: o})
}

type optionVisitor[T any, PT Value[T]] struct {
	tokentest.BaseVisitor
	dst *Option[T, PT]
}

func (v optionVisitor[T, PT]) VisitNone() error {
	*v.dst = Option[T, PT]{}
	return nil
}

func (v optionVisitor[T, PT]) VisitSome(d tokentest.Decoder) error {
	*v.dst = Option[T, PT]{Set: true}
	return PT(&v.dst.Value).UnmarshalTokens(d)
}

// Slice is an ordered container encoded as a sequence with a known length.
type Slice[T any, PT Value[T]] []T

func (s Slice[T, PT]) MarshalTokens(e tokentest.Encoder) error {
	seq, err := e.EncodeSeq(len(s))
	if err != nil {
		return err
	}
	for i := range s {
		if err := seq.EncodeElement(PT(&s[i])); err != nil {
			return err
		}
	}
	return seq.End()
}

func (s *Slice[T, PT]) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(sliceVisitor[T, PT]{dst: s})
}

type sliceVisitor[T any, PT Value[T]] struct {
	tokentest.BaseVisitor
	dst *Slice[T, PT]
}

func (v sliceVisitor[T, PT]) VisitSeq(seq tokentest.SeqAccess) error {
	out := (*v.dst)[:0]
	if n := seq.SizeHint(); n != tokentest.NoLen && cap(out) < n {
		out = make(Slice[T, PT], 0, n)
	}
	for {
		var el T
		ok, err := seq.NextElement(PT(&el))
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		out = append(out, el)
	}
	*v.dst = out
	return nil
}

// SortedMap encodes its entries in ascending key order so token scripts
// stay deterministic.
type SortedMap[K cmp.Ordered, PK Value[K], V any, PV Value[V]] map[K]V

func (m SortedMap[K, PK, V, PV]) MarshalTokens(e tokentest.Encoder) error {
	enc, err := e.EncodeMap(len(m))
	if err != nil {
		return err
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		k := k
		if err := enc.EncodeKey(PK(&k)); err != nil {
			return err
		}
		v := m[k]
		if err := enc.EncodeValue(PV(&v)); err != nil {
			return err
		}
	}
	return enc.End()
}

func (m *SortedMap[K, PK, V, PV]) UnmarshalTokens(d tokentest.Decoder) error {
	return d.DecodeAny(sortedMapVisitor[K, PK, V, PV]{dst: m})
}

type sortedMapVisitor[K cmp.Ordered, PK Value[K], V any, PV Value[V]] struct {
	tokentest.BaseVisitor
	dst *SortedMap[K, PK, V, PV]
}

func (v sortedMapVisitor[K, PK, V, PV]) VisitMap(ma tokentest.MapAccess) error {
	hint := ma.SizeHint()
	if hint < 0 {
		hint = 0
	}
	out := make(SortedMap[K, PK, V, PV], hint)
	for {
		var k K
		ok, err := ma.NextKey(PK(&k))
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		var val V
		if err := ma.NextValue(PV(&val)); err != nil {
			return err
		}
		out[k] = val
	}
	*v.dst = out
	return nil
}
