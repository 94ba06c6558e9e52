package tokentest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	tokentest "github.com/reoring/tokentest"
)

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  tokentest.Token
		want string
	}{
		{tokentest.Bool(true), `Bool(true)`},
		{tokentest.Int8(-1), `Int8(-1)`},
		{tokentest.Int64(math.MinInt64), `Int64(-9223372036854775808)`},
		{tokentest.Uint8(0), `Uint8(0)`},
		{tokentest.Uint64(math.MaxUint64), `Uint64(18446744073709551615)`},
		{tokentest.Float32(1.5), `Float32(1.5)`},
		{tokentest.Float64(-0.25), `Float64(-0.25)`},
		{tokentest.Rune('q'), `Rune('q')`},
		{tokentest.Str("hi"), `Str("hi")`},
		{tokentest.BorrowedStr("hi"), `BorrowedStr("hi")`},
		{tokentest.OwnedStr("hi"), `OwnedStr("hi")`},
		{tokentest.Bytes([]byte{1, 2}), `Bytes([1 2])`},
		{tokentest.ByteBuf([]byte{1, 2}), `ByteBuf([1 2])`},
		{tokentest.None(), `None`},
		{tokentest.Some(), `Some`},
		{tokentest.Unit(), `Unit`},
		{tokentest.UnitStruct("marker"), `UnitStruct("marker")`},
		{tokentest.NewtypeStruct("meters"), `NewtypeStruct("meters")`},
		{tokentest.Seq(2), `Seq(2)`},
		{tokentest.Seq(tokentest.NoLen), `Seq(?)`},
		{tokentest.SeqEnd(), `SeqEnd`},
		{tokentest.Tuple(2), `Tuple(2)`},
		{tokentest.Map(tokentest.NoLen), `Map(?)`},
		{tokentest.MapEnd(), `MapEnd`},
		{tokentest.TupleStruct("pair", 2), `TupleStruct("pair", 2)`},
		{tokentest.Struct("twoFields", 2), `Struct("twoFields", 2)`},
		{tokentest.StructEnd(), `StructEnd`},
		{tokentest.Enum("shape"), `Enum("shape")`},
		{tokentest.UnitVariant("shape", "Empty"), `UnitVariant("shape", "Empty")`},
		{tokentest.NewtypeVariant("shape", "Single"), `NewtypeVariant("shape", "Single")`},
		{tokentest.TupleVariant("shape", "Pair", 2), `TupleVariant("shape", "Pair", 2)`},
		{tokentest.TupleVariantEnd(), `TupleVariantEnd`},
		{tokentest.StructVariant("shape", "Full", 2), `StructVariant("shape", "Full", 2)`},
		{tokentest.StructVariantEnd(), `StructVariantEnd`},
		{tokentest.SkipField("legacy"), `SkipField("legacy")`},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.tok.String())
	}
}

func TestTokenEqual(t *testing.T) {
	t.Run("kind mismatch", func(t *testing.T) {
		require.False(t, tokentest.Uint8(1).Equal(tokentest.Int8(1)))
		require.False(t, tokentest.Str("a").Equal(tokentest.BorrowedStr("a")))
	})

	t.Run("floats compare by bit pattern", func(t *testing.T) {
		nan := tokentest.Float64(math.NaN())
		require.True(t, nan.Equal(tokentest.Float64(math.NaN())))
		require.False(t, tokentest.Float64(0).Equal(tokentest.Float64(math.Copysign(0, -1))))
		require.True(t, tokentest.Float32(1.5).Equal(tokentest.Float32(1.5)))
	})

	t.Run("bytes compare by content", func(t *testing.T) {
		require.True(t, tokentest.Bytes([]byte{1, 2}).Equal(tokentest.Bytes([]byte{1, 2})))
		require.False(t, tokentest.Bytes([]byte{1}).Equal(tokentest.Bytes([]byte{1, 2})))
		require.True(t, tokentest.Bytes(nil).Equal(tokentest.Bytes([]byte{})))
	})

	t.Run("length hints are part of identity", func(t *testing.T) {
		require.True(t, tokentest.Seq(2).Equal(tokentest.Seq(2)))
		require.False(t, tokentest.Seq(2).Equal(tokentest.Seq(tokentest.NoLen)))
		require.False(t, tokentest.Struct("s", 1).Equal(tokentest.Struct("s", 2)))
		require.False(t, tokentest.Struct("s", 1).Equal(tokentest.Struct("t", 1)))
	})

	t.Run("variant identity", func(t *testing.T) {
		require.True(t, tokentest.UnitVariant("e", "A").Equal(tokentest.UnitVariant("e", "A")))
		require.False(t, tokentest.UnitVariant("e", "A").Equal(tokentest.UnitVariant("e", "B")))
		require.True(t, tokentest.SeqEnd().Equal(tokentest.SeqEnd()))
	})
}

func TestErrorMessage(t *testing.T) {
	require.EqualError(t, tokentest.NewError("boom"), "boom")
	require.EqualError(t, tokentest.Errorf("bad %q", "x"), `bad "x"`)
}
