package tokentest_test

import (
	"testing"

	tokentest "github.com/reoring/tokentest"
)

func structScript() []tokentest.Token {
	return []tokentest.Token{
		tokentest.Struct("twoFields", 2),
		tokentest.Str("a"),
		tokentest.Uint8(1),
		tokentest.Str("b"),
		tokentest.Uint8(2),
		tokentest.StructEnd(),
	}
}

func BenchmarkSerializeStruct(b *testing.B) {
	value := twoFields{A: 1, B: 2}
	script := structScript()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ser := tokentest.NewSerializer(script)
		if err := value.MarshalTokens(ser); err != nil {
			b.Fatal(err)
		}
		if ser.Remaining() != 0 {
			b.Fatal("tokens left over")
		}
	}
}

func BenchmarkDeserializeStruct(b *testing.B) {
	script := structScript()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		de := tokentest.NewDeserializer(script)
		var value twoFields
		if err := value.UnmarshalTokens(de); err != nil {
			b.Fatal(err)
		}
		if de.Remaining() != 0 {
			b.Fatal("tokens left over")
		}
	}
}
