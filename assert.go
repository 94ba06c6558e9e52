package tokentest

import (
	"github.com/google/go-cmp/cmp"

	"github.com/reoring/tokentest/internal/pretty"
)

// TestingT is the subset of testing.TB the assert helpers report through.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// AssertTokens verifies that value serializes to exactly the given token
// script, and that the same script deserializes back into an equal value,
// both into a fresh instance and in place.
//
//	v := twoFields{A: 0, B: 0}
//	tokentest.AssertTokens(t, &v, []tokentest.Token{
//		tokentest.Struct("twoFields", 2),
//		tokentest.Str("a"),
//		tokentest.Uint8(0),
//		tokentest.Str("b"),
//		tokentest.Uint8(0),
//		tokentest.StructEnd(),
//	})
func AssertTokens[T any, PT interface {
	*T
	Marshaler
	Unmarshaler
}](t TestingT, value PT, tokens []Token) {
	t.Helper()
	AssertEncode(t, value, tokens)
	AssertDecode[T, PT](t, value, tokens)
}

// AssertEncode verifies that value serializes to exactly the given tokens,
// with none left over.
func AssertEncode(t TestingT, value Marshaler, tokens []Token) {
	t.Helper()
	ser := NewSerializer(tokens)
	if err := value.MarshalTokens(ser); err != nil {
		t.Fatalf("value failed to serialize: %s", err)
	}
	if n := ser.Remaining(); n > 0 {
		t.Fatalf("%d remaining tokens", n)
	}
}

// AssertEncodeError verifies that serializing value against the given
// tokens fails with exactly msg.
func AssertEncodeError(t TestingT, value Marshaler, tokens []Token, msg string) {
	t.Helper()
	ser := NewSerializer(tokens)
	err := value.MarshalTokens(ser)
	if err == nil {
		t.Fatalf("value serialized successfully")
	}
	if err.Error() != msg {
		t.Fatalf("serialization failed with %q, want %q", err, msg)
	}
	if n := ser.Remaining(); n > 0 {
		t.Fatalf("%d remaining tokens", n)
	}
}

// AssertDecode verifies that the given tokens deserialize into a value
// equal to value. The script is replayed twice: once into a fresh zero
// instance and once more into the already-populated result, exercising the
// in-place path.
func AssertDecode[T any, PT interface {
	*T
	Unmarshaler
}](t TestingT, value PT, tokens []Token) {
	t.Helper()

	de := NewDeserializer(tokens)
	got := PT(new(T))
	if err := got.UnmarshalTokens(de); err != nil {
		t.Fatalf("tokens failed to deserialize: %s", err)
	}
	if diff := cmp.Diff(value, got); diff != "" {
		t.Fatalf("tokens deserialized into an unexpected value (-want +got):\n%s", diff)
	}
	if n := de.Remaining(); n > 0 {
		t.Fatalf("%d remaining tokens", n)
	}

	// Replay into the populated value. A no-op UnmarshalTokens would pass
	// this trivially, but it still catches a lot of junk.
	de = NewDeserializer(tokens)
	if err := got.UnmarshalTokens(de); err != nil {
		t.Fatalf("tokens failed to deserialize in place: %s", err)
	}
	if diff := cmp.Diff(value, got); diff != "" {
		t.Fatalf("in-place deserialization produced an unexpected value (-want +got):\n%s", diff)
	}
	if n := de.Remaining(); n > 0 {
		t.Fatalf("%d remaining tokens", n)
	}
}

// AssertDecodeError verifies that deserializing the given tokens into a
// fresh T fails with exactly msg.
func AssertDecodeError[T any, PT interface {
	*T
	Unmarshaler
}](t TestingT, tokens []Token, msg string) {
	t.Helper()

	de := NewDeserializer(tokens)
	got := PT(new(T))
	err := got.UnmarshalTokens(de)
	if err == nil {
		t.Fatalf("tokens deserialized successfully: %s", pretty.JSON(got))
	}
	if err.Error() != msg {
		t.Fatalf("deserialization failed with %q, want %q", err, msg)
	}

	// A peek may have triggered the failure without consuming the token it
	// looked at, so at most one trailing token is drained before the
	// leftover check. Deliberately no stricter than that.
	de.nextToken()

	if n := de.Remaining(); n > 0 {
		t.Fatalf("%d remaining tokens", n)
	}
}
