// Package tokentest provides:
//
// - A Token vocabulary describing every structural event a codec can emit
// - A mock Encoder (Serializer) that checks a value's encode calls against a script
// - A mock Decoder (Deserializer) that replays a script into a value's decode callbacks
// - Assert helpers comparing both directions against one literal token script
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place ready-made value wrappers under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v := codec.Slice[codec.Int32, *codec.Int32]{1, 2}
//	tokentest.AssertTokens(t, &v, []tokentest.Token{
//		tokentest.Seq(2),
//		tokentest.Int32(1),
//		tokentest.Int32(2),
//		tokentest.SeqEnd(),
//	})
//
// No byte-level encoding ever happens: the token script is the only wire
// format, and every check is in-memory token matching.
package tokentest
