// Package msgs defines some test messages for codec unit tests.
package msgs

// Message1 is a test message. It is long enough to span several lines of
// chunked base64 output.
const Message1 = `Security is mostly a superstition. It does not exist in
nature, nor do the children of men as a whole experience it. God Himself is
not secure, having given man dominion over His works! Avoiding danger is no
safer in the long run than outright exposure. The fearful are caught as often
as the bold. Faith alone defends. Life is either a daring adventure or
nothing. To keep our faces toward change and behave like free spirits in the
presence of fate is strength undefeatable. — Helen Keller, 1940`

// Vector is a test vector of RFC 4648, section 10.
type Vector struct {
	Decoded string
	Base64  string
	Base16  string
}

// RFC4648 contains the base64 and base16 test vectors of RFC 4648.
var RFC4648 = []Vector{
	{"", "", ""},
	{"f", "Zg==", "66"},
	{"fo", "Zm8=", "666F"},
	{"foo", "Zm9v", "666F6F"},
	{"foob", "Zm9vYg==", "666F6F62"},
	{"fooba", "Zm9vYmE=", "666F6F6261"},
	{"foobar", "Zm9vYmFy", "666F6F626172"},
}
