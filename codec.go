package lemonade

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/denismitr/lemonade/internal/encoding"
	"github.com/denismitr/lemonade/internal/encoding/codec"
	"github.com/denismitr/lemonade/internal/encoding/json"
	"github.com/pkg/errors"
)

// ErrParse is returned when the input is not well-formed interchange text.
var ErrParse = codec.ErrParse

var ErrRoundTrip = errors.New("encoding is not stable across a round trip")

var codecs = encoding.NewRegistry()

// Marshal encodes v as JSON. Maps are written with sorted keys, structs in
// field order.
func Marshal(v interface{}) ([]byte, error) {
	if m, ok := v.(M); ok {
		v = m.generic()
	}

	return json.Marshal(v)
}

// Unmarshal parses a JSON object. Integer literals decode as int, other
// numbers as float64.
func Unmarshal(b []byte) (M, error) {
	return Decode(encoding.JSON, b)
}

// Encode encodes m with the codec registered for format ("json" or "cbor").
func Encode(format string, m M) ([]byte, error) {
	return codecs.Encode(format, m.generic())
}

func Decode(format string, b []byte) (M, error) {
	v, err := codecs.Decode(format, b)
	if err != nil {
		return nil, err
	}

	return fromGeneric(v), nil
}

func Checksum(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// VerifyRoundTrip checks that encoding m, decoding it and encoding it again
// yields the same bytes. It returns the checksum of the encoding.
func VerifyRoundTrip(m M) (uint64, error) {
	first, err := Marshal(m)
	if err != nil {
		return 0, err
	}

	parsed, err := Unmarshal(first)
	if err != nil {
		return 0, errors.Wrap(err, "could not parse own encoding")
	}

	second, err := Marshal(parsed)
	if err != nil {
		return 0, err
	}

	sum := Checksum(first)
	if sum != Checksum(second) || !bytes.Equal(first, second) {
		return 0, errors.Wrapf(ErrRoundTrip, "%s != %s", first, second)
	}

	return sum, nil
}
