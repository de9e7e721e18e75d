package codec

import "github.com/pkg/errors"

// ErrParse is returned by every codec when its input is not well-formed.
var ErrParse = errors.New("malformed interchange text")

type Codec interface {
	// Decode decodes the contents of b into a generic map.
	// Nested objects are decoded as map[string]interface{} as well.
	Decode(b []byte) (map[string]interface{}, error)

	// Encode encodes a generic map into its byte representation.
	Encode(v map[string]interface{}) ([]byte, error)
}
