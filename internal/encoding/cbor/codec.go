package cbor

import (
	"math"
	"reflect"

	"github.com/denismitr/lemonade/internal/encoding/codec"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

var mapType = reflect.TypeOf(map[string]interface{}(nil))

// Codec implements codec.Codec for CBOR using the canonical (RFC 8949 core
// deterministic) encoding, so equal maps always produce equal bytes.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func New(_ ...interface{}) codec.Codec {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("invalid cbor encoding options: " + err.Error())
	}

	dec, err := cbor.DecOptions{
		IntDec:         cbor.IntDecConvertSigned,
		DefaultMapType: mapType,
	}.DecMode()
	if err != nil {
		panic("invalid cbor decoding options: " + err.Error())
	}

	return &Codec{enc: enc, dec: dec}
}

func (c *Codec) Encode(v map[string]interface{}) ([]byte, error) {
	b, err := c.enc.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal cbor")
	}
	return b, nil
}

func (c *Codec) Decode(b []byte) (map[string]interface{}, error) {
	if len(b) == 0 {
		return nil, errors.Wrap(codec.ErrParse, "empty input")
	}

	if err := c.dec.Wellformed(b); err != nil {
		return nil, errors.Wrap(codec.ErrParse, err.Error())
	}

	var v interface{}
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return nil, errors.Wrap(codec.ErrParse, err.Error())
	}

	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.Wrapf(codec.ErrParse, "expected a cbor map, got %T", v)
	}

	return normalize(m).(map[string]interface{}), nil
}

// normalize narrows int64 values to int where they fit, matching what the
// json codec produces for integer literals.
func normalize(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, item := range vv {
			vv[k] = normalize(item)
		}
		return vv
	case []interface{}:
		for i, item := range vv {
			vv[i] = normalize(item)
		}
		return vv
	case int64:
		if vv >= math.MinInt && vv <= math.MaxInt {
			return int(vv)
		}
		return vv
	}

	return v
}
