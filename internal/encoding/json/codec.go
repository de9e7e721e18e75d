package json

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/denismitr/lemonade/internal/encoding/codec"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Codec implements codec.Codec for JSON. Decoding is done with gjson so that
// integer literals survive as ints instead of collapsing into float64.
type Codec struct{}

func New(_ ...interface{}) codec.Codec {
	return &Codec{}
}

func (*Codec) Encode(v map[string]interface{}) ([]byte, error) {
	return Marshal(v)
}

func (*Codec) Decode(b []byte) (map[string]interface{}, error) {
	return Unmarshal(b)
}

// Marshal encodes v without HTML escaping and without the trailing newline
// json.Encoder normally appends.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrapf(err, "could not marshal %T", v)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Unmarshal parses a JSON object into a generic map.
func Unmarshal(b []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, errors.Wrap(codec.ErrParse, "empty input")
	}

	if !gjson.ValidBytes(b) {
		return nil, errors.Wrapf(codec.ErrParse, "invalid json %q", truncate(b))
	}

	doc := gjson.ParseBytes(b)
	if !doc.IsObject() {
		return nil, errors.Wrapf(codec.ErrParse, "expected a json object, got %q", truncate(b))
	}

	return objectFrom(doc)
}

// objectFrom rejects repeated keys instead of letting the last one win.
func objectFrom(r gjson.Result) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	var err error
	r.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if _, ok := result[key]; ok {
			err = errors.Wrapf(codec.ErrParse, "duplicate key %q", key)
			return false
		}

		result[key], err = valueFrom(v)
		return err == nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func valueFrom(r gjson.Result) (interface{}, error) {
	switch r.Type {
	case gjson.Null:
		return nil, nil
	case gjson.False:
		return false, nil
	case gjson.True:
		return true, nil
	case gjson.String:
		return r.Str, nil
	case gjson.Number:
		return numberFrom(r), nil
	case gjson.JSON:
		if r.IsArray() {
			items := make([]interface{}, 0)
			var err error
			r.ForEach(func(_, v gjson.Result) bool {
				var item interface{}
				item, err = valueFrom(v)
				items = append(items, item)
				return err == nil
			})
			if err != nil {
				return nil, err
			}
			return items, nil
		}

		return objectFrom(r)
	}

	return nil, nil
}

// numberFrom keeps integer literals as int and everything else as float64.
// "-0" stays a float so the sign survives a round trip.
func numberFrom(r gjson.Result) interface{} {
	raw := strings.TrimSpace(r.Raw)
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, strconv.IntSize); err == nil && !(i == 0 && strings.HasPrefix(raw, "-")) {
			return int(i)
		}
	}

	return r.Num
}

func truncate(b []byte) string {
	const limit = 64
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
