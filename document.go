package lemonade

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrJsonPathInvalid = errors.New("json path is invalid")

// Document is an encoded JSON object with path based accessors.
type Document struct {
	b []byte
}

// NewDocument validates b and wraps it. The bytes are copied.
func NewDocument(b []byte) (*Document, error) {
	if !gjson.ValidBytes(b) || !gjson.ParseBytes(b).IsObject() {
		return nil, errors.Wrap(ErrParse, "document is not a json object")
	}

	cp := make([]byte, len(b))
	copy(cp, b)
	return &Document{b: cp}, nil
}

func (d *Document) Bytes() []byte {
	return d.b
}

func (d *Document) RawString() string {
	return string(d.b)
}

func (d *Document) Checksum() uint64 {
	return Checksum(d.b)
}

// M decodes the whole document.
func (d *Document) M() (M, error) {
	return Unmarshal(d.b)
}

func (d *Document) get(path string, want ...gjson.Type) (gjson.Result, error) {
	raw := gjson.GetBytes(d.b, path)
	if !raw.Exists() {
		return raw, errors.Wrapf(ErrJsonPathInvalid, "path %s", path)
	}

	for _, t := range want {
		if raw.Type == t {
			return raw, nil
		}
	}

	return raw, errors.Wrapf(ErrTypeMismatch, "path %s holds %s", path, raw.Type)
}

func (d *Document) String(path string) (string, error) {
	raw, err := d.get(path, gjson.String, gjson.Null)
	if err != nil {
		return "", err
	}
	return raw.String(), nil
}

func (d *Document) StringOrDefault(path, def string) string {
	if v, err := d.String(path); err != nil {
		return def
	} else {
		return v
	}
}

func (d *Document) Float(path string) (float64, error) {
	raw, err := d.get(path, gjson.Number)
	if err != nil {
		return 0, err
	}
	return raw.Float(), nil
}

func (d *Document) FloatOrDefault(path string, def float64) float64 {
	if v, err := d.Float(path); err != nil {
		return def
	} else {
		return v
	}
}

func (d *Document) Int(path string) (int, error) {
	raw, err := d.get(path, gjson.Number)
	if err != nil {
		return 0, err
	}

	if float64(raw.Int()) != raw.Float() {
		return 0, errors.Wrapf(ErrTypeMismatch, "path %s holds non integral number %s", path, raw.Raw)
	}

	return int(raw.Int()), nil
}

func (d *Document) IntOrDefault(path string, def int) int {
	if v, err := d.Int(path); err != nil {
		return def
	} else {
		return v
	}
}

func (d *Document) Bool(path string) (bool, error) {
	raw, err := d.get(path, gjson.True, gjson.False)
	if err != nil {
		return false, err
	}
	return raw.Bool(), nil
}

func (d *Document) BoolOrDefault(path string, def bool) bool {
	if v, err := d.Bool(path); err != nil {
		return def
	} else {
		return v
	}
}
