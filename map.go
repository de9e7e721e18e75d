package lemonade

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var ErrKeyNotFound = errors.New("key not found")
var ErrTypeMismatch = errors.New("value has unexpected type")

// M is a generic record: string keys mapped to string, int, float64, bool,
// nil, nested M or []interface{} values.
type M map[string]interface{}

// fromGeneric converts decoder output into M, including nested objects.
func fromGeneric(src map[string]interface{}) M {
	result := make(M, len(src))
	for k, v := range src {
		result[k] = fromGenericValue(v)
	}
	return result
}

func fromGenericValue(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		return fromGeneric(vv)
	case M:
		return fromGeneric(vv)
	case []interface{}:
		items := make([]interface{}, len(vv))
		for i := range vv {
			items[i] = fromGenericValue(vv[i])
		}
		return items
	}
	return v
}

// generic is the inverse of fromGeneric, used before handing M to a codec.
func (m M) generic() map[string]interface{} {
	result := make(map[string]interface{}, len(m))
	for k, v := range m {
		result[k] = genericValue(v)
	}
	return result
}

func genericValue(v interface{}) interface{} {
	switch vv := v.(type) {
	case M:
		return vv.generic()
	case map[string]interface{}:
		return M(vv).generic()
	case []interface{}:
		items := make([]interface{}, len(vv))
		for i := range vv {
			items[i] = genericValue(vv[i])
		}
		return items
	}
	return v
}

func (m M) Has(k string) bool {
	_, ok := m[k]
	return ok
}

func (m M) GetString(k string) (string, error) {
	v, ok := m[k]
	if !ok {
		return "", errors.Wrapf(ErrKeyNotFound, "key %s", k)
	}

	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrTypeMismatch, "key %s holds %T, expected string", k, v)
	}

	return s, nil
}

// GetInt accepts any integer type and integral floats, so values that went
// through a decoder with a lossy numeric policy still read back as ints.
func (m M) GetInt(k string) (int, error) {
	v, ok := m[k]
	if !ok {
		return 0, errors.Wrapf(ErrKeyNotFound, "key %s", k)
	}

	switch n := v.(type) {
	case uint, uint64:
		u := cast.ToUint64(n)
		if u > math.MaxInt {
			return 0, errors.Wrapf(ErrTypeMismatch, "key %s holds %d, out of int range", k, u)
		}
		return int(u), nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, errors.Wrapf(ErrTypeMismatch, "key %s holds %d, out of int range", k, n)
		}
		return int(n), nil
	case int, int8, int16, int32, uint8, uint16, uint32:
		i, err := cast.ToIntE(n)
		if err != nil {
			return 0, errors.Wrapf(ErrTypeMismatch, "key %s: %s", k, err.Error())
		}
		return i, nil
	case float32, float64:
		f := cast.ToFloat64(n)
		if f != math.Trunc(f) || f >= math.MaxInt || f < math.MinInt {
			return 0, errors.Wrapf(ErrTypeMismatch, "key %s holds non integral number %v", k, f)
		}
		return int(f), nil
	}

	return 0, errors.Wrapf(ErrTypeMismatch, "key %s holds %T, expected int", k, v)
}

func (m M) GetFloat(k string) (float64, error) {
	v, ok := m[k]
	if !ok {
		return 0, errors.Wrapf(ErrKeyNotFound, "key %s", k)
	}

	switch v.(type) {
	case string, bool, nil:
		return 0, errors.Wrapf(ErrTypeMismatch, "key %s holds %T, expected number", k, v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errors.Wrapf(ErrTypeMismatch, "key %s: %s", k, err.Error())
	}

	return f, nil
}

func (m M) GetBool(k string) (bool, error) {
	v, ok := m[k]
	if !ok {
		return false, errors.Wrapf(ErrKeyNotFound, "key %s", k)
	}

	b, ok := v.(bool)
	if !ok {
		return false, errors.Wrapf(ErrTypeMismatch, "key %s holds %T, expected bool", k, v)
	}

	return b, nil
}

func (m M) HasString(k string) bool {
	_, ok := m[k].(string)
	return ok
}

func (m M) HasInt(k string) bool {
	_, err := m.GetInt(k)
	return err == nil
}

func (m M) HasFloat(k string) bool {
	_, ok := m[k].(float64)
	return ok
}

func (m M) HasBool(k string) bool {
	_, ok := m[k].(bool)
	return ok
}

// Keys returns the keys of m in ascending order.
func (m M) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders m as {k1=v1, k2=v2} with keys sorted.
func (m M) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		writeValue(&sb, m[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

func writeValue(sb *strings.Builder, v interface{}) {
	switch vv := v.(type) {
	case nil:
		sb.WriteString("null")
	case M:
		sb.WriteString(vv.String())
	case map[string]interface{}:
		sb.WriteString(M(vv).String())
	case []interface{}:
		sb.WriteByte('[')
		for i := range vv {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, vv[i])
		}
		sb.WriteByte(']')
	default:
		fmt.Fprint(sb, vv)
	}
}
