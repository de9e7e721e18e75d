package lemonade

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	t.Run("marshal keeps field order", func(t *testing.T) {
		b, err := NewRecord("Gowtham", 25).Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Gowtham","age":25}`, string(b))
	})

	t.Run("marshal escapes strings", func(t *testing.T) {
		b, err := NewRecord("a \"quoted\" <name>\n", 0).Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"name":"a \"quoted\" <name>\n","age":0}`, string(b))
	})

	t.Run("clone is independent", func(t *testing.T) {
		orig := NewRecord("Gowtham", 25)
		cp := orig.Clone()
		assert.Equal(t, orig, cp)

		cp.Name = "other"
		cp.Age = 30
		assert.Equal(t, "Gowtham", orig.Name)
		assert.Equal(t, 25, orig.Age)
	})

	t.Run("to and from M", func(t *testing.T) {
		orig := NewRecord("Gowtham", 25)
		m := orig.M()
		assert.Equal(t, M{"name": "Gowtham", "age": 25}, m)

		rec, err := RecordFromM(m)
		require.NoError(t, err)
		assert.Equal(t, orig, rec)
	})

	t.Run("from M with float age", func(t *testing.T) {
		rec, err := RecordFromM(M{"name": "Gowtham", "age": 25.0})
		require.NoError(t, err)
		assert.Equal(t, 25, rec.Age)
	})

	t.Run("from M with wrong types", func(t *testing.T) {
		_, err := RecordFromM(M{"name": 25, "age": 25})
		assert.True(t, errors.Is(err, ErrTypeMismatch))

		_, err = RecordFromM(M{"name": "Gowtham", "age": "25"})
		assert.True(t, errors.Is(err, ErrTypeMismatch))

		_, err = RecordFromM(M{"name": "Gowtham"})
		assert.True(t, errors.Is(err, ErrKeyNotFound))
	})
}
