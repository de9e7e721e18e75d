package lemonade

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries(t *testing.T) {
	c := Countries()

	t.Run("fixed entries", func(t *testing.T) {
		assert.Equal(t, 2, c.Len())

		in, ok := c.Get("IN")
		assert.True(t, ok)
		assert.Equal(t, "India", in)

		us, ok := c.Get("US")
		assert.True(t, ok)
		assert.Equal(t, "United States", us)

		_, ok = c.Get("FR")
		assert.False(t, ok)
		assert.False(t, c.Has("in"))

		assert.Equal(t, []string{"IN", "US"}, c.Codes())
		assert.Equal(t, "{IN=India, US=United States}", c.String())
	})

	t.Run("mutations fail", func(t *testing.T) {
		err := c.Put("FR", "France")
		assert.True(t, errors.Is(err, ErrImmutableMutation))

		err = c.Put("IN", "Bharat")
		assert.True(t, errors.Is(err, ErrImmutableMutation))

		err = c.Delete("US")
		assert.True(t, errors.Is(err, ErrImmutableMutation))

		in, _ := c.Get("IN")
		assert.Equal(t, "India", in)
		assert.Equal(t, 2, c.Len())
		assert.True(t, c.Has("US"))
	})

	t.Run("map is a copy", func(t *testing.T) {
		m := c.Map()
		assert.Equal(t, map[string]string{"IN": "India", "US": "United States"}, m)

		m["FR"] = "France"
		delete(m, "IN")
		assert.Equal(t, 2, c.Len())
		assert.True(t, c.Has("IN"))
		assert.False(t, c.Has("FR"))
	})

	t.Run("ascend stops early", func(t *testing.T) {
		var seen []string
		c.Ascend(func(code, _ string) bool {
			seen = append(seen, code)
			return false
		})
		assert.Equal(t, []string{"IN"}, seen)
	})

	t.Run("concurrent readers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					name, ok := c.Get("US")
					assert.True(t, ok)
					assert.Equal(t, "United States", name)
				}
			}()
		}
		wg.Wait()
	})
}

func TestTableBuilder(t *testing.T) {
	t.Run("sorted regardless of insertion order", func(t *testing.T) {
		tbl, err := NewTableBuilder().Put("US", "United States").Put("DE", "Germany").Put("IN", "India").Build()
		require.NoError(t, err)
		assert.Equal(t, "{DE=Germany, IN=India, US=United States}", tbl.String())
	})

	t.Run("zero values", func(t *testing.T) {
		var tbl Table
		assert.Equal(t, 0, tbl.Len())
		assert.False(t, tbl.Has("IN"))
		assert.Empty(t, tbl.Codes())
		assert.Equal(t, map[string]string{}, tbl.Map())
		assert.Equal(t, "{}", tbl.String())
		assert.True(t, errors.Is(tbl.Put("IN", "India"), ErrImmutableMutation))

		var b TableBuilder
		built, err := b.Put("IN", "India").Build()
		require.NoError(t, err)
		assert.Equal(t, "{IN=India}", built.String())

		var empty TableBuilder
		none, err := empty.Build()
		require.NoError(t, err)
		assert.Equal(t, 0, none.Len())
	})

	t.Run("empty table", func(t *testing.T) {
		tbl, err := NewTableBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
		assert.Equal(t, "{}", tbl.String())
	})

	t.Run("invalid codes", func(t *testing.T) {
		for _, code := range []string{"", "I", "IND", "1N", "I-", "ÍN"} {
			_, err := NewTableBuilder().Put(code, "x").Build()
			assert.True(t, errors.Is(err, ErrInvalidCode), "%q", code)
		}
	})

	t.Run("duplicate codes", func(t *testing.T) {
		_, err := NewTableBuilder().Put("IN", "India").Put("IN", "Bharat").Build()
		assert.True(t, errors.Is(err, ErrDuplicateCode))
	})

	t.Run("first error sticks", func(t *testing.T) {
		_, err := NewTableBuilder().Put("X", "x").Put("IN", "India").Put("IN", "Bharat").Build()
		assert.True(t, errors.Is(err, ErrInvalidCode))
	})

	t.Run("builder is frozen after build", func(t *testing.T) {
		b := NewTableBuilder().Put("IN", "India")
		tbl, err := b.Build()
		require.NoError(t, err)

		_, err = b.Put("US", "United States").Build()
		assert.True(t, errors.Is(err, ErrImmutableMutation))
		assert.Equal(t, 1, tbl.Len())
		assert.False(t, tbl.Has("US"))
	})
}
