/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type testGetter map[int]string

func (g testGetter) Get(key any) any {
	if i, ok := key.(int); ok {
		if v, ok := g[i]; ok {
			return v
		}
	}
	return nil
}

func Test_Record_Dig(t *testing.T) {
	require := require.New(t)

	c, err := New().New([]FieldName{"a"})
	require.NoError(err)

	customer := c.MustNew(c.MustNew(map[string]any{"b": []any{1, 2, 3}}))

	t.Run("must be ok to dig nested values", func(t *testing.T) {
		v, err := customer.Dig("a", "a", "b", 0)
		require.NoError(err)
		require.Equal(1, v)

		v, err = customer.Dig("a", "a", "b", -1)
		require.NoError(err)
		require.Equal(3, v)
	})

	t.Run("must be nil if intermediate value is nil", func(t *testing.T) {
		v, err := customer.Dig("b", 0)
		require.NoError(err)
		require.Nil(v)

		v, err = customer.Dig("a", "a", "c", "d", "e")
		require.NoError(err)
		require.Nil(v)

		v, err = customer.Dig("a", "a", "b", 5, 0)
		require.NoError(err)
		require.Nil(v)
	})

	t.Run("must be error if intermediate value is not traversable", func(t *testing.T) {
		_, err := customer.Dig("a", "a", "b", "c")
		require.ErrorIs(err, ErrTypeMismatchError)

		_, err = customer.Dig("a", "a", "b", 0, 0)
		require.ErrorIs(err, ErrTypeMismatchError)
	})

	t.Run("must be record itself if no keys", func(t *testing.T) {
		v, err := customer.Dig()
		require.NoError(err)
		require.Equal(customer, v)
	})

	t.Run("must be ok to dig maps and custom getters", func(t *testing.T) {
		r := c.MustNew(map[any]any{1: testGetter{7: "seven"}, "x": map[string]any{"y": "z"}})

		v, err := r.Dig("a", 1, 7)
		require.NoError(err)
		require.Equal("seven", v)

		v, err = r.Dig("a", "x", "y")
		require.NoError(err)
		require.Equal("z", v)

		v, err = r.Dig("a", "x", 0)
		require.NoError(err)
		require.Nil(v, "string map has no values for not string keys")

		v, err = r.Dig("a", []int{1})
		require.NoError(err)
		require.Nil(v, "not comparable key")

		v, err = r.Dig("a", nil)
		require.NoError(err)
		require.Nil(v)
	})

	t.Run("must be ok to dig typed Go containers", func(t *testing.T) {
		v, err := c.MustNew([]int{7, 8}).Dig("a", 0)
		require.NoError(err)
		require.Equal(7, v)

		v, err = c.MustNew([]string{"x", "y"}).Dig("a", -1)
		require.NoError(err)
		require.Equal("y", v)

		v, err = c.MustNew([2]int{7, 8}).Dig("a", 1)
		require.NoError(err)
		require.Equal(8, v)

		v, err = c.MustNew([]int{7, 8}).Dig("a", uint64(math.MaxUint64))
		require.NoError(err)
		require.Nil(v)

		m := c.MustNew(map[string]int{"x": 1})

		v, err = m.Dig("a", "x")
		require.NoError(err)
		require.Equal(1, v)

		v, err = m.Dig("a", "y")
		require.NoError(err)
		require.Nil(v)

		v, err = m.Dig("a", 0)
		require.NoError(err)
		require.Nil(v, "key of other type")

		v, err = c.MustNew(map[int][]string{1: {"one"}}).Dig("a", 1, 0)
		require.NoError(err)
		require.Equal("one", v)
	})

	t.Run("must be error if typed container is not traversable by key", func(t *testing.T) {
		_, err := c.MustNew([]int{7, 8}).Dig("a", "x")
		require.ErrorIs(err, ErrTypeMismatchError)

		_, err = c.MustNew(map[string]int{"x": 1}).Dig("a", "x", 0)
		require.ErrorIs(err, ErrTypeMismatchError)

		_, err = c.MustNew(struct{ X int }{1}).Dig("a", "X")
		require.ErrorIs(err, ErrTypeMismatchError)
	})
}
