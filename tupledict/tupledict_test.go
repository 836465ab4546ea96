// SPDX-License-Identifier: MIT
package tupledict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGetSelect(t *testing.T) {
	d := New[float64](2)
	require.NoError(t, d.Set([]interface{}{"a", 1}, 1.5))
	require.NoError(t, d.Set([]interface{}{"a", 2}, 2.5))
	require.NoError(t, d.Set([]interface{}{"b", 1}, 3.5))

	v, ok := d.Get([]interface{}{"a", 1})
	require.True(t, ok)
	require.Equal(t, 1.5, v)

	matches, err := d.Select("a", Any)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	matches2, err := d.Select(Any, 1)
	require.NoError(t, err)
	require.Len(t, matches2, 2)
}

func TestSelectMemoizationReusesIndex(t *testing.T) {
	d := New[int](2)
	for i := 0; i < 5; i++ {
		require.NoError(t, d.Set([]interface{}{"row", i}, i))
	}
	m1, err := d.Select("row", Any)
	require.NoError(t, err)
	require.Len(t, m1, 5)
	require.Len(t, d.secondary, 1)

	m2, err := d.Select("row", Any)
	require.NoError(t, err)
	require.Len(t, m2, 5)
	require.Len(t, d.secondary, 1) // no new index built
}

func TestMakeTupleDictProductAndSkip(t *testing.T) {
	coords := []Coord{{1, 2}, {"x", "y"}}
	d, err := MakeTupleDict(func(key []interface{}) (string, bool) {
		if key[0] == 2 && key[1] == "y" {
			return "", false // exercise the skip rule
		}
		return "ok", true
	}, coords...)
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())
}

func TestMakeTupleDictFlattensNestedTuples(t *testing.T) {
	coords := []Coord{
		{[]interface{}{1, "a"}, []interface{}{2, "b"}},
		{10, 20},
	}
	d, err := MakeTupleDict(func(key []interface{}) (int, bool) {
		return len(key), true
	}, coords...)
	require.NoError(t, err)
	for _, v := range d.Values() {
		require.Equal(t, 3, v) // 2 flattened + 1
	}
}
