package chainhash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type test struct {
	djb2 uint64
	in   string
}

var golden = []test{
	{5381, ""},
	{177670, "a"},
	{210714636441, "hello"},
	{6953744351581, "line_1"},
	{6953744351582, "line_2"},
	{6953744351583, "line_3"},
	// wraps around 2^64
	{3950289020261251294, "The quick brown fox jumps over the lazy dog"},
	// bytes are unsigned
	{5868578, "\xff\xfe"},
}

func TestDjb2(t *testing.T) {
	for _, g := range golden {
		if h := Djb2(g.in); h != g.djb2 {
			t.Errorf("Djb2(%q) = %d want %d", g.in, h, g.djb2)
		}
	}
}

func TestHash(t *testing.T) {
	assert.Equal(t, 1, Hash("line_1", 2))
	assert.Equal(t, 0, Hash("line_2", 2))
	assert.Equal(t, 1, Hash("line_3", 2))
	assert.Equal(t, 1, Hash("line_1", 4))
	assert.Equal(t, 2, Hash("line_2", 4))
	assert.Equal(t, 3, Hash("line_3", 4))
	assert.Equal(t, 5, Hash("", 8))
	assert.Equal(t, 294, Hash("The quick brown fox jumps over the lazy dog", 1000))

	for _, g := range golden {
		assert.Equal(t, 0, Hash(g.in, 1))
		for _, max := range []int{2, 3, 7, 64, 1021} {
			idx := Hash(g.in, max)
			assert.True(t, idx >= 0 && idx < max)
			assert.Equal(t, idx, Hash(g.in, max))
		}
	}
}

func TestParseHashFunc(t *testing.T) {
	assert.Equal(t, []string{"djb2", "fnv", "xxhash"}, HashFuncNames())

	fn, err := ParseHashFunc("djb2")
	require.NoError(t, err)
	assert.Equal(t, uint64(6953744351581), fn("line_1"))

	fn, err = ParseHashFunc("xxhash")
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String("line_1"), fn("line_1"))

	fn, err = ParseHashFunc("fnv")
	require.NoError(t, err)
	// FNV-1a 64 offset basis
	assert.Equal(t, uint64(0xcbf29ce484222325), fn(""))

	_, err = ParseHashFunc("md5")
	require.ErrorIs(t, err, ErrUnknownHashFunc)
}
