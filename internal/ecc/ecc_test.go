package ecc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBits(rd *rand.Rand, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rd.Intn(2) == 1
	}
	return bits
}

func TestNone(t *testing.T) {
	var c None
	bits := []bool{true, false, true}
	out, err := c.Encode(bits)
	require.NoError(t, err)
	assert.Equal(t, bits, out)
	assert.Equal(t, 3, c.EncodedLen(3))

	dec, err := c.Decode([]bool{true, false, true, true}, 3)
	require.NoError(t, err)
	assert.Equal(t, bits, dec)

	_, err = c.Decode(bits, 4)
	assert.Error(t, err)
}

func TestGolay(t *testing.T) {
	var g Golay = 12345
	rd := rand.New(rand.NewSource(7))

	t.Run("encoded length", func(t *testing.T) {
		for _, size := range []int{8, 16, 24, 100, 8 * 255} {
			out, err := g.Encode(randomBits(rd, size))
			require.NoError(t, err)
			assert.Len(t, out, g.EncodedLen(size))
			assert.Greater(t, len(out), size)
		}
		assert.Equal(t, 0, g.EncodedLen(0))
	})

	t.Run("encode/decode", func(t *testing.T) {
		for _, size := range []int{8, 24, 8 * 17, 8 * 256} {
			bits := randomBits(rd, size)
			encoded, err := g.Encode(bits)
			require.NoError(t, err)
			decoded, err := g.Decode(encoded, size)
			require.NoError(t, err)
			assert.Equal(t, bits, decoded)
		}
	})

	t.Run("corrects a flipped bit", func(t *testing.T) {
		bits := randomBits(rd, 8*40)
		encoded, err := g.Encode(bits)
		require.NoError(t, err)
		for _, at := range []int{0, len(encoded) / 2, len(encoded) - 1} {
			damaged := append([]bool(nil), encoded...)
			damaged[at] = !damaged[at]
			decoded, err := g.Decode(damaged, len(bits))
			require.NoError(t, err)
			assert.Equal(t, bits, decoded, "flipped bit %d", at)
		}
	})

	t.Run("empty", func(t *testing.T) {
		out, err := g.Encode(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
		dec, err := g.Decode(nil, 0)
		require.NoError(t, err)
		assert.Empty(t, dec)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := g.Decode(make([]bool, 5), 8)
		assert.Error(t, err)
	})
}
