package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNGDeterminism(t *testing.T) {
	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

	prngA, err := NewKeyedPRNG(key)
	require.NoError(t, err)
	prngB, err := NewKeyedPRNG(key)
	require.NoError(t, err)

	a := make([]byte, 512)
	b := make([]byte, 512)

	_, err = prngA.Read(a)
	require.NoError(t, err)
	_, err = prngB.Read(b)
	require.NoError(t, err)
	require.Equal(t, a, b)

	prngA.Reset()
	c := make([]byte, 512)
	_, err = prngA.Read(c)
	require.NoError(t, err)
	require.Equal(t, a, c)
}

func TestReadInt64Range(t *testing.T) {
	prng, err := NewKeyedPRNG(nil)
	require.NoError(t, err)

	const bound = int64(5)
	for i := 0; i < 1000; i++ {
		v, err := ReadInt64Range(prng, bound)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -bound)
		require.LessOrEqual(t, v, bound)
	}
}
