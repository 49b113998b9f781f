package pad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucypher/nucypher-pre-go/pad"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		l int
		m []byte
	}{
		{30, []byte("Hello crypto")},
		{32, []byte{}},
		{32, make([]byte, 119)},
		{32, make([]byte, 64)},
		{1, []byte("x")},
		{7, []byte("nucypher")},
	}
	for _, c := range cases {
		padded := pad.Pad(c.l, c.m)
		require.True(t, len(padded)%c.l == 0, "padded length must be a multiple of L")
		require.True(t, len(padded) > 0, "padded length must be positive")
		got, err := pad.Unpad(c.l, padded)
		require.NoError(t, err)
		require.Equal(t, c.m, got)
	}
}

func TestPad119Bitsize32YieldsFourChunks(t *testing.T) {
	m := make([]byte, 119)
	padded := pad.Pad(32, m)
	require.Equal(t, 128, len(padded))
	require.Equal(t, 4, len(padded)/32)
}

func TestUnpadRejectsNonMultiple(t *testing.T) {
	_, err := pad.Unpad(32, make([]byte, 10))
	require.Error(t, err)
}
