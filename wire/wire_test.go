package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucypher/nucypher-pre-go/wire"
)

func TestRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	w.Field([]byte("abc")).Field([]byte{}).Field([]byte("de"))
	blob := w.Bytes()

	r := wire.NewReader(blob)
	f1, err := r.Field()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), f1)

	f2, err := r.Field()
	require.NoError(t, err)
	require.Equal(t, []byte{}, f2)

	f3, err := r.Field()
	require.NoError(t, err)
	require.Equal(t, []byte("de"), f3)

	require.True(t, r.Done())
}

func TestTruncatedFails(t *testing.T) {
	r := wire.NewReader([]byte{0, 0, 0, 5, 1, 2})
	_, err := r.Field()
	require.Error(t, err)
}
