package params_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucypher/nucypher-pre-go/group/secp256k1"
	"github.com/nucypher/nucypher-pre-go/params"
)

func TestRoundTrip(t *testing.T) {
	g := secp256k1.NewSuite()
	p := params.New(params.CurveSecp256k1, g, nil)

	ser, err := p.Serialize()
	require.NoError(t, err)

	p2, err := params.Deserialize(g, ser)
	require.NoError(t, err)

	require.Equal(t, p.Curve, p2.Curve)
	require.True(t, p.Generator.Equal(p2.Generator))
	require.True(t, p.H.Equal(p2.H), "H must be reproducible from the curve alone")
	require.True(t, p.U.Equal(p2.U), "U must be reproducible from the curve alone")
	require.False(t, p.H.Equal(p.U), "H and U must be distinct generators")
}

// spec §4.1/§6.1's order() operation: secp256k1's well-known scalar field
// order n.
func TestOrder(t *testing.T) {
	g := secp256k1.NewSuite()
	p := params.New(params.CurveSecp256k1, g, nil)

	q, err := p.Order()
	require.NoError(t, err)
	require.Equal(t,
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		strings.ToUpper(q.Text(16)))
}
