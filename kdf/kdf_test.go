package kdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/group/secp256k1"
	"github.com/nucypher/nucypher-pre-go/kdf"
)

func TestDeriveKeyDeterministicAndSized(t *testing.T) {
	g := secp256k1.NewSuite()
	priv := g.Scalar().Pick(group.Rand())
	pub := g.Point().Mul(priv, nil)

	k1, err := kdf.DeriveKey(pub, 32)
	require.NoError(t, err)
	require.Len(t, k1, 32)

	k2, err := kdf.DeriveKey(pub, 32)
	require.NoError(t, err)
	require.Equal(t, k1, k2, "DeriveKey must be a deterministic function of its input")

	other := g.Point().Mul(g.Scalar().Pick(group.Rand()), nil)
	k3, err := kdf.DeriveKey(other, 32)
	require.NoError(t, err)
	require.NotEqual(t, k1, k3)
}

func TestHashPointsToScalarDeterministic(t *testing.T) {
	g := secp256k1.NewSuite()
	p1 := g.Point().Mul(g.Scalar().Pick(group.Rand()), nil)
	p2 := g.Point().Mul(g.Scalar().Pick(group.Rand()), nil)

	s1, err := kdf.HashPointsToScalar(g, p1, p2)
	require.NoError(t, err)
	s2, err := kdf.HashPointsToScalar(g, p1, p2)
	require.NoError(t, err)
	require.True(t, s1.Equal(s2))

	s3, err := kdf.HashPointsToScalar(g, p2, p1)
	require.NoError(t, err)
	require.False(t, s1.Equal(s3), "order of inputs must matter")
}
