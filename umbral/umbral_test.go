package umbral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/group/secp256k1"
	"github.com/nucypher/nucypher-pre-go/params"
	"github.com/nucypher/nucypher-pre-go/preerr"
	"github.com/nucypher/nucypher-pre-go/umbral"
)

const keylen = 32

func newPRE(t *testing.T) (*umbral.PRE, group.Group) {
	t.Helper()
	g := secp256k1.NewSuite()
	p := params.New(params.CurveSecp256k1, g, nil)
	return umbral.New(p), g
}

func genKeypair(t *testing.T, pre *umbral.PRE, g group.Group) (group.Scalar, group.Point) {
	t.Helper()
	rnd := group.Rand()
	priv := g.Scalar().Pick(rnd)
	require.NoError(t, rnd.Err())
	pub := g.Point().Mul(priv, pre.Params.Generator)
	return priv, pub
}

// Spec §8 property 7: encapsulate/decapsulate round trip.
func TestEncapsulateDecapsulateOriginal(t *testing.T) {
	pre, g := newPRE(t)
	priv, pub := genKeypair(t, pre, g)

	key, ek, err := pre.Encapsulate(pub, keylen)
	require.NoError(t, err)

	got, err := pre.DecapsulateOriginal(priv, ek, keylen)
	require.NoError(t, err)
	require.Equal(t, key, got)
}

// Spec §8 property 9: threshold split_rekey / reencrypt / combine round
// trip, 3-of-5.
func TestSplitRekeyCombineThreshold(t *testing.T) {
	pre, g := newPRE(t)
	privA, pubA := genKeypair(t, pre, g)
	privB, pubB := genKeypair(t, pre, g)

	const t_, n = 3, 5
	frags, vKeys, err := pre.SplitRekey(privA, pubB, t_, n)
	require.NoError(t, err)
	require.Len(t, frags, n)

	for _, f := range frags {
		require.True(t, pre.CheckKFragConsistency(f, vKeys))
	}

	key, ek, err := pre.Encapsulate(pubA, keylen)
	require.NoError(t, err)

	var parts []*umbral.ReEncryptedKey
	for _, f := range frags[:t_] {
		rc, ch, err := pre.Reencrypt(f, ek)
		require.NoError(t, err)
		parts = append(parts, rc)

		require.True(t, umbral.CheckChallenge(g, pre.Params, ek, rc, ch, pubA))
	}

	combined, err := pre.Combine(parts, frags[0].U1, frags[0].Z1, frags[0].Z2)
	require.NoError(t, err)

	got, err := pre.DecapsulateReencrypted(privB, pubB, pubA, combined, ek, keylen)
	require.NoError(t, err)
	require.Equal(t, key, got)
}

// A tampered fragment (wrong Key) fails consistency checking before ever
// reaching reencrypt. (Spec property 10.)
func TestCheckKFragConsistencyDetectsTampering(t *testing.T) {
	pre, g := newPRE(t)
	privA, _ := genKeypair(t, pre, g)
	_, pubB := genKeypair(t, pre, g)

	frags, vKeys, err := pre.SplitRekey(privA, pubB, 2, 3)
	require.NoError(t, err)

	tampered := *frags[0]
	rnd := group.Rand()
	tampered.Key = g.Scalar().Pick(rnd)
	require.NoError(t, rnd.Err())

	require.False(t, pre.CheckKFragConsistency(&tampered, vKeys))
}

// A proxy that substitutes a different fragment's reencryption output into
// its challenge response fails CheckChallenge. (Spec property 11.)
func TestCheckChallengeDetectsCheatingProxy(t *testing.T) {
	pre, g := newPRE(t)
	privA, pubA := genKeypair(t, pre, g)
	_, pubB := genKeypair(t, pre, g)

	frags, _, err := pre.SplitRekey(privA, pubB, 2, 2)
	require.NoError(t, err)

	_, ek, err := pre.Encapsulate(pubA, keylen)
	require.NoError(t, err)

	rc0, _, err := pre.Reencrypt(frags[0], ek)
	require.NoError(t, err)
	_, ch1, err := pre.Reencrypt(frags[1], ek)
	require.NoError(t, err)

	// rc0 was produced under frags[0], ch1's proof under frags[1]: the
	// cross pairing must fail.
	require.False(t, umbral.CheckChallenge(g, pre.Params, ek, rc0, ch1, pubA))
}

// S6: decapsulate_reencrypted raises an error when a combined ekey is
// substituted by a random group element (spec §8 property 12).
func TestDecapsulateReencryptedDetectsSubstitutedEkey(t *testing.T) {
	pre, g := newPRE(t)
	privA, pubA := genKeypair(t, pre, g)
	privB, pubB := genKeypair(t, pre, g)

	const t_, n = 2, 3
	frags, _, err := pre.SplitRekey(privA, pubB, t_, n)
	require.NoError(t, err)

	_, ek, err := pre.Encapsulate(pubA, keylen)
	require.NoError(t, err)

	var parts []*umbral.ReEncryptedKey
	for _, f := range frags[:t_] {
		rc, _, err := pre.Reencrypt(f, ek)
		require.NoError(t, err)
		parts = append(parts, rc)
	}

	combined, err := pre.Combine(parts, frags[0].U1, frags[0].Z1, frags[0].Z2)
	require.NoError(t, err)

	rnd := group.Rand()
	randomScalar := g.Scalar().Pick(rnd)
	require.NoError(t, rnd.Err())
	combined.Ekey = g.Point().Mul(randomScalar, pre.Params.Generator)

	_, err = pre.DecapsulateReencrypted(privB, pubB, pubA, combined, ek, keylen)
	require.ErrorIs(t, err, preerr.ErrUmbral)
}

// S7: decapsulate_reencrypted raises an error when a reencryption of a
// different original key is mixed into the combine set (spec §8 property
// 12).
func TestDecapsulateReencryptedDetectsMixedOriginCombine(t *testing.T) {
	pre, g := newPRE(t)
	privA, pubA := genKeypair(t, pre, g)
	privB, pubB := genKeypair(t, pre, g)

	const t_, n = 2, 3
	frags, _, err := pre.SplitRekey(privA, pubB, t_, n)
	require.NoError(t, err)

	_, ek, err := pre.Encapsulate(pubA, keylen)
	require.NoError(t, err)
	_, otherEk, err := pre.Encapsulate(pubA, keylen)
	require.NoError(t, err)

	rc0, _, err := pre.Reencrypt(frags[0], ek)
	require.NoError(t, err)
	// rc1 re-encrypts a different EncryptedKey than rc0, but is folded
	// into the same combine set.
	rc1, _, err := pre.Reencrypt(frags[1], otherEk)
	require.NoError(t, err)

	combined, err := pre.Combine([]*umbral.ReEncryptedKey{rc0, rc1}, frags[0].U1, frags[0].Z1, frags[0].Z2)
	require.NoError(t, err)

	_, err = pre.DecapsulateReencrypted(privB, pubB, pubA, combined, ek, keylen)
	require.ErrorIs(t, err, preerr.ErrUmbral)
}

func TestEncryptedKeySerializeRoundTrip(t *testing.T) {
	pre, g := newPRE(t)
	_, pub := genKeypair(t, pre, g)

	_, ek, err := pre.Encapsulate(pub, keylen)
	require.NoError(t, err)

	b, err := ek.Serialize()
	require.NoError(t, err)
	got, err := umbral.DeserializeEncryptedKey(g, b)
	require.NoError(t, err)
	require.True(t, ek.Ekey.Equal(got.Ekey))
	require.True(t, ek.Vcomp.Equal(got.Vcomp))
	require.True(t, ek.Scomp.Equal(got.Scomp))
}

func TestKeyFragSerializeRoundTrip(t *testing.T) {
	pre, g := newPRE(t)
	privA, _ := genKeypair(t, pre, g)
	_, pubB := genKeypair(t, pre, g)

	frags, _, err := pre.SplitRekey(privA, pubB, 1, 1)
	require.NoError(t, err)

	b, err := frags[0].Serialize()
	require.NoError(t, err)
	got, err := umbral.DeserializeKeyFrag(g, b)
	require.NoError(t, err)
	require.True(t, frags[0].Key.Equal(got.Key))
	require.True(t, frags[0].ID.Equal(got.ID))
}

func TestLegacySplitRekeyReencryptCombine(t *testing.T) {
	g := secp256k1.NewSuite()
	p := params.New(params.CurveSecp256k1, g, nil)
	pre := umbral.NewLegacy(p)

	rnd := group.Rand()
	privA := g.Scalar().Pick(rnd)
	require.NoError(t, rnd.Err())
	pubA := g.Point().Mul(privA, p.Generator)

	rnd = group.Rand()
	privB := g.Scalar().Pick(rnd)
	require.NoError(t, rnd.Err())

	key, ek, err := pre.Encapsulate(pubA, keylen)
	require.NoError(t, err)

	frags, err := pre.SplitRekey(privA, privB, 2, 3)
	require.NoError(t, err)

	var parts []*umbral.LegacyEncryptedKey
	for _, f := range frags[:2] {
		parts = append(parts, pre.Reencrypt(f, ek))
	}

	combined, err := pre.Combine(parts)
	require.NoError(t, err)

	got, err := pre.Decapsulate(privB, combined, keylen)
	require.NoError(t, err)
	require.Equal(t, key, got)
}

func TestLegacySingleHopRekeyReencryptDecapsulate(t *testing.T) {
	g := secp256k1.NewSuite()
	p := params.New(params.CurveSecp256k1, g, nil)
	pre := umbral.NewLegacy(p)

	rnd := group.Rand()
	privA := g.Scalar().Pick(rnd)
	require.NoError(t, rnd.Err())
	pubA := g.Point().Mul(privA, p.Generator)

	rnd = group.Rand()
	privB := g.Scalar().Pick(rnd)
	require.NoError(t, rnd.Err())

	key, ek, err := pre.Encapsulate(pubA, keylen)
	require.NoError(t, err)

	rk, err := pre.Rekey(privA, privB)
	require.NoError(t, err)

	reenc := &umbral.LegacyEncryptedKey{Ekey: g.Point().Mul(rk.Key, ek.Ekey)}
	got, err := pre.Decapsulate(privB, reenc, keylen)
	require.NoError(t, err)
	require.Equal(t, key, got)
}
