package umbral

import (
	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/kdf"
	"github.com/nucypher/nucypher-pre-go/params"
	"github.com/nucypher/nucypher-pre-go/preerr"
)

// LegacyEncryptedKey is the pre-verifiability KEM ciphertext, a direct
// port of original_source/npre/umbral.py's EncryptedKey namedtuple: a
// single ephemeral point, plus the fragment id that produced it when this
// is a reencryption output (nil for an original, non-reencrypted
// capsule).
type LegacyEncryptedKey struct {
	Ekey group.Point
	ReID group.Scalar
}

// LegacyKeyFrag is a Shamir share of a rekey scalar, a direct port of
// original_source/npre/umbral.py's RekeyFrag: just an id and a key, no
// verification key commitments or NIZK (those were added on top of this
// same construction when kfrag verifiability was introduced).
type LegacyKeyFrag struct {
	ID  group.Scalar
	Key group.Scalar
}

// LegacyPRE is the non-verifiable Umbral variant, reproducing
// original_source/npre/umbral.py's PRE class: reencryption is the same
// direct scalar-exponent trick as BBS98 applied to a single-point ElGamal
// capsule, with no self-check, no NIZK, and no challenge/response.
type LegacyPRE struct {
	Params *params.Params
}

// NewLegacy constructs a LegacyPRE instance over p.
func NewLegacy(p *params.Params) *LegacyPRE {
	return &LegacyPRE{Params: p}
}

func (pre *LegacyPRE) g() group.Group { return pre.Params.G }

// Encapsulate mirrors umbral.py's encapsulate(): a single ephemeral
// exponent produces both the public capsule and (via a DH step with pub)
// the shared key.
func (pre *LegacyPRE) Encapsulate(pub group.Point, keylen int) ([]byte, *LegacyEncryptedKey, error) {
	g := pre.g()
	rnd := group.Rand()
	r := g.Scalar().Pick(rnd)
	if err := rnd.Err(); err != nil {
		return nil, nil, err
	}
	pubE := g.Point().Mul(r, pre.Params.Generator)
	shared := g.Point().Mul(r, pub)
	key, err := kdf.DeriveKey(shared, keylen)
	if err != nil {
		return nil, nil, err
	}
	return key, &LegacyEncryptedKey{Ekey: pubE, ReID: nil}, nil
}

// Decapsulate mirrors umbral.py's decapsulate(): it recovers K from
// either an original or a (combined) reencrypted LegacyEncryptedKey,
// using the same formula for both — the reencryption trick preserves the
// shared point's value under the recipient's own private key.
func (pre *LegacyPRE) Decapsulate(priv group.Scalar, ek *LegacyEncryptedKey, keylen int) ([]byte, error) {
	g := pre.g()
	shared := g.Point().Mul(priv, ek.Ekey)
	return kdf.DeriveKey(shared, keylen)
}

// Rekey mirrors umbral.py's rekey(priv1, priv2): rk = priv1 · priv2⁻¹.
// Reencrypting an EncryptedKey addressed to priv1's holder with this rk,
// then decapsulating with priv2, recovers the same K priv1's holder would
// have derived directly.
func (pre *LegacyPRE) Rekey(priv1, priv2 group.Scalar) (*SingleHopRekey, error) {
	g := pre.g()
	if priv2.Equal(g.Scalar().Zero()) {
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "umbral: legacy rekey: zero scalar", nil)
	}
	return &SingleHopRekey{Key: g.Scalar().Mul(priv1, g.Scalar().Inv(priv2))}, nil
}

// SplitRekey mirrors umbral.py's split_rekey(priv_a, priv_b, threshold, N):
// it splits priv_a·priv_b⁻¹ into N Shamir shares of which any threshold
// reconstruct it. Notably (and unlike the verifiable PRE.SplitRekey) the
// Python reference takes priv_b directly rather than pub_b — there is no
// xcomp/DH blinding step in this construction, since it predates kfrag
// verifiability.
func (pre *LegacyPRE) SplitRekey(privA, privB group.Scalar, threshold, n int) ([]*LegacyKeyFrag, error) {
	if threshold <= 0 || threshold > n {
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "umbral: legacy split_rekey: invalid threshold", nil)
	}
	g := pre.g()
	if privB.Equal(g.Scalar().Zero()) {
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "umbral: legacy split_rekey: zero scalar", nil)
	}

	coeffs := make([]group.Scalar, threshold)
	coeffs[0] = g.Scalar().Mul(privA, g.Scalar().Inv(privB))
	for k := 1; k < threshold; k++ {
		rnd := group.Rand()
		coeffs[k] = g.Scalar().Pick(rnd)
		if err := rnd.Err(); err != nil {
			return nil, err
		}
	}

	frags := make([]*LegacyKeyFrag, n)
	for i := 0; i < n; i++ {
		rnd := group.Rand()
		id := g.Scalar().Pick(rnd)
		if err := rnd.Err(); err != nil {
			return nil, err
		}
		frags[i] = &LegacyKeyFrag{ID: id, Key: polyEval(g, coeffs, id)}
	}
	return frags, nil
}

// Reencrypt mirrors umbral.py's reencrypt(rk, ekey): new_ekey = ekey^rk.key,
// tagged with the fragment's id so Combine can later identify which share
// produced it. No self-check: this construction has none.
func (pre *LegacyPRE) Reencrypt(frag *LegacyKeyFrag, ek *LegacyEncryptedKey) *LegacyEncryptedKey {
	g := pre.g()
	return &LegacyEncryptedKey{Ekey: g.Point().Mul(frag.Key, ek.Ekey), ReID: frag.ID}
}

// Combine mirrors umbral.py's combine(): Lagrange-interpolates two or
// more reencrypted capsules sharing the same underlying secret at x=0; a
// single capsule is returned unchanged.
func (pre *LegacyPRE) Combine(parts []*LegacyEncryptedKey) (*LegacyEncryptedKey, error) {
	if len(parts) == 0 {
		return nil, preerr.Wrap(preerr.ErrUmbral, "umbral: legacy combine: no fragments", nil)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	g := pre.g()
	ids := make([]group.Scalar, len(parts))
	for i, p := range parts {
		ids[i] = p.ReID
	}
	product := g.Point().Null()
	for i, p := range parts {
		lambda := lambdaCoeff(g, ids, i)
		product = g.Point().Add(product, g.Point().Mul(lambda, p.Ekey))
	}
	return &LegacyEncryptedKey{Ekey: product, ReID: nil}, nil
}
