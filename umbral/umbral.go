package umbral

import (
	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/kdf"
	"github.com/nucypher/nucypher-pre-go/params"
	"github.com/nucypher/nucypher-pre-go/preerr"
)

// PRE is a verifiable, threshold Umbral KEM instance over a fixed set of
// params. Params.H and Params.U are the two auxiliary generators the
// reference construction calls "h" and "u" — spec §4.5's own formulas
// write both as the shared generator g (a simplification the spec's §9
// design notes flag as something "a real implementation should not
// silently resolve"); this package resolves it by keeping H and U as
// Params' independently-derived generators throughout, see DESIGN.md.
type PRE struct {
	Params *params.Params
}

// New constructs an Umbral PRE instance over p.
func New(p *params.Params) *PRE {
	return &PRE{Params: p}
}

func (pre *PRE) g() group.Group { return pre.Params.G }

// Encapsulate implements spec §4.5.1: it produces a fresh symmetric key K
// together with an EncryptedKey that only pub's holder (or a delegatee
// reached via Rekey/SplitRekey) can recover.
func (pre *PRE) Encapsulate(pub group.Point, keylen int) ([]byte, *EncryptedKey, error) {
	g := pre.g()
	rndR := group.Rand()
	r := g.Scalar().Pick(rndR)
	if err := rndR.Err(); err != nil {
		return nil, nil, err
	}
	rndU := group.Rand()
	u := g.Scalar().Pick(rndU)
	if err := rndU.Err(); err != nil {
		return nil, nil, err
	}

	pubR := g.Point().Mul(r, pre.Params.Generator)
	pubU := g.Point().Mul(u, pre.Params.Generator)

	h, err := kdf.HashPointsToScalar(g, pubR, pubU)
	if err != nil {
		return nil, nil, err
	}
	s := g.Scalar().Add(u, g.Scalar().Mul(r, h))

	sum := g.Scalar().Add(r, u)
	shared := g.Point().Mul(sum, pub)
	key, err := kdf.DeriveKey(shared, keylen)
	if err != nil {
		return nil, nil, err
	}
	return key, &EncryptedKey{Ekey: pubR, Vcomp: pubU, Scomp: s}, nil
}

// DecapsulateOriginal recovers K from an EncryptedKey using the private
// key it was encapsulated to (spec §4.5.2).
func (pre *PRE) DecapsulateOriginal(priv group.Scalar, ek *EncryptedKey, keylen int) ([]byte, error) {
	g := pre.g()
	sum := g.Point().Add(ek.Ekey, ek.Vcomp)
	shared := g.Point().Mul(priv, sum)
	return kdf.DeriveKey(shared, keylen)
}

// SingleHopRekey is the trivial, non-threshold rekey rk = a·b⁻¹ (spec
// §4.5.3's rekey, kept only for API symmetry with BBS98 and legacy
// Umbral — real delegation uses SplitRekey).
type SingleHopRekey struct {
	Key group.Scalar
}

// Rekey computes the trivial single-proxy rekey rk_{A→B} = priv_A·priv_B⁻¹:
// raising an EncryptedKey's points to rk and decapsulating with priv_B
// yields the K that priv_A's holder would derive.
func (pre *PRE) Rekey(privA, privB group.Scalar) (*SingleHopRekey, error) {
	g := pre.g()
	if privB.Equal(g.Scalar().Zero()) {
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "umbral: rekey: zero scalar", nil)
	}
	inv := g.Scalar().Inv(privB)
	return &SingleHopRekey{Key: g.Scalar().Mul(privA, inv)}, nil
}

// SplitRekey implements spec §4.5.4: it splits priv_A's delegation to
// pub_B into n verifiable KeyFrags, any t of which suffice to reconstruct
// the re-encryption transform via Combine.
func (pre *PRE) SplitRekey(privA group.Scalar, pubB group.Point, t, n int) ([]*KeyFrag, VerificationKeys, error) {
	if t <= 0 || t > n {
		return nil, nil, preerr.Wrap(preerr.ErrInvalidKey, "umbral: split_rekey: invalid threshold", nil)
	}
	g := pre.g()

	rndX := group.Rand()
	x := g.Scalar().Pick(rndX)
	if err := rndX.Err(); err != nil {
		return nil, nil, err
	}
	xcomp := g.Point().Mul(x, pre.Params.Generator)
	pubBX := g.Point().Mul(x, pubB)

	d, err := kdf.HashPointsToScalar(g, xcomp, pubB, pubBX)
	if err != nil {
		return nil, nil, err
	}
	if d.Equal(g.Scalar().Zero()) {
		return nil, nil, preerr.Wrap(preerr.ErrUmbral, "umbral: split_rekey: degenerate hash", nil)
	}
	c0 := g.Scalar().Mul(privA, g.Scalar().Inv(d))

	coeffs := make([]group.Scalar, t)
	coeffs[0] = c0
	for k := 1; k < t; k++ {
		rnd := group.Rand()
		coeffs[k] = g.Scalar().Pick(rnd)
		if err := rnd.Err(); err != nil {
			return nil, nil, err
		}
	}

	vKeys := make(VerificationKeys, t)
	for k, c := range coeffs {
		vKeys[k] = g.Point().Mul(c, pre.Params.H)
	}

	frags := make([]*KeyFrag, n)
	for i := 0; i < n; i++ {
		rndID := group.Rand()
		id := g.Scalar().Pick(rndID)
		if err := rndID.Err(); err != nil {
			return nil, nil, err
		}

		rk := polyEval(g, coeffs, id)
		u1 := g.Point().Mul(rk, pre.Params.U)

		rndY := group.Rand()
		y := g.Scalar().Pick(rndY)
		if err := rndY.Err(); err != nil {
			return nil, nil, err
		}
		gy := g.Point().Mul(y, pre.Params.Generator)
		z1, err := kdf.HashPointsToScalar(g, xcomp, u1, gy)
		if err != nil {
			return nil, nil, err
		}
		z2 := g.Scalar().Sub(y, g.Scalar().Mul(privA, z1))

		frags[i] = &KeyFrag{ID: id, Key: rk, Xcomp: xcomp, U1: u1, Z1: z1, Z2: z2}
	}
	return frags, vKeys, nil
}

// CheckKFragConsistency verifies a KeyFrag against its polynomial's public
// commitments without learning priv_A or any coefficient (spec §4.5.5):
// Π_k vKeys[k]^(id^k) must equal H^(frag.Key).
func (pre *PRE) CheckKFragConsistency(frag *KeyFrag, vKeys VerificationKeys) bool {
	g := pre.g()
	acc := g.Point().Null()
	power := g.Scalar().One()
	for _, vk := range vKeys {
		acc = g.Point().Add(acc, g.Point().Mul(power, vk))
		power = g.Scalar().Mul(power, frag.ID)
	}
	want := g.Point().Mul(frag.Key, pre.Params.H)
	return acc.Equal(want)
}

// Reencrypt transforms an EncryptedKey under a single KeyFrag, producing
// both the re-encrypted key and a challenge response the delegatee can
// later use to prove this proxy cheated (spec §4.5.6).
//
// The consistency check (step 3 of §4.5.6: g^s == v·e^h) happens only
// after e1/v1/e_t/v_t are computed — checking first would turn the
// verdict into a timing oracle on whether the EncryptedKey was well-formed
// before the proxy did any work. A failed check returns
// ErrInvalidCiphertext.
func (pre *PRE) Reencrypt(frag *KeyFrag, ek *EncryptedKey) (*ReEncryptedKey, *ChallengeResponse, error) {
	g := pre.g()
	e, v, s := ek.Ekey, ek.Vcomp, ek.Scomp

	e1 := g.Point().Mul(frag.Key, e)
	v1 := g.Point().Mul(frag.Key, v)

	rndT := group.Rand()
	t := g.Scalar().Pick(rndT)
	if err := rndT.Err(); err != nil {
		return nil, nil, err
	}
	eT := g.Point().Mul(t, e)
	vT := g.Point().Mul(t, v)
	uT := g.Point().Mul(t, pre.Params.U)

	hScalar, err := kdf.HashPointsToScalar(g, e, v)
	if err != nil {
		return nil, nil, err
	}
	lhs := g.Point().Mul(s, pre.Params.Generator)
	rhs := g.Point().Add(v, g.Point().Mul(hScalar, e))
	if !lhs.Equal(rhs) {
		return nil, nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "umbral: reencrypt: encrypted key fails self-check", nil)
	}

	hPrime, err := kdf.HashPointsToScalar(g, e, e1, eT, v, v1, vT, pre.Params.Generator, frag.U1, uT)
	if err != nil {
		return nil, nil, err
	}
	z3 := g.Scalar().Add(t, g.Scalar().Mul(hPrime, frag.Key))

	reenc := &ReEncryptedKey{Ekey: e1, Vcomp: v1, ReID: frag.ID, Xcomp: frag.Xcomp}
	resp := &ChallengeResponse{E2: eT, V2: vT, U1: frag.U1, U2: uT, Z1: frag.Z1, Z2: frag.Z2, Z3: z3}
	return reenc, resp, nil
}

// Combine implements spec §4.5.7: Lagrange-interpolates at least t
// ReEncryptedKeys that share a common Xcomp into a single ReCombined,
// following the accumulation shape of DeDiS-crypto/share/core.go's
// RecoverSecret/RecoverCommit but keyed on the caller-supplied ReID
// x-coordinates rather than kyber's sequential indices (see poly.go).
func (pre *PRE) Combine(parts []*ReEncryptedKey, u1 group.Point, z1, z2 group.Scalar) (*ReCombined, error) {
	if len(parts) == 0 {
		return nil, preerr.Wrap(preerr.ErrUmbral, "umbral: combine: no fragments", nil)
	}
	g := pre.g()
	ids := make([]group.Scalar, len(parts))
	for i, p := range parts {
		ids[i] = p.ReID
	}

	ekey := g.Point().Null()
	vcomp := g.Point().Null()
	for i, p := range parts {
		lambda := lambdaCoeff(g, ids, i)
		ekey = g.Point().Add(ekey, g.Point().Mul(lambda, p.Ekey))
		vcomp = g.Point().Add(vcomp, g.Point().Mul(lambda, p.Vcomp))
	}

	return &ReCombined{
		Ekey:  ekey,
		Vcomp: vcomp,
		Xcomp: parts[0].Xcomp,
		U1:    u1,
		Z1:    z1,
		Z2:    z2,
	}, nil
}

// DecapsulateReencrypted implements spec §4.5.8: the delegatee recovers K
// from a ReCombined key, checking it against the original EncryptedKey it
// was issued against.
func (pre *PRE) DecapsulateReencrypted(privB group.Scalar, pubB group.Point, pubA group.Point, rc *ReCombined, origEk *EncryptedKey, keylen int) ([]byte, error) {
	g := pre.g()
	xcompB := g.Point().Mul(privB, rc.Xcomp)
	d, err := kdf.HashPointsToScalar(g, rc.Xcomp, pubB, xcompB)
	if err != nil {
		return nil, err
	}

	sum := g.Point().Add(rc.Ekey, rc.Vcomp)
	shared := g.Point().Mul(d, sum)

	hScalar, err := kdf.HashPointsToScalar(g, origEk.Ekey, origEk.Vcomp)
	if err != nil {
		return nil, err
	}
	invD := g.Scalar().Inv(d)
	exp := g.Scalar().Mul(origEk.Scomp, invD)
	lhs := g.Point().Mul(exp, pubA)
	rhs := g.Point().Add(rc.Vcomp, g.Point().Mul(hScalar, rc.Ekey))
	if !lhs.Equal(rhs) {
		return nil, preerr.Wrap(preerr.ErrUmbral, "umbral: decapsulate_reencrypted: witness mismatch", nil)
	}

	return kdf.DeriveKey(shared, keylen)
}

// CheckChallenge implements spec §4.5.9: it verifies a ChallengeResponse
// against the original EncryptedKey and a single proxy's ReEncryptedKey,
// proving (or disproving) that this specific proxy produced e1/v1
// honestly, without needing any private key.
func CheckChallenge(g group.Group, p *params.Params, origEk *EncryptedKey, reenc *ReEncryptedKey, ch *ChallengeResponse, pubA group.Point) bool {
	e, v := origEk.Ekey, origEk.Vcomp
	e1, v1 := reenc.Ekey, reenc.Vcomp
	e2, v2, u1, u2 := ch.E2, ch.V2, ch.U1, ch.U2
	z1, z2, z3 := ch.Z1, ch.Z2, ch.Z3

	ycomp := g.Point().Add(g.Point().Mul(z2, p.Generator), g.Point().Mul(z1, pubA))
	wantZ1, err := kdf.HashPointsToScalar(g, reenc.Xcomp, u1, ycomp)
	if err != nil || !z1.Equal(wantZ1) {
		return false
	}

	hScalar, err := kdf.HashPointsToScalar(g, e, e1, e2, v, v1, v2, p.Generator, u1, u2)
	if err != nil {
		return false
	}

	lhsE := g.Point().Mul(z3, e)
	rhsE := g.Point().Add(e2, g.Point().Mul(hScalar, e1))
	if !lhsE.Equal(rhsE) {
		return false
	}

	lhsU := g.Point().Mul(z3, p.U)
	rhsU := g.Point().Add(u2, g.Point().Mul(hScalar, u1))
	return lhsU.Equal(rhsU)
}
