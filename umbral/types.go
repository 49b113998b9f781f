// Package umbral implements split-key, unidirectional, threshold proxy
// re-encryption as a key-encapsulation mechanism (spec §4.5): a delegator
// splits a re-encryption key into N verifiable fragments, any t of which
// let a combiner transform an encapsulated key from delegator to
// delegatee, with a challenge/response the delegatee can use to catch a
// cheating proxy. Grounded in original_source/npre/umbral.py for the
// overall encapsulate/rekey/combine shape and in
// DeDiS-crypto/share/core.go's PriPoly/PubPoly for the Shamir polynomial
// and Lagrange-reconstruction idiom, generalized here to the verifiable,
// challenge-response construction of spec §4.5 (see poly.go for why the
// Lagrange coefficient is reimplemented rather than reused verbatim).
package umbral

import "github.com/nucypher/nucypher-pre-go/group"

// EncryptedKey is the Umbral KEM ciphertext produced by Encapsulate (spec
// §3): ekey and vcomp are the two ephemeral commitments, scomp is the
// Schnorr-style scalar tying them together.
type EncryptedKey struct {
	Ekey  group.Point
	Vcomp group.Point
	Scomp group.Scalar
}

// VerificationKeys are the public commitments to a split_rekey polynomial's
// coefficients (g^c_0 is really H^c_0 here — see the PRE type doc), letting any
// party verify a KeyFrag non-interactively (spec §4.5.5).
type VerificationKeys []group.Point

// KeyFrag is one proxy's share of a split re-encryption key (spec §3's
// "Umbral RekeyFrag"): ID is its Shamir x-coordinate, Key is f(ID), Xcomp
// binds the fragment to the delegatee, and (Z1, Z2) are a Schnorr NIZK
// that the delegator (not an impostor) produced this fragment.
type KeyFrag struct {
	ID    group.Scalar
	Key   group.Scalar
	Xcomp group.Point
	U1    group.Point
	Z1    group.Scalar
	Z2    group.Scalar
}

// ReEncryptedKey is a single proxy's transformation of an EncryptedKey
// under its KeyFrag (spec §4.5.6).
type ReEncryptedKey struct {
	Ekey  group.Point
	Vcomp group.Point
	ReID  group.Scalar
	Xcomp group.Point
}

// ChallengeResponse accompanies a ReEncryptedKey so the delegatee can later
// prove, without revealing any key material, that a specific proxy cheated
// (spec §4.5.6, §4.5.9).
type ChallengeResponse struct {
	E2 group.Point
	V2 group.Point
	U1 group.Point
	U2 group.Point
	Z1 group.Scalar
	Z2 group.Scalar
	Z3 group.Scalar
}

// ReCombined is the Lagrange combination of at least t ReEncryptedKeys
// sharing a common Xcomp (spec §4.5.7).
type ReCombined struct {
	Ekey  group.Point
	Vcomp group.Point
	Xcomp group.Point
	U1    group.Point
	Z1    group.Scalar
	Z2    group.Scalar
}
