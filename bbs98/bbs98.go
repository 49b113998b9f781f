// Package bbs98 implements the Blaze-Bleumer-Strauss 1998 bidirectional,
// multi-hop, CPA-secure proxy re-encryption scheme (spec §4.4): a semi-
// trusted proxy holding a re-encryption key rk_{A→B} can transform
// ciphertexts addressed to A into ciphertexts addressed to B without
// learning the plaintext. Grounded in DeDiS-crypto/encrypt/ecies's
// Encrypt/Decrypt shape, generalized from single-shot ElGamal to
// BBS98's multi-chunk, re-encryptable ciphertext and carrying the
// original npre/bbs98.py key-management surface (gen_priv/priv2pub/
// load_key/save_key).
package bbs98

import (
	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/pad"
	"github.com/nucypher/nucypher-pre-go/params"
	"github.com/nucypher/nucypher-pre-go/preerr"
)

// PRE is a BBS98 proxy re-encryption instance over a fixed set of params.
// It is immutable and safe to share across goroutines (spec §5).
type PRE struct {
	Params *params.Params
}

// New constructs a BBS98 PRE instance over p.
func New(p *params.Params) *PRE {
	return &PRE{Params: p}
}

// bitsize is the per-chunk plaintext size, Params.G's point embedding
// capacity (spec §4.1's "bitsize").
func (pre *PRE) bitsize() int {
	return group.Bitsize(pre.Params.G)
}

// GenPriv samples a fresh private key a ∈ Z_q*.
func (pre *PRE) GenPriv() (group.Scalar, error) {
	rnd := group.Rand()
	priv := pre.Params.G.Scalar().Pick(rnd)
	if err := rnd.Err(); err != nil {
		return nil, err
	}
	return priv, nil
}

// PrivToPub derives A = g^a.
func (pre *PRE) PrivToPub(priv group.Scalar) group.Point {
	return pre.Params.G.Point().Mul(priv, pre.Params.Generator)
}

// LoadKey deserializes a tagged scalar or point blob produced by SaveKey.
func (pre *PRE) LoadKey(b []byte) (interface{}, error) {
	if len(b) == 0 {
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "bbs98: empty key", nil)
	}
	switch b[0] {
	case 0x01:
		return group.DeserializeScalar(pre.Params.G, b)
	case 0x02:
		return group.DeserializePoint(pre.Params.G, b)
	default:
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "bbs98: unknown key tag", nil)
	}
}

// SaveKey serializes a scalar or point key produced by GenPriv/PrivToPub.
func SaveKey(key interface{}) ([]byte, error) {
	switch k := key.(type) {
	case group.Scalar:
		return group.SerializeScalar(k)
	case group.Point:
		return group.SerializePoint(k)
	default:
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "bbs98: unsupported key type", nil)
	}
}

// Encrypt implements spec §4.4's encrypt(pub_B, m, padding): it samples a
// fresh randomizer r, splits m into bitsize-byte chunks (optionally padded
// per §4.2), and masks each chunk with g^r · encode(chunk).
func (pre *PRE) Encrypt(pub group.Point, m []byte, padding bool) (*Ciphertext, error) {
	bs := pre.bitsize()
	var chunks [][]byte
	if padding {
		padded := pad.Pad(bs, m)
		for i := 0; i < len(padded); i += bs {
			chunks = append(chunks, padded[i:i+bs])
		}
	} else {
		if len(m) > bs {
			return nil, preerr.ErrMessageTooLarge
		}
		chunks = [][]byte{m}
	}

	rnd := group.Rand()
	r := pre.Params.G.Scalar().Pick(rnd)
	if err := rnd.Err(); err != nil {
		return nil, err
	}

	c1 := pre.Params.G.Point().Mul(r, pub)
	gr := pre.Params.G.Point().Mul(r, pre.Params.Generator)

	c2s := make([]group.Point, len(chunks))
	for i, chunk := range chunks {
		encRnd := group.Rand()
		enc, err := group.Encode(pre.Params.G, encRnd, chunk)
		if err != nil {
			return nil, err
		}
		if err := encRnd.Err(); err != nil {
			return nil, err
		}
		c2s[i] = pre.Params.G.Point().Add(gr, enc)
	}

	return &Ciphertext{C1: c1, C2s: c2s}, nil
}

// Decrypt implements spec §4.4's decrypt(priv_B, ct, padding): it recovers
// g^r from c1 using priv_B, strips it from every chunk, and (if padding)
// unpads the last chunk before concatenating.
func (pre *PRE) Decrypt(priv group.Scalar, ct *Ciphertext, padding bool) ([]byte, error) {
	if ct == nil || len(ct.C2s) == 0 {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: empty ciphertext", nil)
	}
	if priv.Equal(pre.Params.G.Scalar().Zero()) {
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "bbs98: decrypt: zero private key", nil)
	}
	invA := pre.Params.G.Scalar().Inv(priv)
	p := pre.Params.G.Point().Mul(invA, ct.C1)

	chunks := make([][]byte, len(ct.C2s))
	for i, c2 := range ct.C2s {
		diff := pre.Params.G.Point().Sub(c2, p)
		m, err := group.Decode(diff)
		if err != nil {
			return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: decode chunk", err)
		}
		chunks[i] = m
	}

	if !padding {
		return chunks[0], nil
	}

	last, err := pad.Unpad(pre.bitsize(), chunks[len(chunks)-1])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(chunks)*pre.bitsize())
	for _, c := range chunks[:len(chunks)-1] {
		out = append(out, c...)
	}
	out = append(out, last...)
	return out, nil
}

// RekeyFrag is a BBS98 re-encryption key rk_{A→B} = b·a⁻¹ (spec §3). Unlike
// Umbral's RekeyFrag, this is a single scalar: BBS98 has no threshold
// splitting, and the key is bidirectional (rk_{B→A} = rk_{A→B}⁻¹).
type RekeyFrag struct {
	Key group.Scalar
}

// Rekey computes rk_{A→B} = b·a⁻¹ (spec §4.4). It is bidirectional
// (Rekey(b,a) == Rekey(a,b)⁻¹) and composes across hops:
// Rekey(a,c) == Rekey(b,c).Key * Rekey(a,b).Key.
func (pre *PRE) Rekey(a, b group.Scalar) (*RekeyFrag, error) {
	if a.Equal(pre.Params.G.Scalar().Zero()) {
		return nil, preerr.Wrap(preerr.ErrInvalidKey, "bbs98: rekey: zero scalar has no inverse", nil)
	}
	invA := pre.Params.G.Scalar().Inv(a)
	rk := pre.Params.G.Scalar().Mul(b, invA)
	return &RekeyFrag{Key: rk}, nil
}

// Reencrypt transforms ct addressed to A into a ciphertext addressed to B
// by raising c1 to rk; the c2 chunks are untouched (spec §4.4).
func (pre *PRE) Reencrypt(rk *RekeyFrag, ct *Ciphertext) (*Ciphertext, error) {
	if ct == nil {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: reencrypt", nil)
	}
	newC1 := pre.Params.G.Point().Mul(rk.Key, ct.C1)
	return &Ciphertext{C1: newC1, C2s: ct.C2s}, nil
}
