// Package kdf implements the hashing and key-derivation primitives of
// spec §4.3: HKDF-SHA-512 from a group element to a fixed-length
// symmetric key, and a hash-points-to-scalar construction used throughout
// Umbral's non-interactive proofs.
package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/preerr"
)

// DeriveKey computes HKDF-SHA-512(serialize(p)[1:], salt=nil, info=nil, L=keylen),
// stripping the leading type-tag byte so the KDF input is the raw point
// encoding (spec §4.3).
func DeriveKey(p group.Point, keylen int) ([]byte, error) {
	ser, err := group.SerializePoint(p)
	if err != nil {
		return nil, err
	}
	r := hkdf.New(sha512.New, ser[1:], nil, nil)
	out := make([]byte, keylen)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "hkdf", err)
	}
	return out, nil
}

// HashPointsToScalar computes SHA-256(serialize(P1) || ... || serialize(Pn))
// interpreted big-endian and reduced mod the group order q (spec §4.3).
func HashPointsToScalar(g group.Group, points ...group.Point) (group.Scalar, error) {
	h := sha256.New()
	for _, p := range points {
		ser, err := group.SerializePoint(p)
		if err != nil {
			return nil, err
		}
		h.Write(ser)
	}
	digest := h.Sum(nil)
	i := new(big.Int).SetBytes(digest)
	s := g.Scalar()
	s.SetBytes(i.Bytes())
	return s, nil
}
