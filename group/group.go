// Package group provides the abstract prime-order elliptic-curve group
// that the rest of this module is built on (spec §4.1, §6.1): uniform
// scalar and point sampling, the group operations written multiplicatively
// in the scheme descriptions, and canonical, tagged serialization.
//
// The interfaces are exactly go.dedis.ch/kyber/v3's Scalar/Point/Group, so
// any kyber suite (edwards25519, NIST P256, BN256, ...) already satisfies
// them. The secp256k1 subpackage supplies the default curve named in
// spec §6.1.
package group

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v3"

	"github.com/nucypher/nucypher-pre-go/preerr"
)

// Scalar is an element of Z_q.
type Scalar = kyber.Scalar

// Point is an element of G.
type Point = kyber.Point

// Group is the abstract prime-order group: scalar/point constructors plus
// their wire lengths. Satisfied by any kyber.Group.
type Group interface {
	kyber.Group
}

// tag bytes leading every serialized blob, distinguishing scalars from
// points when deserializing an opaque wire blob (spec §4.1, §6.2).
const (
	tagScalar byte = 0x01
	tagPoint  byte = 0x02
)

// SerializeScalar canonically encodes a scalar with a leading type tag.
func SerializeScalar(s kyber.Scalar) ([]byte, error) {
	body, err := s.MarshalBinary()
	if err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "scalar", err)
	}
	return append([]byte{tagScalar}, body...), nil
}

// SerializePoint canonically encodes a point with a leading type tag.
func SerializePoint(p kyber.Point) ([]byte, error) {
	body, err := p.MarshalBinary()
	if err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "point", err)
	}
	return append([]byte{tagPoint}, body...), nil
}

// DeserializeScalar reads a tagged scalar blob produced by SerializeScalar.
func DeserializeScalar(g Group, b []byte) (kyber.Scalar, error) {
	if len(b) == 0 || b[0] != tagScalar {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "scalar", nil)
	}
	s := g.Scalar()
	if err := s.UnmarshalBinary(b[1:]); err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "scalar", err)
	}
	return s, nil
}

// DeserializePoint reads a tagged point blob produced by SerializePoint.
func DeserializePoint(g Group, b []byte) (kyber.Point, error) {
	if len(b) == 0 || b[0] != tagPoint {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "point", nil)
	}
	p := g.Point()
	if err := p.UnmarshalBinary(b[1:]); err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "point", err)
	}
	return p, nil
}

// Ordered is satisfied by a Group that can report the prime order q of its
// scalar field (spec §4.1/§6.1's "order()" operation). Not every kyber
// suite exposes its order this way, so it is a separate, optional
// interface rather than part of Group itself.
type Ordered interface {
	Order() *big.Int
}

// Order returns g's scalar field order q (spec §4.1/§6.1's order()). It
// fails with ErrUnsupportedGroup for a Group backend that does not
// implement Ordered.
func Order(g Group) (*big.Int, error) {
	o, ok := g.(Ordered)
	if !ok {
		return nil, preerr.Wrap(preerr.ErrUnsupportedGroup, "group: order", nil)
	}
	return o.Order(), nil
}

// Bitsize is the number of bytes of arbitrary data Encode can embed in a
// single group element (spec §4.1's "bitsize").
func Bitsize(g Group) int {
	return g.Point().EmbedLen()
}

// Encode maps a byte string of length at most Bitsize(g) onto a group
// element, bijectively for strings of exactly that length. rand supplies
// the auxiliary randomness probabilistic point-encoding needs.
func Encode(g Group, rand cipher.Stream, m []byte) (kyber.Point, error) {
	if len(m) > Bitsize(g) {
		return nil, preerr.ErrMessageTooLarge
	}
	return g.Point().Embed(m, rand), nil
}

// Decode recovers the bytes embedded in p by Encode.
func Decode(p kyber.Point) ([]byte, error) {
	m, err := p.Data()
	if err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "embedded data", err)
	}
	return m, nil
}
