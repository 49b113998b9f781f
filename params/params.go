// Package params holds the immutable, shareable PRE parameters that both
// bbs98 and umbral are constructed against (spec §3's "PRE params": a
// curve id and fixed generator g, plus the two auxiliary generators h and
// u that spec §9 calls out as an open design question).
package params

import (
	"math/big"

	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/preerr"
)

var errShortParams = preerr.Wrap(preerr.ErrInvalidEncoding, "params: truncated", nil)

// CurveID identifies the group backend by a wire-stable integer tag,
// mirroring spec §6.1's "standardized NID". New backends register
// their own id; 1 is reserved for the secp256k1 default.
type CurveID uint32

const (
	CurveSecp256k1 CurveID = 1
)

// Params is the immutable object shared across every operation of a given
// PRE system (spec §3's ownership note: "shared immutably across all
// operations of the same curve").
type Params struct {
	Curve     CurveID
	G         group.Group
	Generator group.Point

	// H and U are auxiliary public generators, distinct from g: H is the
	// base for Umbral's vKeys commitments, U is the base for the
	// challenge's u-side (spec §9). They are derived deterministically
	// from the curve alone so Params never needs to carry or serialize
	// them explicitly.
	H group.Point
	U group.Point
}

// New builds Params for a group, deriving the generator (or accepting a
// caller-supplied one for a non-default base point) and the H/U auxiliary
// generators.
func New(curve CurveID, g group.Group, generator group.Point) *Params {
	if generator == nil {
		generator = g.Point().Base()
	}
	h := g.Point().Pick(group.DeterministicStream("nucypher-pre/h-generator"))
	u := g.Point().Pick(group.DeterministicStream("nucypher-pre/u-generator"))
	return &Params{
		Curve:     curve,
		G:         g,
		Generator: generator,
		H:         h,
		U:         u,
	}
}

// Order returns the scalar field order q of p's group (spec §4.1/§6.1's
// order() operation), when the backend exposes one (see group.Ordered).
func (p *Params) Order() (*big.Int, error) {
	return group.Order(p.G)
}

// Serialize encodes the params' two §6.2 fields, curve and g, as a 4-byte
// big-endian curve id followed by the tagged generator point.
func (p *Params) Serialize() ([]byte, error) {
	gBytes, err := group.SerializePoint(p.Generator)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(gBytes)+4)
	out = append(out,
		byte(p.Curve>>24), byte(p.Curve>>16), byte(p.Curve>>8), byte(p.Curve))
	out = append(out, gBytes...)
	return out, nil
}

// Deserialize parses bytes produced by Serialize against a known group
// backend (the backend itself is selected out-of-band by the curve id,
// spec §6.1's NID).
func Deserialize(g group.Group, b []byte) (*Params, error) {
	if len(b) < 4 {
		return nil, errShortParams
	}
	curve := CurveID(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
	generator, err := group.DeserializePoint(g, b[4:])
	if err != nil {
		return nil, err
	}
	return New(curve, g, generator), nil
}
