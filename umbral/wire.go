package umbral

import (
	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/preerr"
	"github.com/nucypher/nucypher-pre-go/wire"
)

// Serialize encodes an EncryptedKey as the length-framed tuple
// (ekey, vcomp, scomp) (spec §6.2).
func (ek *EncryptedKey) Serialize() ([]byte, error) {
	w := wire.NewWriter()
	for _, f := range []func() ([]byte, error){
		func() ([]byte, error) { return group.SerializePoint(ek.Ekey) },
		func() ([]byte, error) { return group.SerializePoint(ek.Vcomp) },
		func() ([]byte, error) { return group.SerializeScalar(ek.Scomp) },
	} {
		b, err := f()
		if err != nil {
			return nil, err
		}
		w.Field(b)
	}
	return w.Bytes(), nil
}

// DeserializeEncryptedKey parses bytes produced by Serialize.
func DeserializeEncryptedKey(g group.Group, b []byte) (*EncryptedKey, error) {
	r := wire.NewReader(b)
	ekey, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	vcomp, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	scomp, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	return &EncryptedKey{Ekey: ekey, Vcomp: vcomp, Scomp: scomp}, nil
}

// Serialize encodes a KeyFrag as (id, key, xcomp, u1, z1, z2).
func (frag *KeyFrag) Serialize() ([]byte, error) {
	w := wire.NewWriter()
	fields := []group.Scalar{frag.ID, frag.Key}
	for _, s := range fields {
		b, err := group.SerializeScalar(s)
		if err != nil {
			return nil, err
		}
		w.Field(b)
	}
	for _, p := range []group.Point{frag.Xcomp, frag.U1} {
		b, err := group.SerializePoint(p)
		if err != nil {
			return nil, err
		}
		w.Field(b)
	}
	for _, s := range []group.Scalar{frag.Z1, frag.Z2} {
		b, err := group.SerializeScalar(s)
		if err != nil {
			return nil, err
		}
		w.Field(b)
	}
	return w.Bytes(), nil
}

// DeserializeKeyFrag parses bytes produced by KeyFrag.Serialize.
func DeserializeKeyFrag(g group.Group, b []byte) (*KeyFrag, error) {
	r := wire.NewReader(b)
	id, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	key, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	xcomp, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	u1, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	z1, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	z2, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	return &KeyFrag{ID: id, Key: key, Xcomp: xcomp, U1: u1, Z1: z1, Z2: z2}, nil
}

// Serialize encodes a ReEncryptedKey as (ekey, vcomp, reid, xcomp).
func (rc *ReEncryptedKey) Serialize() ([]byte, error) {
	w := wire.NewWriter()
	pb, err := group.SerializePoint(rc.Ekey)
	if err != nil {
		return nil, err
	}
	w.Field(pb)
	if pb, err = group.SerializePoint(rc.Vcomp); err != nil {
		return nil, err
	}
	w.Field(pb)
	sb, err := group.SerializeScalar(rc.ReID)
	if err != nil {
		return nil, err
	}
	w.Field(sb)
	if pb, err = group.SerializePoint(rc.Xcomp); err != nil {
		return nil, err
	}
	w.Field(pb)
	return w.Bytes(), nil
}

// DeserializeReEncryptedKey parses bytes produced by Serialize.
func DeserializeReEncryptedKey(g group.Group, b []byte) (*ReEncryptedKey, error) {
	r := wire.NewReader(b)
	ekey, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	vcomp, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	reid, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	xcomp, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	return &ReEncryptedKey{Ekey: ekey, Vcomp: vcomp, ReID: reid, Xcomp: xcomp}, nil
}

// Serialize encodes a ChallengeResponse as (e2, v2, u1, u2, z1, z2, z3).
func (ch *ChallengeResponse) Serialize() ([]byte, error) {
	w := wire.NewWriter()
	points := []group.Point{ch.E2, ch.V2, ch.U1, ch.U2}
	for _, p := range points {
		b, err := group.SerializePoint(p)
		if err != nil {
			return nil, err
		}
		w.Field(b)
	}
	scalars := []group.Scalar{ch.Z1, ch.Z2, ch.Z3}
	for _, s := range scalars {
		b, err := group.SerializeScalar(s)
		if err != nil {
			return nil, err
		}
		w.Field(b)
	}
	return w.Bytes(), nil
}

// DeserializeChallengeResponse parses bytes produced by Serialize.
func DeserializeChallengeResponse(g group.Group, b []byte) (*ChallengeResponse, error) {
	r := wire.NewReader(b)
	e2, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	v2, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	u1, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	u2, err := readPoint(g, r)
	if err != nil {
		return nil, err
	}
	z1, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	z2, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	z3, err := readScalar(g, r)
	if err != nil {
		return nil, err
	}
	return &ChallengeResponse{E2: e2, V2: v2, U1: u1, U2: u2, Z1: z1, Z2: z2, Z3: z3}, nil
}

func readPoint(g group.Group, r *wire.Reader) (group.Point, error) {
	b, err := r.Field()
	if err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "umbral: point field", err)
	}
	return group.DeserializePoint(g, b)
}

func readScalar(g group.Group, r *wire.Reader) (group.Scalar, error) {
	b, err := r.Field()
	if err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "umbral: scalar field", err)
	}
	return group.DeserializeScalar(g, b)
}
