package bbs98

import (
	"github.com/nucypher/nucypher-pre-go/group"
	"github.com/nucypher/nucypher-pre-go/preerr"
	"github.com/nucypher/nucypher-pre-go/wire"
)

// Ciphertext is a BBS98 ciphertext: one randomizer point c1 shared by every
// chunk, and one masked point per plaintext chunk (spec §3's "BBS
// Ciphertext").
type Ciphertext struct {
	C1  group.Point
	C2s []group.Point
}

// Serialize encodes the ciphertext as the length-framed list [c1] + c2s
// (spec §6.2).
func (c *Ciphertext) Serialize() ([]byte, error) {
	w := wire.NewWriter()
	c1b, err := group.SerializePoint(c.C1)
	if err != nil {
		return nil, err
	}
	w.Field(c1b)
	for _, p := range c.C2s {
		pb, err := group.SerializePoint(p)
		if err != nil {
			return nil, err
		}
		w.Field(pb)
	}
	return w.Bytes(), nil
}

// DeserializeCiphertext parses bytes produced by Serialize.
func DeserializeCiphertext(g group.Group, b []byte) (*Ciphertext, error) {
	r := wire.NewReader(b)
	c1b, err := r.Field()
	if err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: c1", err)
	}
	c1, err := group.DeserializePoint(g, c1b)
	if err != nil {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: c1", err)
	}
	var c2s []group.Point
	for !r.Done() {
		pb, err := r.Field()
		if err != nil {
			return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: c2 chunk", err)
		}
		p, err := group.DeserializePoint(g, pb)
		if err != nil {
			return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: c2 chunk", err)
		}
		c2s = append(c2s, p)
	}
	if len(c2s) == 0 {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "bbs98: no chunks", nil)
	}
	return &Ciphertext{C1: c1, C2s: c2s}, nil
}
