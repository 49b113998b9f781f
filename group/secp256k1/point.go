package secp256k1

import (
	"crypto/cipher"
	"fmt"
	"io"

	voi "gitlab.com/yawning/secp256k1-voi"
	"go.dedis.ch/kyber/v3"

	"github.com/nucypher/nucypher-pre-go/preerr"
)

// embedLenBytes reserves one length byte and one try-and-increment counter
// byte out of the 32-byte x-coordinate, leaving this many bytes of payload
// (spec §4.1's "bitsize"). This is the same try-and-increment embedding
// technique the pre-v3 kyber NIST/edwards suites used before constant-time
// Elligator maps existed: scan candidate x-coordinates until one lifts to a
// curve point.
const embedLenBytes = voi.ScalarSize - 2

type point struct {
	v *voi.Point
}

func newPoint() *point {
	return &point{v: voi.NewIdentityPoint()}
}

func (p *point) String() string { return fmt.Sprintf("secp256k1.Point{%x}", p.v.Bytes()) }

func (p *point) Equal(o kyber.Point) bool {
	return p.v.Equal(o.(*point).v) == 1
}

func (p *point) Null() kyber.Point {
	p.v = voi.NewIdentityPoint()
	return p
}

func (p *point) Base() kyber.Point {
	p.v = voi.NewGeneratorPoint()
	return p
}

func (p *point) Pick(rand cipher.Stream) kyber.Point {
	s := newScalar()
	s.Pick(rand)
	p.v = voi.NewIdentityPoint().ScalarBaseMult(s.v)
	return p
}

func (p *point) Set(o kyber.Point) kyber.Point {
	p.v = voi.NewPointFrom(o.(*point).v)
	return p
}

func (p *point) Clone() kyber.Point {
	return &point{v: voi.NewPointFrom(p.v)}
}

func (p *point) EmbedLen() int { return embedLenBytes }

// Embed maps up to EmbedLen() bytes of data onto a curve point using
// try-and-increment: the length byte and payload occupy the leading
// (high-order) bytes of a candidate x-coordinate, and the final counter
// byte is incremented until NewPointFromBytes lifts it to a valid point
// (spec §4.1 encode/decode).
func (p *point) Embed(data []byte, rand cipher.Stream) kyber.Point {
	if len(data) > embedLenBytes {
		panic("secp256k1: Embed: data too long")
	}
	var x [voi.ScalarSize]byte
	x[0] = byte(len(data))
	copy(x[1:], data)
	if rand != nil {
		tail := x[1+len(data):]
		rand.XORKeyStream(tail, tail)
	}
	for counter := 0; counter < 256; counter++ {
		x[voi.ScalarSize-1] = byte(counter)
		var compressed [voi.CompressedPointSize]byte
		compressed[0] = 0x02
		copy(compressed[1:], x[:])
		pt, err := voi.NewPointFromBytes(compressed[:])
		if err == nil {
			p.v = pt
			return p
		}
	}
	panic("secp256k1: Embed: failed to find a valid point after 256 tries")
}

// Data recovers the bytes embedded by Embed.
func (p *point) Data() ([]byte, error) {
	b := p.v.UncompressedBytes()
	if len(b) < 1+voi.ScalarSize {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "embedded point", nil)
	}
	x := b[1 : 1+voi.ScalarSize]
	dl := int(x[0])
	if dl > embedLenBytes {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "embedded length", nil)
	}
	return append([]byte{}, x[1:1+dl]...), nil
}

func (p *point) Add(a, b kyber.Point) kyber.Point {
	p.v = voi.NewIdentityPoint().Add(a.(*point).v, b.(*point).v)
	return p
}

func (p *point) Sub(a, b kyber.Point) kyber.Point {
	negB := voi.NewIdentityPoint().Negate(b.(*point).v)
	p.v = voi.NewIdentityPoint().Add(a.(*point).v, negB)
	return p
}

func (p *point) Neg(a kyber.Point) kyber.Point {
	p.v = voi.NewIdentityPoint().Negate(a.(*point).v)
	return p
}

// Mul sets p to q multiplied by the scalar s, or to the base point
// multiplied by s if q == nil
// (kyber.Point's convention, spec §4.1's point^scalar / scalar·g).
func (p *point) Mul(s kyber.Scalar, q kyber.Point) kyber.Point {
	sc := s.(*scalar).v
	if q == nil {
		p.v = voi.NewIdentityPoint().ScalarBaseMult(sc)
		return p
	}
	p.v = voi.NewIdentityPoint().ScalarMult(sc, q.(*point).v)
	return p
}

func (p *point) MarshalBinary() ([]byte, error) {
	return p.v.Bytes(), nil
}

func (p *point) MarshalSize() int { return voi.CompressedPointSize }

func (p *point) MarshalTo(w io.Writer) (int, error) {
	b, _ := p.MarshalBinary()
	return w.Write(b)
}

func (p *point) UnmarshalBinary(data []byte) error {
	pt, err := voi.NewPointFromBytes(data)
	if err != nil {
		return err
	}
	p.v = pt
	return nil
}

func (p *point) UnmarshalFrom(r io.Reader) (int, error) {
	b := make([]byte, voi.CompressedPointSize)
	n, err := io.ReadFull(r, b)
	if err != nil {
		return n, err
	}
	return n, p.UnmarshalBinary(b)
}
