// Package secp256k1 implements the kyber.Group interface over
// gitlab.com/yawning/secp256k1-voi, giving the module the default curve
// named in spec §6.1. Field arithmetic is delegated entirely to
// secp256k1-voi; this package only adapts its Scalar/Point API to the
// kyber.Scalar/kyber.Point/kyber.Group shape the rest of the module
// depends on (grounded in DeDiS-crypto/group.go's interfaces).
package secp256k1

import (
	"crypto/cipher"
	"fmt"
	"io"

	voi "gitlab.com/yawning/secp256k1-voi"
	"go.dedis.ch/kyber/v3"
)

type scalar struct {
	v *voi.Scalar
}

func newScalar() *scalar {
	return &scalar{v: voi.NewScalar()}
}

func (s *scalar) String() string { return fmt.Sprintf("secp256k1.Scalar{%x}", s.v.Bytes()) }

func (s *scalar) Equal(o kyber.Scalar) bool {
	return s.v.Equal(o.(*scalar).v) == 1
}

func (s *scalar) Set(a kyber.Scalar) kyber.Scalar {
	s.v = voi.NewScalarFrom(a.(*scalar).v)
	return s
}

func (s *scalar) Clone() kyber.Scalar {
	return &scalar{v: voi.NewScalarFrom(s.v)}
}

func (s *scalar) SetInt64(v int64) kyber.Scalar {
	var b [32]byte
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	for i := 0; i < 8; i++ {
		b[31-i] = byte(u >> (8 * i))
	}
	sc, _ := voi.NewScalar().SetBytes(&b)
	if neg {
		sc.Negate(sc)
	}
	s.v = sc
	return s
}

func (s *scalar) Zero() kyber.Scalar {
	s.v = voi.NewScalar()
	return s
}

func (s *scalar) Add(a, b kyber.Scalar) kyber.Scalar {
	s.v.Add(a.(*scalar).v, b.(*scalar).v)
	return s
}

func (s *scalar) Sub(a, b kyber.Scalar) kyber.Scalar {
	s.v.Subtract(a.(*scalar).v, b.(*scalar).v)
	return s
}

func (s *scalar) Neg(a kyber.Scalar) kyber.Scalar {
	s.v.Negate(a.(*scalar).v)
	return s
}

func (s *scalar) One() kyber.Scalar {
	s.SetInt64(1)
	return s
}

func (s *scalar) Mul(a, b kyber.Scalar) kyber.Scalar {
	s.v.Multiply(a.(*scalar).v, b.(*scalar).v)
	return s
}

func (s *scalar) Div(a, b kyber.Scalar) kyber.Scalar {
	inv := voi.NewScalar().Invert(b.(*scalar).v)
	s.v.Multiply(a.(*scalar).v, inv)
	return s
}

func (s *scalar) Inv(a kyber.Scalar) kyber.Scalar {
	s.v.Invert(a.(*scalar).v)
	return s
}

func (s *scalar) Pick(rand cipher.Stream) kyber.Scalar {
	var b [32]byte
	for {
		rand.XORKeyStream(b[:], b[:])
		sc, didReduce := voi.NewScalar().SetBytes(&b)
		if didReduce == 0 && sc.IsZero() == 0 {
			s.v = sc
			return s
		}
	}
}

func (s *scalar) SetBytes(b []byte) kyber.Scalar {
	var tmp [32]byte
	if len(b) >= 32 {
		copy(tmp[:], b[len(b)-32:])
	} else {
		copy(tmp[32-len(b):], b)
	}
	sc, _ := voi.NewScalar().SetBytes(&tmp)
	s.v = sc
	return s
}

func (s *scalar) Bytes() []byte {
	return s.v.Bytes()
}

func (s *scalar) MarshalBinary() ([]byte, error) {
	return s.v.Bytes(), nil
}

func (s *scalar) MarshalSize() int { return voi.ScalarSize }

func (s *scalar) MarshalTo(w io.Writer) (int, error) {
	b, _ := s.MarshalBinary()
	return w.Write(b)
}

func (s *scalar) UnmarshalBinary(data []byte) error {
	if len(data) != voi.ScalarSize {
		return fmt.Errorf("secp256k1: invalid scalar length %d", len(data))
	}
	var tmp [32]byte
	copy(tmp[:], data)
	sc, err := voi.NewScalarFromCanonicalBytes(&tmp)
	if err != nil {
		return err
	}
	s.v = sc
	return nil
}

func (s *scalar) UnmarshalFrom(r io.Reader) (int, error) {
	b := make([]byte, voi.ScalarSize)
	n, err := io.ReadFull(r, b)
	if err != nil {
		return n, err
	}
	return n, s.UnmarshalBinary(b)
}
