package secp256k1

import (
	"math/big"

	voi "gitlab.com/yawning/secp256k1-voi"
	"go.dedis.ch/kyber/v3"
)

// suite implements kyber.Group for secp256k1, the default curve of
// spec §6.1.
type suite struct{}

// NewSuite returns the secp256k1 group used by default throughout this
// module (spec §6.1's "Default curve is secp256k1").
func NewSuite() kyber.Group {
	return suite{}
}

func (suite) String() string { return "secp256k1" }

func (suite) ScalarLen() int { return voi.ScalarSize }

func (suite) Scalar() kyber.Scalar { return newScalar() }

func (suite) PointLen() int { return voi.CompressedPointSize }

func (suite) Point() kyber.Point { return newPoint() }

// order is secp256k1's well-known scalar field prime n.
var order, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// Order implements group.Ordered, spec §4.1/§6.1's order() operation.
func (suite) Order() *big.Int {
	return new(big.Int).Set(order)
}
