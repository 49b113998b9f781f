package umbral

import "github.com/nucypher/nucypher-pre-go/group"

// polyEval evaluates a polynomial with the given coefficients (lowest
// degree first) at x by Horner's method, mirroring the accumulation loop
// in DeDiS-crypto/share/core.go's PriPoly.Eval, generalized to arbitrary
// scalar x-coordinates rather than the small-integer indices kyber's
// share package uses for its own secret sharing.
func polyEval(g group.Group, coeffs []group.Scalar, x group.Scalar) group.Scalar {
	acc := g.Scalar().Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = g.Scalar().Mul(acc, x)
		acc = g.Scalar().Add(acc, coeffs[i])
	}
	return acc
}

// lambdaCoeff computes the Lagrange coefficient for reconstructing f(0)
// from the share at id[i] given the full set of participating
// x-coordinates ids, i.e. Π_{j≠i} id_j · (id_j − id_i)⁻¹.
//
// This differs from DeDiS-crypto/share/core.go's RecoverSecret, which
// evaluates Π_{j≠i} x_j · (x_j − x_i)⁻¹ over its own xCoords(1..n)
// sequence: umbral's share identifiers are random scalars chosen by each
// proxy (spec §4.5.4), not small sequential integers, so the coefficient
// is computed directly against the caller-supplied id scalars rather than
// kyber's index-derived x-coordinates.
func lambdaCoeff(g group.Group, ids []group.Scalar, i int) group.Scalar {
	num := g.Scalar().One()
	den := g.Scalar().One()
	for j, idJ := range ids {
		if j == i {
			continue
		}
		num = g.Scalar().Mul(num, idJ)
		diff := g.Scalar().Sub(idJ, ids[i])
		den = g.Scalar().Mul(den, diff)
	}
	return g.Scalar().Div(num, den)
}
