// Package pad implements the length-prefixed padding of spec §4.2: not a
// CCA-secure OAEP padding, just enough to make a message a whole number of
// L-byte chunks before BBS98 splits it for encryption.
package pad

import "github.com/nucypher/nucypher-pre-go/preerr"

// Pad appends filler after m and then the 1-byte residue len(m) mod L, so
// the residue byte always lands last and the total length is the smallest
// multiple of L that is strictly greater than len(m) (spec §4.2, §8
// property 6).
func Pad(l int, m []byte) []byte {
	if l <= 0 {
		panic("pad: L must be positive")
	}
	residue := len(m) % l
	filler := (l - ((len(m) + 1) % l)) % l
	out := make([]byte, 0, len(m)+filler+1)
	out = append(out, m...)
	out = append(out, make([]byte, filler)...)
	out = append(out, byte(residue))
	return out
}

// Unpad reverses Pad against chunk size L: it reads the last byte as the
// residue and returns the first (len(p) - L) + residue bytes.
func Unpad(l int, p []byte) ([]byte, error) {
	if l <= 0 {
		panic("pad: L must be positive")
	}
	if len(p) == 0 || len(p)%l != 0 {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "unpad: not a multiple of chunk size", nil)
	}
	residue := int(p[len(p)-1])
	if residue >= l {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "unpad: residue exceeds chunk size", nil)
	}
	n := len(p) - l + residue
	if n < 0 {
		return nil, preerr.Wrap(preerr.ErrInvalidCiphertext, "unpad: negative length", nil)
	}
	return p[:n], nil
}
