package group

import (
	"crypto/rand"

	"golang.org/x/crypto/sha3"

	"github.com/nucypher/nucypher-pre-go/preerr"
)

// cryptoRandStream adapts crypto/rand into a cipher.Stream, the same shape
// as DeDiS-crypto/random/rand.go's randstream — except entropy exhaustion
// surfaces as preerr.ErrRandomness on the next call to Err() instead of a
// panic, per spec §5/§7's RandomnessFailure category.
type cryptoRandStream struct {
	err error
}

// Rand returns the module's default entropy source: a cipher.Stream backed
// by crypto/rand. Check Err() after use to detect an entropy failure.
func Rand() *cryptoRandStream {
	return &cryptoRandStream{}
}

func (s *cryptoRandStream) XORKeyStream(dst, src []byte) {
	if s.err != nil {
		return
	}
	buf := make([]byte, len(src))
	n, err := rand.Read(buf)
	if err != nil || n != len(buf) {
		s.err = preerr.Wrap(preerr.ErrRandomness, "crypto/rand", err)
		return
	}
	for i := range dst {
		dst[i] = src[i] ^ buf[i]
	}
}

// Err returns the first entropy failure observed by this stream, if any.
func (s *cryptoRandStream) Err() error {
	return s.err
}

// DeterministicStream derives a reproducible cipher.Stream from a
// domain-separated label by seeding a SHAKE-256 sponge (grounded in
// DeDiS-crypto/xof/keccak), used to derive the auxiliary generators H and U
// (spec §9) without persisting any extra state.
func DeterministicStream(label string) *shakeStream {
	sh := sha3.NewShake256()
	_, _ = sh.Write([]byte(label))
	return &shakeStream{sh: sh}
}

type shakeStream struct {
	sh sha3.ShakeHash
}

func (s *shakeStream) XORKeyStream(dst, src []byte) {
	buf := make([]byte, len(src))
	_, _ = s.sh.Read(buf)
	for i := range dst {
		dst[i] = src[i] ^ buf[i]
	}
}
