// Package wire implements the §6.2 length-framed binary container used to
// serialize BBS98 ciphertexts and every Umbral wire type. It is a small,
// explicit codec rather than the reflect-walking approach of
// DeDiS-crypto/marshal: the set of wire types here is fixed and small
// (spec §6.2 enumerates exactly seven of them), so an explicit
// Writer/Reader pair is more direct than driving reflection over struct
// fields, and it avoids marshal.encode.go's panic on unsupported kinds.
package wire

import (
	"encoding/binary"

	"github.com/nucypher/nucypher-pre-go/preerr"
)

// Writer accumulates length-prefixed fields into a single byte-stable
// blob (spec §6.2: "deterministic length-prefixed binary container").
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Field appends a length-prefixed field.
func (w *Writer) Field(b []byte) *Writer {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	w.buf = append(w.buf, lenBuf[:]...)
	w.buf = append(w.buf, b...)
	return w
}

// Bytes returns the accumulated blob.
func (w *Writer) Bytes() []byte { return w.buf }

// Reader walks a blob produced by Writer, field by field.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps a blob for sequential field reads.
func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Field reads the next length-prefixed field.
func (r *Reader) Field() ([]byte, error) {
	if r.pos+4 > len(r.buf) {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "wire: truncated length prefix", nil)
	}
	n := int(binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4]))
	r.pos += 4
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, preerr.Wrap(preerr.ErrInvalidEncoding, "wire: truncated field", nil)
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// Done reports whether every byte of the blob has been consumed.
func (r *Reader) Done() bool { return r.pos == len(r.buf) }
