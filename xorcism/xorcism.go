package xorcism

import (
	"errors"
)

var (
	// InvalidKey is the error that is returned when a munger is constructed
	// from an empty key.  An empty key would make the cyclic key index
	// undefined, so we reject it before creating any cursor state.
	InvalidKey = errors.New("Invalid key: must not be empty")
)

// Munger XORs a key with some data.
//
// This is a low-level type; more often, you'll want to use Writer, Reader,
// or the package-level Munge function.
//
// The key is logically an infinite repetition of the finite key buffer.  We
// don't keep a live cyclic iterator; we store the absolute number of bytes
// munged so far and derive the key offset by modular indexing at each call.
// The cursor advances exactly once per call, by the full input length, so
// two calls over N and M bytes are bit-identical to one call over the
// concatenated N+M bytes.
type Munger struct {
	key []byte
	pos uint64
}

// New creates a Munger from a key.  The key bytes are copied, so the caller
// is free to reuse or modify the original slice afterwards.  Returns
// InvalidKey if the key is empty.
func New(key []byte) (*Munger, error) {
	if len(key) == 0 {
		return nil, InvalidKey
	}
	owned := make([]byte, len(key))
	copy(owned, key)
	return &Munger{key: owned}, nil
}

// Clone returns an independent Munger with the same key and the same cursor
// value.  The clone's future key alignment matches the original's at the
// moment of cloning; afterwards the two cursors advance independently.
// Cloning is how you build symmetric encode/decode pairs.
func (m *Munger) Clone() *Munger {
	return &Munger{key: m.key, pos: m.pos}
}

// advance increases the stored cursor by n and returns the old cursor value
// reduced modulo the key length, which is the key offset for the first byte
// of this call.
func (m *Munger) advance(n int) int {
	off := int(m.pos % uint64(len(m.key)))
	m.pos += uint64(n)
	return off
}

// MungeInPlace XORs each byte of data with a byte from the key, mutating
// data in place.
//
// Note that this is stateful: repeated calls are likely to produce different
// results, even with identical inputs.
func (m *Munger) MungeInPlace(data []byte) {
	off := m.advance(len(data))
	for i := range data {
		data[i] ^= m.key[(off+i)%len(m.key)]
	}
}

// Munge XORs each byte of data with a byte from the key, returning a newly
// allocated result of exactly len(data) bytes.  data is not modified.
//
// Note that this is stateful: repeated calls are likely to produce different
// results, even with identical inputs.
func (m *Munger) Munge(data []byte) []byte {
	off := m.advance(len(data))
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ m.key[(off+i)%len(m.key)]
	}
	return out
}

// Munge XORs each byte of key with each byte of data, looping key as
// required.
//
// This is stateless: repeated calls with identical inputs will always
// produce identical results.  Returns InvalidKey if the key is empty.
func Munge(key, data []byte) ([]byte, error) {
	m, err := New(key)
	if err != nil {
		return nil, err
	}
	return m.Munge(data), nil
}
