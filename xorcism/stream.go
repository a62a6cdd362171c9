package xorcism

import (
	"io"
)

type flusher interface {
	Flush() error
}

// Writer implements io.Writer and munges the data stream on its way to an
// underlying sink.
type Writer struct {
	munger *Munger
	w      io.Writer
}

// NewWriter creates a Writer that munges with key and forwards to w.
// Returns InvalidKey if the key is empty.
func NewWriter(key []byte, w io.Writer) (*Writer, error) {
	m, err := New(key)
	if err != nil {
		return nil, err
	}
	return m.Writer(w), nil
}

// Writer converts this Munger into a Writer forwarding to w.  The Writer
// takes sole ownership of the munger's cursor; the caller must not call
// Munge or MungeInPlace on m afterwards.  Clone first if you still need an
// independent munger.
func (m *Munger) Writer(w io.Writer) *Writer {
	return &Writer{munger: m, w: w}
}

// Write munges all of data and writes the whole munged result to the
// underlying sink before returning.  On success it reports len(data); it
// does not report partial writes back to the caller.
//
// The munger's cursor advances by len(data) even if the downstream write
// fails: once munged, that key material is consumed and is not rolled back.
func (w *Writer) Write(data []byte) (int, error) {
	munged := w.munger.Munge(data)
	if n, err := w.w.Write(munged); err != nil {
		return n, err
	}
	return len(data), nil
}

// Flush forwards to the underlying sink's Flush, if it has one.  No munging
// side effect.
func (w *Writer) Flush() error {
	if f, ok := w.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close forwards to the underlying sink's Close, if it has one.
func (w *Writer) Close() error {
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Reader implements io.Reader and munges the data stream as it is read from
// an underlying source.
type Reader struct {
	munger *Munger
	r      io.Reader
}

// NewReader creates a Reader that reads from r and munges with key.
// Returns InvalidKey if the key is empty.
func NewReader(key []byte, r io.Reader) (*Reader, error) {
	m, err := New(key)
	if err != nil {
		return nil, err
	}
	return m.Reader(r), nil
}

// Reader converts this Munger into a Reader pulling from r.  The Reader
// takes sole ownership of the munger's cursor; the caller must not call
// Munge or MungeInPlace on m afterwards.
func (m *Munger) Reader(r io.Reader) *Reader {
	return &Reader{munger: m, r: r}
}

// Read fills buf from the underlying source, then munges exactly the bytes
// the source produced.  The source decides the count, which may be less
// than len(buf), including 0 at end of input; a zero-length read advances
// the cursor by 0 and is not an error.  Any bytes returned alongside an
// error (io.Reader permits n > 0 with a non-nil error) were successfully
// read and are munged before the error is surfaced.
func (r *Reader) Read(buf []byte) (int, error) {
	n, err := r.r.Read(buf)
	r.munger.MungeInPlace(buf[:n])
	return n, err
}

// Close forwards to the underlying source's Close, if it has one.
func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
