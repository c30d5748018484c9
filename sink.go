package deflate

import "io"

// NewWriter returns a heap-allocated Compressor writing a new stream to w.
// Embedded callers can declare a Compressor value and call Init themselves.
func NewWriter(w io.Writer, flags uint32) (*Compressor, error) {
	c := new(Compressor)
	if err := c.Init(w, flags); err != nil {
		return nil, err
	}
	return c, nil
}

// Compress appends the compressed form of src to dst and returns the
// resulting slice.
func Compress(dst, src []byte, flags uint32) ([]byte, error) {
	var c Compressor
	b := growBuffer{buf: dst}
	if err := c.Init(&b, flags); err != nil {
		return dst, err
	}
	if _, err := c.Write(src); err != nil {
		return b.buf, err
	}
	if err := c.Close(); err != nil {
		return b.buf, err
	}
	return b.buf, nil
}

// CompressFixed compresses src into dst and returns the number of bytes
// written. It returns io.ErrShortBuffer if dst cannot hold the whole
// stream; compressed output can be larger than src on incompressible data.
func CompressFixed(dst, src []byte, flags uint32) (int, error) {
	var c Compressor
	b := fixedBuffer{buf: dst}
	if err := c.Init(&b, flags); err != nil {
		return 0, err
	}
	if _, err := c.Write(src); err != nil {
		return b.n, err
	}
	if err := c.Close(); err != nil {
		return b.n, err
	}
	return b.n, nil
}

type growBuffer struct {
	buf []byte
}

func (b *growBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

type fixedBuffer struct {
	buf []byte
	n   int
}

func (b *fixedBuffer) Write(p []byte) (int, error) {
	if len(p) > len(b.buf)-b.n {
		return 0, io.ErrShortBuffer
	}
	copy(b.buf[b.n:], p)
	b.n += len(p)
	return len(p), nil
}
