package klv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vvka-141/regxml/internal/ident"
)

var (
	// ErrTruncated indicates the input ended inside a triplet.
	ErrTruncated = errors.New("truncated KLV triplet")

	// ErrBadLength indicates a BER length that is indefinite or does not fit in 63 bits.
	ErrBadLength = errors.New("invalid BER length")

	// ErrValueTooLarge indicates a value larger than the reader accepts.
	ErrValueTooLarge = errors.New("KLV value too large")
)

// DefaultMaxValueLength bounds the values a Reader buffers.
const DefaultMaxValueLength = 64 << 20

const maxBERLengthBytes = 8

// Reader reads consecutive triplets from a byte stream.
type Reader struct {
	r        io.Reader
	maxValue int64
	offset   int64
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxValueLength sets the largest value ReadTriplet buffers.
func WithMaxValueLength(n int64) ReaderOption {
	return func(r *Reader) { r.maxValue = n }
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	kr := &Reader{r: r, maxValue: DefaultMaxValueLength}
	for _, opt := range opts {
		opt(kr)
	}
	return kr
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.offset }

// ReadKey reads a 16-byte key. It returns io.EOF only when no byte is left.
func (r *Reader) ReadKey() (ident.UL, error) {
	var key ident.UL
	n, err := io.ReadFull(r.r, key[:])
	r.offset += int64(n)
	if err == io.EOF {
		return key, io.EOF
	}
	if err != nil {
		return key, fmt.Errorf("%w: key at offset %d: %v", ErrTruncated, r.offset-int64(n), err)
	}
	return key, nil
}

// ReadLength reads a BER-encoded length.
func (r *Reader) ReadLength() (int64, error) {
	var first [1]byte
	if _, err := io.ReadFull(r.r, first[:]); err != nil {
		return 0, fmt.Errorf("%w: length at offset %d: %v", ErrTruncated, r.offset, err)
	}
	r.offset++

	if first[0] < 0x80 {
		return int64(first[0]), nil
	}

	n := int(first[0] & 0x7f)
	if n == 0 || n > maxBERLengthBytes {
		return 0, fmt.Errorf("%w: length prefix 0x%02x at offset %d", ErrBadLength, first[0], r.offset-1)
	}

	var buf [maxBERLengthBytes]byte
	if _, err := io.ReadFull(r.r, buf[maxBERLengthBytes-n:]); err != nil {
		return 0, fmt.Errorf("%w: length at offset %d: %v", ErrTruncated, r.offset, err)
	}
	r.offset += int64(n)

	length := binary.BigEndian.Uint64(buf[:])
	if length > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit in 63 bits", ErrBadLength, length)
	}
	return int64(length), nil
}

// ReadTriplet reads the next triplet into memory.
// It returns io.EOF when the stream ends exactly on a triplet boundary.
func (r *Reader) ReadTriplet() (*MemoryTriplet, error) {
	key, err := r.ReadKey()
	if err != nil {
		return nil, err
	}

	length, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	if length > r.maxValue {
		return nil, fmt.Errorf("%w: %s declares %d bytes, limit is %d", ErrValueTooLarge, key, length, r.maxValue)
	}

	value := make([]byte, length)
	n, err := io.ReadFull(r.r, value)
	r.offset += int64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: value of %s: read %d of %d bytes", ErrTruncated, key, n, length)
	}

	return &MemoryTriplet{key: key, value: value}, nil
}
