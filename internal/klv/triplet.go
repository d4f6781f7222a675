package klv

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/dict"
	"github.com/vvka-141/regxml/internal/ident"
)

// Triplet is one key/length/value unit.
// Length always equals the number of bytes Value returns or ValueReader yields.
type Triplet interface {
	// Key returns the label identifying the value.
	Key() ident.UL

	// Length returns the declared value length in bytes.
	Length() int64

	// Value returns the whole value.
	Value() ([]byte, error)

	// ValueReader returns a fresh reader positioned at the start of the value.
	ValueReader() io.Reader
}

// MemoryTriplet is a Triplet whose value is held in memory.
type MemoryTriplet struct {
	key   ident.UL
	value []byte
}

// NewMemoryTriplet copies value into a new triplet.
func NewMemoryTriplet(key ident.UL, value []byte) *MemoryTriplet {
	return &MemoryTriplet{key: key, value: bytes.Clone(value)}
}

func (t *MemoryTriplet) Key() ident.UL { return t.key }
func (t *MemoryTriplet) Length() int64 { return int64(len(t.value)) }

// Value returns a copy of the value.
func (t *MemoryTriplet) Value() ([]byte, error) {
	return bytes.Clone(t.value), nil
}

func (t *MemoryTriplet) ValueReader() io.Reader {
	return bytes.NewReader(t.value)
}

// SectionTriplet is a Triplet whose value stays in an io.ReaderAt, such as an
// open file, and is read only on demand.
type SectionTriplet struct {
	key    ident.UL
	source io.ReaderAt
	offset int64
	length int64
}

// NewSectionTriplet describes a value of length bytes at offset in source.
// It panics if offset or length is negative.
func NewSectionTriplet(key ident.UL, source io.ReaderAt, offset, length int64) *SectionTriplet {
	if offset < 0 || length < 0 {
		panic(fmt.Sprintf("klv: negative section offset %d or length %d", offset, length))
	}
	return &SectionTriplet{key: key, source: source, offset: offset, length: length}
}

func (t *SectionTriplet) Key() ident.UL { return t.key }
func (t *SectionTriplet) Length() int64 { return t.length }

// Offset returns the position of the value in the source.
func (t *SectionTriplet) Offset() int64 { return t.offset }

// Value reads the whole value from the source. A source shorter than the
// declared length yields ErrTruncated.
func (t *SectionTriplet) Value() ([]byte, error) {
	buf := make([]byte, t.length)
	n, err := t.source.ReadAt(buf, t.offset)
	if int64(n) == t.length {
		return buf, nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return nil, fmt.Errorf("%w: value of %s: read %d of %d bytes: %v", ErrTruncated, t.key, n, t.length, err)
}

// ValueReader streams the value from the source. A source shorter than the
// declared length fails with ErrTruncated instead of a clean io.EOF.
func (t *SectionTriplet) ValueReader() io.Reader {
	return &sectionReader{t: t, r: io.NewSectionReader(t.source, t.offset, t.length)}
}

type sectionReader struct {
	t    *SectionTriplet
	r    *io.SectionReader
	read int64
}

func (s *sectionReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.read += int64(n)
	if err == io.EOF && s.read < s.t.length {
		err = fmt.Errorf("%w: value of %s: read %d of %d bytes: %w",
			ErrTruncated, s.t.key, s.read, s.t.length, io.ErrUnexpectedEOF)
	}
	return n, err
}

// Resolve looks up the definition registered under the triplet key.
func Resolve(r dict.Resolver, t Triplet) (definition.Definition, bool) {
	return r.DefinitionByUL(t.Key())
}
