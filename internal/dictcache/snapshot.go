package dictcache

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/dict"
	"github.com/vvka-141/regxml/pkg/regxml"
)

// FormatVersion is the snapshot layout written by Write.
const FormatVersion byte = 1

var magic = [4]byte{'R', 'X', 'M', 'D'}

const headerSize = len(magic) + 1

var (
	// ErrNotSnapshot indicates input that does not start with a snapshot header.
	ErrNotSnapshot = fmt.Errorf("%w: not a dictionary snapshot", regxml.ErrMalformedInput)

	// ErrUnsupportedVersion indicates a snapshot written in another format version.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported snapshot version", regxml.ErrMalformedInput)
)

type snapshot struct {
	SchemeURI   string  `cbor:"1,keyasint"`
	Description string  `cbor:"2,keyasint,omitempty"`
	Definitions []entry `cbor:"3,keyasint"`
}

// entry tags a definition body with its interchange element name so the
// concrete kind survives the round trip.
type entry struct {
	Kind string          `cbor:"1,keyasint"`
	Body cbor.RawMessage `cbor:"2,keyasint"`
}

// IsSnapshot reports whether prefix starts with a snapshot header.
func IsSnapshot(prefix []byte) bool {
	return len(prefix) >= len(magic) && bytes.Equal(prefix[:len(magic)], magic[:])
}

// Write stores d as a snapshot.
func Write(w io.Writer, d *dict.MetaDictionary) error {
	snap := snapshot{
		SchemeURI:   d.SchemeURI(),
		Description: d.Description(),
	}
	for _, def := range d.Definitions() {
		body, err := encMode.Marshal(def)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", def.Symbol(), err)
		}
		snap.Definitions = append(snap.Definitions, entry{
			Kind: definition.KindOf(def).TagName(),
			Body: body,
		})
	}

	payload, err := encMode.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	header := append(magic[:], FormatVersion)
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(zstdEncoder.EncodeAll(payload, nil))
	return err
}

// Read loads a snapshot written by Write and rebuilds its dictionary with opts.
func Read(r io.Reader, opts ...dict.Option) (*dict.MetaDictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if len(data) < headerSize || !IsSnapshot(data) {
		return nil, ErrNotSnapshot
	}
	if version := data[len(magic)]; version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	payload, err := zstdDecoder.DecodeAll(data[headerSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd decompress: %v", regxml.ErrMalformedInput, err)
	}

	var snap snapshot
	if err := decMode.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", regxml.ErrMalformedInput, err)
	}

	defs := make([]definition.Definition, 0, len(snap.Definitions))
	for i, e := range snap.Definitions {
		kind, ok := definition.KindForTag(e.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: definition %d has unknown kind %q", regxml.ErrMalformedInput, i, e.Kind)
		}
		def := definition.New(kind)
		if err := decMode.Unmarshal(e.Body, def); err != nil {
			return nil, fmt.Errorf("%w: definition %d: %v", regxml.ErrMalformedInput, i, err)
		}
		defs = append(defs, def)
	}

	opts = append([]dict.Option{dict.WithDescription(snap.Description)}, opts...)
	return dict.New(snap.SchemeURI, defs, opts...)
}

// WriteFile stores d as a snapshot at path.
func WriteFile(path string, d *dict.MetaDictionary) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Write(f, d)
}

// ReadFile loads the snapshot at path.
func ReadFile(path string, opts ...dict.Option) (*dict.MetaDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	d, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
