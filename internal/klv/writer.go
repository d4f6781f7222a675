package klv

import (
	"encoding/binary"
	"fmt"
	"io"
)

// AppendLength appends the shortest BER encoding of length to b.
func AppendLength(b []byte, length int64) []byte {
	if length < 0 {
		panic(fmt.Sprintf("klv: negative length %d", length))
	}
	if length < 0x80 {
		return append(b, byte(length))
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(length))
	skip := 0
	for skip < len(buf)-1 && buf[skip] == 0 {
		skip++
	}
	b = append(b, 0x80|byte(len(buf)-skip))
	return append(b, buf[skip:]...)
}

// WriteTriplet writes t as key, BER length and value.
func WriteTriplet(w io.Writer, t Triplet) error {
	key := t.Key()
	header := AppendLength(key.Bytes(), t.Length())
	if _, err := w.Write(header); err != nil {
		return err
	}

	n, err := io.Copy(w, t.ValueReader())
	if err != nil {
		return err
	}
	if n != t.Length() {
		return fmt.Errorf("%w: value of %s: wrote %d of %d bytes", ErrTruncated, key, n, t.Length())
	}
	return nil
}
