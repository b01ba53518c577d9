package mmdense

import (
	"encoding/binary"
	"fmt"

	"github.com/matview-go/matview/mat"
)

// File layout: a fixed 32-byte little-endian header followed by the
// column-major data region.
//
//	0..3   magic "MMDM"
//	4..7   format version
//	8..11  element kind
//	12..19 rows
//	20..27 cols
//	28..31 reserved
const (
	headerSize = 32
	version    = 1
)

var magic = [4]byte{'M', 'M', 'D', 'M'}

type header struct {
	kind mat.Kind
	rows int
	cols int
}

func (h header) fileSize() int64 {
	return headerSize + int64(h.rows)*int64(h.cols)*int64(h.kind.Size())
}

func (h header) encode(b []byte) {
	copy(b[0:4], magic[:])
	binary.LittleEndian.PutUint32(b[4:8], version)
	binary.LittleEndian.PutUint32(b[8:12], uint32(h.kind))  //nolint:gosec // kind is a small enum
	binary.LittleEndian.PutUint64(b[12:20], uint64(h.rows)) //nolint:gosec // validated non-negative
	binary.LittleEndian.PutUint64(b[20:28], uint64(h.cols)) //nolint:gosec // validated non-negative
}

func decodeHeader(b []byte) (header, error) {
	var h header
	if len(b) < headerSize {
		return h, fmt.Errorf("mmdense: %d-byte file: %w", len(b), ErrBadHeader)
	}
	if [4]byte(b[0:4]) != magic {
		return h, fmt.Errorf("mmdense: bad magic %q: %w", b[0:4], ErrBadHeader)
	}
	if v := binary.LittleEndian.Uint32(b[4:8]); v != version {
		return h, fmt.Errorf("mmdense: format version %d, want %d: %w", v, version, ErrBadHeader)
	}
	h.kind = mat.Kind(binary.LittleEndian.Uint32(b[8:12]))
	if !h.kind.Valid() {
		return h, fmt.Errorf("mmdense: element kind %d: %w", int(h.kind), ErrBadHeader)
	}
	h.rows = int(binary.LittleEndian.Uint64(b[12:20])) //nolint:gosec // sanity-checked below
	h.cols = int(binary.LittleEndian.Uint64(b[20:28])) //nolint:gosec // sanity-checked below
	if h.rows < 0 || h.cols < 0 {
		return h, fmt.Errorf("mmdense: shape %dx%d: %w", h.rows, h.cols, ErrBadHeader)
	}
	return h, nil
}
