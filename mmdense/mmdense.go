// Package mmdense persists dense matrices in memory-mapped files. The
// mapped data region backs an ordinary *mat.Dense, so every mat view
// and accessor works on it unchanged and writes land in the file after
// Flush.
package mmdense

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/matview-go/matview/mat"
)

var (
	// ErrBadHeader indicates a missing, corrupt, or unsupported file header.
	ErrBadHeader = errors.New("mmdense: invalid header")

	// ErrSizeMismatch indicates that the file size does not match the
	// shape and kind declared in its header.
	ErrSizeMismatch = errors.New("mmdense: file size mismatch")
)

// Matrix is a dense matrix whose storage lives in a memory-mapped
// file. Close unmaps it; any mat.Dense or view obtained from it must
// not be used afterwards.
type Matrix struct {
	file *os.File
	data mmap.MMap
	hdr  header
	den  *mat.Dense
	ro   bool
}

// Create creates a new file holding a zero-initialized rows x cols
// matrix of the given kind. The file must not already exist.
func Create(path string, rows, cols int, k mat.Kind) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("mmdense: create %dx%d: %w", rows, cols, mat.ErrBadShape)
	}
	if !k.Valid() {
		return nil, fmt.Errorf("mmdense: element kind %d: %w", int(k), mat.ErrBadKind)
	}
	hdr := header{kind: k, rows: rows, cols: cols}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("mmdense: create %s: %w", path, err)
	}
	if err = f.Truncate(hdr.fileSize()); err != nil {
		f.Close()
		return nil, fmt.Errorf("mmdense: size %s: %w", path, err)
	}

	m, err := mapFile(f, hdr, false)
	if err != nil {
		f.Close()
		return nil, err
	}
	hdr.encode(m.data[:headerSize])
	if err = m.Flush(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// Open maps an existing matrix file read-write.
func Open(path string) (*Matrix, error) {
	return open(path, false)
}

// OpenRO maps an existing matrix file read-only. Writing through the
// returned matrix faults.
func OpenRO(path string) (*Matrix, error) {
	return open(path, true)
}

func open(path string, ro bool) (*Matrix, error) {
	flag := os.O_RDWR
	if ro {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("mmdense: open %s: %w", path, err)
	}

	head := make([]byte, headerSize)
	n, _ := f.ReadAt(head, 0)
	hdr, err := decodeHeader(head[:n])
	if err != nil {
		f.Close()
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() != hdr.fileSize() {
		f.Close()
		return nil, fmt.Errorf("mmdense: %s is %d bytes, header says %d: %w",
			path, info.Size(), hdr.fileSize(), ErrSizeMismatch)
	}

	m, err := mapFile(f, hdr, ro)
	if err != nil {
		f.Close()
		return nil, err
	}
	return m, nil
}

func mapFile(f *os.File, hdr header, ro bool) (*Matrix, error) {
	prot := mmap.RDWR
	if ro {
		prot = mmap.RDONLY
	}
	data, err := mmap.Map(f, prot, 0)
	if err != nil {
		return nil, fmt.Errorf("mmdense: map %s: %w", f.Name(), err)
	}
	den, err := mat.NewDenseBytes(hdr.rows, hdr.cols, hdr.kind, data[headerSize:int(hdr.fileSize())])
	if err != nil {
		data.Unmap()
		return nil, err
	}
	return &Matrix{file: f, data: data, hdr: hdr, den: den, ro: ro}, nil
}

// Mat returns the mapped matrix. All mat views, accessors, and layout
// queries apply; mutation writes into the mapping.
func (m *Matrix) Mat() *mat.Dense { return m.den }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.hdr.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.hdr.cols }

// Kind returns the element kind.
func (m *Matrix) Kind() mat.Kind { return m.hdr.kind }

// Flush commits outstanding writes to the file.
func (m *Matrix) Flush() error {
	if m.ro {
		return nil
	}
	return m.data.Flush()
}

// Close flushes, unmaps, and closes the file.
func (m *Matrix) Close() error {
	if err := m.Flush(); err != nil {
		return err
	}
	if err := m.data.Unmap(); err != nil {
		return err
	}
	return m.file.Close()
}
