package mmdense

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matview-go/matview/mat"
)

func TestCreateWriteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.mmd")

	m, err := Create(path, 3, 4, mat.Float64)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, mat.Float64, m.Kind())

	d := m.Mat()
	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			require.NoError(t, mat.Set(d, i, j, float64(10*i+j)))
		}
	}
	require.NoError(t, m.Close())

	// The data survives the mapping.
	m2, err := Open(path)
	require.NoError(t, err)
	defer m2.Close()

	v, err := mat.At[float64](m2.Mat(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 23.0, v)

	// Views work on the mapped matrix like on any other Dense.
	w, err := mat.NewWindow(m2.Mat(), 1, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1+3*1, mat.BaseOffset(w))
}

func TestCreateRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.mmd")
	m, err := Create(path, 2, 2, mat.Float32)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = Create(path, 2, 2, mat.Float32)
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestCreateValidation(t *testing.T) {
	dir := t.TempDir()

	_, err := Create(filepath.Join(dir, "a.mmd"), -1, 2, mat.Float64)
	assert.ErrorIs(t, err, mat.ErrBadShape)
	_, err = Create(filepath.Join(dir, "b.mmd"), 2, 2, mat.Kind(42))
	assert.ErrorIs(t, err, mat.ErrBadKind)
}

func TestOpenRO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.mmd")
	m, err := Create(path, 2, 2, mat.Complex128)
	require.NoError(t, err)
	require.NoError(t, mat.SetValueAt(m.Mat(), 1, 1, complex(1, 2)))
	require.NoError(t, m.Close())

	ro, err := OpenRO(path)
	require.NoError(t, err)
	defer ro.Close()

	v, err := mat.ValueAt(ro.Mat(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(1.0, 2.0), v)
	assert.NoError(t, ro.Flush(), "flush on a read-only mapping is a no-op")
}

func TestOpenRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.mmd")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestOpenRejectsShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.mmd")
	require.NoError(t, os.WriteFile(path, magic[:], 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestOpenRejectsTruncatedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.mmd")
	m, err := Create(path, 4, 4, mat.Float64)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	require.NoError(t, os.Truncate(path, headerSize+8))
	_, err = Open(path)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestHeaderRoundTrip(t *testing.T) {
	in := header{kind: mat.Complex64, rows: 7, cols: 9}
	buf := make([]byte, headerSize)
	in.encode(buf)

	out, err := decodeHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, int64(headerSize+7*9*8), in.fileSize())
}

func TestDecodeHeaderBadKind(t *testing.T) {
	in := header{kind: mat.Kind(99), rows: 1, cols: 1}
	buf := make([]byte, headerSize)
	in.encode(buf)

	_, err := decodeHeader(buf)
	assert.ErrorIs(t, err, ErrBadHeader)
}
