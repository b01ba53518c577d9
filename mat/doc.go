// Package mat provides dense column-major matrices and zero-copy views
// over them.
//
// # Overview
//
// A Dense matrix owns one contiguous column-major buffer of a fixed
// element kind (float32, float64, complex64, complex128). Views
// (Window, Transpose, Strided, and vector Slice) are cheap metadata
// objects aliasing the same storage under a different index mapping.
// For reads, writes, and equality a view is indistinguishable from a
// real matrix; a write through one alias is immediately visible
// through every other.
//
// View composition collapses at construction time: a transpose of a
// transpose is the original matrix, a window of a window is a window
// of the grandparent, and a slice of a slice composes its offset and
// stride onto the grandparent. Element access therefore stays O(1)
// regardless of how views were stacked.
//
// # Basic Usage
//
//	m, _ := mat.FromRows([][]float64{
//	    {1, 2, 3, 4, 5},
//	    {6, 7, 8, 9, 10},
//	})
//	w, _ := mat.NewWindow(m, 0, 1, 2, 3) // 2x3 sub-block, zero copy
//	t := mat.T(w)                        // transposed alias
//	_ = mat.Set(t, 0, 0, 42.0)           // visible through m, w, t
//	r, _ := mat.Row(m, 1)                // vector slice of row 1
//	v, _ := mat.VAt[float64](r, 0)
//
// # BLAS boundary
//
// A numeric-kernel layer decides how to call into native routines from
// five O(1) queries: BasePointer, LeadingDimension, Orientation,
// ZeroOffset, and UnitStrides. Views that cannot be passed directly
// are copied with Materialize.
//
// # Concurrency
//
// The package is single-threaded by design: views are mutable aliases
// of shared storage and nothing locks. Callers coordinate concurrent
// mutation of overlapping views themselves.
package mat
