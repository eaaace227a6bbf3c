package anndata

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/jlause/scanpy/frame"
)

// ArrayKind identifies the concrete shape stored in an AxisArray.
type ArrayKind uint8

const (
	// ArrayInvalid represents an invalid kind.
	ArrayInvalid ArrayKind = iota
	// ArrayDense represents a dense float64 matrix.
	ArrayDense
	// ArraySparse represents a CSR sparse matrix.
	ArraySparse
	// ArrayFrame represents a tabular array with typed columns.
	ArrayFrame
)

// String returns a human-readable name for the kind.
func (k ArrayKind) String() string {
	switch k {
	case ArrayDense:
		return "dense"
	case ArraySparse:
		return "sparse"
	case ArrayFrame:
		return "frame"
	default:
		return "invalid"
	}
}

// AxisArray is a named multi-column array attached to one axis of a
// Dataset, such as a dimensionality reduction in Obsm. It is a closed
// variant over the three supported shapes; consumers dispatch on Kind
// rather than on the concrete Go type.
type AxisArray struct {
	kind   ArrayKind
	dense  *mat.Dense
	sparse *sparse.CSR
	tab    *frame.Frame
}

// DenseArray wraps a dense matrix as an AxisArray.
func DenseArray(m *mat.Dense) AxisArray {
	return AxisArray{kind: ArrayDense, dense: m}
}

// SparseArray wraps a CSR sparse matrix as an AxisArray.
func SparseArray(m *sparse.CSR) AxisArray {
	return AxisArray{kind: ArraySparse, sparse: m}
}

// FrameArray wraps a tabular array as an AxisArray. Columns keep whatever
// kind the frame assigned them.
func FrameArray(f *frame.Frame) AxisArray {
	return AxisArray{kind: ArrayFrame, tab: f}
}

// Kind returns the shape variant of the array.
func (a AxisArray) Kind() ArrayKind { return a.kind }

// Dims returns the row and column counts of the array.
func (a AxisArray) Dims() (r, c int) {
	switch a.kind {
	case ArrayDense:
		return a.dense.Dims()
	case ArraySparse:
		return a.sparse.Dims()
	case ArrayFrame:
		return a.tab.NumRows(), a.tab.NumCols()
	default:
		return 0, 0
	}
}

// Dense returns the dense matrix of an ArrayDense array.
func (a AxisArray) Dense() *mat.Dense { return a.dense }

// Sparse returns the CSR matrix of an ArraySparse array.
func (a AxisArray) Sparse() *sparse.CSR { return a.sparse }

// Frame returns the tabular array of an ArrayFrame array.
func (a AxisArray) Frame() *frame.Frame { return a.tab }
