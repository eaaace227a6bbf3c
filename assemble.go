package scanpy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jlause/scanpy/anndata"
	"github.com/jlause/scanpy/frame"
)

// fetchFunc returns the aligned vector for one resolved key.
type fetchFunc func(r resolution) (frame.Series, error)

// assembleFrame builds the output frame: one column per resolved key, in
// request order, named by the requested key; then one derived column per
// axis-array reference, named "{key}-{col}". Collisions between the two
// groups are not checked; a derived name that matches a requested key
// replaces that column, as frame assignment does.
func assembleFrame(index []string, resolved []resolution, fetch fetchFunc, arrays map[string]anndata.AxisArray, refs []MatrixColumn) (*frame.Frame, error) {
	out := frame.New(index)
	for _, r := range resolved {
		s, err := fetch(r)
		if err != nil {
			return nil, err
		}
		out.Set(s.Rename(r.key))
	}
	for _, ref := range refs {
		s, err := axisArrayColumn(arrays, ref)
		if err != nil {
			return nil, err
		}
		out.Set(s)
	}
	return out, nil
}

// axisArrayColumn extracts one column of a named axis array as a Series
// named "{key}-{col}". The dense and sparse variants densify the selected
// column into a fresh float vector; the tabular variant selects the column
// positionally and keeps its kind.
func axisArrayColumn(arrays map[string]anndata.AxisArray, ref MatrixColumn) (frame.Series, error) {
	a, ok := arrays[ref.Key]
	if !ok {
		return frame.Series{}, fmt.Errorf("scanpy: axis array %q not found", ref.Key)
	}
	_, c := a.Dims()
	if ref.Col < 0 || ref.Col >= c {
		return frame.Series{}, fmt.Errorf("scanpy: axis array %q has %d columns, requested column %d", ref.Key, c, ref.Col)
	}

	name := fmt.Sprintf("%s-%d", ref.Key, ref.Col)
	switch a.Kind() {
	case anndata.ArrayDense:
		return frame.Floats(name, mat.Col(nil, ref.Col, a.Dense())), nil
	case anndata.ArraySparse:
		sp := a.Sparse()
		r, _ := sp.Dims()
		vals := make([]float64, r)
		for i := range vals {
			vals[i] = sp.At(i, ref.Col)
		}
		return frame.Floats(name, vals), nil
	case anndata.ArrayFrame:
		names := a.Frame().ColumnNames()
		col, _ := a.Frame().Column(names[ref.Col])
		return col.Rename(name), nil
	default:
		return frame.Series{}, fmt.Errorf("scanpy: axis array %q has no shape", ref.Key)
	}
}
