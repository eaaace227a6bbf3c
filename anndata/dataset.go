package anndata

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jlause/scanpy/frame"
)

// Dataset is an annotated observations x variables matrix.
//
// ObsNames and VarNames are the ordered, unique labels of the two axes. Obs
// and Var are the per-axis annotation tables, always indexed by those
// labels. Layers maps names to alternate value planes with the same shape
// as X. Raw, when non-nil, is a pre-transformation snapshot of the
// container; its variable axis may differ from the primary one and it
// usually carries no Obs table of its own.
//
// Construct Datasets with New, then fill the annotation fields directly.
type Dataset struct {
	ObsNames []string
	VarNames []string

	Obs *frame.Frame
	Var *frame.Frame

	X      mat.Matrix
	Layers map[string]mat.Matrix

	Raw *Dataset

	Obsm map[string]AxisArray
	Varm map[string]AxisArray

	Uns map[string]any

	obsPos map[string]int
	varPos map[string]int
}

// New creates a Dataset around x, validating that the matrix shape matches
// the label counts and that labels on each axis are unique. The label
// slices are retained, not copied.
func New(x mat.Matrix, obsNames, varNames []string) (*Dataset, error) {
	if x == nil {
		return nil, fmt.Errorf("anndata: nil matrix")
	}
	r, c := x.Dims()
	if r != len(obsNames) || c != len(varNames) {
		return nil, fmt.Errorf("anndata: matrix is %dx%d but got %d obs names and %d var names",
			r, c, len(obsNames), len(varNames))
	}

	obsPos, err := labelPositions(obsNames)
	if err != nil {
		return nil, fmt.Errorf("anndata: obs names: %w", err)
	}
	varPos, err := labelPositions(varNames)
	if err != nil {
		return nil, fmt.Errorf("anndata: var names: %w", err)
	}

	return &Dataset{
		ObsNames: obsNames,
		VarNames: varNames,
		Obs:      frame.New(obsNames),
		Var:      frame.New(varNames),
		X:        x,
		obsPos:   obsPos,
		varPos:   varPos,
	}, nil
}

func labelPositions(names []string) (map[string]int, error) {
	pos := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := pos[n]; dup {
			return nil, fmt.Errorf("duplicate label %q", n)
		}
		pos[n] = i
	}
	return pos, nil
}

// NumObs returns the number of observations.
func (d *Dataset) NumObs() int { return len(d.ObsNames) }

// NumVars returns the number of variables.
func (d *Dataset) NumVars() int { return len(d.VarNames) }

// ObsPos returns the position of an observation label.
func (d *Dataset) ObsPos(name string) (int, bool) {
	d.ensurePositions()
	i, ok := d.obsPos[name]
	return i, ok
}

// VarPos returns the position of a variable label.
func (d *Dataset) VarPos(name string) (int, bool) {
	d.ensurePositions()
	i, ok := d.varPos[name]
	return i, ok
}

// ensurePositions builds the label position maps for Datasets assembled
// without New.
func (d *Dataset) ensurePositions() {
	if d.obsPos == nil {
		d.obsPos, _ = labelPositions(d.ObsNames)
	}
	if d.varPos == nil {
		d.varPos, _ = labelPositions(d.VarNames)
	}
}

// matrix returns the value plane for the given layer name, or X when the
// name is empty.
func (d *Dataset) matrix(layer string) (mat.Matrix, error) {
	if layer == "" {
		return d.X, nil
	}
	m, ok := d.Layers[layer]
	if !ok {
		return nil, fmt.Errorf("anndata: layer %q not found", layer)
	}
	return m, nil
}

// ObsVector returns a vector with one value per observation for the given
// key: the Obs column of that name if one exists, otherwise the column of X
// (or of the named layer) at the variable labeled key. The layer name is
// only consulted for matrix lookups; annotation columns always come from
// Obs as stored.
func (d *Dataset) ObsVector(key, layer string) (frame.Series, error) {
	if d.Obs != nil {
		if col, ok := d.Obs.Column(key); ok {
			return col, nil
		}
	}
	j, ok := d.VarPos(key)
	if !ok {
		return frame.Series{}, fmt.Errorf("anndata: %q is neither an obs column nor a var name", key)
	}
	m, err := d.matrix(layer)
	if err != nil {
		return frame.Series{}, err
	}
	return frame.Floats(key, mat.Col(nil, j, m)), nil
}

// VarVector returns a vector with one value per variable for the given key:
// the Var column of that name if one exists, otherwise the row of X (or of
// the named layer) at the observation labeled key.
func (d *Dataset) VarVector(key, layer string) (frame.Series, error) {
	if d.Var != nil {
		if col, ok := d.Var.Column(key); ok {
			return col, nil
		}
	}
	i, ok := d.ObsPos(key)
	if !ok {
		return frame.Series{}, fmt.Errorf("anndata: %q is neither a var column nor an obs name", key)
	}
	m, err := d.matrix(layer)
	if err != nil {
		return frame.Series{}, err
	}
	return frame.Floats(key, mat.Row(nil, i, m)), nil
}
