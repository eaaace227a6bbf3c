package scanpy

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/jlause/scanpy/anndata"
	"github.com/jlause/scanpy/frame"
)

// newTestDataset builds the 4 cells x 3 genes dataset shared by the
// projection tests. Every call returns a fresh dataset, so tests may mutate
// their copy freely.
//
//	X[i][j] = (i+1)*10 + j
//	counts  = X * 10
//	raw X   = X + 0.5
func newTestDataset(t *testing.T) *anndata.Dataset {
	t.Helper()

	obsNames := []string{"c0", "c1", "c2", "c3"}
	varNames := []string{"g0", "g1", "g2"}

	x := mat.NewDense(4, 3, []float64{
		10, 11, 12,
		20, 21, 22,
		30, 31, 32,
		40, 41, 42,
	})
	ds, err := anndata.New(x, obsNames, varNames)
	require.NoError(t, err)

	ds.Obs.Set(frame.Strings("louvain", []string{"0", "0", "1", "1"}))
	ds.Obs.Set(frame.Floats("n_genes", []float64{5, 6, 7, 8}))
	ds.Var.Set(frame.Strings("symbol", []string{"S0", "S1", "S2"}))

	ds.Layers = map[string]mat.Matrix{
		"counts": mat.NewDense(4, 3, []float64{
			100, 110, 120,
			200, 210, 220,
			300, 310, 320,
			400, 410, 420,
		}),
	}

	raw, err := anndata.New(mat.NewDense(4, 3, []float64{
		10.5, 11.5, 12.5,
		20.5, 21.5, 22.5,
		30.5, 31.5, 32.5,
		40.5, 41.5, 42.5,
	}), obsNames, varNames)
	require.NoError(t, err)
	raw.Var.Set(frame.Strings("symbol", []string{"S0", "S1", "S2"}))
	ds.Raw = raw

	tab := frame.New(obsNames)
	tab.Set(frame.Floats("pc1", []float64{1, 2, 3, 4}))
	tab.Set(frame.Strings("lbl", []string{"a", "b", "c", "d"}))

	ds.Obsm = map[string]anndata.AxisArray{
		"X_umap": anndata.DenseArray(mat.NewDense(4, 2, []float64{
			0.1, -0.1,
			0.2, -0.2,
			0.3, -0.3,
			0.4, -0.4,
		})),
		// (0,0)=1, (2,1)=2.5, (3,0)=3, (3,1)=4
		"X_sp":  anndata.SparseArray(sparse.NewCSR(4, 2, []int{0, 1, 1, 2, 4}, []int{0, 1, 0, 1}, []float64{1, 2.5, 3, 4})),
		"X_tab": anndata.FrameArray(tab),
	}

	ds.Varm = map[string]anndata.AxisArray{
		"PCs": anndata.DenseArray(mat.NewDense(3, 2, []float64{
			1, 4,
			2, 5,
			3, 6,
		})),
	}

	rg := anndata.NewRankedGroups()
	require.NoError(t, rg.SetGroup("0", anndata.RankedGroup{
		Scores:         []float64{3, 2, 1},
		Names:          []string{"g0", "g1", "g2"},
		LogFoldChanges: []float64{2.0, 0.5, -1.0},
		PVals:          []float64{0.005, 0.1, 0.3},
		PValsAdj:       []float64{0.01, 0.2, 0.5},
	}))
	require.NoError(t, rg.SetGroup("1", anndata.RankedGroup{
		Scores:         []float64{1.5, 0.5},
		Names:          []string{"g0", "zz"},
		LogFoldChanges: []float64{1.0, -1.0},
		PVals:          []float64{0.02, 0.6},
		PValsAdj:       []float64{0.04, 0.8},
	}))
	ds.Uns = map[string]any{"rank_genes_groups": rg}

	return ds
}

func fp(v float64) *float64 { return &v }

func floatColumn(t *testing.T, f *frame.Frame, name string) []float64 {
	t.Helper()
	col, ok := f.Column(name)
	require.True(t, ok, "column %q", name)
	vals, ok := col.AsFloats()
	require.True(t, ok, "column %q is %s, not float", name, col.Kind())
	return vals
}

func stringColumn(t *testing.T, f *frame.Frame, name string) []string {
	t.Helper()
	col, ok := f.Column(name)
	require.True(t, ok, "column %q", name)
	vals, ok := col.AsStrings()
	require.True(t, ok, "column %q is %s, not string", name, col.Kind())
	return vals
}
