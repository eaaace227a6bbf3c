package scanpy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlause/scanpy/frame"
)

func TestVarFrameAnnotationColumns(t *testing.T) {
	ds := newTestDataset(t)

	f, err := VarFrame(ds, VarFrameOptions{Keys: []string{"symbol"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"symbol"}, f.ColumnNames())
	assert.Equal(t, []string{"g0", "g1", "g2"}, f.Index())
	assert.Equal(t, []string{"S0", "S1", "S2"}, stringColumn(t, f, "symbol"))
}

func TestVarFrameMatrixRows(t *testing.T) {
	ds := newTestDataset(t)

	f, err := VarFrame(ds, VarFrameOptions{Keys: []string{"c2", "symbol", "c0"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"c2", "symbol", "c0"}, f.ColumnNames(), "request order is preserved")
	assert.Equal(t, []float64{30, 31, 32}, floatColumn(t, f, "c2"))
	assert.Equal(t, []float64{10, 11, 12}, floatColumn(t, f, "c0"))
}

func TestVarFrameLayer(t *testing.T) {
	ds := newTestDataset(t)

	f, err := VarFrame(ds, VarFrameOptions{Keys: []string{"c1"}, Layer: "counts"})
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 210, 220}, floatColumn(t, f, "c1"))

	_, err = VarFrame(ds, VarFrameOptions{Keys: []string{"c1"}, Layer: "nope"})
	assert.ErrorContains(t, err, `layer "nope" not found`)
}

func TestVarFrameKeyNotFound(t *testing.T) {
	ds := newTestDataset(t)

	_, err := VarFrame(ds, VarFrameOptions{Keys: []string{"symbol", "nope"}})

	var nf *KeyNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"nope"}, nf.Keys)
	assert.Equal(t, "var columns", nf.MetaNamespace)
	assert.Contains(t, nf.IndexNamespace, "obs names")
}

func TestVarFrameAmbiguousKey(t *testing.T) {
	ds := newTestDataset(t)
	// "c1" now names both a var column and an observation.
	ds.Var.Set(frame.Floats("c1", []float64{1, 2, 3}))

	_, err := VarFrame(ds, VarFrameOptions{Keys: []string{"c1"}})

	var amb *AmbiguousKeyError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, []string{"c1"}, amb.Keys)

	t.Run("NotFoundTakesPrecedence", func(t *testing.T) {
		_, err := VarFrame(ds, VarFrameOptions{Keys: []string{"c1", "nope"}})
		var nf *KeyNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, []string{"nope"}, nf.Keys)
	})
}

func TestVarFrameVarmColumns(t *testing.T) {
	ds := newTestDataset(t)

	f, err := VarFrame(ds, VarFrameOptions{
		Keys: []string{"symbol"},
		Varm: []MatrixColumn{{Key: "PCs", Col: 0}, {Key: "PCs", Col: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"symbol", "PCs-0", "PCs-1"}, f.ColumnNames())
	assert.Equal(t, []float64{1, 2, 3}, floatColumn(t, f, "PCs-0"))
	assert.Equal(t, []float64{4, 5, 6}, floatColumn(t, f, "PCs-1"))
}

func TestVarFrameIdempotent(t *testing.T) {
	ds := newTestDataset(t)
	o := VarFrameOptions{
		Keys: []string{"symbol", "c3"},
		Varm: []MatrixColumn{{Key: "PCs", Col: 1}},
	}

	first, err := VarFrame(ds, o)
	require.NoError(t, err)
	second, err := VarFrame(ds, o)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
