// Package anndata provides an in-memory annotated data matrix: a primary
// observations x variables matrix together with per-observation and
// per-variable annotation tables, named alternate value layers, named
// multi-column axis arrays (embeddings), and an unstructured slot map.
//
// The layout follows the AnnData convention: X is the primary matrix, Obs
// and Var annotate its two axes, Obsm and Varm hold per-axis multi-column
// arrays such as dimensionality reductions, Layers holds alternate value
// planes of X, and Raw optionally points at a pre-transformation snapshot of
// the whole container.
//
// Matrices are gonum mat.Matrix values; both *mat.Dense and the CSR type
// from github.com/james-bowman/sparse are accepted, so dense and sparse
// datasets share one access path.
//
// Example:
//
//	x := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	ds, err := anndata.New(x, []string{"cell0", "cell1"}, []string{"g0", "g1", "g2"})
//	if err != nil {
//	    ...
//	}
//	ds.Obs.Set(frame.Strings("louvain", []string{"0", "1"}))
//
// Datasets are read-only from the perspective of the projection helpers in
// the parent package: no accessor mutates annotation tables or matrix
// values, and every returned vector is freshly allocated.
package anndata
