// Package scanpy provides flat tabular views over an annotated data matrix.
//
// Three helpers extract plot-ready frames from an anndata.Dataset:
//
//   - ObsFrame: one row per observation; columns come from obs annotation
//     columns, matrix columns addressed by variable name (optionally through
//     a gene symbol column, a named layer, or the raw snapshot), and columns
//     of obsm arrays.
//   - VarFrame: one row per variable; columns come from var annotation
//     columns, matrix rows addressed by observation name, and columns of
//     varm arrays.
//   - RankGenesGroupsFrame: the stored differential expression results of
//     one group as a frame, with optional threshold filtering and a gene
//     symbol join.
//
// # Key Resolution
//
// Every requested key is resolved against exactly two namespaces: an
// annotation table and an axis label set (possibly remapped through a gene
// symbol column). Keys found in neither namespace and keys found in both
// are collected across the whole request and reported together, as
// *KeyNotFoundError and *AmbiguousKeyError, so one error names every
// offending key. When both conditions occur in one request, only the
// missing keys are reported.
//
// Example:
//
//	f, err := scanpy.ObsFrame(ds, scanpy.ObsFrameOptions{
//	    Keys: []string{"CD8B", "n_genes"},
//	    Obsm: []scanpy.MatrixColumn{{Key: "X_umap", Col: 0}, {Key: "X_umap", Col: 1}},
//	})
//
// All helpers are pure reads: the dataset is never mutated and every output
// column is freshly allocated. Calls are synchronous and reentrant.
package scanpy
