package scanpy

// MatrixColumn addresses one column of a named multi-column axis array,
// such as ("X_umap", 0) for the first component of a UMAP embedding.
type MatrixColumn struct {
	// Key is the name of the array in Obsm or Varm.
	Key string
	// Col is the zero-based column offset within the array.
	Col int
}

// ObsFrameOptions selects the columns of an ObsFrame projection.
//
// Optional fields use zero values as "unset": an empty Layer means the
// primary matrix, an empty GeneSymbols means variables are addressed by
// their canonical names, and a nil Logger disables logging.
type ObsFrameOptions struct {
	// Keys are resolved against obs annotation columns and variable names
	// (through the gene symbols column when one is named).
	Keys []string

	// Obsm adds one derived column per reference, named "{Key}-{Col}".
	Obsm []MatrixColumn

	// Layer names the value plane to read matrix columns from.
	Layer string

	// GeneSymbols names a var annotation column whose values replace the
	// canonical variable names as the lookup namespace for Keys.
	GeneSymbols string

	// UseRaw reads matrix columns from the raw snapshot instead of the
	// primary matrix. Annotation columns still come from the primary obs
	// table. Mutually exclusive with Layer.
	UseRaw bool

	// Logger receives debug traces of resolution and assembly.
	Logger *Logger
}

// VarFrameOptions selects the columns of a VarFrame projection. The
// variable axis has no raw snapshot and no symbol remapping, so only the
// layer is configurable.
type VarFrameOptions struct {
	// Keys are resolved against var annotation columns and observation
	// names.
	Keys []string

	// Varm adds one derived column per reference, named "{Key}-{Col}".
	Varm []MatrixColumn

	// Layer names the value plane to read matrix rows from.
	Layer string

	// Logger receives debug traces of resolution and assembly.
	Logger *Logger
}

// RankGenesGroupsOptions selects and filters one group of stored
// differential expression results.
//
// The three thresholds are pointers so that an absent threshold is a no-op
// rather than a comparison against zero.
type RankGenesGroupsOptions struct {
	// Group is the group label to extract. An unknown label yields an empty
	// frame, not an error.
	Group string

	// Key is the Uns slot the results were stored under. Empty means
	// "rank_genes_groups".
	Key string

	// PValCutoff keeps rows whose adjusted p-value is strictly below it.
	PValCutoff *float64

	// Log2FCMin keeps rows whose log fold change is strictly above it.
	Log2FCMin *float64

	// Log2FCMax keeps rows whose log fold change is strictly below it.
	Log2FCMax *float64

	// GeneSymbols names a var annotation column to left-join onto the
	// result, keyed on the names column. Rows whose name is not a variable
	// get a missing value.
	GeneSymbols string

	// Logger receives debug traces of filtering.
	Logger *Logger
}
