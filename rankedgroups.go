package scanpy

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/jlause/scanpy/anndata"
	"github.com/jlause/scanpy/frame"
)

// defaultRankKey is the Uns slot ranking tools store their results under.
const defaultRankKey = "rank_genes_groups"

// RankGenesGroupsFrame returns the stored differential expression results
// of one group as a frame with the five fixed columns scores, names,
// logfoldchanges, pvals and pvals_adj, in that order.
//
// The three thresholds are applied in fixed order (adjusted p-value below
// PValCutoff, log fold change above Log2FCMin, log fold change below
// Log2FCMax), each only when supplied. An unknown group label, or
// thresholds that filter out every row, yield an empty frame rather than an
// error. When o.GeneSymbols names a var column, it is left-joined onto the
// filtered rows keyed on the names column; names that are not variables get
// a missing value.
func RankGenesGroupsFrame(ds *anndata.Dataset, o RankGenesGroupsOptions) (*frame.Frame, error) {
	log := orNoop(o.Logger)

	key := o.Key
	if key == "" {
		key = defaultRankKey
	}
	stored, ok := ds.Uns[key]
	if !ok {
		return nil, fmt.Errorf("scanpy: no ranking results under uns key %q", key)
	}
	rg, ok := stored.(*anndata.RankedGroups)
	if !ok {
		return nil, fmt.Errorf("scanpy: uns key %q does not hold ranking results", key)
	}

	// A missing label behaves like a label with zero records.
	group, _ := rg.Group(o.Group)

	out := frame.New(nil)
	out.Set(frame.Floats("scores", group.Scores))
	out.Set(frame.Strings("names", group.Names))
	out.Set(frame.Floats("logfoldchanges", group.LogFoldChanges))
	out.Set(frame.Floats("pvals", group.PVals))
	out.Set(frame.Floats("pvals_adj", group.PValsAdj))

	n := group.Len()
	mask := roaring.New()
	mask.AddRange(0, uint64(n))

	if o.PValCutoff != nil {
		narrow(mask, group.PValsAdj, func(v float64) bool { return v < *o.PValCutoff })
	}
	if o.Log2FCMin != nil {
		narrow(mask, group.LogFoldChanges, func(v float64) bool { return v > *o.Log2FCMin })
	}
	if o.Log2FCMax != nil {
		narrow(mask, group.LogFoldChanges, func(v float64) bool { return v < *o.Log2FCMax })
	}

	if int(mask.GetCardinality()) != n {
		rows := make([]int, 0, mask.GetCardinality())
		it := mask.Iterator()
		for it.HasNext() {
			rows = append(rows, int(it.Next()))
		}
		out = out.Take(rows)
	}

	if o.GeneSymbols != "" {
		joined, err := joinVarColumn(ds, out, o.GeneSymbols)
		if err != nil {
			return nil, err
		}
		out.Set(joined)
	}

	log.LogRankedFilter(o.Group, n, out.NumRows())
	return out, nil
}

// narrow intersects the mask with the positions of vals that satisfy keep.
func narrow(mask *roaring.Bitmap, vals []float64, keep func(float64) bool) {
	pass := roaring.New()
	for i, v := range vals {
		if keep(v) {
			pass.Add(uint32(i))
		}
	}
	mask.And(pass)
}

// joinVarColumn gathers one var annotation column into alignment with the
// frame's names column: for each row, the value at the variable whose
// canonical name matches, or a missing value when no variable matches.
func joinVarColumn(ds *anndata.Dataset, f *frame.Frame, column string) (frame.Series, error) {
	var sym frame.Series
	ok := ds.Var != nil
	if ok {
		sym, ok = ds.Var.Column(column)
	}
	if !ok {
		return frame.Series{}, fmt.Errorf("scanpy: gene symbols column %q not found in var", column)
	}

	names, _ := f.Column("names")
	rows := make([]int, names.Len())
	for i := range rows {
		rows[i] = -1
		if nm, ok := names.Str(i); ok {
			if j, found := ds.VarPos(nm); found {
				rows[i] = j
			}
		}
	}
	return sym.Take(rows), nil
}
