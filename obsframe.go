package scanpy

import (
	"fmt"

	"github.com/jlause/scanpy/anndata"
	"github.com/jlause/scanpy/frame"
)

// ObsFrame returns a frame with one row per observation, indexed by the
// observation names, holding the requested keys and obsm columns in request
// order.
//
// Keys are resolved against two namespaces: the obs annotation columns and
// the variable names (remapped through the gene symbols column when
// o.GeneSymbols is set). A key that names an obs column yields that column
// unchanged; a key that names a variable yields the matching column of the
// primary matrix, of the named layer, or of the raw snapshot when o.UseRaw
// is set. Annotation columns always come from the primary obs table, even
// under UseRaw, because the raw snapshot carries no obs annotations.
//
// Missing keys are reported together in a *KeyNotFoundError, keys present
// in both namespaces in an *AmbiguousKeyError; missing keys take
// precedence. UseRaw combined with a layer fails with ErrRawLayerConflict
// before any resolution.
func ObsFrame(ds *anndata.Dataset, o ObsFrameOptions) (*frame.Frame, error) {
	log := orNoop(o.Logger)

	if o.UseRaw && o.Layer != "" {
		return nil, ErrRawLayerConflict
	}

	src := ds
	if o.UseRaw {
		if ds.Raw == nil {
			return nil, fmt.Errorf("scanpy: dataset has no raw snapshot")
		}
		src = ds.Raw
	}

	ns, err := obsNamespaces(ds, src, o)
	if err != nil {
		return nil, err
	}

	res := resolveKeys(o.Keys, ns)
	log.LogResolve("obs_frame", len(o.Keys), len(res.ambiguous), len(res.notFound))
	if err := res.Err(ns); err != nil {
		return nil, err
	}

	fetch := func(r resolution) (frame.Series, error) {
		if o.UseRaw && r.kind != matchMeta {
			return ds.Raw.ObsVector(r.lookup, "")
		}
		return ds.ObsVector(r.lookup, o.Layer)
	}

	out, err := assembleFrame(ds.ObsNames, res.resolved, fetch, ds.Obsm, o.Obsm)
	if err != nil {
		return nil, err
	}
	log.LogProjection("obs_frame", out.NumRows(), out.NumCols())
	return out, nil
}

// obsNamespaces builds the two lookup namespaces of an ObsFrame call.
// Annotation columns come from the primary dataset; the variable namespace
// comes from src, which is the raw snapshot under UseRaw.
func obsNamespaces(ds, src *anndata.Dataset, o ObsFrameOptions) (namespaces, error) {
	dsName := "the dataset"
	if o.UseRaw {
		dsName = "the raw snapshot"
	}

	ns := namespaces{meta: ds.Obs, metaDesc: "obs columns"}
	if o.GeneSymbols == "" {
		ns.index = identityIndex(src.VarNames)
		ns.indexDesc = fmt.Sprintf("the var names of %s", dsName)
		return ns, nil
	}

	var sym frame.Series
	ok := src.Var != nil
	if ok {
		sym, ok = src.Var.Column(o.GeneSymbols)
	}
	if !ok {
		return namespaces{}, fmt.Errorf("scanpy: gene symbols column %q not found in the var table of %s", o.GeneSymbols, dsName)
	}
	ns.index = aliasIndex(sym, src.VarNames)
	ns.indexDesc = fmt.Sprintf("the gene symbols column var[%q] of %s", o.GeneSymbols, dsName)
	return ns, nil
}
