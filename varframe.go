package scanpy

import (
	"github.com/jlause/scanpy/anndata"
	"github.com/jlause/scanpy/frame"
)

// VarFrame returns a frame with one row per variable, indexed by the
// variable names, holding the requested keys and varm columns in request
// order. It is the transposed counterpart of ObsFrame: keys are resolved
// against the var annotation columns and the observation names, and an
// observation-name key yields the matching row of the primary matrix or of
// the named layer. The variable axis has no raw snapshot and no symbol
// remapping.
//
// Missing and ambiguous keys are reported the same way as in ObsFrame.
func VarFrame(ds *anndata.Dataset, o VarFrameOptions) (*frame.Frame, error) {
	log := orNoop(o.Logger)

	ns := namespaces{
		meta:      ds.Var,
		metaDesc:  "var columns",
		index:     identityIndex(ds.ObsNames),
		indexDesc: "the obs names of the dataset",
	}

	res := resolveKeys(o.Keys, ns)
	log.LogResolve("var_frame", len(o.Keys), len(res.ambiguous), len(res.notFound))
	if err := res.Err(ns); err != nil {
		return nil, err
	}

	fetch := func(r resolution) (frame.Series, error) {
		return ds.VarVector(r.lookup, o.Layer)
	}

	out, err := assembleFrame(ds.VarNames, res.resolved, fetch, ds.Varm, o.Varm)
	if err != nil {
		return nil, err
	}
	log.LogProjection("var_frame", out.NumRows(), out.NumCols())
	return out, nil
}
