package scanpy

import (
	"github.com/jlause/scanpy/frame"
)

// matchKind tags which of the two namespaces a key was found in.
type matchKind uint8

const (
	matchNone matchKind = iota
	matchMeta
	matchIndex
	matchBoth
)

// namespaces describes one resolution pass: the annotation table, the axis
// label set (pre-translated through an alias map when gene symbols are in
// play), and the human-readable descriptions used in error messages.
type namespaces struct {
	meta     *frame.Frame
	metaDesc string

	// index maps every addressable label to its canonical lookup key. For
	// plain axis labels this is an identity mapping; for symbol-remapped
	// lookups it maps symbol -> canonical name.
	index     map[string]string
	indexDesc string
}

// resolution pairs one requested key with the lookup key chosen for it. The
// requested key names the output column; the lookup key is what the
// container is asked for.
type resolution struct {
	key    string
	lookup string
	kind   matchKind
}

// resolveResult carries the classified keys plus the two failure
// accumulators of one pass.
type resolveResult struct {
	resolved  []resolution
	notFound  []string
	ambiguous []string
}

// Err converts the accumulated failures into an error, or nil when every
// key resolved cleanly. Missing keys take precedence: when a request has
// both missing and ambiguous keys, only the missing ones are reported.
func (r resolveResult) Err(ns namespaces) error {
	if len(r.notFound) > 0 {
		return &KeyNotFoundError{Keys: r.notFound, MetaNamespace: ns.metaDesc, IndexNamespace: ns.indexDesc}
	}
	if len(r.ambiguous) > 0 {
		return &AmbiguousKeyError{Keys: r.ambiguous, MetaNamespace: ns.metaDesc, IndexNamespace: ns.indexDesc}
	}
	return nil
}

// resolveKeys classifies every requested key against the two namespaces and
// picks its lookup key: the annotation column name when the key names one
// (also when it is ambiguous), the canonical axis label otherwise. The whole
// list is classified before failures are inspected so a single error can
// name every offending key.
func resolveKeys(keys []string, ns namespaces) resolveResult {
	res := resolveResult{resolved: make([]resolution, 0, len(keys))}
	for _, key := range keys {
		inMeta := ns.meta != nil && ns.meta.HasColumn(key)
		canonical, inIndex := ns.index[key]

		switch {
		case inMeta && inIndex:
			res.ambiguous = append(res.ambiguous, key)
			res.resolved = append(res.resolved, resolution{key: key, lookup: key, kind: matchBoth})
		case inMeta:
			res.resolved = append(res.resolved, resolution{key: key, lookup: key, kind: matchMeta})
		case inIndex:
			res.resolved = append(res.resolved, resolution{key: key, lookup: canonical, kind: matchIndex})
		default:
			res.notFound = append(res.notFound, key)
		}
	}
	return res
}

// identityIndex maps every label to itself.
func identityIndex(labels []string) map[string]string {
	m := make(map[string]string, len(labels))
	for _, l := range labels {
		m[l] = l
	}
	return m
}

// aliasIndex maps the string values of an annotation column to the
// canonical labels at the same positions. Built once per call. When the
// column repeats a value, the later position wins; non-string and missing
// entries do not participate.
func aliasIndex(col frame.Series, labels []string) map[string]string {
	m := make(map[string]string, len(labels))
	for i, l := range labels {
		if alias, ok := col.Str(i); ok {
			m[alias] = l
		}
	}
	return m
}
