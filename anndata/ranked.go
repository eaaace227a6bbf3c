package anndata

import "fmt"

// RankedGroup holds the per-gene result arrays of one differential
// expression group: five parallel, same-length slices.
type RankedGroup struct {
	Scores         []float64
	Names          []string
	LogFoldChanges []float64
	PVals          []float64
	PValsAdj       []float64
}

// Len returns the number of records in the group.
func (g RankedGroup) Len() int { return len(g.Names) }

// RankedGroups is a keyed store of differential expression results, one
// RankedGroup per group label. It is the record type kept in Dataset.Uns by
// ranking tools.
type RankedGroups struct {
	groups map[string]RankedGroup
}

// NewRankedGroups creates an empty result store.
func NewRankedGroups() *RankedGroups {
	return &RankedGroups{groups: make(map[string]RankedGroup)}
}

// SetGroup stores the result arrays for a group label. The five slices must
// have equal lengths.
func (r *RankedGroups) SetGroup(label string, g RankedGroup) error {
	n := len(g.Names)
	if len(g.Scores) != n || len(g.LogFoldChanges) != n || len(g.PVals) != n || len(g.PValsAdj) != n {
		return fmt.Errorf("anndata: ranked group %q has unequal array lengths", label)
	}
	r.groups[label] = g
	return nil
}

// Group returns the result arrays stored under a group label.
func (r *RankedGroups) Group(label string) (RankedGroup, bool) {
	g, ok := r.groups[label]
	return g, ok
}
