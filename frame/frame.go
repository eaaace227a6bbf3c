package frame

import "fmt"

// Frame is an ordered collection of equal-length Series, optionally keyed by
// a row-label index.
//
// Column order is insertion order. Assigning a Series under a name that
// already exists replaces that column without changing its position.
type Frame struct {
	index  []string
	cols   []Series
	byName map[string]int
}

// New creates an empty Frame. A non-nil index fixes the row count and labels
// every row; the index slice is copied. A nil index leaves rows unlabeled,
// and the first column assigned fixes the row count instead.
func New(index []string) *Frame {
	f := &Frame{byName: make(map[string]int)}
	if index != nil {
		f.index = make([]string, len(index))
		copy(f.index, index)
	}
	return f
}

// Set assigns a column. An existing column with the same name is replaced in
// place; otherwise the column is appended.
//
// Set panics when the column length disagrees with the frame's row count.
// Length mismatches are construction bugs, not runtime conditions.
func (f *Frame) Set(s Series) {
	if n := f.NumRows(); (f.index != nil || len(f.cols) > 0) && s.Len() != n {
		panic(fmt.Sprintf("frame: column %q has %d rows, frame has %d", s.Name(), s.Len(), n))
	}
	if i, ok := f.byName[s.Name()]; ok {
		f.cols[i] = s
		return
	}
	f.byName[s.Name()] = len(f.cols)
	f.cols = append(f.cols, s)
}

// Column returns the Series stored under name.
func (f *Frame) Column(name string) (Series, bool) {
	i, ok := f.byName[name]
	if !ok {
		return Series{}, false
	}
	return f.cols[i], true
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// ColumnNames returns the column names in insertion order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if f.index != nil {
		return len(f.index)
	}
	if len(f.cols) > 0 {
		return f.cols[0].Len()
	}
	return 0
}

// Index returns a copy of the row labels, or nil for an unlabeled frame.
func (f *Frame) Index() []string {
	if f.index == nil {
		return nil
	}
	out := make([]string, len(f.index))
	copy(out, f.index)
	return out
}

// Take returns a new Frame holding the rows at the given positions, in the
// given order, across every column and the index. Positions must be in
// range; unlike Series.Take no -1 placeholder is accepted because index
// labels have no missing representation.
func (f *Frame) Take(rows []int) *Frame {
	var index []string
	if f.index != nil {
		index = make([]string, len(rows))
		for i, r := range rows {
			index[i] = f.index[r]
		}
	}
	out := New(index)
	for _, c := range f.cols {
		out.Set(c.Take(rows))
	}
	return out
}
