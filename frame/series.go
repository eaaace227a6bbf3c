package frame

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Kind identifies the concrete value type stored in a Series.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindFloat represents a float64 column.
	KindFloat
	// KindInt represents an int64 column.
	KindInt
	// KindString represents a string column.
	KindString
	// KindBool represents a boolean column.
	KindBool
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Series is one named, typed column.
//
// The representation keeps one backing slice per kind instead of []any so
// numeric columns stay contiguous and comparisons never go through
// reflection. Missing positions are tracked in a Roaring Bitmap; a nil
// bitmap means every position holds a value.
//
// A Series is immutable once constructed: constructors copy their input and
// every transforming method returns a fresh Series.
type Series struct {
	name   string
	kind   Kind
	floats []float64
	ints   []int64
	strs   []string
	bools  []bool
	nulls  *roaring.Bitmap
}

// Floats returns a float64 Series. The input slice is copied.
func Floats(name string, vals []float64) Series {
	return Series{name: name, kind: KindFloat, floats: append([]float64(nil), vals...)}
}

// Ints returns an int64 Series. The input slice is copied.
func Ints(name string, vals []int64) Series {
	return Series{name: name, kind: KindInt, ints: append([]int64(nil), vals...)}
}

// Strings returns a string Series. The input slice is copied.
func Strings(name string, vals []string) Series {
	return Series{name: name, kind: KindString, strs: append([]string(nil), vals...)}
}

// Bools returns a boolean Series. The input slice is copied.
func Bools(name string, vals []bool) Series {
	return Series{name: name, kind: KindBool, bools: append([]bool(nil), vals...)}
}

// Name returns the column name.
func (s Series) Name() string { return s.name }

// Kind returns the value kind of the column.
func (s Series) Kind() Kind { return s.kind }

// Len returns the number of positions in the column.
func (s Series) Len() int {
	switch s.kind {
	case KindFloat:
		return len(s.floats)
	case KindInt:
		return len(s.ints)
	case KindString:
		return len(s.strs)
	case KindBool:
		return len(s.bools)
	default:
		return 0
	}
}

// IsNull reports whether position i is missing.
func (s Series) IsNull(i int) bool {
	return s.nulls != nil && s.nulls.Contains(uint32(i))
}

// Float returns the float64 value at position i if Kind is KindFloat and the
// position is not null.
func (s Series) Float(i int) (float64, bool) {
	if s.kind != KindFloat || s.IsNull(i) {
		return 0, false
	}
	return s.floats[i], true
}

// Int returns the int64 value at position i if Kind is KindInt and the
// position is not null.
func (s Series) Int(i int) (int64, bool) {
	if s.kind != KindInt || s.IsNull(i) {
		return 0, false
	}
	return s.ints[i], true
}

// Str returns the string value at position i if Kind is KindString and the
// position is not null.
func (s Series) Str(i int) (string, bool) {
	if s.kind != KindString || s.IsNull(i) {
		return "", false
	}
	return s.strs[i], true
}

// Bool returns the boolean value at position i if Kind is KindBool and the
// position is not null.
func (s Series) Bool(i int) (bool, bool) {
	if s.kind != KindBool || s.IsNull(i) {
		return false, false
	}
	return s.bools[i], true
}

// Value returns the value at position i as an untyped any, or nil when the
// position is missing.
func (s Series) Value(i int) any {
	if s.IsNull(i) {
		return nil
	}
	switch s.kind {
	case KindFloat:
		return s.floats[i]
	case KindInt:
		return s.ints[i]
	case KindString:
		return s.strs[i]
	case KindBool:
		return s.bools[i]
	default:
		return nil
	}
}

// AsFloats returns a copy of the backing values if Kind is KindFloat.
func (s Series) AsFloats() ([]float64, bool) {
	if s.kind != KindFloat {
		return nil, false
	}
	return append([]float64(nil), s.floats...), true
}

// AsInts returns a copy of the backing values if Kind is KindInt.
func (s Series) AsInts() ([]int64, bool) {
	if s.kind != KindInt {
		return nil, false
	}
	return append([]int64(nil), s.ints...), true
}

// AsStrings returns a copy of the backing values if Kind is KindString.
func (s Series) AsStrings() ([]string, bool) {
	if s.kind != KindString {
		return nil, false
	}
	return append([]string(nil), s.strs...), true
}

// AsBools returns a copy of the backing values if Kind is KindBool.
func (s Series) AsBools() ([]bool, bool) {
	if s.kind != KindBool {
		return nil, false
	}
	return append([]bool(nil), s.bools...), true
}

// Rename returns a copy of the Series under a new name.
func (s Series) Rename(name string) Series {
	s.name = name
	return s
}

// Take returns a new Series holding the values at the given positions, in
// the given order. A position of -1 yields a missing value; this is how
// joins materialize unmatched rows. Null positions of the source stay null
// in the result.
func (s Series) Take(rows []int) Series {
	out := Series{name: s.name, kind: s.kind}
	var nulls *roaring.Bitmap
	markNull := func(i int) {
		if nulls == nil {
			nulls = roaring.New()
		}
		nulls.Add(uint32(i))
	}

	switch s.kind {
	case KindFloat:
		out.floats = make([]float64, len(rows))
		for i, r := range rows {
			if r < 0 {
				markNull(i)
				continue
			}
			out.floats[i] = s.floats[r]
		}
	case KindInt:
		out.ints = make([]int64, len(rows))
		for i, r := range rows {
			if r < 0 {
				markNull(i)
				continue
			}
			out.ints[i] = s.ints[r]
		}
	case KindString:
		out.strs = make([]string, len(rows))
		for i, r := range rows {
			if r < 0 {
				markNull(i)
				continue
			}
			out.strs[i] = s.strs[r]
		}
	case KindBool:
		out.bools = make([]bool, len(rows))
		for i, r := range rows {
			if r < 0 {
				markNull(i)
				continue
			}
			out.bools[i] = s.bools[r]
		}
	}

	if s.nulls != nil {
		for i, r := range rows {
			if r >= 0 && s.nulls.Contains(uint32(r)) {
				markNull(i)
			}
		}
	}
	out.nulls = nulls

	return out
}
