// Package frame provides a small column-oriented table used as the result
// type of the scanpy projection helpers and as the representation of the
// per-observation and per-variable annotation tables.
//
// # Series
//
// A Series is one named, typed column. Values can be:
//
//   - Float: frame.Floats("score", []float64{...})
//   - Int: frame.Ints("count", []int64{...})
//   - String: frame.Strings("cluster", []string{...})
//   - Bool: frame.Bools("pass_qc", []bool{...})
//
// Positions may be marked as missing; missing positions are tracked in a
// Roaring Bitmap so sparse null sets stay cheap.
//
// # Frame
//
// A Frame is an ordered collection of equal-length Series, optionally keyed
// by a row-label index. Columns keep their insertion order, and assigning a
// Series under an existing name replaces that column in place.
//
// Example:
//
//	f := frame.New([]string{"cell0", "cell1"})
//	f.Set(frame.Strings("louvain", []string{"0", "1"}))
//	f.Set(frame.Floats("n_genes", []float64{512, 431}))
//
// Frames are value containers only: nothing in this package reads or writes
// anything outside the process.
package frame
