package scanpy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRawLayerConflict is returned when a projection requests raw values
	// and a named layer at the same time. The raw snapshot has no layers, so
	// the combination is rejected before any key resolution happens.
	ErrRawLayerConflict = errors.New("cannot use raw values and a layer at the same time")
)

// KeyNotFoundError reports requested keys that exist in neither of the two
// namespaces searched. Keys holds every missing key of the request, not
// just the first one.
type KeyNotFoundError struct {
	Keys           []string
	MetaNamespace  string
	IndexNamespace string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("could not find keys [%s] in %s or in %s",
		strings.Join(e.Keys, ", "), e.MetaNamespace, e.IndexNamespace)
}

// AmbiguousKeyError reports requested keys that exist in both namespaces at
// once. Keys holds every ambiguous key of the request. It is only returned
// when the request has no missing keys; missing keys take precedence.
//
// Resolution prefers the annotation column when a key is ambiguous, but the
// overlap is still rejected rather than silently read from one side. This
// is expected to stay a hard error.
type AmbiguousKeyError struct {
	Keys           []string
	MetaNamespace  string
	IndexNamespace string
}

func (e *AmbiguousKeyError) Error() string {
	return fmt.Sprintf("found keys [%s] in both %s and %s; "+
		"rename one side to disambiguate (resolution would prefer the annotation column)",
		strings.Join(e.Keys, ", "), e.MetaNamespace, e.IndexNamespace)
}
