//go:build !debug

package bptree

// checkInvariant is a no-op in release builds; debug-mode invariant
// checking (see debug_on.go) costs nothing unless built with -tags debug.
func checkInvariant(cond bool, format string, args ...any) {}

// checkSorted is a no-op in release builds; the O(cap) scan debug_on.go
// performs never runs unless built with -tags debug.
func (l *leaf[K, V]) checkSorted() {}
