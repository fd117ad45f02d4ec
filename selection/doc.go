// Package selection tracks cursors and selections over a buffer.
//
// A Set holds one or more anchor/head pairs. After every edit the endpoints
// are remapped through the edit, then the set is sorted and any selections
// that overlap or touch are merged, so multi-cursor edits always see an
// ordered, disjoint set.
package selection
