// Package buffer implements the line-indexed document store for termide.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open in document coordinates: [Start, End).
// Every mutation is described by an EditOp that can be inverted and
// re-applied, which is what the history package records.
package buffer
