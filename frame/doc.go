// Package frame checks anchor constraints against already computed frames.
//
// A [Layout] holds one [Rect] per element, as produced by whatever engine
// actually laid the elements out. It evaluates anchors to coordinates and
// reports whether a constraint holds. It does not move or resize anything.
package frame
