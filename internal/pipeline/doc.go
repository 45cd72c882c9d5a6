// Package pipeline fans proteins out over an Aligner, one genome target at a
// time, and hands the alignments back to a visit callback in input order.
//
// The only contract to implement is Aligner (Align). This keeps the pipeline
// swappable and testable.
package pipeline
