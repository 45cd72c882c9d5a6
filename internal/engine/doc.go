// Package engine contains the protein-to-genome alignment core. It never
// imports app, writers, cli, or pipeline; keep it domain-only.
//
// One call to Engine.Align runs seed finding, exon candidate building, chain
// selection, short-gap merging, boundary extension and splice-edge refinement
// for a single protein against a single genome.Target. Both strands share the
// same code through genome.View, which presents the window in coding
// orientation.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
