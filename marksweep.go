// ABOUTME: Main marksweep package providing version information and package documentation
// ABOUTME: This is the root package for the mark-and-sweep heap library

// Package marksweep provides a single-threaded, stop-the-world, precise
// mark-and-sweep garbage collector built on top of a reference-counted
// handle abstraction. It manages arbitrarily cyclic object graphs: acyclic
// garbage is tracked cheaply through root-handle counts, while cycles are
// reclaimed by tracing from the live root set.
//
// The collector core lives in the gc subpackage. The graph subpackage
// offers snapshot analyses (paths to roots, dominators, retained sizes)
// over a live heap, and the dump subpackage persists snapshots to disk.
package marksweep

// Version is the semantic version of the marksweep library
const Version = "0.1.0-dev"
