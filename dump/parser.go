// ABOUTME: Parser interface for snapshot dump formats
// ABOUTME: Defines the contract for pluggable dump parsers

package dump

import (
	"io"

	"github.com/prateek/marksweep/graph"
)

// Parser is the interface for snapshot dump parsers.
type Parser interface {
	// CanParse checks if this parser can handle the given dump format.
	// The reader is a short preview of the dump; implementations should
	// sniff the format without assuming the full stream is present.
	CanParse(r io.Reader) bool

	// Parse reads a complete dump and rebuilds the snapshot graph.
	// The reader is positioned at the start of the dump.
	Parse(r io.Reader) (graph.Graph, error)
}
