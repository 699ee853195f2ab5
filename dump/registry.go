// ABOUTME: Registry for snapshot dump parsers
// ABOUTME: Selects the parser whose format matches a dump stream

package dump

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/prateek/marksweep/graph"
)

// ErrUnknownFormat is returned when no registered parser recognizes the
// dump format.
var ErrUnknownFormat = errors.New("no parser found for dump format")

// parserRegistry holds registered parsers
type parserRegistry struct {
	mu      sync.RWMutex
	parsers []Parser
}

// Global registry instance
var registry = &parserRegistry{}

// Register adds a parser to the registry.
func Register(p Parser) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.parsers = append(registry.parsers, p)
}

// Open reads a snapshot dump and rebuilds its graph, selecting the
// first registered parser that recognizes the format. The stream is
// buffered so that format detection does not consume the dump.
func Open(r io.Reader) (graph.Graph, error) {
	preview := make([]byte, 4096)
	n, err := io.ReadFull(r, preview)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	preview = preview[:n]

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for _, parser := range registry.parsers {
		if !parser.CanParse(bytes.NewReader(preview)) {
			continue
		}
		// Re-assemble the full stream for the selected parser.
		return parser.Parse(io.MultiReader(bytes.NewReader(preview), r))
	}

	return nil, ErrUnknownFormat
}
