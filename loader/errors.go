package loader

import (
	"fmt"

	"github.com/katalvlaran/maxclique/mcerr"
)

// ErrNoEdges is returned when a source contains no parseable edge, mirroring
// original_source/src/graph.cpp::load_from_snap's "No valid edges found".
var ErrNoEdges = fmt.Errorf("loader: no edges found in input: %w", mcerr.ErrInvalidInput)

// ErrMalformedLine is returned for a non-comment, non-blank line that
// doesn't parse as either "u v" or "e u v".
var ErrMalformedLine = fmt.Errorf("loader: malformed line: %w", mcerr.ErrInvalidInput)
