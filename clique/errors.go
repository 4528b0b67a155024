package clique

import (
	"fmt"

	"github.com/katalvlaran/maxclique/mcerr"
)

// ErrUnknownVariant is returned by FindMaximumClique for an unrecognized
// Variant value.
var ErrUnknownVariant = fmt.Errorf("clique: unknown variant: %w", mcerr.ErrInvalidInput)

// ErrInvalidSeed is returned when a caller-supplied seed clique (via
// Options.Seed) is not a valid clique in the target graph.
var ErrInvalidSeed = fmt.Errorf("clique: seed is not a valid clique: %w", mcerr.ErrInvalidInput)
