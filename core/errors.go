package core

import (
	"fmt"

	"github.com/katalvlaran/maxclique/mcerr"
)

// ErrNegativeVertexID indicates an edge referenced a negative vertex ID.
// errors.Is(err, mcerr.ErrInvalidInput) holds for this sentinel.
var ErrNegativeVertexID = fmt.Errorf("core: negative vertex id: %w", mcerr.ErrInvalidInput)

// ErrVertexOutOfRange indicates a query referenced a vertex not in [0,n).
// errors.Is(err, mcerr.ErrOutOfRange) holds for this sentinel.
var ErrVertexOutOfRange = fmt.Errorf("core: vertex id out of range: %w", mcerr.ErrOutOfRange)
