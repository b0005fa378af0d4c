// Package describe provides the optional caption-generation capability for
// the player cell. The simulation only depends on the Describer interface;
// the Gemini-backed client lives here so the core stays free of transport
// concerns.
package describe

import "context"

// Request carries the cell attributes a caption should be based on.
type Request struct {
	Color string  // Display name of the cell's color
	Mass  float64 // Current cell mass
}

// Describer produces a short flavor caption for a cell.
// Implementations must respect ctx cancellation; the simulation calls this
// off the game loop with a deadline attached.
type Describer interface {
	Describe(ctx context.Context, req Request) (string, error)
}
