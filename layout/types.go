package layout

import "github.com/katalvlaran/dagview/graph"

// Layers is the final, ordered assignment produced by Run: Layers[0] is the
// top row of the drawing, and within a layer, index order is horizontal
// position after crossing minimisation.
type Layers [][]graph.VertexID

// Config bounds and tunes the pipeline. A Graph's own graph.Limits already
// bounds vertex/edge/fan-out counts; Config adds the layout-specific knobs.
type Config struct {
	// MaxLayers caps the number of layers Run will produce. Exceeding it
	// is a capacity overflow: Run returns the truncated layers it has
	// along with ErrTooManyLayers rather than failing outright.
	MaxLayers int
}

// DefaultConfig matches the reference implementation's MAX_LEVELS bound.
func DefaultConfig() Config {
	return Config{MaxLayers: 128}
}

// Option configures a Run call.
type Option func(*Config)

// WithMaxLayers overrides the default layer-count cap.
func WithMaxLayers(n int) Option {
	return func(c *Config) { c.MaxLayers = n }
}
