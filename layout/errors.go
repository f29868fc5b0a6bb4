package layout

import "errors"

// ErrTooManyLayers indicates the graph required more layers than the
// configured limit; layout still completes using a truncated set of
// layers, same as every other capacity bound in this system.
var ErrTooManyLayers = errors.New("layout: too many layers")
