package input_test

import (
	"testing"

	"github.com/katalvlaran/dagview/internal/input"
	"github.com/katalvlaran/dagview/layout"
	"github.com/stretchr/testify/require"
)

func TestDefaultGraphLaysOutWithoutOverflow(t *testing.T) {
	g := input.Default()

	_, layers, err := layout.Run(g)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(layers), 5, "default graph must produce at least 5 layers")
}
