package edgefile_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dagview/internal/edgefile"
	"github.com/stretchr/testify/require"
)

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	in := "# header\n\na b\n   \n  # indented comment\nc d\n"
	pairs := edgefile.Read(strings.NewReader(in))

	require.Equal(t, []edgefile.Pair{{Src: "a", Dst: "b"}, {Src: "c", Dst: "d"}}, pairs)
}

func TestReadIgnoresMalformedLines(t *testing.T) {
	in := "a b c\na\nvalid next\n"
	pairs := edgefile.Read(strings.NewReader(in))

	require.Equal(t, []edgefile.Pair{{Src: "valid", Dst: "next"}}, pairs)
}
