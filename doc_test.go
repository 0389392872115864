package hypercube_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocCodeBlocksCanonical checks that every indented block in the package
// docs starts at the tab stop, the layout gofmt keeps unchanged.
func TestDocCodeBlocksCanonical(t *testing.T) {
	for _, path := range []string{"doc.go", "core/doc.go"} {
		src, err := os.ReadFile(path)
		require.NoError(t, err)

		var block []string
		check := func(end int) {
			if len(block) == 0 {
				return
			}
			atTab := false
			for _, l := range block {
				if !strings.HasPrefix(l, " ") {
					atTab = true

					break
				}
			}
			assert.True(t, atTab, "%s: block ending at line %d is indented past the tab", path, end)
			block = block[:0]
		}
		for i, line := range strings.Split(string(src), "\n") {
			switch {
			case strings.HasPrefix(line, "//\t"):
				block = append(block, strings.TrimPrefix(line, "//\t"))
			case line == "//":
			default:
				check(i)
			}
		}
		check(-1)
	}
}
