package scenario

import (
	"bytes"
	_ "embed"
)

//go:embed demo.yaml
var demoYAML []byte

// Demo returns the built-in walkthrough: a tesseract searched before and after
// random damage, and the island case on the 3-cube.
func Demo() (*Scenario, error) {
	return Parse(bytes.NewReader(demoYAML))
}
