package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Plain turns off pterm colours and styling, for redirected output and tests.
func Plain() {
	pterm.DisableStyling()
}

// Styled undoes Plain. pterm styling is process-wide, so every run has to
// pick one or the other.
func Styled() {
	pterm.EnableStyling()
}

// Table writes rows under header as a boxed table.
func Table(w io.Writer, header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	s, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = fmt.Fprintln(w, s)

	return err
}
