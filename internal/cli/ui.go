// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("35")  // Green - routes found
	colorYellow = lipgloss.Color("220") // Amber - no route
	colorRed    = lipgloss.Color("167") // Soft red - load failures
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for found routes.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for missing routes.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError       = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(writerOrDiscard(w), styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(writerOrDiscard(w), styleIconError.Render(iconError)+" "+styleError.Render(msg))
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(writerOrDiscard(w), styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(writerOrDiscard(w), "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(writerOrDiscard(w), "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, nodes, edges, crashed int) {
	line := "  " + StyleDim.Render(fmt.Sprintf("%d nodes", nodes)) +
		StyleDim.Render(" · ") + StyleDim.Render(fmt.Sprintf("%d edges", edges)) +
		StyleDim.Render(" · ") + StyleDim.Render(fmt.Sprintf("%d crashed", crashed))
	fmt.Fprintln(writerOrDiscard(w), line)
}
