package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Reports
// =============================================================================

// printReport prints a comparison report as labeled sections.
func printReport(w io.Writer, rep *pipeline.Report) {
	fmt.Fprintln(w, StyleTitle.Render("Input"))
	printKeyValue(w, "source", rep.Source)
	printKeyValue(w, "points", strconv.Itoa(rep.Count))
	printKeyValue(w, "bounds", fmt.Sprintf("%v - %v", rep.Bounds.Min, rep.Bounds.Max))
	fmt.Fprintln(w)

	printRun(w, rep.DivideAndConquer)
	if rep.BruteForce != nil {
		printRun(w, *rep.BruteForce)
	}

	switch {
	case !rep.Verified():
		printInfo(w, "brute force skipped; result not verified")
	case rep.Agree:
		printSuccess(w, "solvers agree (speedup %s)", StyleNumber.Render(fmt.Sprintf("%.1fx", rep.Speedup())))
	default:
		printError(w, "solvers disagree")
	}
	if rep.ID != "" {
		printDetail(w, "report %s", rep.ID)
	}
}

func printRun(w io.Writer, run pipeline.Run) {
	fmt.Fprintln(w, StyleTitle.Render(run.Algorithm.String()))
	printKeyValue(w, "distance", formatFloat(run.Distance))
	printKeyValue(w, "pair", run.Pair.String())
	printKeyValue(w, "comparisons", strconv.Itoa(run.Comparisons))
	printKeyValue(w, "time", formatDuration(run.Elapsed))
	fmt.Fprintln(w)
}

// benchTable renders benchmark rows as a bordered table.
func benchTable(rows []pipeline.BenchRow) string {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		bfTime, bfCmp, agree := "-", "-", "-"
		if r.BruteForce != nil {
			bfTime = formatDuration(r.BruteForce.Elapsed)
			bfCmp = strconv.Itoa(r.BruteForce.Comparisons)
			agree = iconSuccess
			if !r.Agree {
				agree = iconError
			}
		}
		growth := "-"
		if r.Growth > 0 {
			growth = fmt.Sprintf("%.2fx", r.Growth)
		}
		data = append(data, []string{
			strconv.Itoa(r.Size),
			formatDuration(r.DivideAndConquer.Elapsed),
			strconv.Itoa(r.DivideAndConquer.Comparisons),
			growth,
			bfTime,
			bfCmp,
			agree,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("n", "D&C time", "D&C cmp", "growth", "brute time", "brute cmp", "agree").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 6 && data[row][col] == iconError {
				return styleCell.Foreground(colorRed)
			}
			return styleCell
		})
	return t.Render()
}

// =============================================================================
// Formatting
// =============================================================================

// formatDuration rounds d to a readable precision.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	}
	return d.Round(time.Microsecond).String()
}

// formatFloat prints f with up to 10 significant digits.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}
