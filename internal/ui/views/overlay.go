package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites an overlay block onto a base canvas at cell position
// (x, y), clipping at every canvas edge. Both inputs are ANSI-styled; widths
// are measured and cut with ANSI-aware primitives so escape sequences never
// split mid-run.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := strings.Split(overlay, "\n")

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}

		col := x
		if col < 0 {
			// Clip the part hanging off the left edge
			line = dropColumns(line, -col)
			col = 0
		}
		lineWidth := ansi.StringWidth(line)
		if lineWidth == 0 || col >= width {
			continue
		}
		if col+lineWidth > width {
			line = ansi.Truncate(line, width-col, "")
			lineWidth = ansi.StringWidth(line)
		}

		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, col, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < col {
			left += strings.Repeat(" ", col-leftWidth)
		}
		right := dropColumns(target, col+lineWidth)

		baseLines[row] = padRightANSI(left+line+right, width)
	}

	return strings.Join(baseLines, "\n")
}

// splitToLines splits into exactly height lines, truncating or padding
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// padRightANSI pads the line with spaces out to width display columns
func padRightANSI(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// dropColumns removes the first cols display columns from the line
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}
