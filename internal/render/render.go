// Package render draws a column set and its rows as a text table. Column
// widths come from the layout pass; cell content comes from each column's
// getter → formatter pipeline, or its RenderCell hook when one is set.
package render

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/gridx/internal/layout"
	"github.com/oakwood-commons/gridx/pkg/column"
)

const sepWidth = 2

// Options configures table rendering.
type Options struct {
	// NoColor disables color output.
	NoColor bool

	// TotalWidth is the total available width. 0 means the terminal width.
	TotalWidth int

	// RowNumberStyle controls the row number column:
	//   "numbered" - 1, 2, 3 (default)
	//   "index"    - [0], [1], [2]
	//   "none"     - no row number column
	RowNumberStyle string

	// Hidden lists fields to omit from output. A field whose column is not
	// hideable stays visible regardless.
	Hidden []string
}

// Table renders rows under the given column set.
func Table[R any](set *column.Set[R], rows []R, opts Options) string {
	visible := visibleColumns(set, opts.Hidden)
	if len(visible) == 0 {
		return ""
	}

	totalWidth := opts.TotalWidth
	if totalWidth <= 0 {
		totalWidth = terminalWidth()
	}

	showRowNum := opts.RowNumberStyle != "none"
	rowNumWidth := 0
	if showRowNum {
		rowNumWidth = len(fmt.Sprintf("%d", max(len(rows), 1))) + 2
	}

	available := totalWidth - rowNumWidth
	if showRowNum {
		available -= sepWidth
	}

	resolved := layout.HydrateColumns(keepColumns(set, visible), available)
	meta := layout.ComputeMeta(resolved)

	var b strings.Builder
	b.WriteString(renderHeader(resolved, rowNumWidth, showRowNum, opts.NoColor) + "\n")

	sepTotal := meta.TotalWidth + (len(resolved)-1)*sepWidth
	if showRowNum {
		sepTotal += rowNumWidth + sepWidth
	}
	separator := strings.Repeat("─", sepTotal)
	if !opts.NoColor {
		separator = separatorStyle.Render(separator)
	}
	b.WriteString(separator + "\n")

	for i, row := range rows {
		b.WriteString(renderRow(set, resolved, row, i, rowNumWidth, opts) + "\n")
	}

	return b.String()
}

// visibleColumns returns the ordered field keys left after applying the
// hidden list. Hiding is refused for columns that are not hideable.
func visibleColumns[R any](set *column.Set[R], hidden []string) []string {
	hiddenSet := make(map[string]bool, len(hidden))
	for _, h := range hidden {
		if d, ok := set.Lookup(h); ok && d.IsHideable() {
			hiddenSet[h] = true
		}
	}

	fields := make([]string, 0, set.Len())
	for _, f := range set.Fields() {
		if !hiddenSet[f] {
			fields = append(fields, f)
		}
	}
	return fields
}

// keepColumns narrows the set's definitions to the given fields before the
// layout pass, so hidden columns consume no width budget.
func keepColumns[R any](set *column.Set[R], fields []string) []column.Definition[R] {
	out := make([]column.Definition[R], 0, len(fields))
	for _, f := range fields {
		if d, ok := set.Lookup(f); ok {
			out = append(out, d)
		}
	}
	return out
}

func renderHeader[R any](resolved []column.Resolved[R], rowNumWidth int, showRowNum, noColor bool) string {
	sep := strings.Repeat(" ", sepWidth)
	parts := make([]string, 0, len(resolved)+1)

	if showRowNum {
		h := padRight("#", rowNumWidth)
		if !noColor {
			h = headerStyle.Render(h)
		}
		parts = append(parts, h)
	}

	for _, r := range resolved {
		label := r.HeaderLabel()
		if r.RenderHeader != nil {
			label = r.RenderHeader(column.HeaderParams{
				Field:         r.Field,
				HeaderName:    r.HeaderName,
				ComputedWidth: r.ComputedWidth,
			})
		}
		h := pad(truncate(label, r.ComputedWidth), r.ComputedWidth, r.HeaderAlign)
		if !noColor {
			h = headerStyle.Render(h)
		}
		parts = append(parts, h)
	}

	return strings.Join(parts, sep)
}

func renderRow[R any](set *column.Set[R], resolved []column.Resolved[R], row R, rowIndex, rowNumWidth int, opts Options) string {
	sep := strings.Repeat(" ", sepWidth)
	parts := make([]string, 0, len(resolved)+1)

	if opts.RowNumberStyle != "none" {
		var numStr string
		if opts.RowNumberStyle == "index" {
			numStr = fmt.Sprintf("[%d]", rowIndex)
		} else {
			numStr = fmt.Sprintf("%d", rowIndex+1)
		}
		numStr = padRight(numStr, rowNumWidth)
		if !opts.NoColor {
			numStr = rowNumStyle.Render(numStr)
		}
		parts = append(parts, numStr)
	}

	for _, r := range resolved {
		cell := cellContent(set, r, row)
		cell = pad(truncate(cell, r.ComputedWidth), r.ComputedWidth, r.Align)
		if !opts.NoColor {
			cell = cellStyle.Render(cell)
		}
		parts = append(parts, cell)
	}

	return strings.Join(parts, sep)
}

// cellContent resolves one cell's display string: the RenderCell hook when
// set, action labels for actions columns, else the value pipeline.
func cellContent[R any](set *column.Set[R], r column.Resolved[R], row R) string {
	if r.RenderCell != nil {
		return r.RenderCell(set.CellParams(row, r.Field))
	}
	if r.Type == column.TypeActions {
		actions := set.Actions(row, r.Field)
		labels := make([]string, 0, len(actions))
		for _, a := range actions {
			labels = append(labels, a.Label)
		}
		return strings.Join(labels, " ")
	}
	return set.FormattedValue(row, r.Field)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120 // sensible default
	}
	return width
}

// truncate shortens s to fit maxLen display cells, appending an ellipsis when
// there is room for one. Width is measured with lipgloss so wide runes and
// ANSI sequences count correctly.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || lipgloss.Width(s) <= maxLen {
		return s
	}

	target := maxLen
	ellipsis := ""
	if maxLen >= 3 {
		target = maxLen - 3
		ellipsis = "..."
	}

	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if width+rw > target {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + ellipsis
}

func pad(s string, width int, align column.Alignment) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case column.AlignRight:
		return strings.Repeat(" ", gap) + s
	case column.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

func padRight(s string, width int) string {
	return pad(s, width, column.AlignLeft)
}
