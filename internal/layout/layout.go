// Package layout assigns pixel widths to a column set and derives the
// aggregate metadata (total width, per-column offsets) a rendering pass
// needs. It has no rendering of its own; it only turns declared sizing
// (width, flex, min/max bounds) into resolved widths.
package layout

import (
	"math"

	"github.com/oakwood-commons/gridx/pkg/column"
)

// Hydrate resolves the pixel width of every column in the set.
//
// Fixed columns get their declared Width clamped into [MinWidth, MaxWidth].
// Flex columns share whatever of availableWidth remains after the fixed
// columns, in proportion to their Flex weight, each share clamped into the
// column's bounds; a clamped column is frozen and the rest of the space is
// re-distributed among the remaining flex columns.
//
// availableWidth <= 0 means "no target width": flex columns fall back to
// their declared Width, clamped.
func Hydrate[R any](set *column.Set[R], availableWidth int) []column.Resolved[R] {
	return HydrateColumns(set.Columns(), availableWidth)
}

// HydrateColumns is Hydrate over an explicit column list, for callers that
// size a subset of a set (hidden columns must not consume budget).
func HydrateColumns[R any](cols []column.Definition[R], availableWidth int) []column.Resolved[R] {
	resolved := make([]column.Resolved[R], len(cols))

	fixedTotal := 0
	flexIdx := make([]int, 0, len(cols))
	for i, d := range cols {
		resolved[i] = column.Resolved[R]{Definition: d}
		if d.Flex > 0 && availableWidth > 0 {
			flexIdx = append(flexIdx, i)
			continue
		}
		w := clamp(d.Width, d.MinWidth, d.MaxWidth)
		resolved[i].ComputedWidth = w
		fixedTotal += w
	}

	if len(flexIdx) == 0 {
		return resolved
	}

	distributeFlex(resolved, flexIdx, availableWidth-fixedTotal)
	return resolved
}

// distributeFlex assigns widths to the flex columns at the given indices,
// sharing space proportionally and freezing columns whose share violates a
// bound. Each freeze removes the column from the pool and the loop runs
// again on the rest; with every pass at least one column freezes or all
// shares fit, so the loop terminates.
func distributeFlex[R any](resolved []column.Resolved[R], flexIdx []int, space int) {
	active := append([]int(nil), flexIdx...)

	for len(active) > 0 {
		totalFlex := 0.0
		for _, i := range active {
			totalFlex += resolved[i].Flex
		}

		frozeAny := false
		remaining := active[:0]
		for _, i := range active {
			d := resolved[i].Definition
			share := int(math.Round(float64(space) * d.Flex / totalFlex))
			clamped := clamp(share, d.MinWidth, d.MaxWidth)
			if clamped != share {
				resolved[i].ComputedWidth = clamped
				space -= clamped
				frozeAny = true
				continue
			}
			remaining = append(remaining, i)
		}
		active = remaining
		if frozeAny {
			continue
		}

		// All shares fit their bounds: assign the floored shares, still
		// clamped (flooring can land one pixel under a MinWidth the rounded
		// share satisfied), then hand rounding leftovers one pixel at a
		// time to the leading columns that have headroom.
		totalFlex = 0.0
		for _, i := range active {
			totalFlex += resolved[i].Flex
		}
		assigned := 0
		for _, i := range active {
			d := resolved[i].Definition
			w := clamp(int(math.Floor(float64(space)*d.Flex/totalFlex)), d.MinWidth, d.MaxWidth)
			resolved[i].ComputedWidth = w
			assigned += w
		}
		for _, i := range active {
			if assigned >= space {
				break
			}
			d := resolved[i].Definition
			if d.MaxWidth > 0 && resolved[i].ComputedWidth >= d.MaxWidth {
				continue
			}
			resolved[i].ComputedWidth++
			assigned++
		}
		return
	}
}

func clamp(w, minW, maxW int) int {
	if w < minW {
		w = minW
	}
	if maxW > 0 && w > maxW {
		w = maxW
	}
	return w
}

// Meta is the aggregate layout snapshot over an ordered column list. It has
// no identity of its own: it is recomputed whenever the column list or any
// resolved width changes.
type Meta struct {
	// TotalWidth is the sum of all resolved widths.
	TotalWidth int

	// Positions holds each column's cumulative left offset;
	// Positions[0] is 0.
	Positions []int
}

// ComputeMeta derives the layout metadata for resolved columns.
func ComputeMeta[R any](cols []column.Resolved[R]) Meta {
	m := Meta{Positions: make([]int, len(cols))}
	for i, c := range cols {
		m.Positions[i] = m.TotalWidth
		m.TotalWidth += c.ComputedWidth
	}
	return m
}
