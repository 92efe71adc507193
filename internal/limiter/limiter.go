// Package limiter windows the row list before rendering: skip the first N
// records, cap the output, or keep only the tail.
package limiter

import "fmt"

// Window holds the row-windowing parameters.
type Window struct {
	// Limit keeps only the first N rows after Offset. 0 = unlimited.
	Limit int

	// Offset skips the first N rows. 0 = no skip. Ignored when Tail is set.
	Offset int

	// Tail keeps only the last N rows. 0 = disabled. Mutually exclusive
	// with Limit.
	Tail int
}

// Validate rejects negative values and conflicting combinations.
func (w Window) Validate() error {
	if w.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", w.Limit)
	}
	if w.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", w.Offset)
	}
	if w.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", w.Tail)
	}
	if w.Limit > 0 && w.Tail > 0 {
		return fmt.Errorf("--limit and --tail are mutually exclusive")
	}
	return nil
}

// IsActive reports whether any windowing is configured.
func (w Window) IsActive() bool {
	return w.Limit > 0 || w.Offset > 0 || w.Tail > 0
}

// Apply returns the windowed view of rows. The result shares the backing
// array; callers that mutate it should copy first.
func Apply[R any](w Window, rows []R) []R {
	if !w.IsActive() {
		return rows
	}

	if w.Tail > 0 {
		if w.Tail >= len(rows) {
			return rows
		}
		return rows[len(rows)-w.Tail:]
	}

	if w.Offset >= len(rows) {
		return rows[:0]
	}
	rows = rows[w.Offset:]

	if w.Limit > 0 && w.Limit < len(rows) {
		rows = rows[:w.Limit]
	}
	return rows
}
