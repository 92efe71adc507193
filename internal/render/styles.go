package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	defaultHeaderFG    = lipgloss.Color("12")
	defaultHeaderBG    = lipgloss.Color("236")
	defaultCellColor   = lipgloss.Color("248")
	defaultRowNumColor = lipgloss.Color("14")
	defaultSeparator   = lipgloss.Color("240")

	headerStyle    lipgloss.Style
	cellStyle      lipgloss.Style
	rowNumStyle    lipgloss.Style
	separatorStyle lipgloss.Style
)

// Theme controls the rendered colors of the grid. Nil fields fall back to
// the package defaults (ANSI 256 codes).
type Theme struct {
	HeaderFG       color.Color
	HeaderBG       color.Color
	CellColor      color.Color
	RowNumColor    color.Color
	SeparatorColor color.Color
}

// SetTheme overrides the global grid styles. Zero-valued fields keep the
// defaults.
func SetTheme(t Theme) {
	hfg := t.HeaderFG
	hbg := t.HeaderBG
	cc := t.CellColor
	rn := t.RowNumColor
	sep := t.SeparatorColor
	if hfg == nil {
		hfg = defaultHeaderFG
	}
	if hbg == nil {
		hbg = defaultHeaderBG
	}
	if cc == nil {
		cc = defaultCellColor
	}
	if rn == nil {
		rn = defaultRowNumColor
	}
	if sep == nil {
		sep = defaultSeparator
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(hfg).Background(hbg)
	cellStyle = lipgloss.NewStyle().Foreground(cc)
	rowNumStyle = lipgloss.NewStyle().Foreground(rn)
	separatorStyle = lipgloss.NewStyle().Foreground(sep)
}

//nolint:gochecknoinits // initialize the default theme for package consumers
func init() {
	SetTheme(Theme{})
}
