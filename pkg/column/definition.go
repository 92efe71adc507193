// Package column defines the declarative column-configuration model for
// tabular grids: what a column is called, how it is sized, which behaviors
// it participates in, and the caller-supplied hooks that compute, format,
// and render its values. The model is consumed by the layout and rendering
// layers; this package owns the shape, the defaults, and the validation
// performed when a column list is ingested.
package column

// Alignment controls horizontal placement of cell or header content.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Sizing defaults applied when a Definition leaves the field at its zero value.
const (
	// DefaultWidth is the initial pixel width of a column.
	DefaultWidth = 100
	// DefaultMinWidth is the lower layout bound.
	DefaultMinWidth = 50
)

// Definition describes one grid column. The zero value is not usable on its
// own: Field must be set, and every optional field has a documented default
// that [NewSet] resolves before the definition reaches the layout engine.
//
// Behavior flags use *bool so that "unset" is distinguishable from an
// explicit false. Sortable, Resizable, Hideable, Filterable, Pinnable and
// Groupable default to true; Editable defaults to false. Use [Bool] to set
// them inline.
//
// The type parameter R is the row record type. Hooks receive the row plus a
// read-scoped [RowAPI]; they never see mutable grid state.
type Definition[R any] struct {
	// Field is the unique key used to look up this column's value in a row
	// record. Uniqueness across a column list is enforced by NewSet.
	Field string

	// HeaderName is the header label. Empty means the Field key is shown.
	HeaderName string

	// Description is shown in column tooltips and menus.
	Description string

	// Align positions cell content; empty falls back to the type default
	// (numbers align right, everything else left).
	Align Alignment

	// HeaderAlign positions the header label; empty follows Align.
	HeaderAlign Alignment

	// Width is the preferred pixel width. 0 means DefaultWidth.
	Width int

	// MinWidth is the lower layout bound. 0 means DefaultMinWidth.
	MinWidth int

	// MaxWidth is the upper layout bound. 0 means unbounded.
	MaxWidth int

	// Flex, when positive, makes the column share remaining space in
	// proportion to its weight instead of keeping a fixed Width.
	Flex float64

	// Behavior flags. Nil means "use the default for this flag"; the
	// defaults are resolved by NewSet (see the Is* accessors).
	Sortable   *bool
	Resizable  *bool
	Editable   *bool
	Hideable   *bool
	Filterable *bool
	Pinnable   *bool
	Groupable  *bool

	// Suppression flags, all default false. Actions columns force
	// DisableColumnMenu and DisableExport on; see applyTypeDefaults.
	DisableColumnMenu bool
	DisableReorder    bool
	DisableExport     bool
	HideSortIcons     bool

	// Type selects a built-in defaults bundle (alignment, formatter,
	// comparator, filter operators). Empty means TypeString.
	Type Type

	// Hooks. All are optional except GetActions, which is required when
	// Type is TypeActions. Hooks must be side-effect-free with respect to
	// a rendering pass and may be invoked more than once per cell.
	ValueGetter         ValueGetter[R]
	ValueSetter         ValueSetter[R]
	ValueFormatter      ValueFormatter[R]
	ValueParser         ValueParser[R]
	GroupingValueGetter ValueGetter[R]
	RenderCell          CellRenderer[R]
	RenderEditCell      CellRenderer[R]
	RenderHeader        HeaderRenderer
	PreProcessEditCell  EditPreProcessor[R]

	// ValueOptions lists the permissible values for singleSelect columns,
	// either as a static list or as a per-row resolver.
	ValueOptions *ValueOptions[R]

	// SortComparator, when set, takes precedence over the Type bundle's
	// default comparator.
	SortComparator Comparator

	// SortingOrder is the cycle of directions applied by repeated sort
	// requests. Nil means DefaultOrder.
	SortingOrder Order

	// FilterOperators, when set, replaces the Type bundle's operator list.
	FilterOperators []Operator[R]

	// GetActions produces the action descriptors rendered in an actions
	// column cell. Required when Type is TypeActions, ignored otherwise.
	GetActions ActionsGetter[R]
}

// Bool returns a pointer to v, for setting tri-state behavior flags inline.
func Bool(v bool) *bool { return &v }

func flagOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// IsSortable reports whether the column participates in sorting. Default true.
func (d Definition[R]) IsSortable() bool { return flagOrDefault(d.Sortable, true) }

// IsResizable reports whether the user can drag-resize the column. Default true.
func (d Definition[R]) IsResizable() bool { return flagOrDefault(d.Resizable, true) }

// IsEditable reports whether cells enter edit mode on interaction. Default false.
func (d Definition[R]) IsEditable() bool { return flagOrDefault(d.Editable, false) }

// IsHideable reports whether the column can be hidden via the column menu. Default true.
func (d Definition[R]) IsHideable() bool { return flagOrDefault(d.Hideable, true) }

// IsFilterable reports whether the column participates in filtering. Default true.
func (d Definition[R]) IsFilterable() bool { return flagOrDefault(d.Filterable, true) }

// IsPinnable reports whether the column is eligible for pin-left/right. Default true.
func (d Definition[R]) IsPinnable() bool { return flagOrDefault(d.Pinnable, true) }

// IsGroupable reports whether the column is eligible as a grouping criterion.
// Default true.
func (d Definition[R]) IsGroupable() bool { return flagOrDefault(d.Groupable, true) }

// HeaderLabel returns the text shown in the header: HeaderName when set,
// otherwise the Field key.
func (d Definition[R]) HeaderLabel() string {
	if d.HeaderName != "" {
		return d.HeaderName
	}
	return d.Field
}

// Resolved is a Definition augmented with the pixel width assigned by a
// layout pass after applying flex/min/max constraints. It is a derived view:
// building one never mutates or drops any field of the base definition.
type Resolved[R any] struct {
	Definition[R]

	// ComputedWidth is the resolved pixel width for the current layout pass.
	ComputedWidth int
}
