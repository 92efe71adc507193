package column

// GroupingField is the field key of the engine-synthesized column that
// represents hierarchical row grouping.
const GroupingField = "__group__"

// GroupingOverride customizes the auto-generated grouping column. It is a
// restricted variant of Definition: the grouping mechanism fixes the field
// key, the type, and the editing surface, so Field, Type, Editable,
// ValueSetter, PreProcessEditCell, RenderEditCell and Groupable are not
// settable here.
type GroupingOverride[R any] struct {
	HeaderName  string
	Description string
	Align       Alignment
	HeaderAlign Alignment

	Width    int
	MinWidth int
	MaxWidth int
	Flex     float64

	Sortable   *bool
	Resizable  *bool
	Hideable   *bool
	Filterable *bool
	Pinnable   *bool

	DisableColumnMenu bool
	DisableReorder    bool
	DisableExport     bool
	HideSortIcons     bool

	ValueFormatter ValueFormatter[R]
	RenderCell     CellRenderer[R]
	RenderHeader   HeaderRenderer

	SortComparator  Comparator
	SortingOrder    Order
	FilterOperators []Operator[R]

	// MainGroupingCriteria names the grouping criterion whose sort/filter
	// behavior the grouping column adopts when several criteria are active.
	// Empty means: the leaf field if one is configured, else the top-level
	// grouping field (see ResolveMainCriteria).
	MainGroupingCriteria string

	// LeafField names the column whose value is rendered on leaf rows.
	LeafField string

	// HideDescendantCount suppresses the child-count suffix on group rows.
	HideDescendantCount bool
}

// ResolveMainCriteria resolves the effective main grouping criterion against
// the top-level grouping field.
func (o GroupingOverride[R]) ResolveMainCriteria(topGroupingField string) string {
	if o.MainGroupingCriteria != "" {
		return o.MainGroupingCriteria
	}
	if o.LeafField != "" {
		return o.LeafField
	}
	return topGroupingField
}

// Apply layers the override onto base and returns the resulting definition.
// Only the fields the override exposes are touched; the base keeps its field
// key, type, and editing hooks.
func (o GroupingOverride[R]) Apply(base Definition[R]) Definition[R] {
	d := base

	if o.HeaderName != "" {
		d.HeaderName = o.HeaderName
	}
	if o.Description != "" {
		d.Description = o.Description
	}
	if o.Align != "" {
		d.Align = o.Align
	}
	if o.HeaderAlign != "" {
		d.HeaderAlign = o.HeaderAlign
	}
	if o.Width != 0 {
		d.Width = o.Width
	}
	if o.MinWidth != 0 {
		d.MinWidth = o.MinWidth
	}
	if o.MaxWidth != 0 {
		d.MaxWidth = o.MaxWidth
	}
	if o.Flex != 0 {
		d.Flex = o.Flex
	}

	if o.Sortable != nil {
		d.Sortable = o.Sortable
	}
	if o.Resizable != nil {
		d.Resizable = o.Resizable
	}
	if o.Hideable != nil {
		d.Hideable = o.Hideable
	}
	if o.Filterable != nil {
		d.Filterable = o.Filterable
	}
	if o.Pinnable != nil {
		d.Pinnable = o.Pinnable
	}

	if o.DisableColumnMenu {
		d.DisableColumnMenu = true
	}
	if o.DisableReorder {
		d.DisableReorder = true
	}
	if o.DisableExport {
		d.DisableExport = true
	}
	if o.HideSortIcons {
		d.HideSortIcons = true
	}

	if o.ValueFormatter != nil {
		d.ValueFormatter = o.ValueFormatter
	}
	if o.RenderCell != nil {
		d.RenderCell = o.RenderCell
	}
	if o.RenderHeader != nil {
		d.RenderHeader = o.RenderHeader
	}
	if o.SortComparator != nil {
		d.SortComparator = o.SortComparator
	}
	if o.SortingOrder != nil {
		d.SortingOrder = o.SortingOrder
	}
	if o.FilterOperators != nil {
		d.FilterOperators = o.FilterOperators
	}

	return d
}

// NewGroupingColumn synthesizes the grouping column definition with the
// override applied. The field key, type, and editing surface are fixed by
// the grouping mechanism.
func NewGroupingColumn[R any](o GroupingOverride[R]) Definition[R] {
	base := Definition[R]{
		Field:      GroupingField,
		HeaderName: "Group",
		Type:       TypeCustom,
		Editable:   Bool(false),
		Groupable:  Bool(false),
	}
	return o.Apply(base)
}
