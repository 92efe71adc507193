package column

// ActionsColumn builds an actions-type Definition. The discriminant and the
// mandatory GetActions hook are set together so the definition cannot reach
// NewSet half-formed.
func ActionsColumn[R any](field string, getActions ActionsGetter[R]) Definition[R] {
	return Definition[R]{
		Field:      field,
		Type:       TypeActions,
		GetActions: getActions,
	}
}
