package settings

import "context"

type contextKey struct{}

// IntoContext returns a child context carrying the per-run settings.
func IntoContext(ctx context.Context, s *Run) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the per-run settings, reporting whether the context
// carries any.
func FromContext(ctx context.Context) (*Run, bool) {
	s, ok := ctx.Value(contextKey{}).(*Run)
	return s, ok
}
