package paging

import "context"

// Query carries the fetch parameters derived from a controller's state.
type Query struct {
	Limit  int
	Offset int
}

// Result is one fetched page. Known-total sources set Total and TotalKnown;
// open-ended sources leave TotalKnown false and report HasMore instead.
type Result[T any] struct {
	Items      []T
	Total      int
	TotalKnown bool
	HasMore    bool
}

// Source is the data-source contract the engine's owner fetches from. The
// engine itself never calls Fetch — it only supplies the Query parameters.
type Source[T any] interface {
	Fetch(ctx context.Context, q Query) (Result[T], error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[T any] func(ctx context.Context, q Query) (Result[T], error)

// Fetch implements Source.
func (f SourceFunc[T]) Fetch(ctx context.Context, q Query) (Result[T], error) {
	return f(ctx, q)
}

// ApplyResult feeds a fetch result's count signals back into the
// controller: a known total goes through UpdateTotal (clamping the current
// page if the collection shrank), an open-ended result through SetHasMore.
func ApplyResult[T any](c *Controller, r Result[T]) {
	if r.TotalKnown {
		c.UpdateTotal(r.Total)
		return
	}
	c.SetHasMore(r.HasMore)
}
