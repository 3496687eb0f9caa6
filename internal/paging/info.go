package paging

// Info is the read-only presentation snapshot consumed by renderers. It is
// derived from the controller's state on every read and never stored, so a
// held Info can go stale but can never disagree with itself.
type Info struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	Limit       int  `json:"limit"        yaml:"limit"`
	Total       int  `json:"total"        yaml:"total"`
	TotalKnown  bool `json:"total_known"  yaml:"total_known"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	Offset      int  `json:"offset"       yaml:"offset"`
	StartItem   int  `json:"start_item"   yaml:"start_item"`
	EndItem     int  `json:"end_item"     yaml:"end_item"`
	HasPrev     bool `json:"has_prev"     yaml:"has_prev"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
	IsFirstPage bool `json:"is_first_page" yaml:"is_first_page"`
	IsLastPage  bool `json:"is_last_page"  yaml:"is_last_page"`

	// PageRange is the marker sequence for page controls. Renderers must
	// treat its entries opaquely (number vs. ellipsis) rather than
	// re-deriving them.
	PageRange []Marker `json:"page_range" yaml:"-"`
}

// Navigator is the action surface a renderer drives. Every method clamps
// rather than rejects, so a renderer never needs an error path for
// navigation input.
type Navigator interface {
	GoToPage(n int)
	NextPage()
	PrevPage()
	FirstPage()
	LastPage()
}
