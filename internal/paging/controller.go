package paging

import (
	"errors"

	"github.com/rs/zerolog"
)

// DefaultLimit is used when a controller is constructed with a non-positive
// items-per-page value.
const DefaultLimit = 20

// Diagnostic errors. None of these ever crosses the action surface — bad
// navigation input is clamped or ignored so the surrounding view stays
// usable — but they are attached to debug log events and exposed for tests.
var (
	ErrInvalidLimit      = errors.New("paging: limit must be >= 1")
	ErrInvalidPageTarget = errors.New("paging: page target out of range")
	ErrLastPageUndefined = errors.New("paging: last page undefined while total is unknown")
)

// Listener observes controller mutations. It is invoked synchronously after
// every completed action with the fresh Info snapshot.
type Listener func(Info)

// Controller owns the mutable pagination state of one list view: the
// current page, the items-per-page limit, and the latest known total. All
// mutation goes through its action methods, each of which re-establishes
// the invariant currentPage ∈ [1, max(1, totalPages)] (no upper bound in
// unknown-total mode) before notifying listeners.
//
// A controller is plain synchronous arithmetic: it performs no I/O and is
// owned by a single view. It never fetches data — the owning view reads
// Limit/Offset after an action and issues its own fetch.
type Controller struct {
	page       int
	limit      int
	total      int
	totalKnown bool

	// hasMore is the data source's "more data exists" signal, consulted
	// for HasNext only while the total is unknown.
	hasMore bool

	initialLimit int
	windowSize   int

	listeners map[int]Listener
	nextID    int

	log zerolog.Logger
}

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithInitialPage starts the controller on page n instead of page 1.
// The value is clamped like any other page target.
func WithInitialPage(n int) Option {
	return func(c *Controller) { c.page = n }
}

// WithWindowSize sets the page-range window size (default DefaultWindowSize).
func WithWindowSize(n int) Option {
	return func(c *Controller) {
		if n >= 1 {
			c.windowSize = n
		}
	}
}

// WithLogger routes the controller's diagnostics to l. Without it,
// diagnostics are discarded.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New creates a controller for a collection with a known total item count.
func New(limit, total int, opts ...Option) *Controller {
	c := newController(limit, opts...)
	if total < 0 {
		total = 0
	}
	c.total = total
	c.totalKnown = true
	c.page = c.clampPage(c.page)
	return c
}

// NewOpenEnded creates a controller for a source whose total is unknown
// (streaming or infinite feeds). There is no upper page clamp, IsLastPage
// is always false, and LastPage is a no-op until a total is supplied via
// UpdateTotal.
func NewOpenEnded(limit int, opts ...Option) *Controller {
	c := newController(limit, opts...)
	c.hasMore = true
	c.page = c.clampPage(c.page)
	return c
}

func newController(limit int, opts ...Option) *Controller {
	c := &Controller{
		page:       1,
		limit:      limit,
		windowSize: DefaultWindowSize,
		listeners:  make(map[int]Listener),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limit < 1 {
		c.log.Debug().Err(ErrInvalidLimit).Int("limit", c.limit).
			Msg("falling back to default limit")
		c.limit = DefaultLimit
	}
	c.initialLimit = c.limit
	return c
}

// CurrentPage returns the 1-indexed current page.
func (c *Controller) CurrentPage() int { return c.page }

// Limit returns the items-per-page limit.
func (c *Controller) Limit() int { return c.limit }

// Total returns the latest item count and whether it is known.
func (c *Controller) Total() (int, bool) { return c.total, c.totalKnown }

// Offset returns the zero-based index of the first item on the current page.
func (c *Controller) Offset() int { return Offset(c.page, c.limit) }

// Info derives the full presentation snapshot from the current state.
func (c *Controller) Info() Info {
	totalPages := TotalPages(c.total, c.limit)
	start, end := ItemRange(c.page, c.limit, c.total)

	hasNext := HasNext(c.page, totalPages)
	isLast := c.totalKnown && !hasNext
	if !c.totalKnown {
		hasNext = c.hasMore
		isLast = false
		totalPages = 0
		start, end = Offset(c.page, c.limit)+1, Offset(c.page, c.limit)+c.limit
	}

	return Info{
		CurrentPage: c.page,
		Limit:       c.limit,
		Total:       c.total,
		TotalKnown:  c.totalKnown,
		TotalPages:  totalPages,
		Offset:      Offset(c.page, c.limit),
		StartItem:   start,
		EndItem:     end,
		HasPrev:     HasPrev(c.page),
		HasNext:     hasNext,
		IsFirstPage: c.page == 1,
		IsLastPage:  isLast,
		PageRange:   PageRange(c.page, totalPages, c.windowSize),
	}
}

// GoToPage navigates to page n. Out-of-range targets are clamped into the
// valid range, never rejected; the clamp is logged at debug level.
func (c *Controller) GoToPage(n int) {
	clamped := c.clampPage(n)
	if clamped != n {
		c.log.Debug().Err(ErrInvalidPageTarget).
			Int("requested", n).Int("clamped", clamped).
			Msg("page target clamped")
	}
	c.page = clamped
	c.notify()
}

// NextPage advances one page, or does nothing on the last page.
func (c *Controller) NextPage() {
	if !c.Info().HasNext {
		return
	}
	c.GoToPage(c.page + 1)
}

// PrevPage goes back one page, or does nothing on the first page.
func (c *Controller) PrevPage() {
	if !HasPrev(c.page) {
		return
	}
	c.GoToPage(c.page - 1)
}

// FirstPage navigates to page 1.
func (c *Controller) FirstPage() {
	c.GoToPage(1)
}

// LastPage navigates to the final page. While the total is unknown there is
// no final page, so the call is a deliberate no-op rather than a guess.
func (c *Controller) LastPage() {
	if !c.totalKnown {
		c.log.Debug().Err(ErrLastPageUndefined).Msg("last page ignored")
		return
	}
	c.GoToPage(TotalPages(c.total, c.limit))
}

// SetLimit changes the items-per-page limit and resets to page 1, since the
// old page no longer lines up with the new page grid. Limits below 1 are
// ignored and the previous limit retained.
func (c *Controller) SetLimit(limit int) {
	if limit < 1 {
		c.log.Debug().Err(ErrInvalidLimit).Int("limit", limit).
			Msg("limit change ignored")
		return
	}
	c.limit = limit
	c.page = 1
	c.notify()
}

// UpdateTotal records the latest item count reported by the data source.
// The count may grow or shrink between fetches; if it shrinks below the
// current page, the page is clamped down to the new last page. Negative
// counts are treated as zero.
func (c *Controller) UpdateTotal(total int) {
	if total < 0 {
		total = 0
	}
	c.total = total
	c.totalKnown = true
	c.page = c.clampPage(c.page)
	c.notify()
}

// SetHasMore records the data source's has-more signal for unknown-total
// mode. It has no effect once a total is known.
func (c *Controller) SetHasMore(hasMore bool) {
	if c.totalKnown {
		return
	}
	c.hasMore = hasMore
	c.notify()
}

// Reset returns to page 1 with the limit the controller was created with.
// The total is kept: it describes the collection, not the view.
func (c *Controller) Reset() {
	c.page = 1
	c.limit = c.initialLimit
	c.notify()
}

// Subscribe registers a listener invoked after every mutation and returns
// its cancel function. The rendering layer subscribes and re-draws; the
// controller itself knows nothing about rendering.
func (c *Controller) Subscribe(fn Listener) (cancel func()) {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	info := c.Info()
	for _, fn := range c.listeners {
		fn(info)
	}
}

// clampPage maps any requested page into the valid range: [1, ∞) while the
// total is unknown, [1, max(1, totalPages)] once it is known.
func (c *Controller) clampPage(n int) int {
	if n < 1 {
		return 1
	}
	if !c.totalKnown {
		return n
	}
	if last := TotalPages(c.total, c.limit); n > last {
		if last < 1 {
			return 1
		}
		return last
	}
	return n
}

var _ Navigator = (*Controller)(nil)
