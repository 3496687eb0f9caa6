package paging

import "strconv"

// DefaultWindowSize is the number of page markers shown around the current
// page when no explicit window size is configured.
const DefaultWindowSize = 5

// ellipsisGlyph is the display form of an ellipsis marker.
const ellipsisGlyph = "…"

// Marker is a single entry in a page range: either a concrete page number
// or an ellipsis placeholder standing in for omitted pages. A marker is
// always exactly one of the two; construct via PageOf or Ellipsis.
type Marker struct {
	page     int
	ellipsis bool
}

// PageOf returns a marker for a concrete page number.
func PageOf(n int) Marker {
	return Marker{page: n}
}

// Ellipsis returns a non-navigable placeholder marker.
func Ellipsis() Marker {
	return Marker{ellipsis: true}
}

// Page returns the marker's page number and true, or zero and false for an
// ellipsis marker.
func (m Marker) Page() (int, bool) {
	if m.ellipsis {
		return 0, false
	}
	return m.page, true
}

// IsEllipsis reports whether the marker is an ellipsis placeholder.
func (m Marker) IsEllipsis() bool {
	return m.ellipsis
}

// String renders the marker for plain-text output.
func (m Marker) String() string {
	if m.ellipsis {
		return ellipsisGlyph
	}
	return strconv.Itoa(m.page)
}

// MarshalJSON encodes a page marker as its number and an ellipsis marker as
// the string "…", so serialized ranges stay unambiguous.
func (m Marker) MarshalJSON() ([]byte, error) {
	if m.ellipsis {
		return []byte(strconv.Quote(ellipsisGlyph)), nil
	}
	return []byte(strconv.Itoa(m.page)), nil
}

// PageRange returns the ordered run of page markers to display for current
// out of totalPages, using a window of windowSize pages.
//
// When everything fits (totalPages <= windowSize) the full range 1..totalPages
// is emitted verbatim. Otherwise the window is centered on current as closely
// as possible and clamped so it never runs past [1, totalPages]:
//
//	windowStart = clamp(current - (windowSize-1)/2, 1, totalPages - windowSize + 1)
//
// The integer division places the extra page after current whenever the
// window cannot be centered exactly (even windowSize). That tie-break, and
// the clamping, give the two properties renderers rely on: identical inputs
// produce identical output, and stepping current by one shifts the window by
// at most one.
//
// totalPages <= 0 (empty collection, or unknown total) yields an empty range.
// windowSize < 1 falls back to DefaultWindowSize.
func PageRange(current, totalPages, windowSize int) []Marker {
	if totalPages <= 0 {
		return nil
	}
	if windowSize < 1 {
		windowSize = DefaultWindowSize
	}

	if totalPages <= windowSize {
		markers := make([]Marker, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			markers = append(markers, PageOf(p))
		}
		return markers
	}

	start := current - (windowSize-1)/2
	if start < 1 {
		start = 1
	}
	if max := totalPages - windowSize + 1; start > max {
		start = max
	}

	markers := make([]Marker, 0, windowSize)
	for p := start; p < start+windowSize; p++ {
		markers = append(markers, PageOf(p))
	}
	return markers
}

// PageRangeAnchored is PageRange with the first and last pages anchored at
// the edges: pages omitted between an anchor and the window are collapsed
// into a single ellipsis marker, e.g. 1 … 8 9 10 11 12 … 20. Ranges that
// already touch an edge gain no anchor and no ellipsis on that side.
func PageRangeAnchored(current, totalPages, windowSize int) []Marker {
	window := PageRange(current, totalPages, windowSize)
	if len(window) == 0 {
		return nil
	}

	first, _ := window[0].Page()
	last, _ := window[len(window)-1].Page()

	markers := make([]Marker, 0, len(window)+4)
	if first > 1 {
		markers = append(markers, PageOf(1))
		if first > 2 {
			markers = append(markers, Ellipsis())
		}
	}
	markers = append(markers, window...)
	if last < totalPages {
		if last < totalPages-1 {
			markers = append(markers, Ellipsis())
		}
		markers = append(markers, PageOf(totalPages))
	}
	return markers
}
