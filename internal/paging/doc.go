// Package paging is the pagination engine shared by every list surface in
// the client. It is split into three layers:
//   - pure page arithmetic (TotalPages, Offset, ItemRange, HasPrev/HasNext)
//   - the page-range window algorithm (PageRange, PageRangeAnchored)
//   - Controller, the single owner of mutable pagination state
//
// Renderers consume the derived Info snapshot and drive the Controller
// through its action methods; data sources implement Source and are fetched
// by the owning view, never by the engine itself.
package paging
