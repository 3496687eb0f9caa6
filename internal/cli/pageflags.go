package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moongate-games/sanctum/internal/config"
	"github.com/moongate-games/sanctum/internal/paging"
)

// Validation limits for the plain-output pagination flags.
const (
	minPage     = 1
	minPageSize = 1
	maxPageSize = 500
)

// Flag validation errors.
var (
	ErrInvalidPageFlag     = errors.New("page must be >= 1")
	ErrInvalidPageSizeFlag = fmt.Errorf("page-size must be between %d and %d", minPageSize, maxPageSize)
)

// pageFlags holds the flags shared by every screen command's --plain mode.
type pageFlags struct {
	Page     int
	PageSize int
	Plain    bool
}

// register adds the pagination flags to cmd.
func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Plain, "plain", false, "print one page as plain text instead of opening the TUI")
	cmd.Flags().IntVar(&f.Page, "page", 1, "page to print in --plain mode")
	cmd.Flags().IntVar(&f.PageSize, "page-size", 0, "items per page in --plain mode (default from config)")
}

// validate checks flag consistency and fills the page size default.
func (f *pageFlags) validate() error {
	if f.Page < minPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPageFlag, f.Page)
	}
	if f.PageSize == 0 {
		f.PageSize = config.Global().UI.PageSize
	}
	if f.PageSize < minPageSize || f.PageSize > maxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSizeFlag, f.PageSize)
	}
	return nil
}

// renderPlainFooter prints the pagination summary under a plain listing:
//
//	page 3 of 5 (11-15 of 23)   1 … 2 3 [4] 5
//
// Open-ended feeds get a has-more note instead of totals.
func renderPlainFooter(info paging.Info) string {
	var sb strings.Builder

	if !info.TotalKnown {
		fmt.Fprintf(&sb, "page %d", info.CurrentPage)
		if info.HasNext {
			sb.WriteString(" (more available)")
		} else {
			sb.WriteString(" (end of feed)")
		}
		return sb.String()
	}

	if info.Total == 0 {
		return "no entries"
	}

	fmt.Fprintf(&sb, "page %d of %d (%d-%d of %d)   ",
		info.CurrentPage, info.TotalPages, info.StartItem, info.EndItem, info.Total)

	markers := paging.PageRangeAnchored(info.CurrentPage, info.TotalPages, config.Global().UI.WindowSize)
	for i, marker := range markers {
		if i > 0 {
			sb.WriteString(" ")
		}
		if page, ok := marker.Page(); ok && page == info.CurrentPage {
			sb.WriteString("[" + marker.String() + "]")
			continue
		}
		sb.WriteString(marker.String())
	}
	return sb.String()
}
