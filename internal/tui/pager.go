package tui

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/moongate-games/sanctum/internal/paging"
)

// countPrinter formats item counts with locale-aware grouping ("1,234").
var countPrinter = message.NewPrinter(language.English)

// Pager control labels.
const (
	pagerPrevLabel = "‹ prev"
	pagerNextLabel = "next ›"
)

// RenderPager draws the page controls for a list view from a paging.Info
// snapshot. It honors the renderer contract: prev/first affordances are
// dimmed when HasPrev is false and next/last when HasNext is false, and the
// page-range markers are rendered opaquely — a number is a number, an
// ellipsis is an ellipsis, nothing is re-derived here.
func RenderPager(info paging.Info) string {
	var sb strings.Builder

	if info.HasPrev {
		sb.WriteString(ValueStyle.Render(pagerPrevLabel))
	} else {
		sb.WriteString(MutedStyle.Render(pagerPrevLabel))
	}
	sb.WriteString("  ")

	for i, marker := range info.PageRange {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch {
		case marker.IsEllipsis():
			sb.WriteString(MutedStyle.Render(marker.String()))
		default:
			page, _ := marker.Page()
			if page == info.CurrentPage {
				sb.WriteString(CurrentPageStyle.Render("[" + marker.String() + "]"))
			} else {
				sb.WriteString(LabelStyle.Render(marker.String()))
			}
		}
	}
	if len(info.PageRange) > 0 {
		sb.WriteString("  ")
	}

	if info.HasNext {
		sb.WriteString(ValueStyle.Render(pagerNextLabel))
	} else {
		sb.WriteString(MutedStyle.Render(pagerNextLabel))
	}

	sb.WriteString("   ")
	sb.WriteString(InfoStyle.Render(renderItemCounts(info)))

	return sb.String()
}

// renderItemCounts summarizes where the view is in the collection, e.g.
// "11-15 of 1,234" or "page 3 · more available" for open-ended sources.
func renderItemCounts(info paging.Info) string {
	if !info.TotalKnown {
		if info.HasNext {
			return countPrinter.Sprintf("page %d · more available", info.CurrentPage)
		}
		return countPrinter.Sprintf("page %d · end of feed", info.CurrentPage)
	}
	if info.Total == 0 {
		return "no entries"
	}
	return countPrinter.Sprintf("%d-%d of %d", info.StartItem, info.EndItem, info.Total)
}
