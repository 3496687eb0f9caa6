package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moongate-games/sanctum/internal/paging"
)

func TestRenderPager(t *testing.T) {
	t.Run("known total shows window and counts", func(t *testing.T) {
		c := paging.New(5, 100, paging.WithInitialPage(10))
		out := RenderPager(c.Info())

		assert.Contains(t, out, "[10]")
		assert.Contains(t, out, "8")
		assert.Contains(t, out, "12")
		assert.Contains(t, out, "prev")
		assert.Contains(t, out, "next")
		assert.Contains(t, out, "46-50 of 100")
	})

	t.Run("large totals get digit grouping", func(t *testing.T) {
		c := paging.New(5, 1234)
		out := RenderPager(c.Info())
		assert.Contains(t, out, "1-5 of 1,234")
	})

	t.Run("empty collection", func(t *testing.T) {
		c := paging.New(5, 0)
		out := RenderPager(c.Info())
		assert.Contains(t, out, "no entries")
		assert.NotContains(t, out, "[1]")
	})

	t.Run("open-ended feed reports more available", func(t *testing.T) {
		c := paging.NewOpenEnded(5)
		c.GoToPage(3)
		out := RenderPager(c.Info())
		assert.Contains(t, out, "page 3")
		assert.Contains(t, out, "more available")
	})

	t.Run("open-ended feed end", func(t *testing.T) {
		c := paging.NewOpenEnded(5)
		c.SetHasMore(false)
		out := RenderPager(c.Info())
		assert.Contains(t, out, "end of feed")
	})
}
