package paging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_KnownTotalScenario(t *testing.T) {
	// total=23, limit=5, starting on page 3.
	c := New(5, 23, WithInitialPage(3))

	info := c.Info()
	assert.Equal(t, 3, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.Offset)
	assert.Equal(t, 11, info.StartItem)
	assert.Equal(t, 15, info.EndItem)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrev)
	assert.False(t, info.IsFirstPage)
	assert.False(t, info.IsLastPage)
}

func TestController_EmptyCollection(t *testing.T) {
	c := New(5, 0)

	info := c.Info()
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 0, info.TotalPages)
	assert.Equal(t, 0, info.StartItem)
	assert.Equal(t, 0, info.EndItem)
	assert.False(t, info.HasNext)
	assert.False(t, info.HasPrev)
	assert.Empty(t, info.PageRange)
}

func TestController_GoToPage(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{name: "in range", target: 3, want: 3},
		{name: "above range clamps to last", target: 99, want: 5},
		{name: "zero clamps to first", target: 0, want: 1},
		{name: "negative clamps to first", target: -7, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(5, 23)
			c.GoToPage(tt.target)
			assert.Equal(t, tt.want, c.CurrentPage())
		})
	}
}

func TestController_GoToPageIdempotent(t *testing.T) {
	c := New(5, 23)
	c.GoToPage(4)
	once := c.Info()
	c.GoToPage(4)
	assert.Equal(t, once, c.Info())
}

func TestController_NextPrevInverse(t *testing.T) {
	c := New(5, 23, WithInitialPage(3))
	c.NextPage()
	c.PrevPage()
	assert.Equal(t, 3, c.CurrentPage())
}

func TestController_Boundaries(t *testing.T) {
	t.Run("prev on first page is a no-op", func(t *testing.T) {
		c := New(5, 23)
		c.PrevPage()
		assert.Equal(t, 1, c.CurrentPage())
	})

	t.Run("next on last page is a no-op", func(t *testing.T) {
		c := New(5, 23, WithInitialPage(5))
		c.NextPage()
		assert.Equal(t, 5, c.CurrentPage())
	})

	t.Run("first and last jump to the boundaries", func(t *testing.T) {
		c := New(5, 23, WithInitialPage(3))
		c.LastPage()
		assert.Equal(t, 5, c.CurrentPage())
		assert.True(t, c.Info().IsLastPage)
		c.FirstPage()
		assert.Equal(t, 1, c.CurrentPage())
		assert.True(t, c.Info().IsFirstPage)
	})
}

func TestController_SetLimit(t *testing.T) {
	t.Run("always resets to page one", func(t *testing.T) {
		c := New(5, 100, WithInitialPage(7))
		c.SetLimit(10)
		assert.Equal(t, 1, c.CurrentPage())
		assert.Equal(t, 10, c.Limit())
	})

	t.Run("invalid limit retains previous value and page", func(t *testing.T) {
		c := New(5, 100, WithInitialPage(7))
		c.SetLimit(0)
		assert.Equal(t, 5, c.Limit())
		assert.Equal(t, 7, c.CurrentPage())
		c.SetLimit(-3)
		assert.Equal(t, 5, c.Limit())
	})

	t.Run("invalid construction limit falls back to default", func(t *testing.T) {
		c := New(0, 100)
		assert.Equal(t, DefaultLimit, c.Limit())
	})
}

func TestController_UpdateTotal(t *testing.T) {
	t.Run("shrinking total clamps current page", func(t *testing.T) {
		c := New(5, 100, WithInitialPage(20))
		c.UpdateTotal(23)
		assert.Equal(t, 5, c.CurrentPage())
	})

	t.Run("shrinking to empty lands on page one", func(t *testing.T) {
		c := New(5, 100, WithInitialPage(20))
		c.UpdateTotal(0)
		assert.Equal(t, 1, c.CurrentPage())
		assert.False(t, c.Info().HasNext)
	})

	t.Run("growing total keeps current page", func(t *testing.T) {
		c := New(5, 23, WithInitialPage(3))
		c.UpdateTotal(200)
		assert.Equal(t, 3, c.CurrentPage())
		assert.Equal(t, 40, c.Info().TotalPages)
	})
}

func TestController_Reset(t *testing.T) {
	c := New(5, 100, WithInitialPage(7))
	c.SetLimit(25)
	c.GoToPage(3)
	c.Reset()

	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, 5, c.Limit())
	total, known := c.Total()
	assert.True(t, known)
	assert.Equal(t, 100, total)
}

func TestController_OpenEnded(t *testing.T) {
	t.Run("no upper clamp and never last", func(t *testing.T) {
		c := NewOpenEnded(10)
		c.GoToPage(400)
		info := c.Info()
		assert.Equal(t, 400, info.CurrentPage)
		assert.True(t, info.HasNext)
		assert.False(t, info.IsLastPage)
		assert.False(t, info.TotalKnown)
	})

	t.Run("last page is a no-op", func(t *testing.T) {
		c := NewOpenEnded(10)
		c.GoToPage(3)
		c.LastPage()
		assert.Equal(t, 3, c.CurrentPage())
	})

	t.Run("has-more signal gates next", func(t *testing.T) {
		c := NewOpenEnded(10)
		c.GoToPage(3)
		c.SetHasMore(false)
		assert.False(t, c.Info().HasNext)
		c.NextPage()
		assert.Equal(t, 3, c.CurrentPage())
	})

	t.Run("update total switches to known mode", func(t *testing.T) {
		c := NewOpenEnded(10)
		c.GoToPage(400)
		c.UpdateTotal(55)
		assert.Equal(t, 6, c.CurrentPage())
		assert.True(t, c.Info().IsLastPage)
	})
}

func TestController_Subscribe(t *testing.T) {
	c := New(5, 23)

	var seen []Info
	cancel := c.Subscribe(func(info Info) { seen = append(seen, info) })

	c.NextPage()
	c.SetLimit(10)
	require.Len(t, seen, 2)
	assert.Equal(t, 2, seen[0].CurrentPage)
	assert.Equal(t, 1, seen[1].CurrentPage)
	assert.Equal(t, 10, seen[1].Limit)

	cancel()
	c.NextPage()
	assert.Len(t, seen, 2)
}

func TestApplyResult(t *testing.T) {
	t.Run("known total", func(t *testing.T) {
		c := New(5, 100, WithInitialPage(20))
		ApplyResult(c, Result[int]{Items: []int{1, 2, 3}, Total: 23, TotalKnown: true})
		assert.Equal(t, 5, c.CurrentPage())
	})

	t.Run("open ended", func(t *testing.T) {
		c := NewOpenEnded(5)
		c.GoToPage(2)
		ApplyResult(c, Result[int]{Items: []int{1}, HasMore: false})
		assert.False(t, c.Info().HasNext)
	})
}

func TestSourceFunc(t *testing.T) {
	src := SourceFunc[int](func(_ context.Context, q Query) (Result[int], error) {
		return Result[int]{Items: []int{q.Offset}, Total: 1, TotalKnown: true}, nil
	})
	res, err := src.Fetch(context.Background(), Query{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{10}, res.Items)
}
