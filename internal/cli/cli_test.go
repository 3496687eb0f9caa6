package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moongate-games/sanctum/internal/game"
	"github.com/moongate-games/sanctum/internal/paging"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3")
	require.NotNil(t, root)
	assert.Equal(t, "sanctum", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "home")
	assert.Contains(t, names, "dungeon")
	assert.Contains(t, names, "sanctuary")
}

func TestPageFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		flags   pageFlags
		wantErr bool
	}{
		{name: "defaults fill from config", flags: pageFlags{Page: 1}},
		{name: "explicit values", flags: pageFlags{Page: 3, PageSize: 25}},
		{name: "zero page rejected", flags: pageFlags{Page: 0, PageSize: 10}, wantErr: true},
		{name: "negative page rejected", flags: pageFlags{Page: -2, PageSize: 10}, wantErr: true},
		{name: "oversized page size rejected", flags: pageFlags{Page: 1, PageSize: 9999}, wantErr: true},
		{name: "negative page size rejected", flags: pageFlags{Page: 1, PageSize: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tt.flags.PageSize, 1)
		})
	}
}

func TestRenderPlainFooter(t *testing.T) {
	t.Run("known total", func(t *testing.T) {
		ctrl := paging.New(5, 23, paging.WithInitialPage(3))
		out := renderPlainFooter(ctrl.Info())
		assert.Contains(t, out, "page 3 of 5")
		assert.Contains(t, out, "(11-15 of 23)")
		assert.Contains(t, out, "[3]")
	})

	t.Run("anchored markers for long ranges", func(t *testing.T) {
		ctrl := paging.New(5, 100, paging.WithInitialPage(10))
		out := renderPlainFooter(ctrl.Info())
		assert.Contains(t, out, "1 …")
		assert.Contains(t, out, "[10]")
		assert.Contains(t, out, "… 20")
	})

	t.Run("empty collection", func(t *testing.T) {
		ctrl := paging.New(5, 0)
		assert.Equal(t, "no entries", renderPlainFooter(ctrl.Info()))
	})

	t.Run("open-ended feed", func(t *testing.T) {
		ctrl := paging.NewOpenEnded(5)
		ctrl.GoToPage(2)
		out := renderPlainFooter(ctrl.Info())
		assert.Contains(t, out, "page 2")
		assert.Contains(t, out, "more available")
	})
}

// monstersOf builds a deterministic roster for plain-output tests.
func monstersOf(total int) paging.SourceFunc[game.Monster] {
	return func(_ context.Context, q paging.Query) (paging.Result[game.Monster], error) {
		items := make([]game.Monster, 0, q.Limit)
		for i := q.Offset; i < q.Offset+q.Limit && i < total; i++ {
			items = append(items, game.Monster{
				Name:    fmt.Sprintf("Monster %02d", i),
				Species: "test-species",
				Element: game.ElementStone,
				Level:   total - i,
			})
		}
		return paging.Result[game.Monster]{Items: items, Total: total, TotalKnown: true}, nil
	}
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestRunSanctuaryPlain(t *testing.T) {
	t.Run("prints requested page and footer", func(t *testing.T) {
		cmd, buf := testCmd()
		flags := &pageFlags{Page: 2, PageSize: 5}

		err := runSanctuaryPlain(cmd, monstersOf(23), flags, "")
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Monster 05")
		assert.Contains(t, out, "Monster 09")
		assert.NotContains(t, out, "Monster 04")
		assert.Contains(t, out, "page 2 of 5")
	})

	t.Run("out-of-range page clamps and refetches", func(t *testing.T) {
		cmd, buf := testCmd()
		flags := &pageFlags{Page: 42, PageSize: 5}

		err := runSanctuaryPlain(cmd, monstersOf(23), flags, "")
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "page 5 of 5")
		assert.Contains(t, out, "Monster 20")
	})

	t.Run("sorts the page", func(t *testing.T) {
		cmd, buf := testCmd()
		flags := &pageFlags{Page: 1, PageSize: 5}

		err := runSanctuaryPlain(cmd, monstersOf(23), flags, "level:asc")
		require.NoError(t, err)

		// Page one holds monsters 00..04 with levels 23..19; ascending
		// level puts Monster 04 first.
		first := buf.String()[:40]
		assert.Contains(t, first, "Monster 04")
	})

	t.Run("invalid sort field", func(t *testing.T) {
		cmd, _ := testCmd()
		flags := &pageFlags{Page: 1, PageSize: 5}

		err := runSanctuaryPlain(cmd, monstersOf(23), flags, "weight")
		assert.ErrorIs(t, err, game.ErrInvalidSortField)
	})
}

func TestRunDungeonPlain(t *testing.T) {
	source := paging.SourceFunc[game.DungeonRun](func(_ context.Context, q paging.Query) (paging.Result[game.DungeonRun], error) {
		return paging.Result[game.DungeonRun]{
			Items:   []game.DungeonRun{{Dungeon: "gloom-warrens", Depth: 4, Outcome: game.RunCleared}},
			HasMore: true,
		}, nil
	})

	cmd, buf := testCmd()
	flags := &pageFlags{Page: 1, PageSize: 10}

	err := runDungeonPlain(cmd, source, flags)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "gloom-warrens")
	assert.Contains(t, buf.String(), "more available")
}
