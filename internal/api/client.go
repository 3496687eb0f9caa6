package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/moongate-games/sanctum/internal/game"
	"github.com/moongate-games/sanctum/internal/paging"
)

// supportedAPIRange is the server API constraint this client was built
// against. Majors are breaking on the wire.
const supportedAPIRange = ">= 1.0, < 2.0"

// prefetchConcurrency bounds parallel page fetches in FetchAllMonsters.
const prefetchConcurrency = 4

// ErrIncompatibleServer is returned when the server's API version falls
// outside supportedAPIRange.
var ErrIncompatibleServer = errors.New("api: incompatible server version")

// Client fetches game data over JSON/HTTP. It is safe for use from a single
// screen; each fetch is one request-response with no client-side state.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// CheckVersion fetches the server's API version and verifies it against the
// range this client supports.
func (c *Client) CheckVersion(ctx context.Context) error {
	var resp VersionResponse
	if err := c.get(ctx, "/v1/version", nil, &resp); err != nil {
		return err
	}

	version, err := semver.NewVersion(resp.APIVersion)
	if err != nil {
		return fmt.Errorf("api: unparseable server version %q: %w", resp.APIVersion, err)
	}
	constraint, err := semver.NewConstraint(supportedAPIRange)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: server %s, client supports %s",
			ErrIncompatibleServer, resp.APIVersion, supportedAPIRange)
	}

	c.log.Debug().Str("server", resp.ServerName).
		Str("api_version", resp.APIVersion).Msg("server version ok")
	return nil
}

// ListMonsters fetches one page of the sanctuary roster. The response
// carries a known total, so the result is TotalKnown.
func (c *Client) ListMonsters(ctx context.Context, q paging.Query) (paging.Result[game.Monster], error) {
	var resp MonsterListResponse
	if err := c.get(ctx, "/v1/sanctuary/monsters", pageParams(q), &resp); err != nil {
		return paging.Result[game.Monster]{}, err
	}

	items := make([]game.Monster, 0, len(resp.Items))
	for _, rec := range resp.Items {
		monster, err := monsterFromRecord(rec)
		if err != nil {
			c.log.Warn().Err(err).Msg("skipping malformed monster record")
			continue
		}
		items = append(items, monster)
	}

	return paging.Result[game.Monster]{Items: items, Total: resp.Total, TotalKnown: true}, nil
}

// ListRuns fetches one page of the dungeon run chronicle. The chronicle is
// open-ended: the server reports has_more instead of a total.
func (c *Client) ListRuns(ctx context.Context, q paging.Query) (paging.Result[game.DungeonRun], error) {
	var resp DungeonRunListResponse
	if err := c.get(ctx, "/v1/dungeon/runs", pageParams(q), &resp); err != nil {
		return paging.Result[game.DungeonRun]{}, err
	}

	items := make([]game.DungeonRun, 0, len(resp.Items))
	for _, rec := range resp.Items {
		run, err := runFromRecord(rec)
		if err != nil {
			c.log.Warn().Err(err).Msg("skipping malformed run record")
			continue
		}
		items = append(items, run)
	}

	return paging.Result[game.DungeonRun]{Items: items, HasMore: resp.HasMore}, nil
}

// ListExpeditions fetches one page of home-base expeditions (known total).
func (c *Client) ListExpeditions(ctx context.Context, q paging.Query) (paging.Result[game.Expedition], error) {
	var resp ExpeditionListResponse
	if err := c.get(ctx, "/v1/base/expeditions", pageParams(q), &resp); err != nil {
		return paging.Result[game.Expedition]{}, err
	}

	items := make([]game.Expedition, 0, len(resp.Items))
	for _, rec := range resp.Items {
		exp, err := expeditionFromRecord(rec)
		if err != nil {
			c.log.Warn().Err(err).Msg("skipping malformed expedition record")
			continue
		}
		items = append(items, exp)
	}

	return paging.Result[game.Expedition]{Items: items, Total: resp.Total, TotalKnown: true}, nil
}

// FetchAllMonsters retrieves the complete roster for aggregate displays
// (home-base stats). The first page establishes the total; the remaining
// pages are fetched concurrently and reassembled in page order.
func (c *Client) FetchAllMonsters(ctx context.Context, pageSize int) ([]game.Monster, error) {
	if pageSize < 1 {
		pageSize = paging.DefaultLimit
	}

	first, err := c.ListMonsters(ctx, paging.Query{Limit: pageSize})
	if err != nil {
		return nil, err
	}

	totalPages := paging.TotalPages(first.Total, pageSize)
	if totalPages <= 1 {
		return first.Items, nil
	}

	pages := make([][]game.Monster, totalPages)
	pages[0] = first.Items

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)
	for page := 2; page <= totalPages; page++ {
		g.Go(func() error {
			res, err := c.ListMonsters(gctx, paging.Query{
				Limit:  pageSize,
				Offset: paging.Offset(page, pageSize),
			})
			if err != nil {
				return err
			}
			pages[page-1] = res.Items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]game.Monster, 0, first.Total)
	for _, items := range pages {
		all = append(all, items...)
	}
	return all, nil
}

// MonsterSource adapts the roster endpoint to the pagination engine's
// data-source contract.
func (c *Client) MonsterSource() paging.Source[game.Monster] {
	return paging.SourceFunc[game.Monster](c.ListMonsters)
}

// RunSource adapts the dungeon chronicle endpoint (open-ended mode).
func (c *Client) RunSource() paging.Source[game.DungeonRun] {
	return paging.SourceFunc[game.DungeonRun](c.ListRuns)
}

// ExpeditionSource adapts the expedition endpoint.
func (c *Client) ExpeditionSource() paging.Source[game.Expedition] {
	return paging.SourceFunc[game.Expedition](c.ListExpeditions)
}

func pageParams(q paging.Query) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("offset", strconv.Itoa(q.Offset))
	return params
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("api: %s: %s (status %d)", path, errResp.Error, resp.StatusCode)
		}
		return fmt.Errorf("api: %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
