// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package controller implements the paginated filtered list controller
// shared by every catalog collection: it owns the pagination cursor, the
// accumulated de-duplicated result set, loading/error flags and the
// filter-change reset protocol.
package controller

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/stablio/api/internal/utils"
)

// Item is any record with a stable unique identity within its collection.
// De-duplication is identity equality, nothing else.
type Item interface {
	ItemID() string
}

// Filters is the committed filter/search state of one controller. Input
// text a user is still typing is not a Filters change; only an explicit
// submit commits Search.
type Filters struct {
	Search string
	Fields map[string]string
}

// clone keeps callers from mutating committed state through the map.
func (f Filters) clone() Filters {
	c := Filters{Search: strings.TrimSpace(f.Search)}
	if f.Fields != nil {
		c.Fields = make(map[string]string, len(f.Fields))
		for k, v := range f.Fields {
			c.Fields[k] = v
		}
	}
	return c
}

// FetchFunc loads one offset window under the given filters.
type FetchFunc[T Item] func(ctx context.Context, filters Filters, offset, limit int) ([]T, error)

// Snapshot is the controller state exposed to callers.
type Snapshot[T Item] struct {
	Items     []T
	IsLoading bool
	HasMore   bool
	Err       error
}

// ListController accumulates pages of one collection under a mutable
// filter state. All methods are safe for concurrent use; state mutations
// are applied in response order, and a filter change supersedes any
// in-flight fetch for the previous filters (its late response is
// discarded, never merged).
type ListController[T Item] struct {
	fetch    FetchFunc[T]
	pageSize int

	mu         sync.Mutex
	filters    Filters
	items      []T
	seen       map[string]struct{}
	offset     int
	hasMore    bool
	loading    bool
	err        error
	generation uint64
}

// NewListController builds a controller around a fetch function. No fetch
// is issued until SetFilters or LoadMore is called.
func NewListController[T Item](fetch FetchFunc[T], pageSize int) *ListController[T] {
	return &ListController[T]{
		fetch:    fetch,
		pageSize: pageSize,
		seen:     make(map[string]struct{}),
		hasMore:  true,
	}
}

// SetFilters atomically discards the accumulated result set, resets the
// cursor and fetches page 1 under the new filters. The reset happens
// before the fetch is issued, so no stale-filter items are visible while
// the new page is loading, and a slow response still in flight for the
// old filters can never append afterwards.
func (c *ListController[T]) SetFilters(ctx context.Context, filters Filters) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.filters = filters.clone()
	c.items = nil
	c.seen = make(map[string]struct{})
	c.offset = 0
	c.hasMore = true
	c.err = nil
	c.loading = true
	committed := c.filters
	c.mu.Unlock()

	fetched, err := c.fetch(ctx, committed, 0, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// Superseded by a newer SetFilters; drop this response.
		return nil
	}
	c.loading = false

	if err != nil {
		// A page-1 failure is a visible empty error state.
		c.items = nil
		c.seen = make(map[string]struct{})
		c.hasMore = false
		c.err = err
		return err
	}

	c.appendLocked(fetched)
	c.offset += c.pageSize
	c.hasMore = len(fetched) == c.pageSize
	return nil
}

// LoadMore fetches the next offset window under the current filters. It
// is a no-op while a fetch is in flight or when the collection is
// exhausted. A failure here preserves everything already accumulated and
// halts pagination until the caller re-triggers via SetFilters.
func (c *ListController[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	gen := c.generation
	offset := c.offset
	committed := c.filters
	c.mu.Unlock()

	fetched, err := c.fetch(ctx, committed, offset, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return nil
	}
	c.loading = false

	if err != nil {
		c.hasMore = false
		c.err = err
		return err
	}

	c.appendLocked(fetched)
	c.offset += c.pageSize
	// Strictly fewer rows than a page means the final page, even when
	// the store's visibility is non-contiguous and that is a false
	// negative.
	c.hasMore = len(fetched) == c.pageSize
	return nil
}

// appendLocked merges a fetched window, keeping first-seen order and
// dropping any id already present.
func (c *ListController[T]) appendLocked(fetched []T) {
	for _, item := range fetched {
		id := item.ItemID()
		if _, dup := c.seen[id]; dup {
			continue
		}
		c.seen[id] = struct{}{}
		c.items = append(c.items, item)
	}
}

// State returns a point-in-time copy of the controller state.
func (c *ListController[T]) State() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Items:     items,
		IsLoading: c.loading,
		HasMore:   c.hasMore,
		Err:       c.err,
	}
}

// SnapshotFunc loads the bounded snapshot backing a discover feed.
type SnapshotFunc[T Item] func(ctx context.Context, limit int) ([]T, error)

// HydrateFunc loads the rows for one window of ids. Return order is not
// significant; the controller restores the permutation order itself.
type HydrateFunc[T Item] func(ctx context.Context, ids []string) ([]T, error)

// DiscoverController serves the randomized presentation mode: one bounded
// snapshot is fetched, permuted once with an unbiased shuffle, then paged
// in fixed-size slices. A controller either holds the snapshot in memory
// (NewDiscoverController) or resumes a previously exported permutation and
// hydrates each window on demand (ResumeDiscoverController), so the same
// slicing rules serve both an in-process session and a stored order.
type DiscoverController[T Item] struct {
	load          SnapshotFunc[T]
	hydrate       HydrateFunc[T]
	pageSize      int
	snapshotLimit int
	rng           *rand.Rand

	mu     sync.Mutex
	order  []string
	byID   map[string]T
	cursor int
	loaded bool
	err    error
}

// NewDiscoverController builds a discover controller that fetches and
// shuffles its own snapshot on first use. rng may be nil; a deterministic
// source is only useful in tests.
func NewDiscoverController[T Item](load SnapshotFunc[T], pageSize, snapshotLimit int, rng *rand.Rand) *DiscoverController[T] {
	return &DiscoverController[T]{
		load:          load,
		pageSize:      pageSize,
		snapshotLimit: snapshotLimit,
		rng:           rng,
	}
}

// ResumeDiscoverController rebuilds a controller over an already shuffled
// id order, loading each window's rows through hydrate. Ids whose rows no
// longer exist simply drop out of their page.
func ResumeDiscoverController[T Item](order []string, hydrate HydrateFunc[T], pageSize int) *DiscoverController[T] {
	return &DiscoverController[T]{
		hydrate:  hydrate,
		pageSize: pageSize,
		order:    append([]string(nil), order...),
		loaded:   true,
	}
}

func (c *DiscoverController[T]) ensureLoadedLocked(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	snapshot, err := c.load(ctx, c.snapshotLimit)
	if err != nil {
		c.err = err
		return err
	}
	utils.Shuffle(snapshot, c.rng)

	c.order = make([]string, len(snapshot))
	c.byID = make(map[string]T, len(snapshot))
	for i, item := range snapshot {
		id := item.ItemID()
		c.order[i] = id
		c.byID[id] = item
	}
	c.loaded = true
	c.err = nil
	return nil
}

// Window returns the slice [offset, offset+pageSize) of the shuffled
// order, fetching the snapshot on first use. hasMore reports whether the
// slice end is still before the end of the permutation.
func (c *DiscoverController[T]) Window(ctx context.Context, offset int) ([]T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(ctx); err != nil {
		return nil, false, err
	}

	if offset < 0 {
		offset = 0
	}
	if offset > len(c.order) {
		offset = len(c.order)
	}
	end := offset + c.pageSize
	if end > len(c.order) {
		end = len(c.order)
	}
	window := c.order[offset:end]

	items, err := c.resolveLocked(ctx, window)
	if err != nil {
		c.err = err
		return nil, false, err
	}
	return items, end < len(c.order), nil
}

// Order exports the shuffled id permutation. Empty until the snapshot has
// been loaded.
func (c *DiscoverController[T]) Order() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}

// resolveLocked maps window ids back to rows, preserving the permutation
// order and dropping ids with no row.
func (c *DiscoverController[T]) resolveLocked(ctx context.Context, window []string) ([]T, error) {
	byID := c.byID
	if byID == nil {
		if len(window) == 0 {
			return []T{}, nil
		}
		rows, err := c.hydrate(ctx, window)
		if err != nil {
			return nil, err
		}
		byID = make(map[string]T, len(rows))
		for _, row := range rows {
			byID[row.ItemID()] = row
		}
	}

	items := make([]T, 0, len(window))
	for _, id := range window {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// LoadMore reveals the next slice of the shuffled snapshot, fetching and
// shuffling it on first call.
func (c *DiscoverController[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	end := c.cursor + c.pageSize
	if end > len(c.order) {
		end = len(c.order)
	}
	c.cursor = end
	return nil
}

// State returns the revealed slice so far; HasMore is whether the cursor
// has reached the snapshot length.
func (c *DiscoverController[T]) State() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, _ := c.resolveLocked(context.Background(), c.order[:c.cursor])
	return Snapshot[T]{
		Items:   items,
		HasMore: c.cursor < len(c.order),
		Err:     c.err,
	}
}
