// Package feed implements the global ratings feed pager: offset-based "load
// more" paging with duplicate suppression, and a one-shot search mode that
// replaces the list and disables paging.
package feed

import (
	"strings"
	"sync"

	"github.com/brewlog-app/brewlog/internal/services"
	"github.com/google/uuid"
)

// Item is one displayed feed row. ClientKey is a synthetic per-load key,
// distinct from the persisted rating ID, so list rendering stays stable even
// when the same row shows up again across a page boundary.
type Item struct {
	services.EnrichedRating
	ClientKey string `json:"client_key"`
}

// Feed holds the paging state for one viewer of the global feed. Methods are
// serialized behind a mutex so an overlapping load cannot interleave with a
// mode switch and apply stale results.
type Feed struct {
	mu       sync.Mutex
	ratings  *services.RatingService
	pageSize int

	page    int
	query   string
	items   []Item
	seen    map[string]bool
	hasMore bool
}

func New(ratings *services.RatingService, pageSize int) *Feed {
	return &Feed{
		ratings:  ratings,
		pageSize: pageSize,
		seen:     make(map[string]bool),
		hasMore:  true,
	}
}

// LoadMore fetches the next page and appends rows not already displayed. In
// search mode it is a no-op: search results are not paginated.
func (f *Feed) LoadMore() []Item {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.query != "" {
		return f.snapshot()
	}
	f.loadPage()
	return f.snapshot()
}

// Search replaces the displayed list with matches for the term. An empty term
// clears search mode, resets to page zero, and refetches from the start.
func (f *Feed) Search(query string) []Item {
	f.mu.Lock()
	defer f.mu.Unlock()

	query = strings.TrimSpace(query)
	if query == "" {
		f.reset()
		f.loadPage()
		return f.snapshot()
	}

	f.query = query
	results := f.ratings.SearchGlobalRatings(query)
	f.items = make([]Item, 0, len(results))
	f.seen = make(map[string]bool)
	for _, rating := range results {
		if f.seen[rating.ID] {
			continue
		}
		f.seen[rating.ID] = true
		f.items = append(f.items, newItem(rating))
	}
	f.hasMore = false
	return f.snapshot()
}

func (f *Feed) Items() []Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

func (f *Feed) Searching() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query != ""
}

func (f *Feed) loadPage() {
	batch := f.ratings.GetGlobalRatings(f.pageSize, f.page*f.pageSize)

	for _, rating := range batch {
		if f.seen[rating.ID] {
			continue
		}
		f.seen[rating.ID] = true
		f.items = append(f.items, newItem(rating))
	}

	// A short page means the feed is exhausted.
	f.hasMore = len(batch) == f.pageSize
	f.page++
}

func (f *Feed) reset() {
	f.page = 0
	f.query = ""
	f.items = nil
	f.seen = make(map[string]bool)
	f.hasMore = true
}

func (f *Feed) snapshot() []Item {
	items := make([]Item, len(f.items))
	copy(items, f.items)
	return items
}

func newItem(rating services.EnrichedRating) Item {
	return Item{
		EnrichedRating: rating,
		ClientKey:      rating.ID + "-" + uuid.NewString(),
	}
}
