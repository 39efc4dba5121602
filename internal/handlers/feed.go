package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brewlog-app/brewlog/internal/feed"
	"github.com/brewlog-app/brewlog/internal/services"
)

const feedSessionKey = "feed_id"

// Pagers for sessions idle longer than this are dropped; the next request
// from that session starts a fresh feed.
const feedIdleTTL = time.Hour

type feedEntry struct {
	feed     *feed.Feed
	lastSeen time.Time
}

// FeedHandler serves the global ratings feed. Each browser session gets its
// own pager so "load more" positions do not bleed between viewers.
type FeedHandler struct {
	mu            sync.Mutex
	feeds         map[string]*feedEntry
	ratingService *services.RatingService
	pageSize      int
}

func NewFeedHandler(ratingService *services.RatingService, pageSize int) *FeedHandler {
	return &FeedHandler{
		feeds:         make(map[string]*feedEntry),
		ratingService: ratingService,
		pageSize:      pageSize,
	}
}

type FeedResponse struct {
	Items     []feed.Item `json:"items"`
	HasMore   bool        `json:"has_more"`
	Searching bool        `json:"searching"`
}

type FeedSearchRequest struct {
	Query string `json:"query"`
}

// @Summary Current feed state
// @Description Returns the rows loaded so far for this session, fetching the first page on first visit.
// @Tags feed
// @Produce json
// @Success 200 {object} FeedResponse
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	f := h.sessionFeed(c)
	items := f.Items()
	if len(items) == 0 && f.HasMore() && !f.Searching() {
		items = f.LoadMore()
	}
	c.JSON(http.StatusOK, h.response(f, items))
}

// @Summary Load the next feed page
// @Tags feed
// @Produce json
// @Success 200 {object} FeedResponse
// @Router /feed/more [post]
func (h *FeedHandler) LoadMore(c *gin.Context) {
	f := h.sessionFeed(c)
	c.JSON(http.StatusOK, h.response(f, f.LoadMore()))
}

// @Summary Search the feed
// @Description Replaces the feed with matching public ratings. An empty query clears search mode and reloads the first page.
// @Tags feed
// @Accept json
// @Produce json
// @Param request body FeedSearchRequest true "Search term"
// @Success 200 {object} FeedResponse
// @Failure 400 {object} ErrorResponse
// @Router /feed/search [post]
func (h *FeedHandler) Search(c *gin.Context) {
	var req FeedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	f := h.sessionFeed(c)
	c.JSON(http.StatusOK, h.response(f, f.Search(req.Query)))
}

func (h *FeedHandler) response(f *feed.Feed, items []feed.Item) FeedResponse {
	return FeedResponse{
		Items:     items,
		HasMore:   f.HasMore(),
		Searching: f.Searching(),
	}
}

func (h *FeedHandler) sessionFeed(c *gin.Context) *feed.Feed {
	session := sessions.Default(c)

	id, _ := session.Get(feedSessionKey).(string)
	if id == "" {
		id = uuid.NewString()
		session.Set(feedSessionKey, id)
		if err := session.Save(); err != nil {
			// Fall through with the fresh ID; the pager just won't persist
			// across requests for this client.
			id = uuid.NewString()
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	now := time.Now()
	h.evictIdle(now)
	entry, ok := h.feeds[id]
	if !ok {
		entry = &feedEntry{feed: feed.New(h.ratingService, h.pageSize)}
		h.feeds[id] = entry
	}
	entry.lastSeen = now
	return entry.feed
}

// evictIdle drops pagers for sessions that have gone quiet. Caller holds mu.
func (h *FeedHandler) evictIdle(now time.Time) {
	for id, entry := range h.feeds {
		if now.Sub(entry.lastSeen) > feedIdleTTL {
			delete(h.feeds, id)
		}
	}
}
