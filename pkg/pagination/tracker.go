package pagination

import "sync"

// Tracker accumulates an item total for endpoints that page without ever
// reporting a total count. It counts each page at most once by keeping a
// high-water mark of the furthest page observed: paging back and forward
// again over known pages never changes the total. Items deleted on pages
// already visited are not corrected for, so the total can overcount after
// deletions.
type Tracker struct {
	mu        sync.Mutex
	pageSize  int
	totalSeen int
	highWater int
	lastCount int
}

// NewTracker creates a tracker for the given page size.
func NewTracker(pageSize int) *Tracker {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Tracker{pageSize: pageSize}
}

// PageSize returns the page size the tracker was built for.
func (t *Tracker) PageSize() int {
	return t.pageSize
}

// Observe records a page response of count items.
func (t *Tracker) Observe(page, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastCount = count
	if page <= 1 {
		// Returning to the first page resets the running total.
		t.totalSeen = count
		t.highWater = 1
		return
	}
	if page > t.highWater {
		t.totalSeen += count
		t.highWater = page
	}
}

// TotalSeen returns the accumulated item count.
func (t *Tracker) TotalSeen() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalSeen
}

// HighWater returns the furthest page observed.
func (t *Tracker) HighWater() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highWater
}

// HasNext reports whether another page is expected: a full page signals more
// data, a short page signals end-of-data.
func (t *Tracker) HasNext() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastCount == t.pageSize
}
