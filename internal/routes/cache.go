package routes

import (
	"context"
	"sync"
	"time"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

// DefaultTTL is how long a fetched route table is served without a refresh.
const DefaultTTL = 5 * time.Minute

// Cache is a single-slot, time-bounded memo of the route table. A read
// within the TTL of the last successful fetch returns the stored table
// without touching artisan; an older read refreshes synchronously first.
//
// A failed refresh leaves the previous table and timestamp in place: the
// error propagates and the slot is never replaced with an empty table.
type Cache struct {
	mu      sync.Mutex
	refresh Lister
	ttl     time.Duration
	now     func() time.Time

	table   []types.RouteRecord
	fetched time.Time
}

// NewCache builds a cache around the given refresh function.
func NewCache(refresh Lister, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		refresh: refresh,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Routes returns the current route table, refreshing it when the cached
// copy is older than the TTL. Refresh is serialized: concurrent callers
// never trigger duplicate artisan runs or observe a torn table/timestamp
// pair.
func (c *Cache) Routes(ctx context.Context) ([]types.RouteRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table != nil && c.now().Sub(c.fetched) < c.ttl {
		return c.table, nil
	}

	table, err := c.refresh(ctx)
	if err != nil {
		return nil, types.Collaboratorf(err, "unable to retrieve routes")
	}

	c.table = table
	c.fetched = c.now()
	return c.table, nil
}
