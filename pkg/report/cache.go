package report

import (
	"strconv"
	"time"

	"github.com/asecurityteam/matchups/pkg/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache memoizes the matchups of weeks that precede a report's target
// week. It is safe for concurrent use by many requests.
type Cache struct {
	lru *expirable.LRU[string, []domain.MatchupEntry]
}

// NewCache holds up to size weeks for at most ttl each. A ttl of zero keeps
// entries until they are evicted by size.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, []domain.MatchupEntry](size, nil, ttl)}
}

func cacheKey(leagueID string, week int) string {
	return leagueID + "/" + strconv.Itoa(week)
}

// Get returns the cached matchups of a league week.
func (c *Cache) Get(leagueID string, week int) ([]domain.MatchupEntry, bool) {
	return c.lru.Get(cacheKey(leagueID, week))
}

// Add stores the matchups of a league week.
func (c *Cache) Add(leagueID string, week int, entries []domain.MatchupEntry) {
	c.lru.Add(cacheKey(leagueID, week), entries)
}

// Len reports the number of cached weeks.
func (c *Cache) Len() int {
	return c.lru.Len()
}
