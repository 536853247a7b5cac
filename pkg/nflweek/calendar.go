// Package nflweek derives the regular season week used when a request does
// not name one.
package nflweek

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// FirstWeek and LastWeek bound the regular season.
	FirstWeek = 1
	LastWeek  = 18

	// DefaultSeasonStart is the kickoff of week one used when no other
	// value is configured.
	DefaultSeasonStart = "2024-09-05T00:00:00Z"
)

// Calendar computes the current week relative to a season start.
type Calendar struct {
	SeasonStart time.Time
	// Now defaults to time.Now when nil.
	Now func() time.Time
}

// NewCalendar parses an RFC3339 season start.
func NewCalendar(seasonStart string) (*Calendar, error) {
	start, err := time.Parse(time.RFC3339, seasonStart)
	if err != nil {
		return nil, err
	}
	return &Calendar{SeasonStart: start}, nil
}

// Current returns the number of whole weeks elapsed since the season start,
// plus one, clamped to the regular season.
func (c *Calendar) Current() int {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	days := math.Floor(now().Sub(c.SeasonStart).Hours() / 24)
	week := int(math.Floor(days/7)) + 1
	return clamp(week)
}

// Resolve interprets a raw week parameter. The leading integer of the value
// is used, so "3" and "3rd" both name week three. Empty, non-numeric and
// non-positive values fall back to Current. Values past the last week are
// clamped to it.
func (c *Calendar) Resolve(raw string) int {
	week, ok := leadingInt(raw)
	if !ok || week < FirstWeek {
		return c.Current()
	}
	return clamp(week)
}

func leadingInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(raw[:end])
	if err != nil {
		// out of range for int
		return 0, false
	}
	return v, true
}

func clamp(week int) int {
	if week < FirstWeek {
		return FirstWeek
	}
	if week > LastWeek {
		return LastWeek
	}
	return week
}
