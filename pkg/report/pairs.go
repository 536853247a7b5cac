package report

import (
	"github.com/asecurityteam/matchups/pkg/domain"
)

// Pairs groups entries by matchup id and returns one pair per group in the
// order each id first appears. Entries with a zero id are byes and groups
// with fewer than two entries are dropped. When a group holds more than two
// entries only the first two are paired.
func Pairs(entries []domain.MatchupEntry) []domain.MatchupPair {
	order := make([]int, 0, len(entries)/2)
	groups := make(map[int][]domain.MatchupEntry, len(entries)/2)
	for _, entry := range entries {
		if entry.MatchupID == 0 {
			continue
		}
		if _, ok := groups[entry.MatchupID]; !ok {
			order = append(order, entry.MatchupID)
		}
		groups[entry.MatchupID] = append(groups[entry.MatchupID], entry)
	}

	pairs := make([]domain.MatchupPair, 0, len(order))
	for _, id := range order {
		group := groups[id]
		if len(group) < 2 {
			continue
		}
		pairs = append(pairs, domain.MatchupPair{A: group[0], B: group[1]})
	}
	return pairs
}
