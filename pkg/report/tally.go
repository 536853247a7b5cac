package report

import (
	"github.com/asecurityteam/matchups/pkg/domain"
)

// Tally is the win/loss record of every roster, keyed by roster id.
type Tally map[int]domain.Record

// NewTally starts every roster at 0-0, whether or not it ever plays.
func NewTally(rosters []domain.Roster) Tally {
	t := make(Tally, len(rosters))
	for _, roster := range rosters {
		t[roster.RosterID] = domain.Record{}
	}
	return t
}

// Apply scores each pair. The strictly higher score wins and ties count for
// neither side. Rosters missing from the tally are added as they are seen.
func (t Tally) Apply(pairs []domain.MatchupPair) {
	for _, pair := range pairs {
		a, b := t[pair.A.RosterID], t[pair.B.RosterID]
		switch {
		case pair.A.Points > pair.B.Points:
			a.Wins++
			b.Losses++
		case pair.B.Points > pair.A.Points:
			b.Wins++
			a.Losses++
		}
		t[pair.A.RosterID] = a
		t[pair.B.RosterID] = b
	}
}
