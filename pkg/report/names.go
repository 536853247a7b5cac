package report

import (
	"github.com/asecurityteam/matchups/pkg/domain"
)

// RosterNames maps each roster to the display name of its owner. For every
// user the first roster owned by that user is used. Rosters without an
// owner, and owners without a display name, are left out.
func RosterNames(rosters []domain.Roster, users []domain.User) map[int]string {
	names := make(map[int]string, len(rosters))
	for _, user := range users {
		for _, roster := range rosters {
			if roster.OwnerID == "" || roster.OwnerID != user.UserID {
				continue
			}
			if user.DisplayName != "" {
				names[roster.RosterID] = user.DisplayName
			}
			break
		}
	}
	return names
}
