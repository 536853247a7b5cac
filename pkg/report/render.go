package report

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/asecurityteam/matchups/pkg/domain"
)

const (
	fallbackNameA = "Team A"
	fallbackNameB = "Team B"
)

// Render formats the week's pairs as markdown. A nil records tally omits
// win-loss records from every line.
func Render(week int, pairs []domain.MatchupPair, names map[int]string, records Tally) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Week %d Matchups\n\n", week)
	for _, pair := range pairs {
		left := side(pair.A, name(names, pair.A.RosterID, fallbackNameA), records, pair.A.Points > pair.B.Points)
		right := side(pair.B, name(names, pair.B.RosterID, fallbackNameB), records, pair.B.Points > pair.A.Points)
		fmt.Fprintf(&sb, "🏈 %s vs %s\n\n", left, right)
	}
	return sb.String()
}

func name(names map[int]string, rosterID int, fallback string) string {
	if n, ok := names[rosterID]; ok {
		return n
	}
	return fallback
}

func side(entry domain.MatchupEntry, name string, records Tally, winner bool) string {
	text := name
	if records != nil {
		r := records[entry.RosterID]
		text = fmt.Sprintf("%s (%d-%d)", name, r.Wins, r.Losses)
	}
	text += " " + score(entry.Points)
	if winner {
		return "🏆 **" + text + "**"
	}
	return text
}

// score formats points with one decimal. The exact value of the float is
// rounded to the nearest tenth and an exact half rounds away from zero, so
// 112.25 prints as 112.3 while 0.15, stored just below the half, prints
// as 0.1.
func score(points float64) string {
	if math.IsNaN(points) || math.IsInf(points, 0) {
		return strconv.FormatFloat(points, 'f', 1, 64)
	}
	tenths := new(big.Rat).SetFloat64(math.Abs(points))
	tenths.Mul(tenths, big.NewRat(10, 1))
	tenths.Add(tenths, big.NewRat(1, 2))
	n := new(big.Int).Quo(tenths.Num(), tenths.Denom())

	digits := n.String()
	if len(digits) < 2 {
		digits = "0" + digits
	}
	sign := ""
	if points < 0 {
		sign = "-"
	}
	return sign + digits[:len(digits)-1] + "." + digits[len(digits)-1:]
}
