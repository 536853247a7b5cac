package matchups

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asecurityteam/settings/v2"
	"github.com/stretchr/testify/require"
)

const testFixture = `{
  "leagues": {
    "42": {
      "rosters": [{"roster_id": 1, "owner_id": "u1"}, {"roster_id": 2, "owner_id": "u2"}],
      "users": [{"user_id": "u1", "display_name": "Alice"}, {"user_id": "u2", "display_name": "Bob"}],
      "matchups": {
        "1": [{"matchup_id": 1, "roster_id": 1, "points": 90}, {"matchup_id": 1, "roster_id": 2, "points": 80}],
        "2": [{"matchup_id": 3, "roster_id": 2, "points": 101.5}, {"matchup_id": 3, "roster_id": 1, "points": 99}]
      }
    }
  }
}`

const testWeekTwo = "## Week 2 Matchups\n\n🏈 🏆 **Bob (0-1) 101.5** vs Alice (1-0) 99.0\n\n"

func writeFixture(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "league.json")
	require.NoError(t, os.WriteFile(path, []byte(testFixture), 0o600))
	return path
}

// fixtureSource serves the fixture league as "dynasty". Each extra
// KEY=value entry replaces the default for that key.
func fixtureSource(t *testing.T, extra ...string) settings.Source {
	env := map[string]string{
		"MATCHUPS_REPORT_LEAGUES":             "dynasty:42",
		"MATCHUPS_REPORT_FIXTURE":             writeFixture(t),
		"MATCHUPS_RUNTIME_HTTPSERVER_ADDRESS": "localhost:0",
		"MATCHUPS_RUNTIME_LOGGER_OUTPUT":      "NULL",
		"MATCHUPS_RUNTIME_STATS_OUTPUT":       "NULL",
	}
	for _, e := range extra {
		k, v, _ := strings.Cut(e, "=")
		env[k] = v
	}
	list := make([]string, 0, len(env))
	for k, v := range env {
		list = append(list, k+"="+v)
	}
	source, err := settings.NewEnvSource(list)
	require.NoError(t, err)
	return source
}
