package matchups

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// Help generates the environment variable help output.
func Help() string {
	rtGroup, _ := settings.GroupFromComponent(runhttp.NewComponent())
	reportGroup, _ := settings.GroupFromComponent(NewReportComponent())
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   envPrefix,
		GroupValues: []settings.Group{reportGroup, rtGroup},
	}})
}
