package domain

import (
	"github.com/asecurityteam/runhttp"
)

// The report pipeline logs and records metrics through the runtime's
// context-bound clients. Packages take these function types as fields so
// tests can swap in their own clients.
type (
	// Logger writes structured logevent events such as invalid-league and
	// report-failure.
	Logger = runhttp.Logger
	// LogFn returns the request scoped Logger.
	LogFn = runhttp.LogFn
	// Stat records the xstats counters and timings of Sleeper requests and
	// report builds.
	Stat = runhttp.Stat
	// StatFn returns the request scoped Stat client.
	StatFn = runhttp.StatFn
)
