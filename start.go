package matchups

import (
	"context"
	"fmt"
	"os"
	"strings"

	v1 "github.com/asecurityteam/matchups/pkg/handlers/v1"
	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/xstats"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server
	// that serves the report and implements parts of the Lambda API.
	BuildModeHTTP = "http"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK with the matchups API Gateway function.
	BuildModeLambda = "lambda"

	// FunctionName is the name of the matchups function in the Invoke API.
	FunctionName = "matchups"

	envPrefix = "MATCHUPS"
)

var (
	// BuildMode determines the behavior of the Start method. The suggested
	// way to set it is with build variables by adding
	// `-ldflags "-X github.com/asecurityteam/matchups.BuildMode=<value>"`
	// to `go build` or `go run` commands. Alternatively, call StartMode
	// to pass the mode in code.
	BuildMode = BuildModeHTTP

	// LambdaStartFn starts the native lambda runtime. It is a variable
	// so tests can replace the blocking SDK call.
	LambdaStartFn = lambda.StartHandler
)

func newMatchups(ctx context.Context, s settings.Source) (*v1.Matchups, error) {
	h := new(v1.Matchups)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{envPrefix}},
		NewReportComponent(),
		h,
	)
	return h, err
}

func newFetcher(h *v1.Matchups) *StaticFetcher {
	return &StaticFetcher{Functions: map[string]Function{
		FunctionName: NewFunction(h.HandleEvent),
	}}
}

// New generates the HTTP runtime with the report route, the Invoke API and
// the health check bound.
func New(ctx context.Context, s settings.Source) (*runhttp.Runtime, error) {
	h, err := newMatchups(ctx, s)
	if err != nil {
		return nil, err
	}
	router := NewRouter(&RouterConfig{
		Fetcher:  newFetcher(h),
		Matchups: h,
	})
	rtC := runhttp.NewComponent().WithHandler(router)
	rt := new(runhttp.Runtime)
	err = settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{envPrefix}},
		rtC,
		rt,
	)
	return rt, err
}

// Start runs the service in the configured BuildMode.
func Start(ctx context.Context, s settings.Source) error {
	return StartMode(ctx, s, BuildMode)
}

// StartMode works just like Start but allows for explicit passing of the
// build mode.
func StartMode(ctx context.Context, s settings.Source, mode string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s)
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source) error {
	rt, err := New(ctx, s)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartLambda runs the matchups function in the native lambda runtime.
// Every invocation receives its own logger and the process stat client.
func StartLambda(ctx context.Context, s settings.Source) error {
	h, err := newMatchups(ctx, s)
	if err != nil {
		return err
	}
	var fetcher Fetcher = newFetcher(h)
	fetcher = &loggingFetcher{
		Logger:  logevent.New(logevent.Config{Level: "INFO", Output: os.Stdout}),
		Fetcher: fetcher,
	}
	fetcher = &statFetcher{Stat: xstats.FromContext(ctx), Fetcher: fetcher}
	fn, err := fetcher.Fetch(ctx, FunctionName)
	if err != nil {
		return err
	}
	LambdaStartFn(fn)
	return nil
}
