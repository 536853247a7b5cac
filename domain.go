package matchups

import (
	"context"

	"github.com/asecurityteam/matchups/pkg/domain"
	"github.com/aws/aws-lambda-go/lambda"
)

// Logger is the structured event logger handed to each invocation.
type Logger = domain.Logger

// LogFn extracts a logger from the context.
type LogFn = domain.LogFn

// Stat is the metrics client handed to each invocation.
type Stat = domain.Stat

// StatFn extracts a metrics client from the context.
type StatFn = domain.StatFn

// NotFoundError is returned by a Fetcher when no function has the
// requested name.
type NotFoundError = domain.NotFoundError

// Function is a lambda.Handler that also exposes the Go function it was
// built from.
type Function interface {
	lambda.Handler
	Source() interface{}
}

// URLParamFn extracts a named URL parameter from a request context. This
// keeps handlers independent of the mux in use.
type URLParamFn func(ctx context.Context, name string) string

// Fetcher looks up the Function registered under a name.
type Fetcher interface {
	// Fetch returns the named Function or a NotFoundError.
	Fetch(ctx context.Context, name string) (Function, error)
}
