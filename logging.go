package matchups

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
)

// loggingFunction gives each invocation its own copy of the logger, tagged
// with the invoked function name.
type loggingFunction struct {
	Function
	Name   string
	Logger Logger
}

func (f *loggingFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	logger := f.Logger.Copy()
	logger.SetField("function", f.Name)
	ctx = logevent.NewContext(ctx, logger)
	return f.Function.Invoke(ctx, b)
}

// loggingFetcher wraps the function in a decorator that injects a logger.
type loggingFetcher struct {
	Logger  Logger
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds log injection.
func (f *loggingFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &loggingFunction{Name: name, Logger: f.Logger, Function: r}, nil
}
