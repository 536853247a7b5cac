package matchups

import (
	"context"
	"time"

	"github.com/rs/xstats"
)

const statInvokeDuration = "function.invoke.duration"

// statFunction injects the stat client and times every invocation.
type statFunction struct {
	Function
	Name string
	Stat Stat
}

func (f *statFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = xstats.NewContext(ctx, f.Stat)
	start := time.Now()
	out, err := f.Function.Invoke(ctx, b)
	result := "success"
	if err != nil {
		result = "error"
	}
	f.Stat.Timing(statInvokeDuration, time.Since(start), "function:"+f.Name, "result:"+result)
	return out, err
}

// statFetcher wraps the function in a decorator that injects a stat client.
type statFetcher struct {
	Stat    Stat
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds stat client injection.
func (f *statFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &statFunction{Name: name, Stat: f.Stat, Function: r}, nil
}
