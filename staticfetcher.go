package matchups

import (
	"context"
	"sort"
)

// StaticFetcher resolves functions from a mapping fixed at build time.
// Every function runs in process and shares the runtime's resources, so
// adding or changing a function means shipping a new build.
type StaticFetcher struct {
	// Functions maps invocation names to functions. Names are case
	// sensitive, as they are in the Lambda Invoke API.
	Functions map[string]Function
}

// Fetch resolves the name using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	h, ok := f.Functions[name]
	if !ok {
		return nil, NotFoundError{ID: name}
	}
	return h, nil
}

// Names lists the registered function names in sorted order.
func (f *StaticFetcher) Names() []string {
	names := make([]string, 0, len(f.Functions))
	for name := range f.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
