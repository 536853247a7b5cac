package leagues

import (
	"fmt"
	"sort"
	"strings"

	"github.com/asecurityteam/matchups/pkg/domain"
)

// Registry is an immutable, case-insensitive mapping of league names to
// league identifiers.
type Registry struct {
	ids map[string]string
}

// New copies the given mapping into a Registry. Names are folded to lower
// case so two names that differ only by case are rejected.
func New(leagues map[string]string) (*Registry, error) {
	ids := make(map[string]string, len(leagues))
	for name, id := range leagues {
		key := strings.ToLower(strings.TrimSpace(name))
		id = strings.TrimSpace(id)
		if key == "" {
			return nil, fmt.Errorf("league with id %q has an empty name", id)
		}
		if id == "" {
			return nil, fmt.Errorf("league %q has an empty id", name)
		}
		if _, ok := ids[key]; ok {
			return nil, fmt.Errorf("league %q is defined more than once", key)
		}
		ids[key] = id
	}
	return &Registry{ids: ids}, nil
}

// Parse builds a Registry from entries formatted as name:id or name=id.
func Parse(entries []string) (*Registry, error) {
	leagues := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, id, ok := strings.Cut(entry, ":")
		if !ok {
			name, id, ok = strings.Cut(entry, "=")
		}
		if !ok {
			return nil, fmt.Errorf("league entry %q must be formatted as name:id", entry)
		}
		if _, dup := leagues[strings.ToLower(strings.TrimSpace(name))]; dup {
			return nil, fmt.Errorf("league %q is defined more than once", name)
		}
		leagues[strings.ToLower(strings.TrimSpace(name))] = id
	}
	return New(leagues)
}

// Resolve returns the league identifier for the key. Unknown and empty keys
// produce a domain.InvalidLeagueError.
func (r *Registry) Resolve(key string) (string, error) {
	id, ok := r.ids[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return "", domain.InvalidLeagueError{Key: key}
	}
	return id, nil
}

// Names returns the configured league names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ids))
	for name := range r.ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
