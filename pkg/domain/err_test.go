package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Error(t *testing.T) {
	type fields struct {
		ID string
	}
	tests := []struct {
		name   string
		fields fields
		want   string
	}{
		{
			name:   "missing ID",
			fields: fields{},
			want:   "resource () not found",
		},
		{
			name:   "containing ID",
			fields: fields{ID: "matchups"},
			want:   "resource (matchups) not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NotFoundError{
				ID: tt.fields.ID,
			}
			if got := e.Error(); got != tt.want {
				t.Errorf("NotFoundError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidLeagueError_Error(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "missing key",
			key:  "",
			want: "league () is not configured",
		},
		{
			name: "unknown key",
			key:  "not_a_real_league",
			want: "league (not_a_real_league) is not configured",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := InvalidLeagueError{Key: tt.key}
			if got := e.Error(); got != tt.want {
				t.Errorf("InvalidLeagueError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpstreamFetchError_Error(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  UpstreamFetchError
		want string
	}{
		{
			name: "league resource",
			err:  UpstreamFetchError{Resource: "rosters", LeagueID: "123", Err: cause},
			want: "fetch rosters for league 123: connection refused",
		},
		{
			name: "weekly resource",
			err:  UpstreamFetchError{Resource: "matchups", LeagueID: "123", Week: 4, Err: cause},
			want: "fetch matchups for league 123 week 4: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUpstreamFetchError_Unwrap(t *testing.T) {
	var err error = UpstreamFetchError{Resource: "users", LeagueID: "1", Err: context.Canceled}
	assert.True(t, errors.Is(err, context.Canceled))

	var target UpstreamFetchError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "users", target.Resource)
}
