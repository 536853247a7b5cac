// Package report builds the weekly matchup summary for a league. A report
// is assembled from rosters, users and the matchups of every week up to the
// requested one, then rendered as markdown.
//
// All state is request scoped. The only value that may outlive a request is
// the optional Cache of prior week matchups.
package report
