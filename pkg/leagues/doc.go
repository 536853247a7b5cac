// Package leagues contains the registry that maps the short league names
// accepted by the API onto upstream league identifiers. The registry is
// built once at startup from configuration and never changes afterwards.
package leagues
