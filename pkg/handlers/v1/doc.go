// Package v1 contains all handlers used to service the version 1.X.X API of
// the matchups service. The same responses are produced whether a request
// arrives as a plain HTTP call or as an API Gateway proxy event.
package v1
