// Package handlers is a container for the public HTTP and API Gateway
// handlers of the service. The http.Handler instances defined here are
// mounted by the router while the event handlers are registered as Lambda
// functions.
package handlers
