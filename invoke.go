package matchups

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
)

// bgContext keeps the values of a request context while dropping its
// deadline and cancellation. Event invocations run after the HTTP handler
// has returned and still need the request scoped logger and stat client.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// lambdaError is the error body returned by the Lambda Invoke API.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

type invokeFailure struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invoke-failure"`
}

// Invoke emulates the AWS Lambda Invoke API so functions such as the
// matchups API Gateway handler can be exercised locally:
//
//	curl --request POST \
//		--data '{"queryStringParameters":{"league":"main","week":"3"}}' \
//		localhost:8080/2015-03-31/functions/matchups/invocations
//
// The Qualifier parameter and the Tail log type are not supported and the
// executed version is always reported as "latest".
type Invoke struct {
	LogFn      LogFn
	StatFn     StatFn
	URLParamFn URLParamFn
	Fetcher    Fetcher
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	fn, errFn := h.Fetcher.Fetch(r.Context(), fnName)
	var notFound NotFoundError
	switch {
	case errFn == nil:
	case errors.As(errFn, &notFound):
		writeLambdaError(w, http.StatusNotFound, errFn)
		return
	default:
		h.LogFn(r.Context()).Error(invokeFailure{Function: fnName, Reason: errFn.Error()})
		writeLambdaError(w, http.StatusInternalServerError, errFn)
		return
	}

	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse
	}
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		writeLambdaError(w, http.StatusBadRequest, errRead)
		return
	}
	w.Header().Set(invocationVersionHeader, "latest")

	ctx := r.Context()
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
	case invocationTypeEvent:
		ctx = &bgContext{Context: context.Background(), Values: ctx}
		go func() {
			if _, err := fn.Invoke(ctx, b); err != nil {
				h.LogFn(ctx).Error(invokeFailure{Function: fnName, Reason: err.Error()})
			}
		}()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		rb, errInvoke := fn.Invoke(ctx, b)
		statusCode := statusFromError(errInvoke)
		switch {
		case statusCode > 499:
			w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
		case statusCode > 299:
			w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
		}
		if errInvoke != nil {
			writeLambdaError(w, statusCode, errInvoke)
			return
		}
		w.WriteHeader(statusCode)
		if len(rb) > 0 {
			_, _ = w.Write(rb)
		}
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", fnType),
			Type:       "InvalidParameterValueException",
			StackTrace: errResponseStackTrace,
		})
	}
}

// errResponseStackTrace is shared by every error response because stack
// traces are never collected.
var errResponseStackTrace = []string{}

func writeLambdaError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(responseFromError(err))
}

func responseFromError(err error) lambdaError {
	errType := reflect.TypeOf(err)
	errTypeName := errType.Name()
	if errType.Kind() == reflect.Ptr {
		errTypeName = errType.Elem().Name()
	}
	return lambdaError{
		Message:    err.Error(),
		Type:       errTypeName,
		StackTrace: errResponseStackTrace,
	}
}

// statusFromError maps payload decoding failures to a client error and
// everything else to a server error.
func statusFromError(err error) int {
	var syntaxErr *json.SyntaxError
	var unmarshalTypeErr *json.UnmarshalTypeError
	var invalidUnmarshalErr *json.InvalidUnmarshalError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &syntaxErr),
		errors.As(err, &unmarshalTypeErr),
		errors.As(err, &invalidUnmarshalErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
