package api

import "context"

// Transport abstracts the outbound HTTP verbs used by the authentication
// flow. Implementations decode the response body into out (a pointer),
// or fail with *errx.Error. A nil out discards the body.
type Transport interface {
	Post(ctx context.Context, path string, body any, out any) error
	Get(ctx context.Context, path string, out any) error
	Put(ctx context.Context, path string, body any, out any) error
}
