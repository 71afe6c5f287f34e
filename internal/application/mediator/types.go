package mediator

import "context"

// Query is a read-only request. Queries never mutate snapshots, so handlers
// are free to run them concurrently and repeat them.
type Query interface{}

// Result is what a query handler returns
type Result interface{}

// QueryHandler answers one query type
type QueryHandler interface {
	Handle(ctx context.Context, query Query) (Result, error)
}

// HandlerFunc adapts a function to the handler signature
type HandlerFunc func(ctx context.Context, query Query) (Result, error)

// Middleware runs around every query, e.g. timeouts and metrics
type Middleware func(ctx context.Context, query Query, next HandlerFunc) (Result, error)
