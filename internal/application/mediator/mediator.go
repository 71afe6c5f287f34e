package mediator

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Mediator dispatches queries to their handlers
type Mediator interface {
	Send(ctx context.Context, query Query) (Result, error)
	Register(queryType reflect.Type, handler QueryHandler) error
	Use(middleware Middleware)
}

type mediator struct {
	mu          sync.RWMutex
	handlers    map[reflect.Type]QueryHandler
	middlewares []Middleware
}

// NewMediator creates a new mediator instance
func NewMediator() Mediator {
	return &mediator{
		handlers: make(map[reflect.Type]QueryHandler),
	}
}

// Register registers a handler for a specific query type
func (m *mediator) Register(queryType reflect.Type, handler QueryHandler) error {
	if queryType == nil {
		return fmt.Errorf("query type cannot be nil")
	}

	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.handlers[queryType]; exists {
		return fmt.Errorf("handler already registered for type %s", queryType)
	}

	m.handlers[queryType] = handler
	return nil
}

// Use appends a middleware. The first registered middleware runs outermost.
func (m *mediator) Use(middleware Middleware) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.middlewares = append(m.middlewares, middleware)
}

// Send dispatches a query to its registered handler through the middleware chain
func (m *mediator) Send(ctx context.Context, query Query) (Result, error) {
	if query == nil {
		return nil, fmt.Errorf("query cannot be nil")
	}

	queryType := reflect.TypeOf(query)

	m.mu.RLock()
	handler, ok := m.handlers[queryType]
	middlewares := m.middlewares
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no handler registered for type %s", queryType)
	}

	next := HandlerFunc(handler.Handle)
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw, inner := middlewares[i], next
		next = func(ctx context.Context, query Query) (Result, error) {
			return mw(ctx, query, inner)
		}
	}

	return next(ctx, query)
}

// RegisterHandler registers a handler with the query type inferred from T
func RegisterHandler[T Query](m Mediator, handler QueryHandler) error {
	var zero T
	return m.Register(reflect.TypeOf(zero), handler)
}
