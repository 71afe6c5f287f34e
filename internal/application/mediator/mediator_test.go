package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/lazysim/internal/application/mediator"
)

type pingQuery struct{ Value string }

type pingHandler struct{}

func (pingHandler) Handle(ctx context.Context, request mediator.Query) (mediator.Result, error) {
	q := request.(*pingQuery)
	if q.Value == "" {
		return nil, errors.New("empty ping")
	}
	return "pong:" + q.Value, nil
}

func TestMediator_SendDispatchesToHandler(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	// Act
	resp, err := m.Send(context.Background(), &pingQuery{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
}

func TestMediator_RegistrationErrors(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	err := mediator.RegisterHandler[*pingQuery](m, pingHandler{})
	assert.ErrorContains(t, err, "handler already registered")

	assert.EqualError(t, m.Register(nil, pingHandler{}), "query type cannot be nil")

	_, err = m.Send(context.Background(), struct{}{})
	assert.ErrorContains(t, err, "no handler registered")

	_, err = m.Send(context.Background(), nil)
	assert.EqualError(t, err, "query cannot be nil")
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	var calls []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Query, next mediator.HandlerFunc) (mediator.Result, error) {
			calls = append(calls, name+":before")
			resp, err := next(ctx, request)
			calls = append(calls, name+":after")
			return resp, err
		}
	}
	m.Use(trace("outer"))
	m.Use(trace("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingQuery{Value: "b"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}
