// Package resolve picks, for every category, the first provider that can
// answer on this machine and turns the answer into display lines.
package resolve

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// Provider is one way of obtaining a raw fact
type Provider[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (T, error)
}

// P builds a provider from a name and a fetch function
func P[T any](name string, fetch func(context.Context) (T, error)) Provider[T] {
	return Provider[T]{Name: name, Fetch: fetch}
}

// first tries providers in order and returns the first success
func first[T any](ctx context.Context, log logrus.FieldLogger, cat models.Category, providers []Provider[T]) models.Value[T] {
	for _, p := range providers {
		v, err := call(ctx, p)
		if err == nil {
			return models.Known(v)
		}
		log.WithFields(logrus.Fields{
			"category": cat.Key(),
			"provider": p.Name,
		}).WithError(err).Debug("Provider failed")
	}
	return models.Unknown[T]()
}

// call runs a single provider, converting a panic into an error
func call[T any](ctx context.Context, p Provider[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	if p.Fetch == nil {
		return v, fmt.Errorf("provider %q has no fetch function", p.Name)
	}
	return p.Fetch(ctx)
}
