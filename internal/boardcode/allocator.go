package boardcode

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxAttempts bounds the draws made by an Allocator.
const DefaultMaxAttempts = 10

// ErrCodeSpaceExhausted is returned when every attempt hit a code in use.
var ErrCodeSpaceExhausted = errors.New("no unused board code found")

// Store reports whether a board already holds a code.
type Store interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// Allocator hands out codes that no existing board holds. The lookup alone
// races with concurrent creations, so writes that fail with a conflict
// (as classified by isConflict) are retried with a fresh code as well.
type Allocator struct {
	gen         *Generator
	store       Store
	maxAttempts int
	isConflict  func(error) bool
}

func NewAllocator(gen *Generator, store Store, maxAttempts int, isConflict func(error) bool) *Allocator {
	if gen == nil {
		gen = defaultGenerator
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if isConflict == nil {
		isConflict = func(error) bool { return false }
	}
	return &Allocator{
		gen:         gen,
		store:       store,
		maxAttempts: maxAttempts,
		isConflict:  isConflict,
	}
}

// Create draws codes until one is free and create(code) succeeds, and
// returns that code. A lookup error or a non-conflict create error aborts
// immediately.
func (a *Allocator) Create(ctx context.Context, create func(code string) error) (string, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		code := a.gen.Generate()

		taken, err := a.store.ExistsByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check board code: %w", err)
		}
		if taken {
			continue
		}

		if err := create(code); err != nil {
			if a.isConflict(err) {
				continue
			}
			return "", err
		}
		return code, nil
	}
	return "", fmt.Errorf("%w after %d attempts", ErrCodeSpaceExhausted, a.maxAttempts)
}
