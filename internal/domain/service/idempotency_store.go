// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
)

// IdempotencyStore remembers which result a client supplied key already produced.
type IdempotencyStore interface {
	// TryLock claims the key. It returns false when another request holds it.
	TryLock(ctx context.Context, scope, key string) (bool, error)

	// Remember stores the result produced for the key.
	Remember(ctx context.Context, scope, key, value string) error

	// Recall returns the stored result, if any.
	Recall(ctx context.Context, scope, key string) (string, bool, error)

	// Release drops the claim so the key can be retried after a failure.
	Release(ctx context.Context, scope, key string) error
}
