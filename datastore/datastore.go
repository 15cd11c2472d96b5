/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// DataStore persists entities of type T under a single string key.
type DataStore[T any] interface {
	// GetOne returns the entity stored under key, or an error matching
	// errors.ErrNotFound.
	GetOne(ctx context.Context, key string) (*T, error)

	// Put writes entity with insert-or-replace semantics.
	Put(ctx context.Context, entity T) error
}
