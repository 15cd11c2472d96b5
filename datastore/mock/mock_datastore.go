/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the DataStore interface for testing
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/suparena/clientregistry/errors"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing.
// It records every Put it receives, including failed ones.
type DataStore[T any] struct {
	mu         sync.RWMutex
	data       map[string]T
	puts       []T
	getKeyFunc func(entity T) string
	putFunc    func(ctx context.Context, entity T) error
	putError   error
	getError   error
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getKeyFunc = f
	return m
}

// WithPutFunc sets a hook called before each Put is applied. A non-nil
// return value fails the Put.
func (m *DataStore[T]) WithPutFunc(f func(ctx context.Context, entity T) error) *DataStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putError = err
	return m
}

// WithGetError makes GetOne operations return an error
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity, replacing any entity with the same key
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	m.mu.Lock()
	m.puts = append(m.puts, entity)
	putErr, putFunc := m.putError, m.putFunc
	m.mu.Unlock()

	if putErr != nil {
		return putErr
	}
	if putFunc != nil {
		if err := putFunc(ctx, entity); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.data[key] = entity
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Puts returns every entity passed to Put, in call order
func (m *DataStore[T]) Puts() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]T, len(m.puts))
	copy(result, m.puts)
	return result
}

// PutCount returns the number of Put calls, successful or not
func (m *DataStore[T]) PutCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.puts)
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data and recorded calls
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
	m.puts = nil
}

// extractKey attempts to extract a key from an entity
func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}

	return fmt.Sprintf("key_%v", entity)
}
