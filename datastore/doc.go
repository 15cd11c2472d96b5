/*
Package datastore defines the storage interface the client registry writes through.

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	}

Put has insert-or-replace semantics: the last write for a key wins and no
version is kept. There is no delete.

Implementations:
  - ddb: DynamoDB implementation (the production backend)
  - sqlite: local file-backed implementation for development
  - mock: in-memory implementation with fault injection for testing

Failures are reported as *errors.StorageError so callers can classify them
without knowing which backend produced them.
*/
package datastore
