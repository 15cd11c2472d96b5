/*
Package errors provides semantic error types for the client registry.

Common Errors:

	var (
	    ErrNotFound         = errors.New("record not found")
	    ErrInvalidInput     = errors.New("invalid input")
	    ErrMalformedPayload = errors.New("malformed payload")
	    ErrStorage          = errors.New("storage failure")
	)

A request body that cannot be decoded is a *ParseError. A failed write or
read is a *StorageError carrying a StorageKind plus whatever metadata the
backend reported (service error code, HTTP status, request id):

	if err := store.Put(ctx, record); err != nil {
	    if se, ok := errors.AsStorageError(err); ok && se.Retryable() {
	        // throttled or unavailable
	    }
	}

All types support wrapping and match their sentinel through errors.Is.
*/
package errors
