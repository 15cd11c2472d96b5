/*
Package storagemodels defines the records persisted by the client registry.

ClientRecord is the only entity. It is keyed by ID and written with
insert-or-replace semantics, so a second write with the same ID replaces the
first:

	rec := storagemodels.NewClientRecord("c1", "Acme", time.Now())
	err := store.Put(ctx, rec)

Attributes are stored as strings: id, name and registeredAt (RFC 3339).
*/
package storagemodels
