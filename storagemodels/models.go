/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// ClientTableName is the collection registered clients are written to.
const ClientTableName = "Client"

// ClientKeyAttribute is the hash key attribute of the Client table.
const ClientKeyAttribute = "id"

// ClientRecord is a registered client.
type ClientRecord struct {
	// Unique identifier, used as the storage key.
	ID string `json:"id" dynamodbav:"id"`

	// Descriptive label.
	Name string `json:"name" dynamodbav:"name"`

	// Time of the write that produced this record.
	// Format: date-time
	RegisteredAt string `json:"registeredAt,omitempty" dynamodbav:"registeredAt,omitempty"`
}

// NewClientRecord builds a record stamped with the given registration time.
func NewClientRecord(id, name string, at time.Time) ClientRecord {
	return ClientRecord{
		ID:           id,
		Name:         name,
		RegisteredAt: strfmt.DateTime(at.UTC()).String(),
	}
}

// Key returns the storage key of the record.
func (r ClientRecord) Key() string {
	return r.ID
}

// RegisteredTime parses RegisteredAt. It returns the zero time when the
// attribute was never written.
func (r ClientRecord) RegisteredTime() (time.Time, error) {
	if r.RegisteredAt == "" {
		return time.Time{}, nil
	}
	dt, err := strfmt.ParseDateTime(r.RegisteredAt)
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(dt), nil
}

// ClientRecordKey is the key extractor used by backends that need one.
func ClientRecordKey(r ClientRecord) string {
	return r.Key()
}
