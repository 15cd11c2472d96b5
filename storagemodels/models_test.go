/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRecord(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.FixedZone("EST", -5*3600))

	rec := NewClientRecord("c1", "Acme", at)

	assert.Equal(t, "c1", rec.ID)
	assert.Equal(t, "c1", rec.Key())
	assert.Equal(t, "c1", ClientRecordKey(rec))
	assert.Equal(t, "Acme", rec.Name)

	got, err := rec.RegisteredTime()
	require.NoError(t, err)
	assert.True(t, got.Equal(at), "expected %v, got %v", at, got)
}

func TestRegisteredTime(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		got, err := ClientRecord{ID: "c1"}.RegisteredTime()
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ClientRecord{ID: "c1", RegisteredAt: "yesterday"}.RegisteredTime()
		assert.Error(t, err)
	})
}
