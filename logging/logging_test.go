/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "info", "json")
	require.NoError(t, err)

	logger.WithField(FieldRequestID, "req-1").Debug("hidden")
	logger.WithField(FieldRequestID, "req-1").Info("registered")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "registered", line["msg"])
	assert.Equal(t, "req-1", line[FieldRequestID])
	assert.Equal(t, "info", line["level"])
}

func TestNewWithOutputText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "debug", "text")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewWithOutputInvalid(t *testing.T) {
	_, err := NewWithOutput(&bytes.Buffer{}, "loud", "json")
	assert.Error(t, err)

	_, err = NewWithOutput(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
