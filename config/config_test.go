/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(envLookup(nil))
	require.NoError(t, err)

	assert.Equal(t, BackendDynamoDB, cfg.Backend)
	assert.Equal(t, "Client", cfg.TableName)
	assert.Equal(t, "id", cfg.KeyAttribute)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.False(t, cfg.LegacyResponses)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := LoadFrom(envLookup(map[string]string{
		EnvBackend:         "SQLite",
		EnvTableName:       "ClientStaging",
		EnvRegion:          "eu-west-1",
		EnvAccessKey:       "AKIAEXAMPLE",
		EnvSecretKey:       "secret",
		EnvEndpoint:        "http://localhost:8000",
		EnvSQLitePath:      "/tmp/clients.db",
		EnvLegacyResponses: "true",
		EnvLogLevel:        "debug",
		EnvLogFormat:       "text",
	}))
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "ClientStaging", cfg.TableName)
	assert.Equal(t, AWSConfig{
		Region:    "eu-west-1",
		AccessKey: "AKIAEXAMPLE",
		SecretKey: "secret",
		Endpoint:  "http://localhost:8000",
	}, cfg.AWS)
	assert.Equal(t, "/tmp/clients.db", cfg.SQLitePath)
	assert.True(t, cfg.LegacyResponses)
	assert.Equal(t, LogConfig{Level: "debug", Format: "text"}, cfg.Log)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend: dynamodb
table_name: ClientFromFile
legacy_responses: true
aws:
  region: ap-southeast-2
  endpoint: http://dynamodb-local:8000
log:
  level: warn
`), 0o600))

	t.Run("FileValues", func(t *testing.T) {
		cfg, err := LoadFrom(envLookup(map[string]string{EnvConfigFile: path}))
		require.NoError(t, err)

		assert.Equal(t, "ClientFromFile", cfg.TableName)
		assert.True(t, cfg.LegacyResponses)
		assert.Equal(t, "ap-southeast-2", cfg.AWS.Region)
		assert.Equal(t, "http://dynamodb-local:8000", cfg.AWS.Endpoint)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format, "unset keys keep their defaults")
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		cfg, err := LoadFrom(envLookup(map[string]string{
			EnvConfigFile:      path,
			EnvTableName:       "ClientFromEnv",
			EnvLegacyResponses: "false",
		}))
		require.NoError(t, err)

		assert.Equal(t, "ClientFromEnv", cfg.TableName)
		assert.False(t, cfg.LegacyResponses)
	})
}

func TestLoadFromErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "UnknownBackend", env: map[string]string{EnvBackend: "redis"}},
		{name: "BadBool", env: map[string]string{EnvLegacyResponses: "maybe"}},
		{name: "MissingFile", env: map[string]string{EnvConfigFile: "/nonexistent/config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(envLookup(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.TableName = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.AWS.Region = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Backend = BackendSQLite
	cfg.SQLitePath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.KeyAttribute = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadFromRejectsForeignKeyAttribute(t *testing.T) {
	t.Run("Environment", func(t *testing.T) {
		_, err := LoadFrom(envLookup(map[string]string{EnvKeyAttribute: "pk"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"pk"`)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("key_attribute: pk\n"), 0o600))

		_, err := LoadFrom(envLookup(map[string]string{EnvConfigFile: path}))
		assert.Error(t, err)
	})

	t.Run("ExplicitID", func(t *testing.T) {
		cfg, err := LoadFrom(envLookup(map[string]string{EnvKeyAttribute: "id"}))
		require.NoError(t, err)
		assert.Equal(t, "id", cfg.KeyAttribute)
	})
}
