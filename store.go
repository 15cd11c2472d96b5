/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package clientregistry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/suparena/clientregistry/config"
	"github.com/suparena/clientregistry/datastore"
	"github.com/suparena/clientregistry/datastore/ddb"
	"github.com/suparena/clientregistry/datastore/sqlite"
	"github.com/suparena/clientregistry/storagemodels"
)

// ClientStore is the backend the register handler writes through.
type ClientStore interface {
	datastore.DataStore[storagemodels.ClientRecord]
	Close() error
}

// OpenOptions tune OpenStore.
type OpenOptions struct {
	// EnsureTable creates the DynamoDB table when it is missing. Meant for
	// DynamoDB Local.
	EnsureTable bool
	// EnsureTableWait bounds how long to wait for a created table.
	EnsureTableWait time.Duration
	Logger          logrus.FieldLogger
}

type dynamoClientStore struct {
	*ddb.DynamodbDataStore[storagemodels.ClientRecord]
}

func (dynamoClientStore) Close() error { return nil }

// OpenStore builds the backend selected by cfg. It is called once per
// process; the returned store is shared by every invocation.
func OpenStore(ctx context.Context, cfg *config.Config, opts OpenOptions) (ClientStore, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{"backend": cfg.Backend, "table": cfg.TableName})

	switch cfg.Backend {
	case config.BackendDynamoDB:
		client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKey,
			SecretKey: cfg.AWS.SecretKey,
			Endpoint:  cfg.AWS.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
		}

		if opts.EnsureTable {
			wait := opts.EnsureTableWait
			if wait <= 0 {
				wait = 30 * time.Second
			}
			if err := ddb.EnsureTable(ctx, client, cfg.TableName, cfg.KeyAttribute, wait); err != nil {
				return nil, fmt.Errorf("failed to ensure table %s: %w", cfg.TableName, err)
			}
		}

		log.WithField("region", cfg.AWS.Region).Debug("DynamoDB client initialized")
		return dynamoClientStore{ddb.NewDynamodbDataStore[storagemodels.ClientRecord](client, cfg.TableName, cfg.KeyAttribute)}, nil

	case config.BackendSQLite:
		store, err := sqlite.New(cfg.SQLitePath, cfg.TableName, storagemodels.ClientRecordKey)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		log.WithField("path", cfg.SQLitePath).Debug("SQLite store opened")
		return store, nil
	}

	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
