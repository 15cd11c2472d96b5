/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore writes each entity as one item in one table keyed by a
string hash key (the Client table uses "id"). Put is a plain PutItem, so a
second write with the same key replaces the first. GetOne reads with
ConsistentRead so a write is visible to the next read.

	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{Region: "us-east-1"})
	store := ddb.NewDynamodbDataStore[storagemodels.ClientRecord](client, "Client", "id")
	err = store.Put(ctx, storagemodels.NewClientRecord("c1", "Acme", time.Now()))

SDK failures come back as *errors.StorageError, classified by the service
error code (throttling, access denied, missing table, rejected request) or by
transport failure (unavailable).

EnsureTable creates the table on DynamoDB Local for development.
*/
package ddb
