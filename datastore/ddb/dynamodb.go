/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	storeerrors "github.com/suparena/clientregistry/errors"
)

// DefaultKeyAttribute is the hash key attribute used when none is configured.
const DefaultKeyAttribute = "id"

// API is the part of the DynamoDB client the data store calls.
// *dynamodb.Client satisfies it.
type API interface {
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
}

// ClientConfig holds what is needed to build a DynamoDB client.
// Empty credentials fall back to the default AWS credential chain.
type ClientConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. http://localhost:8000 for DynamoDB Local.
	Endpoint string
}

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB
// table with a string hash key.
type DynamodbDataStore[T any] struct {
	client    API
	tableName string
	keyAttr   string
}

// NewDynamoDBClient initializes a DynamoDB client. The client is safe for
// concurrent use and meant to live as long as the process.
func NewDynamoDBClient(ctx context.Context, cfg ClientConfig) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewDynamodbDataStore constructs a DynamodbDataStore for type T writing to
// tableName. An empty keyAttribute means DefaultKeyAttribute.
func NewDynamodbDataStore[T any](client API, tableName, keyAttribute string) *DynamodbDataStore[T] {
	if keyAttribute == "" {
		keyAttribute = DefaultKeyAttribute
	}
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		keyAttr:   keyAttribute,
	}
}

// TableName returns the table the store writes to.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// Put stores entity with a single PutItem call. An existing item with the
// same key is replaced.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return storeerrors.NewStorageError("MarshalMap", storeerrors.KindRejected,
			fmt.Errorf("failed to marshal entity: %w", err))
	}

	key, ok := av[d.keyAttr].(*types.AttributeValueMemberS)
	if !ok || key.Value == "" {
		return storeerrors.NewStorageError("PutItem", storeerrors.KindRejected,
			fmt.Errorf("item has no string value for hash key %q", d.keyAttr))
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return classifyError("PutItem", err)
	}
	return nil
}

// GetOne retrieves a single item by its hash key using a strongly
// consistent read, so a Put is visible to the next GetOne.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key: map[string]types.AttributeValue{
			d.keyAttr: &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, classifyError("GetItem", err)
	}
	if out.Item == nil {
		var zero T
		return nil, storeerrors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}
