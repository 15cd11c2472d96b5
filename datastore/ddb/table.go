/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableAPI is the part of the DynamoDB client EnsureTable calls.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *sdk.DescribeTableInput, optFns ...func(*sdk.Options)) (*sdk.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *sdk.CreateTableInput, optFns ...func(*sdk.Options)) (*sdk.CreateTableOutput, error)
}

// EnsureTable creates tableName with a string hash key if it does not exist
// and waits up to maxWait for it to become active. Used for local
// development against DynamoDB Local; production tables are provisioned
// outside the function.
func EnsureTable(ctx context.Context, client TableAPI, tableName, keyAttribute string, maxWait time.Duration) error {
	if keyAttribute == "" {
		keyAttribute = DefaultKeyAttribute
	}

	_, err := client.DescribeTable(ctx, &sdk.DescribeTableInput{TableName: aws.String(tableName)})
	if err == nil {
		return nil
	}
	var rnf *types.ResourceNotFoundException
	if !errors.As(err, &rnf) {
		return classifyError("DescribeTable", err)
	}

	_, err = client.CreateTable(ctx, &sdk.CreateTableInput{
		TableName: aws.String(tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(keyAttribute), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(keyAttribute), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		// Another process won the race to create it.
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return classifyError("CreateTable", err)
		}
	}

	waiter := sdk.NewTableExistsWaiter(client, func(o *sdk.TableExistsWaiterOptions) {
		o.MinDelay = 100 * time.Millisecond
		o.MaxDelay = 2 * time.Second
	})
	if err := waiter.Wait(ctx, &sdk.DescribeTableInput{TableName: aws.String(tableName)}, maxWait); err != nil {
		return classifyError("DescribeTable", err)
	}
	return nil
}
