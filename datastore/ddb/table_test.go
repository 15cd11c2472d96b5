/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeerrors "github.com/suparena/clientregistry/errors"
)

type fakeTableAPI struct {
	exists    bool
	describes int
	creates   []*sdk.CreateTableInput
	createErr error
	descErr   error
}

func (f *fakeTableAPI) DescribeTable(ctx context.Context, params *sdk.DescribeTableInput, optFns ...func(*sdk.Options)) (*sdk.DescribeTableOutput, error) {
	f.describes++
	if f.descErr != nil {
		return nil, f.descErr
	}
	if !f.exists {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &sdk.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: types.TableStatusActive,
		},
	}, nil
}

func (f *fakeTableAPI) CreateTable(ctx context.Context, params *sdk.CreateTableInput, optFns ...func(*sdk.Options)) (*sdk.CreateTableOutput, error) {
	f.creates = append(f.creates, params)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.exists = true
	return &sdk.CreateTableOutput{}, nil
}

func TestEnsureTable(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyExists", func(t *testing.T) {
		api := &fakeTableAPI{exists: true}

		require.NoError(t, EnsureTable(ctx, api, "Client", "id", time.Second))
		assert.Empty(t, api.creates)
		assert.Equal(t, 1, api.describes)
	})

	t.Run("CreatesMissingTable", func(t *testing.T) {
		api := &fakeTableAPI{}

		require.NoError(t, EnsureTable(ctx, api, "Client", "", 5*time.Second))
		require.Len(t, api.creates, 1)

		in := api.creates[0]
		assert.Equal(t, "Client", aws.ToString(in.TableName))
		assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
		require.Len(t, in.KeySchema, 1)
		assert.Equal(t, "id", aws.ToString(in.KeySchema[0].AttributeName))
		assert.Equal(t, types.KeyTypeHash, in.KeySchema[0].KeyType)
		assert.Equal(t, types.ScalarAttributeTypeS, in.AttributeDefinitions[0].AttributeType)
	})

	t.Run("DescribeFailure", func(t *testing.T) {
		api := &fakeTableAPI{descErr: &smithy.GenericAPIError{Code: "AccessDeniedException"}}

		err := EnsureTable(ctx, api, "Client", "id", time.Second)
		se, ok := storeerrors.AsStorageError(err)
		require.True(t, ok)
		assert.Equal(t, "DescribeTable", se.Operation)
		assert.Equal(t, storeerrors.KindAccessDenied, se.Kind)
		assert.Empty(t, api.creates)
	})
}
