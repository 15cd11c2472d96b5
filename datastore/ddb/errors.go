/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	storeerrors "github.com/suparena/clientregistry/errors"
)

var kindsByCode = map[string]storeerrors.StorageKind{
	"ThrottlingException":                    storeerrors.KindThrottled,
	"ProvisionedThroughputExceededException": storeerrors.KindThrottled,
	"RequestLimitExceeded":                   storeerrors.KindThrottled,
	"LimitExceededException":                 storeerrors.KindThrottled,

	"AccessDeniedException":       storeerrors.KindAccessDenied,
	"UnrecognizedClientException": storeerrors.KindAccessDenied,
	"InvalidSignatureException":   storeerrors.KindAccessDenied,
	"MissingAuthenticationToken":  storeerrors.KindAccessDenied,
	"ExpiredTokenException":       storeerrors.KindAccessDenied,

	"ResourceNotFoundException": storeerrors.KindTableMissing,

	"ValidationException":                      storeerrors.KindRejected,
	"ConditionalCheckFailedException":          storeerrors.KindRejected,
	"ItemCollectionSizeLimitExceededException": storeerrors.KindRejected,
	"SerializationException":                   storeerrors.KindRejected,

	"InternalServerError": storeerrors.KindUnavailable,
	"InternalFailure":     storeerrors.KindUnavailable,
	"ServiceUnavailable":  storeerrors.KindUnavailable,
}

// classifyError turns an SDK error into a *errors.StorageError, keeping the
// service error code, HTTP status and request id when the SDK reports them.
func classifyError(op string, err error) error {
	se := &storeerrors.StorageError{
		Operation: op,
		Kind:      storeerrors.KindUnknown,
		Err:       err,
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		se.StatusCode = respErr.HTTPStatusCode()
		se.RequestID = respErr.ServiceRequestID()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		se.Code = apiErr.ErrorCode()
		if kind, ok := kindsByCode[se.Code]; ok {
			se.Kind = kind
		}
		return se
	}

	var sendErr *smithyhttp.RequestSendError
	switch {
	case errors.As(err, &sendErr):
		se.Kind = storeerrors.KindUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		se.Kind = storeerrors.KindUnavailable
	}
	return se
}
