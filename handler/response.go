/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"fmt"
	"net/http"

	"github.com/suparena/clientregistry/errors"
)

type responseBody struct {
	StatusMessage any    `json:"status_message"`
	ErrorKind     string `json:"error_kind,omitempty"`
	StorageKind   string `json:"storage_kind,omitempty"`
}

// legacyError is how a storage error appears in a legacy status_message.
type legacyError struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
	Retryable  bool   `json:"retryable"`
}

// renderNormalized maps every outcome to the {status_code, body} shape with
// a status code that reflects the outcome.
func renderNormalized(o Outcome) (Response, error) {
	switch o.Kind {
	case OutcomeSuccess:
		return newResponse(http.StatusOK, responseBody{StatusMessage: o.Message})

	case OutcomeParseFault, OutcomeInvalidInput:
		return newResponse(http.StatusBadRequest, responseBody{
			StatusMessage: o.Err.Error(),
			ErrorKind:     o.Kind.String(),
		})

	case OutcomeStorageFault:
		status := http.StatusBadGateway
		body := responseBody{
			StatusMessage: o.Err.Error(),
			ErrorKind:     o.Kind.String(),
		}
		if se, ok := errors.AsStorageError(o.Err); ok {
			body.StorageKind = string(se.Kind)
			if se.Retryable() {
				status = http.StatusServiceUnavailable
			}
		}
		return newResponse(status, body)
	}
	return Response{}, fmt.Errorf("unhandled outcome %s", o.Kind)
}

// renderLegacy reproduces the legacy contract. Storage failures still
// answer 200; parse failures escape as a raw error.
func renderLegacy(o Outcome) (Response, error) {
	switch o.Kind {
	case OutcomeSuccess:
		return newResponse(http.StatusOK, responseBody{StatusMessage: o.Message})

	case OutcomeStorageFault:
		le := legacyError{Message: o.Err.Error()}
		if se, ok := errors.AsStorageError(o.Err); ok {
			if se.Err != nil {
				le.Message = se.Err.Error()
			}
			le.Code = se.Code
			le.StatusCode = se.StatusCode
			le.RequestID = se.RequestID
			le.Retryable = se.Retryable()
		}
		return newResponse(http.StatusOK, responseBody{StatusMessage: le})
	}
	return Response{}, o.Err
}

func newResponse(status int, body responseBody) (Response, error) {
	encoded, err := json.MarshalToString(body)
	if err != nil {
		return Response{}, fmt.Errorf("encode response body: %w", err)
	}
	return Response{StatusCode: status, Body: encoded}, nil
}
