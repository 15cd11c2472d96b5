/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/suparena/clientregistry/datastore"
	"github.com/suparena/clientregistry/errors"
	"github.com/suparena/clientregistry/logging"
	"github.com/suparena/clientregistry/storagemodels"
)

// SuccessMessage is returned in status_message after a successful write.
// Clients match on this exact text, spelling included.
const SuccessMessage = "Sucessfull client register."

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	errEmptyBody = stderrors.New("request body is empty")
	errNotObject = stderrors.New("request body is not an object")
)

// Request is the invocation event. Only Body is read.
type Request struct {
	Body string `json:"body"`
}

// Response is the invocation result. Body is a JSON text holding
// status_message.
type Response struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// registerPayload is the decoded request body. Other fields are ignored.
type registerPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Handler registers clients. It keeps no per-request state, so one Handler
// serves concurrent invocations for the life of the process.
type Handler struct {
	store  datastore.DataStore[storagemodels.ClientRecord]
	log    logrus.FieldLogger
	legacy bool
	now    func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(h *Handler) {
		h.log = log
	}
}

// WithLegacyResponses switches to the legacy response contract: status
// 200 on every rendered response, the storage error itself as
// status_message, no presence checks, and parse failures returned as a raw
// error instead of a Response.
func WithLegacyResponses(legacy bool) Option {
	return func(h *Handler) {
		h.legacy = legacy
	}
}

// WithClock sets the time source used for registeredAt.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

// New returns a Handler writing through store.
func New(store datastore.DataStore[storagemodels.ClientRecord], opts ...Option) *Handler {
	h := &Handler{
		store: store,
		log:   logging.Discard(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle is the function entry point.
func (h *Handler) Handle(ctx context.Context, req Request) (Response, error) {
	log := h.log.WithField(logging.FieldRequestID, requestID(ctx))

	outcome := h.Register(ctx, req.Body)

	log = log.WithField(logging.FieldOutcome, outcome.Kind.String())
	switch outcome.Kind {
	case OutcomeSuccess:
		log.WithField(logging.FieldClientID, outcome.Record.ID).Info("client registered")
	case OutcomeParseFault:
		log.WithError(outcome.Err).Error("failed to parse request body")
	case OutcomeInvalidInput:
		log.WithError(outcome.Err).Warn("rejected registration request")
	case OutcomeStorageFault:
		entry := log.WithError(outcome.Err).WithField(logging.FieldClientID, outcome.Record.ID)
		if se, ok := errors.AsStorageError(outcome.Err); ok {
			entry = entry.WithFields(logrus.Fields{
				"storage_kind": se.Kind,
				"storage_code": se.Code,
			})
		}
		entry.Error("failed to write client record")
	}

	if h.legacy {
		return renderLegacy(outcome)
	}
	return renderNormalized(outcome)
}

// Register decodes body, builds the record and writes it with a single Put.
func (h *Handler) Register(ctx context.Context, body string) Outcome {
	payload, err := decodePayload(body)
	if err != nil {
		return Outcome{Kind: OutcomeParseFault, Err: err}
	}

	rec := storagemodels.NewClientRecord(payload.ID, payload.Name, h.now())

	if !h.legacy {
		if err := payload.validate(); err != nil {
			return Outcome{Kind: OutcomeInvalidInput, Record: rec, Err: err}
		}
	}

	if err := h.store.Put(ctx, rec); err != nil {
		return Outcome{Kind: OutcomeStorageFault, Record: rec, Err: err}
	}
	return Outcome{Kind: OutcomeSuccess, Message: SuccessMessage, Record: rec}
}

func decodePayload(body string) (*registerPayload, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.NewParseError(errEmptyBody)
	}

	var p *registerPayload
	if err := json.UnmarshalFromString(body, &p); err != nil {
		return nil, errors.NewParseError(err)
	}
	if p == nil {
		return nil, errors.NewParseError(errNotObject)
	}
	return p, nil
}

func (p *registerPayload) validate() error {
	if p.ID == "" {
		return errors.NewValidationError("id", "is required")
	}
	if p.Name == "" {
		return errors.NewValidationError("name", "is required")
	}
	return nil
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
