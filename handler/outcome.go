/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"github.com/suparena/clientregistry/storagemodels"
)

// OutcomeKind tags the result of one registration.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeParseFault
	OutcomeInvalidInput
	OutcomeStorageFault
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeParseFault:
		return "parse_fault"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeStorageFault:
		return "storage_fault"
	default:
		return "unknown"
	}
}

// Outcome is the result of Register, before it is rendered as a Response.
type Outcome struct {
	Kind OutcomeKind

	// Message is set on success.
	Message string

	// Record is the record that was (or would have been) written. It is the
	// zero value on a parse fault.
	Record storagemodels.ClientRecord

	// Err is set on every kind except OutcomeSuccess.
	Err error
}

// OK reports whether the record was written.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}
