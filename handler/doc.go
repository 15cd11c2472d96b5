/*
Package handler implements the client registration function.

A request body {"id": "...", "name": "..."} becomes one ClientRecord written
with a single Put. Each invocation yields a tagged Outcome (success, parse
fault, invalid input, storage fault) that is rendered as a Response:

	h := handler.New(store, handler.WithLogger(logger))
	lambda.Start(h.Handle)

By default every outcome is rendered in the {status_code, body} shape with a
status code that reflects it (200, 400, 502 or 503). WithLegacyResponses
restores the legacy contract, where a storage failure still answers 200
with the error in status_message and an unparseable body is returned as a
bare error.
*/
package handler
