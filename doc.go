/*
Package clientregistry implements a serverless client registration function.

An invocation carries a JSON body {"id": "...", "name": "..."}; the function
writes one ClientRecord keyed by id into the Client table (insert-or-replace)
and answers {"status_code": ..., "body": "{\"status_message\": ...}"}.

Layout:
  - handler: the register handler and its response rendering
  - datastore: the storage interface, with DynamoDB, SQLite and mock backends
  - storagemodels: the ClientRecord entity
  - errors: parse, validation and storage error types
  - config, logging: process configuration and the logrus logger
  - cmd/register: the Lambda entry point

Basic Usage:

	cfg, _ := config.Load()
	store, _ := clientregistry.OpenStore(ctx, cfg, clientregistry.OpenOptions{})
	h := handler.New(store, handler.WithLegacyResponses(cfg.LegacyResponses))
	lambda.Start(h.Handle)
*/
package clientregistry
