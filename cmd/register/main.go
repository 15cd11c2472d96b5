/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/suparena/clientregistry"
	"github.com/suparena/clientregistry/config"
	"github.com/suparena/clientregistry/handler"
	"github.com/suparena/clientregistry/logging"
)

var (
	versionFlag     = flag.Bool("version", false, "Show version information")
	vFlag           = flag.Bool("v", false, "Show version information (short)")
	eventFlag       = flag.String("event", "", "Invoke once with the event JSON in this file (\"-\" for stdin) and print the response")
	ensureTableFlag = flag.Bool("ensure-table", false, "Create the DynamoDB table if it does not exist (DynamoDB Local)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		fmt.Println(clientregistry.GetVersionInfo())
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "register: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := clientregistry.OpenStore(ctx, cfg, clientregistry.OpenOptions{
		EnsureTable: *ensureTableFlag,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	h := handler.New(store,
		handler.WithLogger(logger),
		handler.WithLegacyResponses(cfg.LegacyResponses),
	)

	logger.WithFields(logrus.Fields{
		"version":          clientregistry.Version,
		"backend":          cfg.Backend,
		"table":            cfg.TableName,
		"legacy_responses": cfg.LegacyResponses,
	}).Info("register function starting")

	if *eventFlag != "" {
		return invokeOnce(ctx, h, *eventFlag, os.Stdout)
	}

	lambda.Start(h.Handle)
	return nil
}

// invokeOnce runs the handler on a single event read from path and writes
// the response to out.
func invokeOnce(ctx context.Context, h *handler.Handler, path string, out io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read event: %w", err)
	}

	var req handler.Request
	if err := jsoniter.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	resp, err := h.Handle(ctx, req)
	if err != nil {
		return err
	}

	encoded, err := jsoniter.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}
