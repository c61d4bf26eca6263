package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/medialens/medialens/internal/config"
	"github.com/medialens/medialens/pkg/errors"
	"github.com/medialens/medialens/pkg/observability"
	"github.com/medialens/medialens/pkg/outlet"
)

// resolveDataPath picks the CSV path from the command argument, falling back
// to the config file's data setting.
func resolveDataPath(args []string, cfg config.Config) (string, error) {
	path := cfg.Data
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no data file given (pass a CSV path or set data in the config file)")
	}
	if err := errors.ValidateDataPath(path); err != nil {
		return "", err
	}
	return path, nil
}

// loadStore parses the CSV at path into a read-only record store. Per-record
// warnings are logged; a file-level failure yields an empty store with a
// warning rather than an error, so callers render a "no data" state instead
// of crashing.
func loadStore(ctx context.Context, path string) *outlet.Store {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	start := time.Now()
	observability.Ingest().OnParseStart(ctx, path)

	res, err := outlet.ParseFile(path)
	if err != nil {
		observability.Ingest().OnParseComplete(ctx, path, 0, 0, time.Since(start), err)
		logger.Warnf("Load failed, continuing with empty dataset: %v", err)
		return outlet.NewStore(nil)
	}
	observability.Ingest().OnParseComplete(ctx, path, len(res.Records), len(res.Warnings), time.Since(start), nil)

	for _, w := range res.Warnings {
		logger.Warnf("%s: %s", path, w)
	}
	prog.done(fmt.Sprintf("Loaded %d outlets from %s", len(res.Records), path))

	return outlet.NewStore(res.Records)
}
