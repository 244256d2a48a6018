package internal

import (
	"context"
	"log/slog"
)

// Main runs one probe and reports it through formatter. The returned error
// only covers writing the report; probe failures are in the Result.
func Main(ctx context.Context, cfg Config, client HTTPDoer, formatter Formatter, logger *slog.Logger) (Result, error) {
	if err := formatter.Start(cfg); err != nil {
		return Result{}, err
	}

	result := Run(ctx, cfg, client, logger)

	if err := formatter.AddResult(result); err != nil {
		return result, err
	}
	return result, formatter.Flush()
}
