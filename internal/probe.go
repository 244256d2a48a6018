package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPDoer is the subset of *http.Client the probe needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is everything learned from one probe run.
type Result struct {
	URL        string
	Table      string
	Timeout    time.Duration
	Kind       Kind
	StatusCode int
	RowCount   int
	Sample     []json.RawMessage
	Body       string
	Hints      []string
	Err        error
	Elapsed    time.Duration
}

func (r *Result) fail(err error) Result {
	r.Kind = classifyError(err)
	r.Err = err
	return *r
}

// Run sends the request and classifies the response. Every failure,
// including a panic in the client, ends up in the returned Result.
func Run(ctx context.Context, cfg Config, client HTTPDoer, logger *slog.Logger) (result Result) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	result = Result{URL: cfg.URL, Table: cfg.Table, Timeout: cfg.Timeout}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result.Kind = KindTransportError
			result.Err = fmt.Errorf("probe panicked: %v", r)
		}
		result.Elapsed = time.Since(start)
		logger.Debug("probe finished", "outcome", result.Kind.String(), "status", result.StatusCode, "elapsed", result.Elapsed)
	}()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req, err := newRequest(ctx, cfg)
	if err != nil {
		return result.fail(fmt.Errorf("failed to build request: %w", err))
	}

	if info, ok := inspectKey(cfg.Key); ok {
		logger.Debug("api key claims", "role", info.Role, "ref", info.Ref, "expires_at", info.ExpiresAt)
	}
	logger.Debug("sending request", "method", req.Method, "endpoint", req.URL.Redacted())

	resp, err := client.Do(req)
	if err != nil {
		return result.fail(err)
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	logger.Debug("received response", "status", resp.StatusCode, "proto", resp.Proto)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result.fail(fmt.Errorf("failed to read response body: %w", err))
	}

	result.Kind = Classify(resp.StatusCode)
	switch result.Kind {
	case KindSuccess:
		rows, err := decodeRows(body)
		if err != nil {
			return result.fail(fmt.Errorf("failed to parse response body: %w", err))
		}
		result.RowCount = len(rows)
		result.Sample = sampleRows(rows, cfg.SampleSize)
	case KindNotFound:
		// body is not inspected
	case KindUnauthorized:
		result.Body = string(body)
		result.Hints = keyHints(cfg, time.Now())
	default:
		result.Body = string(body)
	}

	return result
}
