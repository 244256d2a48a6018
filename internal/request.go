package internal

import (
	"context"
	"fmt"
	"net/http"
)

const restPath = "/rest/v1/"

// endpoint interpolates the table as is; names that are not plain
// identifiers produce a malformed request rather than an error here.
func endpoint(cfg Config) string {
	return fmt.Sprintf("%s%s%s?select=*", cfg.URL, restPath, cfg.Table)
}

func newRequest(ctx context.Context, cfg Config) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(cfg), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", cfg.Key)
	req.Header.Set("Authorization", "Bearer "+cfg.Key)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
