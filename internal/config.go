package internal

import (
	"errors"
	"time"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultSampleSize = 2
)

// Config holds everything a single probe run needs.
type Config struct {
	URL        string
	Key        string
	Table      string
	Timeout    time.Duration
	SampleSize int
}

// Validate only checks presence; the values are interpolated as given.
func (c Config) Validate() error {
	var errs []error
	if c.URL == "" {
		errs = append(errs, errors.New("url is required (--url, TABLEPROBE_URL or SUPABASE_URL)"))
	}
	if c.Key == "" {
		errs = append(errs, errors.New("key is required (--key, TABLEPROBE_KEY or SUPABASE_KEY)"))
	}
	if c.Table == "" {
		errs = append(errs, errors.New("table is required ([table], --table, TABLEPROBE_TABLE or TABLE_NAME)"))
	}
	if c.Timeout < 0 {
		errs = append(errs, errors.New("timeout must not be negative"))
	}
	if c.SampleSize < 0 {
		errs = append(errs, errors.New("sample size must not be negative"))
	}
	return errors.Join(errs...)
}
