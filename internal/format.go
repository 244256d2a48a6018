package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Formatter defines the interface used to deliver results to the end user.
type Formatter interface {
	// Start is called once before the request is sent.
	Start(cfg Config) error

	// AddResult is called with the outcome of the probe.
	AddResult(result Result) error

	// Flush is called when the formatter should finish outputing any data it
	// may have buffered.
	Flush() error
}

// FormatterFactory
type FormatterFactory func(io.Writer) Formatter

// Formatters holds available formatters
var Formatters = map[string]FormatterFactory{
	"text": NewTextFormatter,
	"json": NewJSONFormatter,
}

// TextFormatter prints the result as human readable text.
type TextFormatter struct {
	io.Writer
}

func NewTextFormatter(out io.Writer) Formatter {
	return TextFormatter{
		Writer: out,
	}
}

func (f TextFormatter) Start(cfg Config) error {
	_, err := fmt.Fprintf(f.Writer, "Testing connection to: %s\nTarget Table: %s\n\n", cfg.URL, cfg.Table)
	return err
}

func (f TextFormatter) AddResult(result Result) error {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	var lines []string
	switch result.Kind {
	case KindSuccess:
		sample, err := prettyJSON(result.Sample)
		if err != nil {
			return err
		}
		lines = []string{
			green("✅ SUCCESS! Connection established."),
			fmt.Sprintf("Found %s in '%s'.", pluralize(result.RowCount, "row"), result.Table),
			sample,
		}
	case KindNotFound:
		lines = []string{
			yellow("⚠️  CONNECTED, BUT TABLE NOT FOUND."),
			fmt.Sprintf("The table '%s' does not exist in your database.", result.Table),
			"Try a different table with --table.",
		}
	case KindUnauthorized:
		lines = []string{
			red("❌ AUTHENTICATION FAILED (401)."),
			"Your key might be invalid, or you don't have permission to view this table.",
			"Server message: " + result.Body,
		}
		for _, hint := range result.Hints {
			lines = append(lines, yellow("hint:")+" "+hint)
		}
	case KindHTTPError:
		lines = []string{red(fmt.Sprintf("❌ Error %d:", result.StatusCode)) + " " + result.Body}
	case KindTimeout:
		lines = []string{red("❌ TIMEOUT:") + fmt.Sprintf(" no response within %s: %v", result.Timeout, result.Err)}
	default:
		lines = []string{red("❌ CRITICAL ERROR:") + fmt.Sprintf(" %v", result.Err)}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(f.Writer, line); err != nil {
			return err
		}
	}
	return nil
}

func (f TextFormatter) Flush() error { return nil }

// JSONFormatter prints the result as a JSON object.
type JSONFormatter struct {
	out   io.Writer
	entry *JSONEntry
}

func NewJSONFormatter(out io.Writer) Formatter {
	return &JSONFormatter{
		out: out,
	}
}

type JSONEntry struct {
	URL        string            `json:"url"`
	Table      string            `json:"table"`
	Outcome    string            `json:"outcome"`
	StatusCode int               `json:"status_code,omitempty"`
	RowCount   *int              `json:"row_count,omitempty"`
	Sample     []json.RawMessage `json:"sample"`
	Body       string            `json:"body,omitempty"`
	Error      string            `json:"error,omitempty"`
	Hints      []string          `json:"hints,omitempty"`
	ElapsedMs  int64             `json:"elapsed_ms"`
}

func (f *JSONFormatter) Start(cfg Config) error { return nil }

func (f *JSONFormatter) AddResult(result Result) error {
	entry := &JSONEntry{
		URL:        result.URL,
		Table:      result.Table,
		Outcome:    result.Kind.String(),
		StatusCode: result.StatusCode,
		Body:       result.Body,
		Hints:      result.Hints,
		ElapsedMs:  result.Elapsed.Milliseconds(),
	}
	if result.Kind == KindSuccess {
		count := result.RowCount
		entry.RowCount = &count
		entry.Sample = result.Sample
	}
	if result.Err != nil {
		entry.Error = result.Err.Error()
	}
	f.entry = entry
	return nil
}

func (f *JSONFormatter) Flush() error {
	if f.entry == nil {
		return nil
	}
	data, err := rawAPI.Marshal(f.entry)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
