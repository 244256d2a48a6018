package internal

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/bytedance/sonic"
)

var errNotArray = errors.New("response body is not a JSON array")

// rawAPI leaves HTML characters in records unescaped.
var rawAPI = sonic.Config{
	EscapeHTML:       false,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
}.Froze()

// decodeRows keeps every record as raw JSON so the sample prints with the
// server's column order.
func decodeRows(body []byte) ([]json.RawMessage, error) {
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}

	var rows []json.RawMessage
	if err := sonic.ConfigStd.Unmarshal(body, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func sampleRows(rows []json.RawMessage, size int) []json.RawMessage {
	n := size
	if n > len(rows) {
		n = len(rows)
	} else if n < 0 {
		n = 0
	}
	sample := make([]json.RawMessage, n)
	copy(sample, rows[:n])
	return sample
}

func prettyJSON(v interface{}) (string, error) {
	data, err := rawAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
