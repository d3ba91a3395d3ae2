// Package codec converts records to and from the JSON text held in the store.
// Decoding never fails: anything that does not parse as T yields the caller's
// default.
package codec

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/julianstephens/lovecount/internal/logger"
)

// Decode parses raw as T. Absent, blank, malformed and JSON null input all
// return def.
func Decode[T any](raw string, ok bool, def T) T {
	if !ok {
		return def
	}
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		logger.Debug("stored record unreadable, using default", "type", fmt.Sprintf("%T", v), "error", err)
		return def
	}
	return v
}

// Encode renders v as JSON text.
func Encode[T any](v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return string(data), nil
}

// Check strictly decodes raw as T and reports why it does not fit.
// Only diagnostics use it; normal reads go through Decode.
func Check[T any](raw string) error {
	var v T
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}
