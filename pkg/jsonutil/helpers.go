// Package jsonutil provides JSON formatting helpers for the Scribemark CLI.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// MarshalIndented marshals a value to indented JSON for file export.
func MarshalIndented(v interface{}) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(b, '\n'), nil
}
