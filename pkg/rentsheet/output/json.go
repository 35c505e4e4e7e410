// Package output serializes conversion results.
package output

import (
	"bytes"
	"encoding/json"
)

// ToJSON serializes v to JSON. With pretty set the output is indented with
// two spaces. Non-ASCII and HTML characters are written as is.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
