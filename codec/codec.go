// Package codec converts request and response bodies between structured
// values and bytes. The client uses JSON by default; callers can supply any
// Codec implementation per client or per call.
package codec

import (
	"bytes"
	"encoding/json"
)

// Codec encodes outgoing bodies and decodes incoming ones.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	ContentType() string
}

// JSON is the default codec. The zero value encodes compactly with HTML
// escaping disabled.
type JSON struct {
	// EscapeHTML escapes <, >, and & in encoded strings.
	EscapeHTML bool
	// Indent, when non-empty, pretty-prints encoded output.
	Indent string
}

// Encode marshals v to JSON.
func (j JSON) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(j.EscapeHTML)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder appends a newline after every value.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode unmarshals JSON data into v.
func (j JSON) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON media type.
func (j JSON) ContentType() string {
	return "application/json"
}
