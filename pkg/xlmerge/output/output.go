// Package output encodes merge reports and plans.
package output

import (
	"encoding/json"
	"fmt"

	toon "github.com/mateuszkardas/toon-go"
)

// Format is a report encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOON Format = "toon"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatTOON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid report format: %s (must be json or toon)", s)
	}
}

// Encode serializes v in the given format.
func Encode(v interface{}, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatTOON:
		return ToTOON(v)
	case FormatJSON, "":
		return ToJSON(v, pretty)
	default:
		return nil, fmt.Errorf("invalid report format: %s", format)
	}
}

// ToJSON serializes v to JSON, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToTOON serializes v to TOON. Values go through JSON first so the json
// field names and omitempty rules apply.
func ToTOON(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	s, err := toon.Marshal(generic, nil)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
