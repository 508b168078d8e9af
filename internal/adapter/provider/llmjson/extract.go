// Package llmjson pulls JSON payloads out of free-form model output, which
// often wraps them in prose or markdown code fences.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when the text holds no JSON value of the wanted kind.
var ErrNoJSON = errors.New("no JSON found in response")

// Object returns the span between the first '{' and the last '}'.
func Object(s string) (string, error) {
	return span(s, "{", "}")
}

// Array returns the span between the first '[' and the last ']'.
func Array(s string) (string, error) {
	return span(s, "[", "]")
}

// Decode unmarshals the first JSON array (array true) or object found in s.
func Decode[T any](s string, array bool, v *T) error {
	extract := Object
	if array {
		extract = Array
	}
	raw, err := extract(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

func span(s, opening, closing string) (string, error) {
	s = stripFence(s)
	start := strings.Index(s, opening)
	end := strings.LastIndex(s, closing)
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoJSON
	}
	return s[start : end+1], nil
}

// stripFence removes a surrounding ```json ... ``` block when present.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}
