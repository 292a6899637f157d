package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError is returned when model output cannot be decoded as the expected JSON.
// Free-text generators give no schema guarantee, so callers treat it as a
// normal outcome.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseJSON decodes a JSON value from model output into out. Markdown code
// fences are stripped; if the text still does not decode, the outermost
// {...} or [...] span is tried.
func ParseJSON(text string, out any) error {
	cleaned := stripFences(strings.TrimSpace(text))
	if cleaned == "" {
		return &ParseError{Raw: text, Err: errors.New("empty response")}
	}

	err := json.Unmarshal([]byte(cleaned), out)
	if err == nil {
		return nil
	}

	if span := outermostSpan(cleaned); span != "" && span != cleaned {
		if spanErr := json.Unmarshal([]byte(span), out); spanErr == nil {
			return nil
		}
	}

	return &ParseError{Raw: truncate(text, 300), Err: err}
}

// stripFences removes a surrounding ```json ... ``` block
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	endIdx := len(lines)
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			endIdx = i
			break
		}
	}
	if endIdx <= 1 {
		return strings.Trim(text, "`")
	}
	return strings.TrimSpace(strings.Join(lines[1:endIdx], "\n"))
}

func outermostSpan(text string) string {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return ""
	}
	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(text, closer)
	if end <= start {
		return ""
	}
	return text[start : end+1]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Number is a JSON number that also accepts numeric strings such as "85" or
// "85%". Values that are not numeric leave it unset instead of failing the
// whole decode.
type Number struct {
	Value float64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Number{}
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = Number{}
		return nil
	}
	*n = Number{Value: v, Set: true}
	return nil
}

// Or returns the value, or def when the field was absent
func (n Number) Or(def float64) float64 {
	if !n.Set {
		return def
	}
	return n.Value
}

// StringList is a JSON string array that also accepts a single string
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = compact(list)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = compact([]string{single})
	return nil
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Bool is a JSON boolean that also accepts "true"/"false"/"yes"/"no" strings.
// Anything else decodes as false.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *Bool) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(data)), `"`))
	switch s {
	case "true", "yes", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}
