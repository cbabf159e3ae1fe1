package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// decodeEnum accepts a name or one of the legacy integer codes (the index into
// names), the code given either as a JSON number or as a numeric string.
// Unknown values are returned verbatim so that the interview validator can
// report them as invalid enum values.
func decodeEnum(b []byte, names []string) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if code, err := strconv.Atoi(s); err == nil && code >= 0 && code < len(names) {
			return names[code], nil
		}
		return s, nil
	}
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	code, err := strconv.Atoi(string(b))
	if err != nil {
		return "", fmt.Errorf("expected string or integer code, got %s", b)
	}
	if code >= 0 && code < len(names) {
		return names[code], nil
	}
	return strconv.Itoa(code), nil
}

// scanEnum converts a database value into an enum name and rejects anything
// outside names.
func scanEnum(src any, kind string, names []string) (string, error) {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return "", fmt.Errorf("cannot scan %T into %s", src, kind)
	}
	for _, n := range names {
		if s == n {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown %s %q", kind, s)
}
