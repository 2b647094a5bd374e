package form

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// RawInput is a submission as received from a client: arbitrary key/value
// pairs whose key names are not stable across form versions. Values are
// strings for urlencoded bodies and string/bool/number for JSON bodies.
type RawInput map[string]any

// ErrMalformedBody reports a body that could not be parsed under its
// declared content type.
var ErrMalformedBody = fmt.Errorf("request body is not parseable")

// ParseBody decodes a request body into RawInput. The content type picks
// the parser; anything else is tried as JSON, which older clients sent
// without a content-type header.
func ParseBody(body []byte, contentType string) (RawInput, error) {
	ct := strings.ToLower(contentType)

	if strings.Contains(ct, "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		raw := make(RawInput, len(values))
		for key := range values {
			raw[key] = values.Get(key)
		}
		return raw, nil
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return RawInput{}, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return RawInput(decoded), nil
}

// keyIndex maps lowercased raw keys to their original spelling so alias
// lookup is case-insensitive.
func (r RawInput) keyIndex() map[string]string {
	index := make(map[string]string, len(r))
	for key := range r {
		lower := strings.ToLower(key)
		if _, taken := index[lower]; !taken {
			index[lower] = key
		}
	}
	return index
}

// HoneypotTriggered reports whether any designated decoy key holds a
// non-empty trimmed value. Genuine users never populate hidden fields, so
// any value at all is treated as a bot submission.
func (r RawInput) HoneypotTriggered(keys []string) bool {
	index := r.keyIndex()
	for _, key := range keys {
		real, ok := index[strings.ToLower(key)]
		if !ok {
			continue
		}
		if stringValue(r[real]) != "" {
			return true
		}
	}
	return false
}

// stringValue coerces a raw value to a trimmed string. Nil and unsupported
// shapes (nested objects, arrays) coerce to "".
func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return ""
	}
}

// truthy coerces consent-style checkbox values. Strings are matched
// case-insensitively against the accepted set; everything else is false,
// including "" and "false".
func truthy(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case float64:
		return value == 1
	case int:
		return value == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "on", "yes", "1", "y":
			return true
		}
	}
	return false
}
