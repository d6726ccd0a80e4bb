package store

import (
	"bytes"
	"encoding/json"
	"strings"
)

// journalPayload re-encodes a webhook body so every backend accepts it as JSON.
// NUL characters are dropped from keys and strings, invalid UTF-8 and unpaired
// surrogates become U+FFFD, and numbers keep their original text.
// The second return value is false when the body is empty or not valid JSON.
func journalPayload(payload []byte) ([]byte, bool) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, false
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return nil, false
	}
	if decoder.More() {
		return nil, false
	}

	encoded, err := json.Marshal(stripNUL(value))
	if err != nil {
		return nil, false
	}
	return encoded, true
}

func stripNUL(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return strings.ReplaceAll(v, "\x00", "")
	case map[string]interface{}:
		cleaned := make(map[string]interface{}, len(v))
		for key, item := range v {
			cleaned[strings.ReplaceAll(key, "\x00", "")] = stripNUL(item)
		}
		return cleaned
	case []interface{}:
		for i, item := range v {
			v[i] = stripNUL(item)
		}
		return v
	default:
		return v
	}
}
