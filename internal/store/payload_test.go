package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournalPayload(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
		ok       bool
	}{
		{
			name:     "plain object",
			payload:  `{"contact":{"phone":"+60123456789"}}`,
			expected: `{"contact":{"phone":"+60123456789"}}`,
			ok:       true,
		},
		{
			name:     "NUL escapes dropped from values and keys",
			payload:  `{"note":"a\u0000b","tags":["x\u0000"],"k\u0000ey":1}`,
			expected: `{"note":"ab","tags":["x"],"key":1}`,
			ok:       true,
		},
		{
			name:     "unpaired surrogate replaced",
			payload:  `{"name":"\ud800"}`,
			expected: `{"name":"\ufffd"}`,
			ok:       true,
		},
		{
			name:     "large numbers keep their digits",
			payload:  `{"id":12345678901234567890123}`,
			expected: `{"id":12345678901234567890123}`,
			ok:       true,
		},
		{name: "empty", payload: "", ok: false},
		{name: "blank", payload: "  \n", ok: false},
		{name: "not json", payload: "phone=+60123456789", ok: false},
		{name: "trailing data", payload: `{"a":1} {"b":2}`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, ok := journalPayload([]byte(tt.payload))
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, encoded)
				return
			}
			assert.JSONEq(t, tt.expected, string(encoded))
			assert.NotContains(t, string(encoded), `\u0000`)
		})
	}
}
