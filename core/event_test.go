package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventCode(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		expected string
	}{
		{
			name:     "Two digit event number",
			event:    "Event 10 2025",
			expected: "E1025",
		},
		{
			name:     "Single digit is zero padded",
			event:    "Event 3 2024",
			expected: "E0324",
		},
		{
			name:     "Case insensitive",
			event:    "event 7 2026",
			expected: "E0726",
		},
		{
			name:     "Embedded in longer text",
			event:    "Autumn launch - Event 12 2025 (final)",
			expected: "E1225",
		},
		{
			name:     "No match falls back",
			event:    "Christmas Campaign",
			expected: "E0000",
		},
		{
			name:     "Empty name falls back",
			event:    "",
			expected: "E0000",
		},
		{
			name:     "Two digit year is not accepted",
			event:    "Event 10 25",
			expected: "E0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EventCode(tt.event))
		})
	}
}
