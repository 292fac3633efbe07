package places

import (
	"reflect"
	"testing"
)

func TestParsePlaces(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{
			name:     "comma separated",
			response: "Colombia, Macondo, Caribbean coast",
			expected: []string{"Colombia", "Macondo", "Caribbean coast"},
		},
		{
			name:     "newline separated with bullets",
			response: "- Japan\n- Tokyo\n",
			expected: []string{"Japan", "Tokyo"},
		},
		{
			name:     "none sentinel",
			response: "NONE",
			expected: nil,
		},
		{
			name:     "empty",
			response: "  ",
			expected: nil,
		},
		{
			name:     "mixed with empty segments",
			response: "Kenya,, Nairobi,\nnone",
			expected: []string{"Kenya", "Nairobi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parsePlaces(tt.response)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("parsePlaces(%q) = %v, want %v", tt.response, result, tt.expected)
			}
		})
	}
}

func TestForName(t *testing.T) {
	if _, err := ForName("gemini"); err != nil {
		t.Errorf("gemini provider: %v", err)
	}
	if _, err := ForName("ollama"); err != nil {
		t.Errorf("ollama provider: %v", err)
	}
	if _, err := ForName("mystery"); err == nil {
		t.Error("expected error for unsupported provider")
	}
}
