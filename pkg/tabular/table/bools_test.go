package table

import "testing"

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"yes", true},
		{"y", true},
		{"t", true},
		{"1", true},
		{"false", false},
		{"no", false},
		{"n", false},
		{"f", false},
		{"0", false},
		{"TRUE", true},
		{"Yes", true},
		{"  t  ", true},
		{"FALSE", false},
		{" No ", false},
	}

	for _, tt := range tests {
		got := ParseBool(tt.input)
		if got == nil {
			t.Errorf("ParseBool(%q) = nil, want %v", tt.input, tt.expected)
			continue
		}
		if *got != tt.expected {
			t.Errorf("ParseBool(%q) = %v, want %v", tt.input, *got, tt.expected)
		}
	}
}

func TestParseBoolRejects(t *testing.T) {
	for _, input := range []string{"", " ", "maybe", "2", "-1", "truee", "on", "off", "0.0"} {
		if got := ParseBool(input); got != nil {
			t.Errorf("ParseBool(%q) = %v, want nil", input, *got)
		}
	}
}
