package web

import (
	"encoding/json"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"zero", 0, "0"},
		{"small int", 42, "42"},
		{"large int", 9863502, "9,863,502"},
		{"int64", int64(1234567), "1,234,567"},
		{"float truncates", 1234.9, "1,234"},
		{"json number", json.Number("956167"), "956,167"},
		{"json float truncates", json.Number("12.7"), "12"},
		{"numeric string", "125000", "125,000"},
		{"padded numeric string", " 125 ", "125"},
		{"non-numeric string", "unknown", "unknown"},
		{"bool falls back to string form", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0:00"},
		{"zero", 0, "0:00"},
		{"under a minute", 59, "0:59"},
		{"exact minute", 60, "1:00"},
		{"two minutes five", 125, "2:05"},
		{"float truncates", 125.9, "2:05"},
		{"json number", json.Number("224"), "3:44"},
		{"long track", 3725, "62:05"},
		{"numeric string", "125", "2:05"},
		{"non-numeric string", "abc", "0:00"},
		{"negative clamps", -5, "0:00"},
		{"unsupported type", []int{1}, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
