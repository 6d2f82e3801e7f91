package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsString(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   string
		wantOK bool
	}{
		{"plain string", "house", "house", true},
		{"padded string", "  house  ", "house", true},
		{"empty string", "", "", false},
		{"whitespace only", "   ", "", false},
		{"nil", nil, "", false},
		{"number", 42.0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsString(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{"float64", 450000.0, 450000.0, true},
		{"int", 3, 3.0, true},
		{"numeric string", "450000.50", 450000.50, true},
		{"price with separators", "$1,250,000.00", 1250000.0, true},
		{"json.Number", json.Number("99.5"), 99.5, true},
		{"non-numeric string", "call agent", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsFloat(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int
		wantOK bool
	}{
		{"whole float", 3.0, 3, true},
		{"string count", "4", 4, true},
		{"fractional float rejected", 2.5, 0, false},
		{"fractional string rejected", "2.5", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsInt(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   []string
		wantOK bool
	}{
		{"any slice", []any{"Pool", "Gym"}, []string{"Pool", "Gym"}, true},
		{"string slice", []string{"Pool", " Gym "}, []string{"Pool", "Gym"}, true},
		{"skips blanks and non-strings", []any{"Pool", "", 7, "Gym"}, []string{"Pool", "Gym"}, true},
		{"comma separated", "Pool, Gym ,Sauna", []string{"Pool", "Gym", "Sauna"}, true},
		{"single value string", "Pool", []string{"Pool"}, true},
		{"blank string", "   ", nil, false},
		{"nil", nil, nil, false},
		{"number", 12, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsStringSlice(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
