package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain data", input: "rest-mama-africa", expected: "rest-mama-africa"},
		{name: "surrounding whitespace", input: "  cart  ", expected: "cart"},
		{name: "embedded control characters", input: "ord\x00er-1\x1f", expected: "order-1"},
		{name: "piped arguments", input: "line-1|3", expected: "line-1|3"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "uuid", input: "a1b2c3d4-e5f6-7890-abcd-ef1234567890", expected: "#A1B2C3D4"},
		{name: "short id", input: "ord-1", expected: "#ORD1"},
		{name: "empty", input: "", expected: "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shortID(tt.input))
		})
	}
}
