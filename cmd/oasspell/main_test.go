package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"chek", "check"},
		{"chekc", "check"},
		{"proofraed", "proofread"},
		{"prooofread", "proofread"},
		{"tokenise", "tokenize"},
		{"anotate", "annotate"},
		{"sugest", "suggest"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},
		{"CHECK", "check"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"validatation", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}
