// Copyright (c) 2026 Aeris Labs. All rights reserved.

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeris-labs/aeris/pkg/normalize"
)

/*
TestKey verifies accent stripping, casing, separators, and whitespace
collapsing produce a stable search key.
*/
func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Delhi", "delhi"},
		{"accents", "São Paulo", "sao paulo"},
		{"uppercase_hyphen", "SAO-PAULO", "sao paulo"},
		{"underscores", "new_york_city", "new york city"},
		{"extra_whitespace", "  New   York  ", "new york"},
		{"punctuation_dropped", "México, D.F.", "mexico df"},
		{"digits_kept", "Sector 62", "sector 62"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Key(tt.input))
		})
	}
}

/*
TestKey_Idempotent verifies normalizing an already-normalized key is a
no-op, which keeps stored keys and query keys comparable.
*/
func TestKey_Idempotent(t *testing.T) {
	inputs := []string{"São Paulo", "SAO-PAULO", "new_york"}
	for _, input := range inputs {
		once := normalize.Key(input)
		assert.Equal(t, once, normalize.Key(once))
	}
}
