// Copyright (c) 2026 Aeris Labs. All rights reserved.

// Package normalize folds arbitrary Unicode location names into plain ASCII
// lookup keys.
//
// # Usage
//
// Monitoring stations are reported with human-entered names ("São Paulo",
// "Delhi  NCR"). Matching those against a search query needs both sides
// reduced to the same canonical form, which is stored alongside the raw name.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// multiSpace collapses runs of whitespace into a single space.
	multiSpace = regexp.MustCompile(`\s{2,}`)
)

// Key converts an arbitrary Unicode string into a canonical lookup key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Drops everything that is not a letter, digit, or space.
// 5. Collapses repeated whitespace and trims the ends.
func Key(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Keep letters, digits, and word separators only
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return ' '
		}
		return -1
	}, result)

	// 4. Clean up whitespace
	result = multiSpace.ReplaceAllString(result, " ")
	result = strings.TrimSpace(result)

	return result
}

// isMn reports whether the rune is a combining mark (Unicode category Mn).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
