package match

import (
	"strings"
	"unicode"
)

// separators are the characters that start a new token in addition to
// uppercase letters.
const separators = "_/\\"

// isBoundary reports whether r begins a new token.
func isBoundary(r rune) bool {
	return unicode.IsUpper(r) || strings.ContainsRune(separators, r)
}

// SplitTokens splits an identifier-like string into tokens at uppercase
// letters and separator characters. A boundary character is consumed as the
// first character of the token it starts, so concatenating the tokens
// reconstructs the input exactly:
//
//	SplitTokens("CoincidentLine") = ["Coincident", "Line"]
//	SplitTokens("a/b_c")          = ["a", "/b", "_c"]
//
// Input without boundaries yields a single token equal to the whole input.
// A leading boundary character yields no empty leading token. SplitTokens
// is total: any string input produces a valid result.
func SplitTokens(s string) []string {
	var tokens []string
	start := 0
	for i, r := range s {
		if i > 0 && isBoundary(r) {
			tokens = append(tokens, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// Tokenize returns the tokens of s joined by single spaces, the normalized
// form used for fuzzy scoring.
func Tokenize(s string) string {
	return strings.Join(SplitTokens(s), " ")
}
