package utils

import (
	"unicode"
)

// IsOnlyLetters checks if a string consists entirely of letters
func IsOnlyLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsValidInput checks if a prefix should be processed for completions.
// The empty prefix is valid and matches every word; anything else must be
// letters only, since word lists hold alphabetic words by convention.
func IsValidInput(s string) bool {
	return s == "" || IsOnlyLetters(s)
}
