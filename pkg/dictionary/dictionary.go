/*
Package dictionary defines the word-frequency record and the contract every
dictionary backend implements.

A backend is built once from a bulk word list and then mutated incrementally:

	var d dictionary.Dictionary = trie.New()
	err := d.Build([]dictionary.WordFrequency{{Word: "cat", Frequency: 5}})
	freq, err := d.Search("cat")
	ok, err := d.Add(dictionary.WordFrequency{Word: "car", Frequency: 3})
	ok, err = d.Delete("cat")
	top := d.Autocomplete("ca")

Expected outcomes such as a missing word, a duplicate insert or a prefix with no
matches are reported through the boolean, zero or empty return values. Errors
are reserved for caller contract violations (ErrInvalidWord,
ErrInvalidFrequency) and never change the dictionary.

Backends are not safe for concurrent use. Wrap them in a suggest.Completer
when several goroutines share one.
*/
package dictionary

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxSuggestions is the number of entries Autocomplete returns at most.
const MaxSuggestions = 3

var (
	// ErrInvalidWord is returned when a word argument is empty or not valid
	// UTF-8.
	ErrInvalidWord = errors.New("invalid word: must be non-empty UTF-8")
	// ErrInvalidFrequency is returned when a frequency is negative.
	ErrInvalidFrequency = errors.New("invalid frequency: must not be negative")
)

// WordFrequency pairs a word with its frequency.
type WordFrequency struct {
	Word      string
	Frequency int
}

func (wf WordFrequency) String() string {
	return fmt.Sprintf("%s(%d)", wf.Word, wf.Frequency)
}

// Dictionary is the operation set shared by all backends.
type Dictionary interface {
	// Build replaces the dictionary content with entries.
	// A word repeated in entries keeps its last frequency.
	Build(entries []WordFrequency) error

	// Search returns the frequency of word, or 0 if it is not stored.
	Search(word string) (int, error)

	// Add stores wf and reports false if the word is already present.
	Add(wf WordFrequency) (bool, error)

	// Delete removes word and reports false if it was not present.
	Delete(word string) (bool, error)

	// Autocomplete returns up to MaxSuggestions words starting with prefix,
	// ranked by Rank.
	Autocomplete(prefix string) []WordFrequency
}

// Sizer is implemented by backends that can report how many words they hold.
type Sizer interface {
	Len() int
}

// ValidateWord checks a word argument. Backends key on runes, so a word that
// is not valid UTF-8 would collide with every other word sharing its
// replacement characters.
func ValidateWord(word string) error {
	if word == "" {
		return ErrInvalidWord
	}
	if !utf8.ValidString(word) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return nil
}

// ValidPrefix reports whether prefix can match stored words. Stored words are
// valid UTF-8, so a prefix that is not, including one cut inside a multi-byte
// rune, matches nothing.
func ValidPrefix(prefix string) bool {
	return utf8.ValidString(prefix)
}

// Validate checks both fields of wf.
func (wf WordFrequency) Validate() error {
	if err := ValidateWord(wf.Word); err != nil {
		return err
	}
	if wf.Frequency < 0 {
		return fmt.Errorf("%w: %q has %d", ErrInvalidFrequency, wf.Word, wf.Frequency)
	}
	return nil
}

// ValidateEntries checks every entry so Build can reject a list before it
// touches any state.
func ValidateEntries(entries []WordFrequency) error {
	for i, wf := range entries {
		if err := wf.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}
