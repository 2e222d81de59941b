// Package suggest selects a dictionary backend and serves it to concurrent callers through a Completer.
package suggest

import "github.com/bastiangx/worddict/pkg/dictionary"

// ICompleter defines what the CLI and the IPC server need from a completer
type ICompleter interface {
	// Complete returns the ranked suggestions for a prefix
	Complete(prefix string) []dictionary.WordFrequency

	// Search returns the frequency of a word, 0 if absent
	Search(word string) (int, error)

	// Add stores a new word, false if already present
	Add(wf dictionary.WordFrequency) (bool, error)

	// Delete removes a word, false if absent
	Delete(word string) (bool, error)

	// Build replaces the dictionary content
	Build(entries []dictionary.WordFrequency) error

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
