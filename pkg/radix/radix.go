// Package radix implements the dictionary contract on top of a Patricia trie
// from github.com/tchap/go-patricia. It serves as a reference backend for the
// hand-built trie.
package radix

import (
	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is a patricia-backed dictionary.Dictionary.
type Dictionary struct {
	trie  *patricia.Trie
	words int
}

var _ dictionary.Dictionary = (*Dictionary)(nil)

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{trie: patricia.NewTrie()}
}

// Build replaces the content with entries.
func (d *Dictionary) Build(entries []dictionary.WordFrequency) error {
	if err := dictionary.ValidateEntries(entries); err != nil {
		return err
	}
	trie := patricia.NewTrie()
	words := 0
	for _, wf := range entries {
		key := patricia.Prefix(wf.Word)
		if trie.Insert(key, wf.Frequency) {
			words++
			continue
		}
		trie.Set(key, wf.Frequency)
	}
	d.trie = trie
	d.words = words
	return nil
}

// Search returns the frequency of word, or 0.
func (d *Dictionary) Search(word string) (int, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return 0, err
	}
	item := d.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, nil
	}
	return item.(int), nil
}

// Add inserts wf; patricia refuses keys that already hold an item.
func (d *Dictionary) Add(wf dictionary.WordFrequency) (bool, error) {
	if err := wf.Validate(); err != nil {
		return false, err
	}
	if !d.trie.Insert(patricia.Prefix(wf.Word), wf.Frequency) {
		return false, nil
	}
	d.words++
	return true, nil
}

// Delete removes word.
func (d *Dictionary) Delete(word string) (bool, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return false, err
	}
	if !d.trie.Delete(patricia.Prefix(word)) {
		return false, nil
	}
	d.words--
	return true, nil
}

// Autocomplete visits the subtree under prefix.
func (d *Dictionary) Autocomplete(prefix string) []dictionary.WordFrequency {
	if !dictionary.ValidPrefix(prefix) {
		return []dictionary.WordFrequency{}
	}
	var candidates []dictionary.WordFrequency
	collect := func(p patricia.Prefix, item patricia.Item) error {
		candidates = append(candidates, dictionary.WordFrequency{
			Word:      string(p),
			Frequency: item.(int),
		})
		return nil
	}

	var err error
	if prefix == "" {
		err = d.trie.Visit(collect)
	} else {
		err = d.trie.VisitSubtree(patricia.Prefix(prefix), collect)
	}
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []dictionary.WordFrequency{}
	}
	return dictionary.Rank(candidates, dictionary.MaxSuggestions)
}

// Len returns the number of stored words.
func (d *Dictionary) Len() int {
	return d.words
}
