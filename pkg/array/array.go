// Package array implements the dictionary contract over a slice kept sorted
// by word, using binary search for lookups.
package array

import (
	"sort"
	"strings"

	"github.com/bastiangx/worddict/pkg/dictionary"
)

// Dictionary is a sorted-slice dictionary.Dictionary. The zero value is an
// empty dictionary.
type Dictionary struct {
	entries []dictionary.WordFrequency
}

var _ dictionary.Dictionary = (*Dictionary)(nil)

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{}
}

// Build replaces the content with entries. Later duplicates overwrite earlier
// ones.
func (d *Dictionary) Build(entries []dictionary.WordFrequency) error {
	if err := dictionary.ValidateEntries(entries); err != nil {
		return err
	}
	latest := make(map[string]int, len(entries))
	for _, wf := range entries {
		latest[wf.Word] = wf.Frequency
	}
	sorted := make([]dictionary.WordFrequency, 0, len(latest))
	for word, freq := range latest {
		sorted = append(sorted, dictionary.WordFrequency{Word: word, Frequency: freq})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Word < sorted[j].Word
	})
	d.entries = sorted
	return nil
}

// index returns the position word has or would have.
func (d *Dictionary) index(word string) (int, bool) {
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Word >= word
	})
	return i, i < len(d.entries) && d.entries[i].Word == word
}

// Search returns the frequency of word, or 0.
func (d *Dictionary) Search(word string) (int, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return 0, err
	}
	if i, ok := d.index(word); ok {
		return d.entries[i].Frequency, nil
	}
	return 0, nil
}

// Add inserts wf at its sorted position.
func (d *Dictionary) Add(wf dictionary.WordFrequency) (bool, error) {
	if err := wf.Validate(); err != nil {
		return false, err
	}
	i, ok := d.index(wf.Word)
	if ok {
		return false, nil
	}
	d.entries = append(d.entries, dictionary.WordFrequency{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = wf
	return true, nil
}

// Delete removes word, shifting later entries down.
func (d *Dictionary) Delete(word string) (bool, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return false, err
	}
	i, ok := d.index(word)
	if !ok {
		return false, nil
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	return true, nil
}

// Autocomplete ranks the contiguous run of entries starting with prefix.
func (d *Dictionary) Autocomplete(prefix string) []dictionary.WordFrequency {
	if !dictionary.ValidPrefix(prefix) {
		return []dictionary.WordFrequency{}
	}
	start, _ := d.index(prefix)
	var candidates []dictionary.WordFrequency
	for _, wf := range d.entries[start:] {
		if !strings.HasPrefix(wf.Word, prefix) {
			break
		}
		candidates = append(candidates, wf)
	}
	return dictionary.Rank(candidates, dictionary.MaxSuggestions)
}

// Len returns the number of stored words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
