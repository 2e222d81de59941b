// Package linkedlist implements the dictionary contract over a singly linked
// list. New words are pushed at the head and every operation is a linear scan.
package linkedlist

import (
	"strings"

	"github.com/bastiangx/worddict/pkg/dictionary"
)

type listNode struct {
	entry dictionary.WordFrequency
	next  *listNode
}

// Dictionary is a linked-list dictionary.Dictionary. The zero value is an
// empty dictionary.
type Dictionary struct {
	head *listNode
	size int
}

var _ dictionary.Dictionary = (*Dictionary)(nil)

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{}
}

func (d *Dictionary) push(wf dictionary.WordFrequency) {
	d.head = &listNode{entry: wf, next: d.head}
	d.size++
}

// Build replaces the list with entries. A repeated word overwrites the
// frequency of the node pushed for its first occurrence.
func (d *Dictionary) Build(entries []dictionary.WordFrequency) error {
	if err := dictionary.ValidateEntries(entries); err != nil {
		return err
	}
	d.head, d.size = nil, 0
	seen := make(map[string]*listNode, len(entries))
	for _, wf := range entries {
		if n, ok := seen[wf.Word]; ok {
			n.entry.Frequency = wf.Frequency
			continue
		}
		d.push(wf)
		seen[wf.Word] = d.head
	}
	return nil
}

func (d *Dictionary) find(word string) *listNode {
	for n := d.head; n != nil; n = n.next {
		if n.entry.Word == word {
			return n
		}
	}
	return nil
}

// Search returns the frequency of word, or 0.
func (d *Dictionary) Search(word string) (int, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return 0, err
	}
	if n := d.find(word); n != nil {
		return n.entry.Frequency, nil
	}
	return 0, nil
}

// Add pushes wf at the head unless the word is already listed.
func (d *Dictionary) Add(wf dictionary.WordFrequency) (bool, error) {
	if err := wf.Validate(); err != nil {
		return false, err
	}
	if d.find(wf.Word) != nil {
		return false, nil
	}
	d.push(wf)
	return true, nil
}

// Delete unlinks the node holding word.
func (d *Dictionary) Delete(word string) (bool, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return false, err
	}
	for link := &d.head; *link != nil; link = &(*link).next {
		if (*link).entry.Word == word {
			*link = (*link).next
			d.size--
			return true, nil
		}
	}
	return false, nil
}

// Autocomplete scans the whole list for words starting with prefix.
func (d *Dictionary) Autocomplete(prefix string) []dictionary.WordFrequency {
	if !dictionary.ValidPrefix(prefix) {
		return []dictionary.WordFrequency{}
	}
	var candidates []dictionary.WordFrequency
	for n := d.head; n != nil; n = n.next {
		if strings.HasPrefix(n.entry.Word, prefix) {
			candidates = append(candidates, n.entry)
		}
	}
	return dictionary.Rank(candidates, dictionary.MaxSuggestions)
}

// Len returns the number of stored words.
func (d *Dictionary) Len() int {
	return d.size
}
