// Package trie implements the dictionary contract as a character trie.
//
// Each edge is labeled with one rune; words sharing a prefix share the path
// that spells it. Deletion prunes nodes that end up neither terminal nor
// branching, so the tree never keeps dangling leaves.
package trie

import (
	"github.com/bastiangx/worddict/pkg/dictionary"
)

type node struct {
	letter    rune
	children  map[rune]*node
	terminal  bool
	frequency int
}

func newNode(letter rune) *node {
	return &node{
		letter:   letter,
		children: make(map[rune]*node),
	}
}

// child returns the child for r, creating it when missing.
func (n *node) child(r rune) *node {
	next, ok := n.children[r]
	if !ok {
		next = newNode(r)
		n.children[r] = next
	}
	return next
}

// Dictionary is a trie-backed dictionary.Dictionary. The zero value is not
// usable; call New.
type Dictionary struct {
	root  *node
	words int
}

var _ dictionary.Dictionary = (*Dictionary)(nil)

// New returns an empty trie.
func New() *Dictionary {
	return &Dictionary{root: newNode(0)}
}

// Build replaces the trie with entries. Invalid entries abort the build and
// leave the previous content in place.
func (d *Dictionary) Build(entries []dictionary.WordFrequency) error {
	if err := dictionary.ValidateEntries(entries); err != nil {
		return err
	}
	root := newNode(0)
	words := 0
	for _, wf := range entries {
		n := root
		for _, r := range wf.Word {
			n = n.child(r)
		}
		if !n.terminal {
			words++
		}
		n.terminal = true
		n.frequency = wf.Frequency
	}
	d.root = root
	d.words = words
	return nil
}

// find walks s from the root and returns the node it ends at, or nil.
func (d *Dictionary) find(s string) *node {
	n := d.root
	for _, r := range s {
		next, ok := n.children[r]
		if !ok {
			return nil
		}
		n = next
	}
	return n
}

// Search returns the frequency of word, or 0 when word is missing or only a
// prefix of stored words.
func (d *Dictionary) Search(word string) (int, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return 0, err
	}
	n := d.find(word)
	if n == nil || !n.terminal {
		return 0, nil
	}
	return n.frequency, nil
}

// Add inserts wf. A path that already exists as a non-terminal prefix is
// promoted to a word.
func (d *Dictionary) Add(wf dictionary.WordFrequency) (bool, error) {
	if err := wf.Validate(); err != nil {
		return false, err
	}
	if n := d.find(wf.Word); n != nil && n.terminal {
		return false, nil
	}
	n := d.root
	for _, r := range wf.Word {
		n = n.child(r)
	}
	n.terminal = true
	n.frequency = wf.Frequency
	d.words++
	return true, nil
}

// Delete removes word and prunes the nodes only it was using.
func (d *Dictionary) Delete(word string) (bool, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return false, err
	}
	if n := d.find(word); n == nil || !n.terminal {
		return false, nil
	}
	remove(d.root, []rune(word))
	d.words--
	return true, nil
}

// remove clears the terminal mark at the end of path below n and reports
// whether n itself is now useless to its parent. Children are pruned before
// their parents are checked.
func remove(n *node, path []rune) bool {
	if len(path) == 0 {
		n.terminal = false
		n.frequency = 0
	} else {
		r := path[0]
		if remove(n.children[r], path[1:]) {
			delete(n.children, r)
		}
	}
	return !n.terminal && len(n.children) == 0
}

// Autocomplete returns the most frequent words below prefix. The empty prefix
// matches every stored word.
func (d *Dictionary) Autocomplete(prefix string) []dictionary.WordFrequency {
	if !dictionary.ValidPrefix(prefix) {
		return []dictionary.WordFrequency{}
	}
	n := d.find(prefix)
	if n == nil {
		return []dictionary.WordFrequency{}
	}
	c := &collector{path: []rune(prefix)}
	c.walk(n)
	return dictionary.Rank(c.found, dictionary.MaxSuggestions)
}

// collector accumulates the words of a subtree. path holds the runes from the
// root to the node being visited.
type collector struct {
	path  []rune
	found []dictionary.WordFrequency
}

func (c *collector) walk(n *node) {
	if n.terminal {
		c.found = append(c.found, dictionary.WordFrequency{
			Word:      string(c.path),
			Frequency: n.frequency,
		})
	}
	for _, next := range n.children {
		c.path = append(c.path, next.letter)
		c.walk(next)
		c.path = c.path[:len(c.path)-1]
	}
}

// Len returns the number of stored words.
func (d *Dictionary) Len() int {
	return d.words
}

// Empty reports whether the root has no children.
func (d *Dictionary) Empty() bool {
	return len(d.root.children) == 0
}
