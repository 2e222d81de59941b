package suggest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/worddict/pkg/array"
	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/bastiangx/worddict/pkg/linkedlist"
	"github.com/bastiangx/worddict/pkg/radix"
	"github.com/bastiangx/worddict/pkg/trie"
)

// Kind names a dictionary backend.
type Kind string

const (
	KindTrie  Kind = "trie"
	KindArray Kind = "array"
	KindList  Kind = "list"
	KindRadix Kind = "radix"
)

// ErrUnknownBackend is returned for a backend name that is not registered.
var ErrUnknownBackend = errors.New("unknown backend")

var backends = map[Kind]func() dictionary.Dictionary{
	KindTrie:  func() dictionary.Dictionary { return trie.New() },
	KindArray: func() dictionary.Dictionary { return array.New() },
	KindList:  func() dictionary.Dictionary { return linkedlist.New() },
	KindRadix: func() dictionary.Dictionary { return radix.New() },
}

// Kinds lists every registered backend in a fixed order.
func Kinds() []Kind {
	return []Kind{KindTrie, KindArray, KindList, KindRadix}
}

// ParseKind maps a config or flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindTrie, nil
	}
	if _, ok := backends[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
	return k, nil
}

// New returns an empty dictionary of the given kind.
func New(kind Kind) (dictionary.Dictionary, error) {
	factory, ok := backends[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
	return factory(), nil
}
