package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/bastiangx/worddict/pkg/config"
	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/bastiangx/worddict/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (*InputHandler, *bytes.Buffer, *suggest.Completer) {
	t.Helper()
	c, err := suggest.NewCompleter(suggest.KindTrie, time.Minute)
	require.NoError(t, err)
	require.NoError(t, c.Build([]dictionary.WordFrequency{
		{Word: "cat", Frequency: 5},
		{Word: "car", Frequency: 3},
		{Word: "cart", Frequency: 9},
		{Word: "dog", Frequency: 1200},
	}))

	var buf bytes.Buffer
	h := NewInputHandler(c, config.DefaultConfig().CLI)
	h.SetOutput(&buf)
	return h, &buf, c
}

func TestHandleInputComplete(t *testing.T) {
	h, buf, _ := newHandler(t)

	assert.True(t, h.handleInput("ca"))
	out := buf.String()
	assert.Contains(t, out, "Found 3 suggestions for prefix 'ca'")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("cart")), bytes.Index(buf.Bytes(), []byte("cat")))

	buf.Reset()
	h.handleInput("zz")
	assert.Contains(t, buf.String(), "No suggestions found")

	buf.Reset()
	h.handleInput("c4t")
	assert.Contains(t, buf.String(), "filtered out")
}

func TestHandleInputCommands(t *testing.T) {
	h, buf, c := newHandler(t)

	h.handleInput(":find dog")
	assert.Contains(t, buf.String(), "1,200")

	buf.Reset()
	h.handleInput(":add cow 4")
	assert.Contains(t, buf.String(), "Added 'cow'")
	freq, _ := c.Search("cow")
	assert.Equal(t, 4, freq)

	buf.Reset()
	h.handleInput(":add cow 7")
	assert.Contains(t, buf.String(), "already in the dictionary")

	buf.Reset()
	h.handleInput(":add cow seven")
	assert.Contains(t, buf.String(), "Invalid frequency")

	buf.Reset()
	h.handleInput(":del cow")
	assert.Contains(t, buf.String(), "Deleted 'cow'")
	freq, _ = c.Search("cow")
	assert.Zero(t, freq)

	buf.Reset()
	h.handleInput(":del cow")
	assert.Contains(t, buf.String(), "not in the dictionary")

	buf.Reset()
	h.handleInput(":add emu -1")
	assert.Contains(t, buf.String(), "invalid frequency")

	buf.Reset()
	h.handleInput(":stats")
	assert.Contains(t, buf.String(), "totalWords")

	buf.Reset()
	h.handleInput(":bogus")
	assert.Contains(t, buf.String(), "Unknown command")

	assert.True(t, h.handleInput(""))
	assert.False(t, h.handleInput(":quit"))
}

func TestTabCompleter(t *testing.T) {
	h, _, _ := newHandler(t)
	tc := &tabCompleter{completer: h.completer}

	line := []rune(":find ca")
	candidates, length := tc.Do(line, len(line))
	assert.Equal(t, 2, length)
	assert.Equal(t, [][]rune{[]rune("rt"), []rune("t"), []rune("r")}, candidates)

	candidates, length = tc.Do([]rune(":fi"), 3)
	assert.Nil(t, candidates)
	assert.Zero(t, length)

	candidates, _ = tc.Do([]rune("ca "), 3)
	assert.Nil(t, candidates)
}
