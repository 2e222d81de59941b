// Package cli handles the interactive prompt used to query and edit the dictionary by hand
package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/worddict/internal/logger"
	"github.com/bastiangx/worddict/internal/utils"
	"github.com/bastiangx/worddict/pkg/config"
	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/bastiangx/worddict/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
)

const helpText = `commands:
  <prefix>          show the top suggestions for prefix
  :find <word>      show the frequency of word
  :add <word> <n>   add word with frequency n
  :del <word>       delete word
  :stats            show dictionary statistics
  :help             show this help
  :quit             exit`

// InputHandler reads lines from a readline prompt and runs them against the
// completer. A bare line is treated as a prefix; lines starting with ':' are
// commands.
type InputHandler struct {
	completer    suggest.ICompleter
	out          *log.Logger
	prompt       string
	historyFile  string
	noFilter     bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, cfg config.CliConfig) *InputHandler {
	return &InputHandler{
		completer:   completer,
		out:         logger.New(""),
		prompt:      cfg.Prompt,
		historyFile: cfg.HistoryFile,
		noFilter:    cfg.NoFilter,
	}
}

// SetOutput redirects the handler's messages to w.
func (h *InputHandler) SetOutput(w io.Writer) {
	h.out = logger.NewTo(w, "")
}

// Start runs the prompt until :quit, Ctrl+D, or a read error.
func (h *InputHandler) Start() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          h.prompt,
		HistoryFile:     h.historyFile,
		AutoComplete:    &tabCompleter{completer: h.completer},
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	h.out.Print("worddict CLI")
	h.out.Print("type a prefix and press Enter, :help for commands (Ctrl+D to exit)")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !h.handleInput(strings.TrimSpace(line)) {
			return nil
		}
	}
}

// handleInput runs one line and reports whether the loop should continue.
func (h *InputHandler) handleInput(line string) bool {
	if line == "" {
		return true
	}
	h.requestCount++

	if !strings.HasPrefix(line, ":") {
		h.complete(line)
		return true
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return false
	case ":help":
		h.out.Print(helpText)
	case ":stats":
		h.stats()
	case ":find":
		if len(fields) != 2 {
			h.out.Error("usage: :find <word>")
			return true
		}
		h.find(fields[1])
	case ":add":
		if len(fields) != 3 {
			h.out.Error("usage: :add <word> <frequency>")
			return true
		}
		freq, err := strconv.Atoi(fields[2])
		if err != nil {
			h.out.Errorf("Invalid frequency: %s", fields[2])
			return true
		}
		h.add(dictionary.WordFrequency{Word: fields[1], Frequency: freq})
	case ":del":
		if len(fields) != 2 {
			h.out.Error("usage: :del <word>")
			return true
		}
		h.del(fields[1])
	default:
		h.out.Errorf("Unknown command: %s (try :help)", fields[0])
	}
	return true
}

func (h *InputHandler) complete(prefix string) {
	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.out.Warnf("No suggestions found for prefix: '%s' (filtered out)", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix)
	h.out.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		h.out.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, utils.FormatWithCommas(s.Frequency))
	}
}

func (h *InputHandler) find(word string) {
	freq, err := h.completer.Search(word)
	if err != nil {
		h.out.Error(err)
		return
	}
	if freq == 0 {
		h.out.Warnf("'%s' is not in the dictionary", word)
		return
	}
	h.out.Printf("'%s' (freq: %s)", word, utils.FormatWithCommas(freq))
}

func (h *InputHandler) add(wf dictionary.WordFrequency) {
	ok, err := h.completer.Add(wf)
	if err != nil {
		h.out.Error(err)
		return
	}
	if !ok {
		h.out.Warnf("'%s' is already in the dictionary", wf.Word)
		return
	}
	h.out.Printf("Added '%s' (freq: %s)", wf.Word, utils.FormatWithCommas(wf.Frequency))
}

func (h *InputHandler) del(word string) {
	ok, err := h.completer.Delete(word)
	if err != nil {
		h.out.Error(err)
		return
	}
	if !ok {
		h.out.Warnf("'%s' is not in the dictionary", word)
		return
	}
	h.out.Printf("Deleted '%s'", word)
}

func (h *InputHandler) stats() {
	stats := h.completer.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.out.Printf("%-16s %s", k, utils.FormatWithCommas(stats[k]))
	}
	h.out.Printf("%-16s %d", "requests", h.requestCount)
}

// tabCompleter offers dictionary suggestions for the word under the cursor.
type tabCompleter struct {
	completer suggest.ICompleter
}

func (t *tabCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" || strings.HasPrefix(prefix, ":") {
		return nil, 0
	}

	n := utf8.RuneCountInString(prefix)
	var candidates [][]rune
	for _, s := range t.completer.Complete(prefix) {
		candidates = append(candidates, []rune(s.Word)[n:])
	}
	return candidates, n
}
