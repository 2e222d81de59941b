// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the worddict IPC server and interactive CLI.

worddict stores a word-frequency dictionary in memory and answers search,
insertion, deletion and prefix autocomplete requests. The dictionary is built
once from a word list and then edited incrementally. Autocomplete returns the
three most frequent words under a prefix, ties broken alphabetically.

# Usage

Start the server with a word list:

	worddict -words data/words.txt

Pick another backend and enable debug logging:

	worddict -words data/words.bin -backend radix -d

Run the interactive prompt:

	worddict -c -words data/words.txt

# Backends

Four interchangeable backends implement the same contract:

	trie    character trie with pruning deletes (default)
	array   sorted slice with binary search
	list    singly linked list, linear scans
	radix   Patricia trie from github.com/tchap/go-patricia

# Word lists

Text word lists hold one "word frequency" pair per line; lines starting with #
are comments. Binary word lists (.bin) start with a little-endian int32 entry
count followed by uint16 length, word bytes and uint32 frequency per entry.

# Configuration

Runtime configuration is read from a TOML file, created with defaults on first
run:

	[server]
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[dict]
	backend = "trie"
	word_list = ""
	cache_ttl_seconds = 300

	[cli]
	prompt = "> "
	history_file = ""
	no_filter = false

Flags override the file.

# IPC Protocol

The server speaks msgpack over stdin/stdout; see package server for the
message types. Logs go to stderr.

	{"id": "r1", "action": "complete", "p": "ca"}
	{"id": "r1", "s": [{"w": "cart", "f": 9, "r": 1}], "c": 1, "t": 12}
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/worddict/internal/cli"
	"github.com/bastiangx/worddict/internal/logger"
	"github.com/bastiangx/worddict/pkg/config"
	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/bastiangx/worddict/pkg/server"
	"github.com/bastiangx/worddict/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "worddict"
	gh      = "https://github.com/bastiangx/worddict"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, word list, completer and the chosen front end.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config.toml")
	wordList := flag.String("words", "", "Word list to build the dictionary from (.txt or .bin)")
	backend := flag.String("backend", "", "Dictionary backend: trie, array, list or radix")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive prompt instead of the IPC server")
	noFilter := flag.Bool("no-filter", false, "Disable prefix filtering in the prompt")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	if *backend != "" {
		appConfig.Dict.Backend = *backend
	}
	if *wordList != "" {
		appConfig.Dict.WordList = *wordList
	}
	if *noFilter {
		appConfig.CLI.NoFilter = true
	}

	kind, err := suggest.ParseKind(appConfig.Dict.Backend)
	if err != nil {
		log.Fatalf("Invalid backend: %v", err)
	}

	completer, err := suggest.NewCompleter(kind, appConfig.Dict.CacheTTL())
	if err != nil {
		log.Fatalf("Failed to init completer: %v", err)
	}

	if appConfig.Dict.WordList != "" {
		entries, err := dictionary.LoadFile(appConfig.Dict.WordList)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		if err := completer.Build(entries); err != nil {
			log.Fatalf("Failed to build dictionary: %v", err)
		}
		log.Debug("Completer init done", "backend", completer.Kind(), "words", completer.Stats()["totalWords"])
	} else {
		log.Warn("No word list specified, running with empty dict...")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(completer, appConfig.CLI)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	sigHandler()
	showStartupInfo(appConfig.Dict.WordList, completer.Kind())

	srv := server.NewServer(completer, appConfig, os.Stdin, os.Stdout)
	srv.SetConfigPath(usedPath)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ worddict ] word-frequency dictionary with prefix autocomplete")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(wordList string, kind suggest.Kind) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("backend: %s", kind)
	log.Infof("word list: ( %s )", wordList)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
