package server

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/worddict/internal/utils"
	"github.com/bastiangx/worddict/pkg/config"
	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/bastiangx/worddict/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for dictionary requests
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	configPath   string
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w
func NewServer(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
	}
}

// SetConfigPath sets the file "config" requests write to. Without one the
// server refuses config changes.
func (s *Server) SetConfigPath(path string) {
	s.configPath = path
}

// Start announces readiness and serves requests until the input ends.
// A request that cannot be decoded ends the session, since the stream
// position is lost.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.requestCount++
		if err := s.handleRequest(request); err != nil {
			return err
		}
	}
}

// handleRequest dispatches a request by action
func (s *Server) handleRequest(request Request) error {
	switch request.Action {
	case "complete":
		return s.handleComplete(request)
	case "search":
		freq, err := s.completer.Search(request.Word)
		if err != nil {
			return s.sendFailure(request.ID, err)
		}
		return s.send(WordResponse{ID: request.ID, OK: freq > 0, Frequency: freq})
	case "add":
		wf := dictionary.WordFrequency{Word: request.Word, Frequency: request.Frequency}
		ok, err := s.completer.Add(wf)
		if err != nil {
			return s.sendFailure(request.ID, err)
		}
		log.Debug("Add", "word", wf.Word, "ok", ok)
		if !ok {
			stored, err := s.completer.Search(wf.Word)
			if err != nil {
				return s.sendFailure(request.ID, err)
			}
			return s.send(WordResponse{ID: request.ID, OK: false, Frequency: stored})
		}
		return s.send(WordResponse{ID: request.ID, OK: true, Frequency: wf.Frequency})
	case "delete":
		ok, err := s.completer.Delete(request.Word)
		if err != nil {
			return s.sendFailure(request.ID, err)
		}
		log.Debug("Delete", "word", request.Word, "ok", ok)
		return s.send(WordResponse{ID: request.ID, OK: ok})
	case "stats":
		return s.send(StatusResponse{ID: request.ID, Status: "ok", Stats: s.completer.Stats()})
	case "health":
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case "config":
		return s.handleConfig(request)
	default:
		return s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleComplete validates the prefix against the server config and returns
// the ranked suggestions.
func (s *Server) handleComplete(request Request) error {
	prefix := request.Prefix
	cfg := s.config.Server
	length := utf8.RuneCountInString(prefix)

	if length < cfg.MinPrefix {
		log.Debug("Prefix is too short in request", "prefix", prefix)
		return s.sendError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", cfg.MinPrefix), 400)
	}
	if cfg.MaxPrefix > 0 && length > cfg.MaxPrefix {
		log.Debug("Prefix is too long in request", "prefix", prefix)
		return s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", cfg.MaxPrefix), 400)
	}

	start := time.Now()
	var suggestions []dictionary.WordFrequency
	if !cfg.EnableFilter || utils.IsValidInput(prefix) {
		suggestions = s.completer.Complete(prefix)
	}
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(suggestions))
	response := CompletionResponse{
		ID:          request.ID,
		Suggestions: make([]CompletionSuggestion, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	for i, wf := range suggestions {
		response.Suggestions[i] = CompletionSuggestion{
			Word:      wf.Word,
			Frequency: wf.Frequency,
			Rank:      ranks[i],
		}
	}
	return s.send(response)
}

// handleConfig applies prefix and filter changes and persists them
func (s *Server) handleConfig(request Request) error {
	if request.MinPrefix != nil || request.MaxPrefix != nil || request.EnableFilter != nil {
		if s.configPath == "" {
			return s.sendError(request.ID, "No config file in use, settings are read-only", 400)
		}

		minPrefix, maxPrefix := s.config.Server.MinPrefix, s.config.Server.MaxPrefix
		if request.MinPrefix != nil {
			minPrefix = *request.MinPrefix
		}
		if request.MaxPrefix != nil {
			maxPrefix = *request.MaxPrefix
		}
		if minPrefix < 0 || maxPrefix < 0 || (maxPrefix > 0 && minPrefix > maxPrefix) {
			return s.sendError(request.ID, fmt.Sprintf("Invalid prefix bounds: min %d, max %d", minPrefix, maxPrefix), 400)
		}

		if err := s.config.Update(s.configPath, request.MinPrefix, request.MaxPrefix, request.EnableFilter); err != nil {
			log.Errorf("Saving config: %v", err)
			return s.sendError(request.ID, fmt.Sprintf("Failed to save config: %v", err), 500)
		}
		log.Debug("Config updated", "path", s.configPath)
	}

	filter := 0
	if s.config.Server.EnableFilter {
		filter = 1
	}
	return s.send(StatusResponse{
		ID:     request.ID,
		Status: "ok",
		Stats: map[string]int{
			"minPrefix":    s.config.Server.MinPrefix,
			"maxPrefix":    s.config.Server.MaxPrefix,
			"enableFilter": filter,
		},
	})
}

// sendFailure maps a completer error to an error response
func (s *Server) sendFailure(id string, err error) error {
	code := 500
	if errors.Is(err, dictionary.ErrInvalidWord) || errors.Is(err, dictionary.ErrInvalidFrequency) {
		code = 400
	}
	return s.sendError(id, err.Error(), code)
}

// send encodes one response; a write failure ends the session
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
