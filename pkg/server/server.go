package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Checker is the part of a spell engine the server needs.
type Checker interface {
	Check(word string) (bool, error)
	Suggest(word string, limit int) ([]string, error)
	Complete(prefix string, limit int) ([]string, error)
	Locale() string
	Stats() map[string]int
}

// Server handles the IPC for spell checking
type Server struct {
	checker      Checker
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(checker Checker, cfg *config.Config) *Server {
	return NewServerWithIO(checker, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(checker Checker, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	writer := bufio.NewWriter(w)
	return &Server{
		checker: checker,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  writer,
		encoder: msgpack.NewEncoder(writer),
	}
}

// Start serves requests until the input ends. A request that cannot be
// decoded gets an error response and stops the loop, since the stream
// position is no longer trustworthy.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("decode request: %w", err)
		}

		s.requestCount++
		s.handleRequest(req)
	}
}

// RequestCount returns the number of requests handled so far.
func (s *Server) RequestCount() int {
	return s.requestCount
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case ActionCheck:
		s.handleCheck(req)
	case ActionSuggest, ActionComplete:
		s.handleSuggest(req)
	case ActionInfo:
		s.sendResponse(InfoResponse{
			ID:     req.ID,
			Status: "ok",
			Locale: s.checker.Locale(),
			Stats:  s.checker.Stats(),
		})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

// normalizeWord trims and NFC-normalizes the request word and enforces the
// configured length.
func (s *Server) normalizeWord(req Request) (string, bool) {
	word := utils.NormalizeText(strings.TrimSpace(req.Word))
	if maxLen := s.config.Server.MaxWordLength; maxLen > 0 && utf8.RuneCountInString(word) > maxLen {
		s.sendError(req.ID, fmt.Sprintf("word exceeds maximum length of %d characters", maxLen), 400)
		log.Debugf("Word too long in request %s", req.ID)
		return "", false
	}
	return word, true
}

func (s *Server) handleCheck(req Request) {
	word, ok := s.normalizeWord(req)
	if !ok {
		return
	}

	start := time.Now()
	correct, err := s.checker.Check(word)
	if err != nil {
		s.sendEngineError(req.ID, err)
		return
	}
	s.sendResponse(CheckResponse{
		ID:        req.ID,
		Word:      word,
		Correct:   correct,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSuggest(req Request) {
	word, ok := s.normalizeWord(req)
	if !ok {
		return
	}
	if word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		return
	}
	limit := s.config.ClampLimit(req.Limit)

	start := time.Now()
	var (
		words []string
		err   error
	)
	if req.Action == ActionComplete {
		words, err = s.checker.Complete(word, limit)
	} else {
		words, err = s.checker.Suggest(word, limit)
	}
	if err != nil {
		s.sendEngineError(req.ID, err)
		return
	}
	elapsed := time.Since(start)

	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Rank: uint16(i + 1)}
	}
	s.sendResponse(SuggestResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) sendEngineError(id string, err error) {
	if errors.Is(err, spell.ErrNotLoaded) {
		s.sendError(id, err.Error(), 503)
		return
	}
	log.Errorf("Request %s failed: %v", id, err)
	s.sendError(id, err.Error(), 500)
}

// sendResponse encodes response and flushes it so the client sees it immediately.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
