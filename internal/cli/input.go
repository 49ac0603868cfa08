// Package cli handles cmd line input for checking words interactively.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// Engine is what the input handler queries.
type Engine interface {
	Check(word string) (bool, error)
	Suggest(word string, limit int) ([]string, error)
	Complete(prefix string, limit int) ([]string, error)
}

// InputHandler reads lines of text, checks every word on them and prints
// suggestions for the misspelled ones. A line starting with '?' is a
// completion request for the prefix that follows.
type InputHandler struct {
	engine        Engine
	suggestLimit  int
	maxWordLength int
	requestCount  int
	in            io.Reader
	out           io.Writer
	styles        styles
}

// NewInputHandler handles initialization of the InputHandler on stdin/stdout.
func NewInputHandler(engine Engine, limit, maxWordLength int, color bool) *InputHandler {
	return NewInputHandlerWithIO(engine, limit, maxWordLength, color, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO is NewInputHandler with explicit streams.
func NewInputHandlerWithIO(engine Engine, limit, maxWordLength int, color bool, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		engine:        engine,
		suggestLimit:  limit,
		maxWordLength: maxWordLength,
		in:            in,
		out:           out,
		styles:        newStyles(out, color),
	}
}

// Start begins the interface loop. It returns nil when the input ends.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, h.styles.title.Render("wordcheck CLI"))
	fmt.Fprintln(h.out, h.styles.muted.Render("type some text and press Enter, ?prefix to complete (Ctrl+C to exit)"))

	reader := bufio.NewReader(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(utils.NormalizeText(line))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// RequestCount returns the number of lines handled.
func (h *InputHandler) RequestCount() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if prefix, ok := strings.CutPrefix(line, "?"); ok {
		h.handleComplete(strings.TrimSpace(prefix))
		return
	}

	misspelled := 0
	for _, word := range splitWords(line) {
		if !utils.IsValidInput(word) {
			log.Debugf("Skipping token %q", word)
			continue
		}
		if h.maxWordLength > 0 && utf8.RuneCountInString(word) > h.maxWordLength {
			log.Warnf("Word too long: %s", word)
			continue
		}
		if !h.checkWord(word) {
			misspelled++
		}
	}
	if misspelled == 0 {
		fmt.Fprintln(h.out, h.styles.correct.Render("no spelling errors"))
	}
}

// checkWord prints the verdict for word and reports whether it is correct.
func (h *InputHandler) checkWord(word string) bool {
	start := time.Now()
	ok, err := h.engine.Check(word)
	if err != nil {
		log.Errorf("Check failed for %q: %v", word, err)
		return true
	}
	if ok {
		return true
	}

	suggestions, err := h.engine.Suggest(word, h.suggestLimit)
	if err != nil {
		log.Errorf("Suggest failed for %q: %v", word, err)
		return false
	}
	log.Debugf("Took [ %v ] for word '%s'", time.Since(start), word)

	if len(suggestions) == 0 {
		fmt.Fprintf(h.out, "%s %s\n", h.styles.misspelled.Render(word), h.styles.muted.Render("(no suggestions)"))
		return false
	}
	rendered := make([]string, len(suggestions))
	for i, s := range suggestions {
		rendered[i] = h.styles.suggestion.Render(s)
	}
	fmt.Fprintf(h.out, "%s -> %s\n", h.styles.misspelled.Render(word), strings.Join(rendered, ", "))
	return false
}

func (h *InputHandler) handleComplete(prefix string) {
	if prefix == "" {
		log.Errorf("Prefix too short")
		return
	}
	words, err := h.engine.Complete(prefix, h.suggestLimit)
	if err != nil {
		log.Errorf("Complete failed for %q: %v", prefix, err)
		return
	}
	if len(words) == 0 {
		fmt.Fprintln(h.out, h.styles.muted.Render(fmt.Sprintf("no completions for '%s'", prefix)))
		return
	}
	for i, w := range words {
		fmt.Fprintf(h.out, "%s %s\n", h.styles.rank.Render(fmt.Sprintf("%d.", i+1)), h.styles.suggestion.Render(w))
	}
}

// splitWords breaks a line into words. Apostrophes and hyphens inside a
// word are kept.
func splitWords(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' && r != '-'
	})
	words := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'-"); f != "" {
			words = append(words, f)
		}
	}
	return words
}
