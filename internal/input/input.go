// Package input abstracts the source of operator-entered values. The CLI
// uses a buffered stdin reader; tests use a scripted provider. Typing the
// exit token at any prompt is a normal return value, not an error.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExitToken aborts the current workflow when typed at any prompt.
const ExitToken = "exit"

// Provider yields raw values for the build session. The boolean result is
// false when the user typed the exit token instead of a value.
type Provider interface {
	// ReadChoice prompts until the answer is one of allowed (case-insensitive).
	ReadChoice(prompt string, allowed []string) (string, bool)
	// ReadNumber prompts until the answer parses as a float. Commas are
	// stripped so "1,320" reads as 1320.
	ReadNumber(prompt string) (float64, bool)
	// ReadText returns one trimmed line.
	ReadText(prompt string) (string, bool)
}

// Reader is the terminal-backed Provider. Invalid entries re-issue the same
// prompt; only the exit token breaks the loop.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader wraps an input stream and the writer prompts go to.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

func (r *Reader) readLine(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		return "", false // EOF is treated like an exit
	}
	line := strings.TrimSpace(r.scanner.Text())
	if strings.EqualFold(line, ExitToken) {
		return "", false
	}
	return line, true
}

// ReadChoice implements Provider.
func (r *Reader) ReadChoice(prompt string, allowed []string) (string, bool) {
	for {
		line, ok := r.readLine(prompt)
		if !ok {
			return "", false
		}
		for _, a := range allowed {
			if strings.EqualFold(line, a) {
				return a, true
			}
		}
		fmt.Fprintf(r.out, "Invalid choice. Please enter one of: %s.\n", strings.Join(allowed, ", "))
	}
}

// ReadNumber implements Provider.
func (r *Reader) ReadNumber(prompt string) (float64, bool) {
	for {
		line, ok := r.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(line, ",", ""), 64)
		if err != nil {
			fmt.Fprintln(r.out, "Invalid input. Please enter a valid number.")
			continue
		}
		return value, true
	}
}

// ReadText implements Provider.
func (r *Reader) ReadText(prompt string) (string, bool) {
	return r.readLine(prompt)
}

// Script replays a fixed sequence of answers. Exhausting the script or
// hitting the exit token reads as an exit, which keeps runaway tests finite.
type Script struct {
	Answers []string
	next    int
}

// NewScript builds a scripted provider from the answers in order.
func NewScript(answers ...string) *Script {
	return &Script{Answers: answers}
}

func (s *Script) take() (string, bool) {
	if s.next >= len(s.Answers) {
		return "", false
	}
	line := s.Answers[s.next]
	s.next++
	if strings.EqualFold(line, ExitToken) {
		return "", false
	}
	return line, true
}

// ReadChoice implements Provider. A scripted answer outside allowed is a
// script bug; it is skipped like the interactive reader would re-prompt.
func (s *Script) ReadChoice(prompt string, allowed []string) (string, bool) {
	for {
		line, ok := s.take()
		if !ok {
			return "", false
		}
		for _, a := range allowed {
			if strings.EqualFold(line, a) {
				return a, true
			}
		}
	}
}

// ReadNumber implements Provider.
func (s *Script) ReadNumber(prompt string) (float64, bool) {
	for {
		line, ok := s.take()
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(line, ",", ""), 64)
		if err != nil {
			continue
		}
		return value, true
	}
}

// ReadText implements Provider.
func (s *Script) ReadText(prompt string) (string, bool) {
	return s.take()
}
