package linear

import (
	"bufio"
	"io"
	"strings"
)

// Tokenizer yields separator-split tokens from a line-oriented reader, one
// line at a time, without reading the whole resource eagerly.
type Tokenizer struct {
	reader    *bufio.Reader
	separator string
	tokens    []string
	index     int
	done      bool
}

// NewTokenizer creates a tokenizer over r splitting each line on separator.
func NewTokenizer(r io.Reader, separator string) *Tokenizer {
	return &Tokenizer{reader: bufio.NewReader(r), separator: separator}
}

// FromString creates a tokenizer over an in-memory string.
func FromString(s, separator string) *Tokenizer {
	return NewTokenizer(strings.NewReader(s), separator)
}

// Next returns the next token. Returns ("", false, nil) when the input is
// exhausted. Line terminators are stripped; empty lines yield no tokens.
func (t *Tokenizer) Next() (string, bool, error) {
	for t.index >= len(t.tokens) {
		if t.done {
			return "", false, nil
		}
		line, err := t.reader.ReadString('\n')
		if err == io.EOF {
			t.done = true
		} else if err != nil {
			t.done = true
			return "", false, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		t.tokens = strings.Split(line, t.separator)
		t.index = 0
	}
	token := t.tokens[t.index]
	t.index++
	return token, true, nil
}
