package asc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Tokenizer turns DipTrace ASCII text into tokens with one token of lookahead.
//
// The source is consumed one line at a time. Lines are trimmed and blank lines
// are skipped; the first token of every line is flagged as preceded by a
// newline, which is the only layout information carried into the tree.
type Tokenizer struct {
	reader *bufio.Reader
	line   string // unconsumed remainder of the current line
	lineNo int

	lineStart  bool // next token is the first one of the current line
	afterParen bool // next word names an item
	eof        bool

	endingSeen bool
	crlf       bool

	peeked *Token
	err    error
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{
		reader: bufio.NewReader(r),
	}
}

// Next consumes and returns the next token. ok is false at end of input.
func (t *Tokenizer) Next() (tok Token, ok bool, err error) {
	if t.peeked != nil {
		tok = *t.peeked
		t.peeked = nil
		return tok, true, nil
	}
	return t.fetch()
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (tok Token, ok bool, err error) {
	if t.peeked != nil {
		return *t.peeked, true, nil
	}
	tok, ok, err = t.fetch()
	if err != nil || !ok {
		return tok, ok, err
	}
	t.peeked = &tok
	return tok, true, nil
}

// Expect consumes the next token if it has the given kind. Otherwise nothing
// is consumed and an error is returned.
func (t *Tokenizer) Expect(kind TokenKind) (Token, error) {
	tok, ok, err := t.Peek()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, &SyntaxError{
			Line: t.lineNo,
			Err:  ErrPrematureEndOfInput,
			Text: fmt.Sprintf("expected %s", kind),
		}
	}
	if tok.Kind != kind {
		return Token{}, &UnexpectedTokenError{Expected: kind, Found: tok}
	}
	t.peeked = nil
	return tok, nil
}

// Line returns the number of the line most recently read.
func (t *Tokenizer) Line() int {
	return t.lineNo
}

// LineEnding returns "\r\n" if the first line break of the source was CRLF,
// otherwise "\n".
func (t *Tokenizer) LineEnding() string {
	if t.crlf {
		return "\r\n"
	}
	return "\n"
}

// readLine loads the next non-blank line into the buffer.
func (t *Tokenizer) readLine() (bool, error) {
	for !t.eof {
		s, err := t.reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return false, err
			}
			t.eof = true
			if s == "" {
				return false, nil
			}
		}
		t.lineNo++

		if !t.endingSeen && strings.HasSuffix(s, "\n") {
			t.endingSeen = true
			t.crlf = strings.HasSuffix(s, "\r\n")
		}

		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		t.line = s
		t.lineStart = true
		return true, nil
	}
	return false, nil
}

func (t *Tokenizer) fetch() (Token, bool, error) {
	if t.err != nil {
		return Token{}, false, t.err
	}

	t.line = strings.TrimLeft(t.line, " \t")
	for t.line == "" {
		ok, err := t.readLine()
		if err != nil {
			t.err = err
			return Token{}, false, err
		}
		if !ok {
			return Token{}, false, nil
		}
	}

	tok := Token{Line: t.lineNo, PrecededByNewline: t.lineStart}
	t.lineStart = false

	switch t.line[0] {
	case '(':
		t.line = t.line[1:]
		t.afterParen = true
		tok.Kind = TokenLeftParen
		tok.Text = "("
		return tok, true, nil

	case ')':
		t.line = t.line[1:]
		t.afterParen = false
		tok.Kind = TokenRightParen
		tok.Text = ")"
		return tok, true, nil

	case '"':
		end := closingQuote(t.line)
		if end < 0 {
			t.err = &SyntaxError{Line: t.lineNo, Err: ErrUnterminatedString, Text: t.line}
			return Token{}, false, t.err
		}
		tok.Kind = TokenQuotedString
		tok.Text = t.line[1:end]
		t.line = t.line[end+1:]
		t.afterParen = false
		return tok, true, nil
	}

	tok.Text = t.scanWord()
	classifyWord(&tok, t.afterParen)
	t.afterParen = false
	return tok, true, nil
}

// scanWord takes everything up to the next blank. Without a blank, a single
// trailing ')' is left in the buffer so it becomes its own token.
func (t *Tokenizer) scanWord() string {
	if i := strings.IndexAny(t.line, " \t"); i >= 0 {
		word := t.line[:i]
		t.line = t.line[i+1:]
		return word
	}
	if n := len(t.line); n > 1 && t.line[n-1] == ')' {
		word := t.line[:n-1]
		t.line = t.line[n-1:]
		return word
	}
	word := t.line
	t.line = ""
	return word
}

// closingQuote returns the index of the quote that ends the string starting
// at s[0], or -1. A backslash escapes the following character.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func classifyWord(tok *Token, afterParen bool) {
	word := tok.Text

	if afterParen {
		tok.Kind = TokenIdentifier
		return
	}

	if v, err := strconv.Atoi(word); err == nil {
		tok.Kind = TokenInteger
		tok.Int = v
		return
	}

	if n := len(word); n > 1 && word[n-1] == '%' && looksNumeric(word[:n-1]) {
		if v, err := strconv.ParseFloat(word[:n-1], 64); err == nil {
			tok.Kind = TokenPercent
			tok.Float = v
			return
		}
	}

	if looksNumeric(word) {
		if v, err := strconv.ParseFloat(word, 64); err == nil {
			tok.Kind = TokenFloat
			tok.Float = v
			return
		}
	}

	if isIdentifierWord(word) {
		tok.Kind = TokenIdentifier
		return
	}

	// DipTrace writes some strings without quotes in board files.
	tok.Kind = TokenUnquotedString
}

// looksNumeric keeps words such as "Inf" or "NaN" out of the float class.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

func isIdentifierWord(s string) bool {
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
