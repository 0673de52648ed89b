package tablang

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Tokenizer scans tab notation source into a token sequence, left to right in
// a single pass with one rune of lookahead. Lexical errors do not stop the
// scan; they are collected and the scan continues with the next rune.
type Tokenizer struct {
	source  string
	tokens  []Token
	watcher Watcher

	start   int
	current int
	line    int
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: source,
		line:   1,
	}
}

// Tokens returns the token sequence scanned from the source, terminated by a
// single EndOfFile token. The sequence is computed on the first call and
// cached. When any lexical error was collected the returned error is a
// *Diagnostics holding every message, and the sequence is withheld.
func (t *Tokenizer) Tokens() ([]Token, error) {
	if len(t.tokens) == 0 {
		for !t.isAtEnd() {
			t.start = t.current
			t.consumeNext()
		}
		t.tokens = append(t.tokens, Token{
			Kind: TokenEndOfFile,
			Line: t.line,
		})
	}

	if t.watcher.HadError {
		return nil, t.watcher.Err()
	}
	return t.tokens, nil
}

func (t *Tokenizer) isAtEnd() bool {
	return t.current >= len(t.source)
}

func (t *Tokenizer) advance() rune {
	r, size := utf8.DecodeRuneInString(t.source[t.current:])
	t.current += size
	return r
}

func (t *Tokenizer) peek() rune {
	if t.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.source[t.current:])
	return r
}

func (t *Tokenizer) consumeNext() {
	r := t.advance()
	switch {

	case r == '.':
		t.addToken(TokenEmpty, Literal{})

	case r == ',':
		t.addToken(TokenNext, Literal{})

	case r >= 'A' && r <= 'G':
		// optional flat or sharp modifier, consumed into the same token
		if next := t.peek(); next == 'b' || next == '#' {
			t.advance()
		}
		t.addToken(TokenNote, Literal{})

	case r == ':':
		t.spread(TokenSpreadEmpty)

	case r == ';':
		t.spread(TokenSpreadNext)

	case r == '\n':
		t.line++

	case r <= ' ':
		// other whitespace and control characters produce no token

	case r == '[':
		t.options()

	case r >= '0' && r <= '9':
		t.number()

	default:
		t.watcher.Error(t.line, fmt.Sprintf("Unknown character value: %c", r))
	}
}

func (t *Tokenizer) addToken(kind TokenKind, literal Literal) {
	t.tokens = append(t.tokens, Token{
		Kind:    kind,
		Text:    t.source[t.start:t.current],
		Literal: literal,
		Line:    t.line,
	})
}

// spread scans the repeat amount following a ':' or ';' marker. The marker is
// part of the token text but not of the parsed amount.
func (t *Tokenizer) spread(kind TokenKind) {
	for isDigit(t.peek()) {
		t.advance()
	}

	text := t.source[t.start+1 : t.current]
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		t.watcher.Error(t.line, fmt.Sprintf("Could not parse amount %q for %q: %v", text, kind.String(), err))
		return
	}

	t.addToken(kind, Literal{
		Kind:   LiteralNumber,
		Number: uint32(n),
	})
}

// options scans through an options block opened by '['. Newlines inside the
// block still count toward line numbering. Reaching end of input before the
// closing ']' is a lexical error and emits no token.
func (t *Tokenizer) options() {
	for !t.isAtEnd() && t.peek() != ']' {
		if t.peek() == '\n' {
			t.line++
		}
		t.advance()
	}

	if t.isAtEnd() {
		t.watcher.Error(t.line, `Unterminated options sequence. Close options sequences with "]".`)
		return
	}

	// the closing bracket
	t.advance()

	t.addToken(TokenOptions, Literal{
		Kind:    LiteralOptions,
		Options: t.source[t.start+1 : t.current-1],
	})
}

func (t *Tokenizer) number() {
	for isDigit(t.peek()) {
		t.advance()
	}

	text := t.source[t.start:t.current]
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		t.watcher.Error(t.line, fmt.Sprintf("String %q could not be parsed into a number: %v", text, err))
		return
	}

	t.addToken(TokenNumber, Literal{
		Kind:   LiteralNumber,
		Number: uint32(n),
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
