package tablang

import "fmt"

// TokenKind identifies the syntactic class of a token scanned from tab
// notation source.
type TokenKind uint8

const (
	// single character tokens
	TokenEmpty TokenKind = iota // .
	TokenNext                   // ,
	// one or two character tokens
	TokenNote // [A-G][b#]?
	// multi character tokens
	TokenSpreadEmpty // :[0-9]+
	TokenSpreadNext  // ;[0-9]+
	// literals
	TokenNumber  // [0-9]+
	TokenOptions // [time=4/4; fidelity=16]
	// others
	TokenEndOfFile
)

func (k TokenKind) String() string {
	switch k {
	case TokenEmpty:
		return "Empty"
	case TokenNext:
		return "Next"
	case TokenNote:
		return "Note"
	case TokenSpreadEmpty:
		return "Spread Empty"
	case TokenSpreadNext:
		return "Spread Next"
	case TokenNumber:
		return "Number"
	case TokenOptions:
		return "Options"
	case TokenEndOfFile:
		return "EndOfFile"
	}
	return "Invalid"
}

type LiteralKind uint8

const (
	LiteralNone LiteralKind = iota
	LiteralNumber
	LiteralOptions
)

// Literal is the parsed value carried by Number, Spread and Options tokens.
// Tokens of other kinds carry the zero Literal.
type Literal struct {
	Kind    LiteralKind
	Number  uint32
	Options string
}

type Token struct {
	Kind    TokenKind
	Text    string
	Literal Literal
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("[%d] %s %q", t.Line, t.Kind, t.Text)
}
