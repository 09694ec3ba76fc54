// Package asc reads, edits and writes DipTrace ASCII documents.
//
// A document is a tree of parenthesized items. Each item has an identifier,
// a run of typed attributes and an optional list of sub-items. The parser keeps
// the original text of every attribute so that an unmodified tree is written
// back byte for byte.
package asc

import "fmt"

// TokenKind represents the type of a token
type TokenKind int

const (
	TokenLeftParen TokenKind = iota
	TokenRightParen
	TokenIdentifier
	TokenQuotedString
	TokenUnquotedString
	TokenInteger
	TokenFloat
	TokenPercent
)

var tokenKindNames = map[TokenKind]string{
	TokenLeftParen:      "LeftParen",
	TokenRightParen:     "RightParen",
	TokenIdentifier:     "Identifier",
	TokenQuotedString:   "QuotedString",
	TokenUnquotedString: "UnquotedString",
	TokenInteger:        "Integer",
	TokenFloat:          "Float",
	TokenPercent:        "Percent",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token represents a lexical token
type Token struct {
	Kind TokenKind

	// Text is the exact source slice. For quoted strings it is the content
	// between the quotes; for percents it includes the '%' sign.
	Text string

	// PrecededByNewline is set on the first token of every source line.
	PrecededByNewline bool

	// Line is the 1-based source line the token was read from.
	Line int

	Int   int     // value of an Integer token
	Float float64 // value of a Float or Percent token
}

func (t Token) String() string {
	switch t.Kind {
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenQuotedString:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}
