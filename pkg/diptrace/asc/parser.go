package asc

import (
	"fmt"
	"io"
	"strings"
)

// File is a parsed DipTrace ASCII document.
type File struct {
	Root *Item

	// LineEnding is written after every item. It follows the source.
	LineEnding string
}

// Parse reads a whole document.
func Parse(r io.Reader) (*File, error) {
	tz := NewTokenizer(r)
	root := NewRoot()
	if err := ParseChildren(tz, root); err != nil {
		return nil, err
	}

	// Anything left over cannot start another top-level item.
	if tok, ok, err := tz.Peek(); err != nil {
		return nil, err
	} else if ok {
		return nil, &UnexpectedTokenError{Expected: TokenLeftParen, Found: tok}
	}

	return &File{Root: root, LineEnding: tz.LineEnding()}, nil
}

// ParseString parses a document held in memory.
func ParseString(s string) (*File, error) {
	return Parse(strings.NewReader(s))
}

// ParseItem reads the body of an item whose '(' and identifier have already
// been consumed: the attribute run and, if present, the sub-item list. The
// closing ')' is left to the caller.
func ParseItem(tz *Tokenizer, it *Item) error {
	for {
		tok, ok, err := tz.Peek()
		if err != nil {
			return err
		}
		if !ok {
			return &SyntaxError{Line: tz.Line(), Err: ErrPrematureEndOfInput, Text: "in " + it.Identifier}
		}

		switch tok.Kind {
		case TokenLeftParen:
			it.MayHaveSubItems = true
			return ParseChildren(tz, it)

		case TokenRightParen:
			it.MayHaveSubItems = tok.PrecededByNewline
			return nil
		}

		tz.Next()
		attr, err := attributeFromToken(tok)
		if err != nil {
			return err
		}
		it.Attributes = append(it.Attributes, attr)
	}
}

// ParseChildren reads consecutive "(Identifier ... )" groups into parent.
// For the root, input may end right after the last child without its ')'.
func ParseChildren(tz *Tokenizer, parent *Item) error {
	for {
		tok, ok, err := tz.Peek()
		if err != nil {
			return err
		}
		if !ok || tok.Kind != TokenLeftParen {
			return nil
		}
		tz.Next()

		name, err := tz.Expect(TokenIdentifier)
		if err != nil {
			return fmt.Errorf("failed to read item name: %w", err)
		}

		child := NewItem(name.Text)
		if err := ParseItem(tz, child); err != nil {
			return err
		}
		parent.AddChild(child)

		if parent.kind == KindRoot {
			if _, ok, err := tz.Peek(); err != nil {
				return err
			} else if !ok {
				return nil
			}
		}

		if _, err := tz.Expect(TokenRightParen); err != nil {
			return err
		}
	}
}
