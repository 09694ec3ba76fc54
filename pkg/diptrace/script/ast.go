package script

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a parsed edit script.
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one edit. Exactly one field is set.
type Statement struct {
	Pos lexer.Position

	Duplicate *Duplicate `parser:"  @@"`
	Rename    *Rename    `parser:"| @@"`
	Move      *Move      `parser:"| @@"`
	Rotate    *Rotate    `parser:"| @@"`
}

// Duplicate copies a component or net under a new name.
// Example: duplicate component "D1" as "D2"
type Duplicate struct {
	Object string `parser:"KwDuplicate @( KwComponent | KwNet )"`
	Name   string `parser:"@String"`
	As     string `parser:"KwAs @String"`
}

// Rename changes the name of a component or net.
// Example: rename net "VCC" to "3V3"
type Rename struct {
	Object string `parser:"KwRename @( KwComponent | KwNet )"`
	Name   string `parser:"@String"`
	To     string `parser:"KwTo @String"`
}

// Move places a component, or shifts it with "by".
// Example: move component "D2" on board to 10 0
type Move struct {
	Name     string  `parser:"KwMove KwComponent @String"`
	Document string  `parser:"KwOn @( KwSchematic | KwBoard )"`
	Mode     string  `parser:"@( KwTo | KwBy )"`
	X        float64 `parser:"@( Real | Integer )"`
	Y        float64 `parser:"@( Real | Integer )"`
}

// Rotate sets a component angle, or turns it with "by".
// Example: rotate component "R1" on schematic by 90
type Rotate struct {
	Name     string `parser:"KwRotate KwComponent @String"`
	Document string `parser:"KwOn @( KwSchematic | KwBoard )"`
	Mode     string `parser:"@( KwTo | KwBy )"`
	Degrees  int    `parser:"@Integer"`
}

func isNet(object string) bool {
	return strings.EqualFold(object, "net")
}

func isBoard(document string) bool {
	return strings.EqualFold(document, "board")
}

func isRelative(mode string) bool {
	return strings.EqualFold(mode, "by")
}
