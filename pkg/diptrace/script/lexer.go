package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the tokens of an edit script.
// Keywords are case-insensitive; names are always quoted.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Verbs
	{Name: "KwDuplicate", Pattern: `(?i)\bDUPLICATE\b`},
	{Name: "KwRename", Pattern: `(?i)\bRENAME\b`},
	{Name: "KwMove", Pattern: `(?i)\bMOVE\b`},
	{Name: "KwRotate", Pattern: `(?i)\bROTATE\b`},

	// Objects and documents
	{Name: "KwComponent", Pattern: `(?i)\bCOMPONENT\b`},
	{Name: "KwNet", Pattern: `(?i)\bNET\b`},
	{Name: "KwSchematic", Pattern: `(?i)\bSCHEMATIC\b`},
	{Name: "KwBoard", Pattern: `(?i)\bBOARD\b`},

	{Name: "KwAs", Pattern: `(?i)\bAS\b`},
	{Name: "KwOn", Pattern: `(?i)\bON\b`},
	{Name: "KwTo", Pattern: `(?i)\bTO\b`},
	{Name: "KwBy", Pattern: `(?i)\bBY\b`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	{Name: "Real", Pattern: `[-+]?[0-9]*\.[0-9]+`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},

	// Anything else that looks like a word; never accepted by the grammar
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})
