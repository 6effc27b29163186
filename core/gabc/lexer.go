package gabc

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// musicRules tokenize the inside of a "( ... )" music group.
// Order matters: the first rule that matches wins, so longer spellings come first.
var musicRules = []lexer.Rule{
	{Name: "Close", Pattern: `\)`, Action: lexer.Pop()},
	// c1..c5, f1..f5 and their flat variants; unsupported ones are rejected later
	{Name: "Clef", Pattern: `[cf]b?[1-5]`},
	// Neumatic cuts (with optional bracketed offsets), "!" and "@"
	{Name: "Spacer", Pattern: `/\[-?[0-9]+\]|//|/|!|@`},
	// Episemata, morae and ictus variants
	{Name: "Rhythm", Pattern: `'[01]|_[0-5]?|\.\.?`},
	// Divisio minima/minor/maior/finalis; a bare "'" after a note is an ictus
	{Name: "Barline", Pattern: "::|:\\?|:|;[1-6]?|,_|,0|,|'|`"},
	{Name: "LineBreak", Pattern: `z0|[zZ][+-]?`},
	{Name: "EmptyNote", Pattern: `r[0-8]`},
	{Name: "Alteration", Pattern: `[xy#]`},
	{Name: "Shape", Pattern: `[wWvVoOsSqQrR~<>]`},
	{Name: "Prefix", Pattern: `-`},
	{Name: "Custos", Pattern: `\+`},
	{Name: "Ornament", Pattern: `\[[^\]]*\]`},
	{Name: "Position", Pattern: `[a-mA-M]`},
	{Name: "Space", Pattern: `[ \t\r\n]+`},
}

// bodyRules tokenize lyric text, word-separating whitespace and the opening
// parenthesis of a music group.
var bodyRules = []lexer.Rule{
	{Name: "Open", Pattern: `\(`, Action: lexer.Push("Music")},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Text", Pattern: `[^()\s]+`},
}

// headerRules tokenize the attribute section up to the "%%" separator.
var headerRules = []lexer.Rule{
	{Name: "Separator", Pattern: `%%`, Action: lexer.Push("Body")},
	{Name: "Comment", Pattern: `%[^\r\n]*`},
	{Name: "HeaderSpace", Pattern: `\s+`},
	{Name: "AttrKey", Pattern: `[A-Za-z0-9_.-]+`},
	{Name: "Colon", Pattern: `:`, Action: lexer.Push("Value")},
}

// valueRules tokenize an attribute value; values may span lines and end
// with ";" or ";;".
var valueRules = []lexer.Rule{
	{Name: "AttrValue", Pattern: `[^;]+`},
	{Name: "ValueEnd", Pattern: `;;?`, Action: lexer.Pop()},
}

// bodyLexer lexes a header-less body fragment.
var bodyLexer = lexer.MustStateful(lexer.Rules{
	"Root":  bodyRules,
	"Music": musicRules,
})

// fileLexer lexes a complete GABC file.
var fileLexer = lexer.MustStateful(lexer.Rules{
	"Root":  headerRules,
	"Value": valueRules,
	"Body":  bodyRules,
	"Music": musicRules,
})
