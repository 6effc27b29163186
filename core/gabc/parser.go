package gabc

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

// bodyParser is the participle parser for header-less GABC fragments.
var bodyParser = participle.MustBuild[Body](
	participle.Lexer(bodyLexer),
)

// fileParser is the participle parser for complete GABC files.
var fileParser = participle.MustBuild[File](
	participle.Lexer(fileLexer),
	participle.Elide("Comment", "HeaderSpace"),
)

// ParseBody parses a GABC body (no header, no "%%" separator).
// Syntax errors are returned as reported by participle.
func ParseBody(src string) (*Body, error) {
	return bodyParser.ParseString("", src)
}

// ParseFile parses a complete GABC document.
// A leading UTF-8 byte order mark is ignored.
func ParseFile(src string) (*File, error) {
	return fileParser.ParseString("", strings.TrimPrefix(src, "\ufeff"))
}
