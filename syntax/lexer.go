package syntax

import (
	"errors"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

type tokenKind int

const (
	tEOF      tokenKind = iota
	tChar               // literal character
	tEscape             // \x
	tEps                // eps
	tLParen             // (
	tRParen             // )
	tUnion              // |
	tStar               // *
	tPlus               // +
	tQMark              // ?
	tLBracket           // [
	tDash               // -
	tRBracket           // ]
)

var kindNames = map[tokenKind]string{
	tEOF:      "end of pattern",
	tChar:     "character",
	tEscape:   "escape",
	tEps:      "eps",
	tLParen:   "'('",
	tRParen:   "')'",
	tUnion:    "'|'",
	tStar:     "'*'",
	tPlus:     "'+'",
	tQMark:    "'?'",
	tLBracket: "'['",
	tDash:     "'-'",
	tRBracket: "']'",
}

func (k tokenKind) String() string { return kindNames[k] }

var operators = map[string]tokenKind{
	"(": tLParen,
	")": tRParen,
	"|": tUnion,
	"*": tStar,
	"+": tPlus,
	"?": tQMark,
	"[": tLBracket,
	"-": tDash,
	"]": tRBracket,
}

type token struct {
	kind tokenKind
	char rune // for tChar and tEscape, the character denoted
	pos  int  // byte offset in the pattern
}

// Rules are tried in order; the first one matching at the current position
// wins, so the eps keyword shadows a literal e.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Eps", Pattern: `eps`},
	{Name: "Escape", Pattern: `\\[\s\S]?`},
	{Name: "Operator", Pattern: `[()|*+?\[\]-]`},
	{Name: "Char", Pattern: `[\s\S]`},
})

var (
	symbols        = regexLexer.Symbols()
	whitespaceType = symbols["Whitespace"]
	epsType        = symbols["Eps"]
	escapeType     = symbols["Escape"]
	operatorType   = symbols["Operator"]
)

// tokenize splits pattern into tokens, dropping whitespace. The result
// always ends with a tEOF token.
func tokenize(pattern string) ([]token, error) {
	lex, err := regexLexer.LexString("", pattern)
	if err != nil {
		return nil, &ParseError{Pattern: pattern, Err: ErrInvalidToken, Detail: err.Error()}
	}

	var tokens []token
	for {
		tok, err := lex.Next()
		if err != nil {
			perr := &ParseError{Pattern: pattern, Err: ErrInvalidToken, Detail: err.Error()}
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				perr.Offset = lexErr.Pos.Offset
				perr.Detail = lexErr.Msg
			}
			return nil, perr
		}
		if tok.EOF() {
			break
		}

		pos := tok.Pos.Offset
		switch tok.Type {
		case whitespaceType:
			continue
		case epsType:
			tokens = append(tokens, token{kind: tEps, pos: pos})
		case escapeType:
			if len(tok.Value) == 1 {
				return nil, &ParseError{Pattern: pattern, Offset: pos, Err: ErrTruncatedEscape}
			}
			r, _ := utf8.DecodeRuneInString(tok.Value[1:])
			tokens = append(tokens, token{kind: tEscape, char: r, pos: pos})
		case operatorType:
			tokens = append(tokens, token{kind: operators[tok.Value], char: rune(tok.Value[0]), pos: pos})
		default:
			r, _ := utf8.DecodeRuneInString(tok.Value)
			tokens = append(tokens, token{kind: tChar, char: r, pos: pos})
		}
	}
	return append(tokens, token{kind: tEOF, pos: len(pattern)}), nil
}
