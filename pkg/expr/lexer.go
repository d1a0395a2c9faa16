package expr

import (
	"unicode"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokStar
	tokDot
	tokSlash
	tokCaret
	tokMinus
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits a unit expression into tokens. Identifiers are runs of
// letters, underscores and digits starting with a letter; trailing
// digits are reinterpreted by the parser as an implicit exponent
// (UCUM-style "s2"). Anything outside the grammar's alphabet is an
// invalid_format error at the offending byte.
func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '*':
			toks = append(toks, token{tokStar, "*", i})
			i++
		case r == '.':
			toks = append(toks, token{tokDot, ".", i})
			i++
		case r == '/':
			toks = append(toks, token{tokSlash, "/", i})
			i++
		case r == '^':
			toks = append(toks, token{tokCaret, "^", i})
			i++
		case r == '-':
			toks = append(toks, token{tokMinus, "-", i})
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case r >= '0' && r <= '9':
			start := i
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			toks = append(toks, token{tokInt, string(runes[start:i]), start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) ||
				runes[i] == '_' || (runes[i] >= '0' && runes[i] <= '9')) {
				i++
			}
			toks = append(toks, token{tokIdent, string(runes[start:i]), start})
		default:
			return nil, qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
				"unexpected character %q at position %d in unit expression", r, i)
		}
	}
	toks = append(toks, token{tokEOF, "", len(runes)})
	return toks, nil
}
