package egif

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokLParen   tokenKind = iota // (
	tokRParen                    // )
	tokCutOpen                   // ~[
	tokCutClose                  // ]
	tokDefining                  // *name
	tokName                      // bare identifier
	tokString                    // "quoted constant"
	tokEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokCutOpen:
		return "'~['"
	case tokCutClose:
		return "']'"
	case tokDefining:
		return "defining occurrence"
	case tokName:
		return "identifier"
	case tokString:
		return "quoted constant"
	default:
		return "end of input"
	}
}

// token is a lexical token with its byte offset in the input, kept for
// error reporting.
type token struct {
	kind tokenKind
	text string // identifier, variable name (without *), or constant label (without quotes)
	pos  int
}

// lex tokenizes the whole input up front. Returning the full token stream
// before any structural parsing lets the parser check bracket balance and
// string well-formedness first and fail fast with a position.
func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case c == ']':
			toks = append(toks, token{kind: tokCutClose, pos: i})
			i++
		case c == '~':
			if i+1 >= len(input) || input[i+1] != '[' {
				return nil, egerr.New(egerr.ErrCodeSyntax, "expected '[' after '~' at offset %d", i)
			}
			toks = append(toks, token{kind: tokCutOpen, pos: i})
			i += 2
		case c == '"':
			label, next, err := lexString(input, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokString, text: label, pos: i})
			i = next
		case c == '*':
			name, next := lexIdent(input, i+1)
			if name == "" {
				return nil, egerr.New(egerr.ErrCodeSyntax, "expected variable name after '*' at offset %d", i)
			}
			toks = append(toks, token{kind: tokDefining, text: name, pos: i})
			i = next
		default:
			r, _ := utf8.DecodeRuneInString(input[i:])
			if !isIdentRune(r) {
				return nil, egerr.New(egerr.ErrCodeSyntax, "unexpected character %q at offset %d", string(r), i)
			}
			name, next := lexIdent(input, i)
			toks = append(toks, token{kind: tokName, text: name, pos: i})
			i = next
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})
	return toks, nil
}

// lexString scans a quoted constant starting at the opening quote.
// Returns the label and the offset just past the closing quote.
func lexString(input string, start int) (string, int, error) {
	var b strings.Builder
	for i := start + 1; i < len(input); i++ {
		c := input[i]
		if c == '"' {
			label := b.String()
			if err := egerr.ValidateConstantLabel(label); err != nil {
				return "", 0, egerr.Wrap(egerr.ErrCodeSyntax, err, "constant at offset %d", start)
			}
			return label, i + 1, nil
		}
		if c == '\n' {
			break
		}
		b.WriteByte(c)
	}
	return "", 0, egerr.New(egerr.ErrCodeSyntax, "unterminated quoted constant at offset %d", start)
}

// lexIdent scans an identifier starting at start. Returns the identifier
// (possibly empty) and the offset just past it. Identifiers are decoded
// rune by rune so multi-byte names lex whole.
func lexIdent(input string, start int) (string, int) {
	i := start
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !isIdentRune(r) {
			break
		}
		i += size
	}
	return input[start:i], i
}

// isIdentRune reports whether r may appear in an identifier or relation
// name. Relation names share the identifier syntax plus a few symbol
// characters common in logical notation.
func isIdentRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '_', '-', '.', '+', '<', '>', '=', '/':
		return true
	}
	return false
}

// checkBalance verifies that parens and cut brackets nest correctly before
// structural parsing begins. Errors report the offending token's offset.
func checkBalance(toks []token) error {
	var stack []token
	for _, t := range toks {
		switch t.kind {
		case tokLParen, tokCutOpen:
			stack = append(stack, t)
		case tokRParen:
			if len(stack) == 0 || stack[len(stack)-1].kind != tokLParen {
				return egerr.New(egerr.ErrCodeSyntax, "unmatched ')' at offset %d", t.pos)
			}
			stack = stack[:len(stack)-1]
		case tokCutClose:
			if len(stack) == 0 || stack[len(stack)-1].kind != tokCutOpen {
				return egerr.New(egerr.ErrCodeSyntax, "unmatched ']' at offset %d", t.pos)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return egerr.New(egerr.ErrCodeSyntax, "unclosed %s at offset %d", unmatchedName(open.kind), open.pos)
	}
	return nil
}

func unmatchedName(k tokenKind) string {
	if k == tokLParen {
		return "relation"
	}
	return "cut"
}

// fmtToken renders a token for error messages.
func fmtToken(t token) string {
	switch t.kind {
	case tokDefining:
		return fmt.Sprintf("*%s", t.text)
	case tokName:
		return t.text
	case tokString:
		return fmt.Sprintf("%q", t.text)
	default:
		return t.kind.String()
	}
}
