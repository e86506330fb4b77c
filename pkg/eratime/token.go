package eratime

import (
	"strings"

	"github.com/dmitrymomot/eradate/pkg/era"
)

// Introducer marks the start of a format code.
const Introducer = '%'

type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenCode
)

// Flag runes accepted between the introducer and the code, as in %-d and %:z.
const (
	flagNoPad = '-'
	flagColon = ':'
)

// token is either a run of literal text or a single format code.
type token struct {
	kind tokenKind
	text string // literal text, or the whole code such as "%c" or "%-c"
	code rune
	flag rune // zero when the code has no flag
}

// era returns the designator form of an unflagged era code.
func (t token) era() (era.Form, bool) {
	if t.kind != tokenCode || t.flag != 0 {
		return 0, false
	}
	return eraForm(t.code)
}

func isFlag(r rune) bool {
	return r == flagNoPad || r == flagColon
}

// tokenize splits a layout into literal runs and format codes, left to right.
// An introducer, with or without a flag, at the very end of the layout is kept
// as literal text.
func tokenize(layout string) []token {
	var (
		tokens  []token
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{kind: tokenLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != Introducer {
			literal.WriteRune(r)
			continue
		}

		j := i + 1
		var flag rune
		if j < len(runes) && isFlag(runes[j]) {
			flag = runes[j]
			j++
		}
		if j >= len(runes) {
			literal.WriteString(string(runes[i:]))
			break
		}

		flush()
		tokens = append(tokens, token{kind: tokenCode, text: string(runes[i : j+1]), code: runes[j], flag: flag})
		i = j
	}
	flush()

	return tokens
}

// hasEraCode reports whether any token is a custom era code.
func hasEraCode(tokens []token) bool {
	for _, tok := range tokens {
		if _, ok := tok.era(); ok {
			return true
		}
	}
	return false
}
