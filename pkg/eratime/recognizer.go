package eratime

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/eradate/pkg/era"
)

// capture describes one capture group of a compiled recognizer.
type capture struct {
	field field
	form  era.Form // set for fieldEra
}

// recognizer is a compiled layout: a whole-string pattern plus the meaning of each
// capture group in order. It is immutable and shared between calls.
type recognizer struct {
	re       *regexp.Regexp
	captures []capture
}

// compile turns tokens into a recognizer matching the entire input.
func compile(tokens []token, table *era.Table) (*recognizer, error) {
	var (
		pattern  strings.Builder
		captures []capture
		slots    = make(map[string]string, len(tokens))
	)

	claim := func(slot, directive string) error {
		if slot == "" {
			return nil
		}
		if prev, ok := slots[slot]; ok {
			return fmt.Errorf("%w: %s and %s both set the %s", ErrDuplicateDirective, prev, directive, slot)
		}
		slots[slot] = directive
		return nil
	}

	pattern.WriteString("^")
	for _, tok := range tokens {
		if tok.kind == tokenLiteral {
			pattern.WriteString(regexp.QuoteMeta(tok.text))
			continue
		}

		// Era codes may repeat; decode checks that they agree
		if f, ok := tok.era(); ok {
			pattern.WriteString(eraPattern(table, f))
			captures = append(captures, capture{field: fieldEra, form: f}, capture{field: fieldEraYear})
			continue
		}

		d, ok := standardCodes[tok.code]
		if ok && tok.flag != 0 {
			// Unpadded numbers are already accepted; no other flag has a recognizer.
			ok = tok.flag == flagNoPad && d.numeric()
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedDirective, tok.text)
		}
		if err := claim(d.slot, tok.text); err != nil {
			return nil, err
		}
		pattern.WriteString(d.pattern)
		if d.field != fieldNone {
			captures = append(captures, capture{field: d.field})
		}
	}
	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("failed to compile layout pattern: %w", err)
	}
	if re.NumSubexp() != len(captures) {
		return nil, fmt.Errorf("layout pattern has %d groups, expected %d", re.NumSubexp(), len(captures))
	}

	return &recognizer{re: re, captures: captures}, nil
}
