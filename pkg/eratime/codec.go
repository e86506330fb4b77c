package eratime

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ncruces/go-strftime"
	"golang.org/x/text/width"

	"github.com/dmitrymomot/eradate/pkg/era"
)

// DefaultCacheSize is the number of compiled layouts a Codec keeps by default.
const DefaultCacheSize = 128

// Codec parses and formats era-annotated text against one era table.
// It is immutable after creation and safe for concurrent use.
type Codec struct {
	table     *era.Table
	strict    bool
	foldWidth bool
	cacheSize int

	// Compiled recognizers keyed by layout; nil when caching is disabled
	cache *lru.Cache[string, *recognizer]
}

// Option configures a Codec during construction.
type Option func(*Codec) error

// New creates a Codec. Without options it uses the embedded era table, lenient
// era bounds and a layout cache of DefaultCacheSize entries.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{cacheSize: DefaultCacheSize}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.table == nil {
		c.table = era.Default()
	}

	if c.cacheSize > 0 {
		cache, err := lru.New[string, *recognizer](c.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create layout cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

// WithTable sets the era table used for lookups.
func WithTable(t *era.Table) Option {
	return func(c *Codec) error {
		if t == nil {
			return errors.New("era table cannot be nil")
		}
		c.table = t
		return nil
	}
}

// WithStrict rejects parsed dates that fall outside the span of their era,
// such as 平成40年 or 平成元年1月7日.
func WithStrict() Option {
	return func(c *Codec) error {
		c.strict = true
		return nil
	}
}

// WithWidthFolding folds full-width digits and letters to their ASCII forms before
// matching, so 令和５年１０月３０日 parses like 令和5年10月30日.
func WithWidthFolding() Option {
	return func(c *Codec) error {
		c.foldWidth = true
		return nil
	}
}

// WithCacheSize sets how many compiled layouts are kept. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(c *Codec) error {
		if n < 0 {
			return fmt.Errorf("cache size cannot be negative: %d", n)
		}
		c.cacheSize = n
		return nil
	}
}

// Table returns the era table of the codec.
func (c *Codec) Table() *era.Table {
	return c.table
}

// Parse converts value to a Time according to the strftime-style layout.
// Layouts without era codes are handed to the host strftime parser unchanged.
// With width folding enabled, value is folded before either path sees it.
func (c *Codec) Parse(layout, value string) (Time, error) {
	if c.foldWidth {
		value = width.Fold.String(value)
	}

	tokens := tokenize(layout)
	if !hasEraCode(tokens) {
		t, err := strftime.Parse(layout, value)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %w", ErrFormatMismatch, err)
		}
		return Time{Time: t, codec: c}, nil
	}

	rec, err := c.recognizer(layout, tokens)
	if err != nil {
		return Time{}, err
	}

	groups := rec.re.FindStringSubmatch(value)
	if groups == nil {
		return Time{}, fmt.Errorf("%w: %q does not match %q", ErrFormatMismatch, value, layout)
	}

	comp, err := c.decode(rec, groups)
	if err != nil {
		return Time{}, err
	}

	t, err := c.resolve(comp)
	if err != nil {
		return Time{}, err
	}

	return Time{Time: t, codec: c}, nil
}

// Format renders t according to the strftime-style layout. Era codes resolve the
// era by calendar date; every other code is rendered by the host strftime formatter.
// Dates before the earliest era are reported under the earliest era.
func (c *Codec) Format(layout string, t time.Time) string {
	tokens := tokenize(layout)
	if !hasEraCode(tokens) {
		return strftime.Format(layout, t)
	}

	var (
		sb  strings.Builder
		e   era.Era
		got bool
	)
	for _, tok := range tokens {
		if tok.kind == tokenLiteral {
			sb.WriteString(tok.text)
			continue
		}

		f, ok := tok.era()
		if !ok {
			sb.WriteString(strftime.Format(tok.text, t))
			continue
		}

		if !got {
			e, got = c.table.LookupByDate(t), true
		}
		sb.WriteString(renderEra(e, e.Year(t), f))
	}

	return sb.String()
}

// Wrap returns t as an era-aware Time bound to this codec.
func (c *Codec) Wrap(t time.Time) Time {
	return Time{Time: t, codec: c}
}

// recognizer returns the compiled recognizer for layout, compiling it on a cache miss.
func (c *Codec) recognizer(layout string, tokens []token) (*recognizer, error) {
	if c.cache != nil {
		if rec, ok := c.cache.Get(layout); ok {
			return rec, nil
		}
	}

	rec, err := compile(tokens, c.table)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Add(layout, rec)
	}
	return rec, nil
}

var defaultCodec = sync.OnceValue(func() *Codec {
	c, err := New()
	if err != nil {
		panic(fmt.Sprintf("eratime: default codec: %v", err))
	}
	return c
})

// Default returns the shared codec used by the package-level functions.
func Default() *Codec {
	return defaultCodec()
}

// Parse parses value with the default codec.
func Parse(layout, value string) (Time, error) {
	return Default().Parse(layout, value)
}

// Format formats t with the default codec.
func Format(layout string, t time.Time) string {
	return Default().Format(layout, t)
}
