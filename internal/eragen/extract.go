package eragen

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/dmitrymomot/eradate/pkg/era"
)

var (
	// Start dates in the five/six-column tables: 701年5月3日
	shortRowDate = regexp.MustCompile(`(\d{3,4})年(\d{1,2})月(\d{1,2})日`)
	// Start dates in the eight-column tables, year optionally in parentheses: (1868年)9月8日
	longRowDate = regexp.MustCompile(`\(?(\d{4})年\)?(\d{1,2})月(\d{1,2})日`)
	hiraganaRun = regexp.MustCompile(`[\x{3040}-\x{309F}]+`)
)

// Extract parses the era list page and returns one record per recognised row,
// in page order. Romanized names keep their macrons unless ascii is set.
func Extract(r io.Reader, ascii bool) ([]era.Record, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse era list: %w", err)
	}

	var records []era.Record
	for _, table := range findAll(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Table && hasClass(n, "wikitable")
	}) {
		rows := findAll(table, func(n *html.Node) bool { return n.DataAtom == atom.Tr })
		if len(rows) > 0 {
			rows = rows[1:] // header
		}
		for _, row := range rows {
			rec, ok := extractRow(row)
			if !ok {
				continue
			}
			if ascii {
				rec.NameEN = StripMacrons(rec.NameEN)
			}
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, ErrNoEras
	}
	return records, nil
}

func extractRow(row *html.Node) (era.Record, bool) {
	cells := findAll(row, func(n *html.Node) bool { return n.DataAtom == atom.Td })
	header := findFirst(row, func(n *html.Node) bool { return n.DataAtom == atom.Th })

	var (
		name, reading, from string
		datePattern         *regexp.Regexp
	)

	switch {
	case header != nil && (len(cells) == 5 || len(cells) == 6):
		name = textOf(header)
		reading = textOf(cells[0])
		from = textOf(cells[1])
		datePattern = shortRowDate
	case len(cells) == 8:
		link := findFirst(row, func(n *html.Node) bool {
			return n.DataAtom == atom.A && n.Parent != nil && n.Parent.DataAtom == atom.B &&
				n.Parent.Parent != nil && n.Parent.Parent.DataAtom == atom.Td
		})
		if link == nil {
			return era.Record{}, false
		}
		name = textOf(link)
		reading = hiraganaRun.FindString(textOf(cells[0]))
		from = textOf(cells[1])
		datePattern = longRowDate
	default:
		return era.Record{}, false
	}

	m := datePattern.FindStringSubmatch(width.Narrow.String(from))
	if m == nil || name == "" || reading == "" {
		return era.Record{}, false
	}

	return era.Record{
		NameJA:    norm.NFC.String(name),
		NameEN:    Romanize(reading),
		StartDate: fmt.Sprintf("%04d-%02d-%02d", atoi(m[1]), atoi(m[2]), atoi(m[3])),
	}, true
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	if all := findAll(root, match); len(all) > 0 {
		return all[0]
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && strings.Contains(" "+a.Val+" ", " "+class+" ") {
			return true
		}
	}
	return false
}

// textOf concatenates the trimmed text of every descendant text node.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
