// Package goquery implements the heuristic repurpose.Extractor using
// PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/repurpose"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NoiseSelector matches elements that never carry article text.
const NoiseSelector = "script, style, nav, footer, header, aside, noscript, iframe, svg, template"

// DefaultContentSelectors are tried in order. The first selector whose
// matches contain any text wins.
var DefaultContentSelectors = []string{
	"article",
	".post-content",
	".entry-content",
	".content",
	"main",
}

// sourceBody labels results taken from the whole page body.
const sourceBody = "body"

// Ensure Extractor implements repurpose.Extractor at compile time.
var _ repurpose.Extractor = (*Extractor)(nil)

// Extractor isolates article text with a cascade of CSS selectors.
type Extractor struct {
	selectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors replaces DefaultContentSelectors.
func WithSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: DefaultContentSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements repurpose.Extractor.
func (e *Extractor) Extract(rawHTML string) (*repurpose.ExtractResult, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, repurpose.WrapError(repurpose.EEXTRACT, err, "could not parse the page")
	}
	doc := goquery.NewDocumentFromNode(root)

	title := pageTitle(doc)
	doc.Find(NoiseSelector).Remove()

	text, source := e.candidate(doc)
	if text == "" || utf8.RuneCountInString(repurpose.CleanText(text)) < repurpose.MinContentChars {
		text, source = Text(doc.Find("body")), sourceBody
	}

	cleaned, err := repurpose.FinalizeText(text)
	if err != nil {
		return nil, err
	}

	return &repurpose.ExtractResult{
		Title:  title,
		Text:   cleaned,
		Source: source,
	}, nil
}

// candidate returns the text of the first selector with non-blank matches.
func (e *Extractor) candidate(doc *goquery.Document) (string, string) {
	for _, selector := range e.selectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		if text := Text(sel); strings.TrimSpace(text) != "" {
			return text, selector
		}
	}
	return "", ""
}

func pageTitle(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// Text returns the text of every node in sel. Unlike Selection.Text, a
// newline is emitted at block element boundaries so words in adjacent
// blocks do not run together.
func Text(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}

	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		sb.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte('\n')
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.Address, atom.Article, atom.Blockquote, atom.Br, atom.Dd, atom.Div,
		atom.Dl, atom.Dt, atom.Figcaption, atom.Figure, atom.H1, atom.H2, atom.H3,
		atom.H4, atom.H5, atom.H6, atom.Hr, atom.Li, atom.Main, atom.Ol, atom.P,
		atom.Pre, atom.Section, atom.Table, atom.Td, atom.Th, atom.Tr, atom.Ul:
		return true
	}
	return false
}
