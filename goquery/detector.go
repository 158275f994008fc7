// Package goquery inspects rendered documentation pages with goquery:
// detecting the site framework and isolating the article body.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookchat"
)

// Ensure Detector implements bookchat.FrameworkDetector at compile time.
var _ bookchat.FrameworkDetector = (*Detector)(nil)

// Detector recognises Docusaurus pages from their meta generator tag and
// theme markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns FrameworkDocusaurus for Docusaurus pages and
// FrameworkUnknown for anything else, including unparseable HTML.
func (d *Detector) Detect(html string) bookchat.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return bookchat.FrameworkUnknown
	}

	generator, _ := doc.Find("meta[name='generator']").Attr("content")
	if strings.Contains(strings.ToLower(generator), "docusaurus") {
		return bookchat.FrameworkDocusaurus
	}

	// __docusaurus_skipToContent_fallback is highly specific
	if has(doc, "#__docusaurus_skipToContent_fallback") ||
		has(doc, ".theme-doc-sidebar-container") ||
		has(doc, ".theme-doc-markdown") ||
		has(doc, "[data-rh]") && has(doc, "[data-theme]") {
		return bookchat.FrameworkDocusaurus
	}

	return bookchat.FrameworkUnknown
}

func has(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
