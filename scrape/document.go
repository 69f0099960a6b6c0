// Package scrape extracts a tube.Status from the markup of the TfL "Live
// travel news" service board.
//
// The board's markup has changed over the years, so the parsers work
// against the Node interface rather than any HTML library directly: Parse
// handles the current list-based layout, ParseLegacy the older
// definition-list layout that linked each entry to its status via
// siblings. NewDocument adapts parsed HTML to a Node.
package scrape

// Node is one element of a parsed status document. It exposes only the
// traversal the parsers need, so each markup era (or a non-HTML source)
// can supply its own implementation.
type Node interface {
	// First returns the first descendant matching the CSS selector, or
	// nil when there is none.
	First(selector string) Node

	// All returns every descendant matching the CSS selector, in document
	// order.
	All(selector string) []Node

	// Text returns the node's text content with surrounding whitespace
	// trimmed.
	Text() string

	// Attr returns the named attribute's value, or "" when absent.
	Attr(name string) string

	// TextParts returns the content of the node's direct text children in
	// order, skipping any text nested inside child elements.
	TextParts() []string

	// NextSibling returns the next element sibling, or nil.
	NextSibling() Node

	// Tag returns the element name, lower case.
	Tag() string
}
