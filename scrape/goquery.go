package scrape

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NewDocument parses HTML markup into a Node backed by goquery. Character
// entities are decoded by the HTML parser, so "&amp;" in the markup reads
// back as a literal "&".
func NewDocument(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return selection{doc.Selection}, nil
}

// selection adapts a goquery.Selection to the Node interface.
type selection struct {
	sel *goquery.Selection
}

func (s selection) First(selector string) Node {
	found := s.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil
	}
	return selection{found}
}

func (s selection) All(selector string) []Node {
	var nodes []Node
	s.sel.Find(selector).Each(func(_ int, sub *goquery.Selection) {
		nodes = append(nodes, selection{sub})
	})
	return nodes
}

func (s selection) Text() string {
	return collapseSpace(s.sel.Text())
}

func (s selection) Attr(name string) string {
	value, _ := s.sel.Attr(name)
	return value
}

func (s selection) TextParts() []string {
	var parts []string
	for _, node := range s.sel.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				parts = append(parts, child.Data)
			}
		}
	}
	return parts
}

func (s selection) NextSibling() Node {
	next := s.sel.Next()
	if next.Length() == 0 {
		return nil
	}
	return selection{next}
}

func (s selection) Tag() string {
	if len(s.sel.Nodes) == 0 {
		return ""
	}
	return s.sel.Nodes[0].Data
}
