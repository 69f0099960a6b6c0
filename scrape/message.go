package scrape

import (
	"regexp"
	"strings"
)

// spaceRun matches runs of whitespace, including the non-breaking spaces
// the board's markup is fond of.
var spaceRun = regexp.MustCompile(`[\s\x{00a0}]+`)

func collapseSpace(s string) string {
	return strings.Trim(spaceRun.ReplaceAllString(s, " "), " ")
}

// extractMessage flattens message paragraphs into a single
// newline-separated string. Only each paragraph's direct text is kept, so
// "read more" links and the like nested inside a paragraph contribute
// nothing. Paragraphs that reduce to nothing are dropped; if none survive
// the message is empty.
func extractMessage(paragraphs []Node) string {
	var kept []string
	for _, p := range paragraphs {
		text := collapseSpace(strings.Join(p.TextParts(), " "))
		if text != "" {
			kept = append(kept, text)
		}
	}
	return strings.Join(kept, "\n")
}
