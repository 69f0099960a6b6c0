package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/matsadler/tube"
)

// MalformedDocumentError reports a document missing one of the structural
// anchors a parse cannot proceed without. Absent sub-structure within an
// entry (a line with no message, say) is not an error.
type MalformedDocumentError struct {
	Missing string
}

func (e *MalformedDocumentError) Error() string {
	return "malformed status document: missing " + e.Missing
}

// Parser extracts a tube.Status from service-board markup.
//
// The zero value is ready to use; Parse is the package-level shorthand for
// it.
type Parser struct {
	// Now supplies the moment of parsing, used to decide whether the
	// update time printed on the board is in summer time. It defaults to
	// time.Now. The board carries no date, so the printed hour and minute
	// are taken to be today's, in current UK local time.
	Now func() time.Time
}

// Parse extracts a Status from the current service-board markup with a
// zero Parser.
func Parse(doc Node) (*tube.Status, error) {
	return (&Parser{}).Parse(doc)
}

// Parse extracts a Status from the current service-board markup. It
// returns a *MalformedDocumentError when the update-time header, the lines
// list, or the stations list cannot be found.
func (p *Parser) Parse(doc Node) (*tube.Status, error) {
	header := doc.First("div.hd-row > h2")
	if header == nil {
		return nil, &MalformedDocumentError{Missing: "update time header"}
	}
	updated, err := p.parseUpdated(header.Text())
	if err != nil {
		return nil, err
	}

	if doc.First("ul#lines") == nil {
		return nil, &MalformedDocumentError{Missing: "lines list"}
	}
	if doc.First("ul#stations") == nil {
		return nil, &MalformedDocumentError{Missing: "stations list"}
	}

	var lines []tube.Line
	for _, item := range doc.All("ul#lines > li.ltn-line") {
		lines = append(lines, parseLine(item))
	}

	var groups []tube.StationGroup
	for _, item := range doc.All("ul#stations > li") {
		groups = append(groups, parseStationGroup(item))
	}

	return &tube.Status{Updated: updated, Lines: lines, StationGroups: groups}, nil
}

var updateTime = regexp.MustCompile(`(\d?\d):(\d\d)\s*(?i:(am|pm))?`)

// parseUpdated resolves the board's bare "H:MM" into an absolute time.
// Whether the offset is BST or GMT is decided by the moment of parsing,
// not the printed time; the board is assumed to be fetched the day it was
// generated.
func (p *Parser) parseUpdated(text string) (time.Time, error) {
	m := updateTime.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, &MalformedDocumentError{Missing: "update time"}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	zone := time.FixedZone("GMT", 0)
	if summerTime(p.now()) {
		zone = time.FixedZone("BST", 60*60)
	}
	today := p.now().In(zone)
	return time.Date(today.Year(), today.Month(), today.Day(), hour, minute, 0, 0, zone), nil
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func parseLine(item Node) tube.Line {
	var line tube.Line
	if name := item.First("h3.ltn-name"); name != nil {
		line.Name = name.Text()
		line.ID = firstClass(name.Attr("class"))
	}

	status := item.First("div.status")
	if status == nil {
		return line
	}
	line.Problem = hasClass(status.Attr("class"), "problem")
	if title := status.First("h4.ltn-title"); title != nil {
		line.Status = title.Text()
		line.Message = extractMessage(status.All("div.message > p"))
	} else {
		// No sub-header: the whole block is the headline. This also
		// covers problem blocks rendered without one, which keep their
		// problem flag but carry no message.
		line.Status = status.Text()
	}
	return line
}

func parseStationGroup(item Node) tube.StationGroup {
	var group tube.StationGroup
	if heading := item.First("h3"); heading != nil {
		group.Name = heading.Text()
	}
	for _, entry := range item.All("ul > li.ltn-station") {
		var station tube.Station
		if name := entry.First("h4.ltn-name"); name != nil {
			station.Name = name.Text()
		}
		station.Message = extractMessage(entry.All("div.message > p"))
		group.Stations = append(group.Stations, station)
	}
	return group
}

// firstClass returns the first token of a class attribute; the board puts
// the line's identifier there.
func firstClass(attr string) string {
	fields := strings.Fields(attr)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func hasClass(attr, class string) bool {
	for _, field := range strings.Fields(attr) {
		if field == class {
			return true
		}
	}
	return false
}
