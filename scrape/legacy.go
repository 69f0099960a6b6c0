package scrape

import (
	"github.com/matsadler/tube"
)

// ParseLegacy extracts a Status from the pre-2010 service-board markup
// with a zero Parser.
func ParseLegacy(doc Node) (*tube.Status, error) {
	return (&Parser{}).ParseLegacy(doc)
}

// ParseLegacy extracts a Status from the pre-2010 service board, which
// laid the data out as definition lists: each line's <dt> carried the name
// and the following <dd> sibling its status, and each station group's <dt>
// was followed by one <dd> sibling per station up to the next group. The
// update header on that era's board used 12-hour times ("6:26pm").
func (p *Parser) ParseLegacy(doc Node) (*tube.Status, error) {
	header := doc.First("h2")
	if header == nil {
		return nil, &MalformedDocumentError{Missing: "update time header"}
	}
	updated, err := p.parseUpdated(header.Text())
	if err != nil {
		return nil, err
	}

	if doc.First("dl#lines") == nil {
		return nil, &MalformedDocumentError{Missing: "lines list"}
	}
	if doc.First("dl#stations") == nil {
		return nil, &MalformedDocumentError{Missing: "stations list"}
	}

	var lines []tube.Line
	for _, dt := range doc.All("dl#lines > dt") {
		lines = append(lines, parseLegacyLine(dt))
	}

	var groups []tube.StationGroup
	for _, dt := range doc.All("dl#stations > dt") {
		groups = append(groups, parseLegacyStationGroup(dt))
	}

	return &tube.Status{Updated: updated, Lines: lines, StationGroups: groups}, nil
}

func parseLegacyLine(dt Node) tube.Line {
	line := tube.Line{
		ID:   firstClass(dt.Attr("class")),
		Name: dt.Text(),
	}

	status := dt.NextSibling()
	if status == nil || status.Tag() != "dd" {
		return line
	}
	line.Problem = hasClass(status.Attr("class"), "problem")
	if title := status.First("h3"); title != nil {
		line.Status = title.Text()
		line.Message = extractMessage(status.All("div.message > p"))
	} else {
		line.Status = status.Text()
	}
	return line
}

// parseLegacyStationGroup walks the <dd> siblings following a group's
// <dt>, stopping at the next <dt>, which opens the next group.
func parseLegacyStationGroup(dt Node) tube.StationGroup {
	group := tube.StationGroup{Name: dt.Text()}
	for entry := dt.NextSibling(); entry != nil && entry.Tag() == "dd"; entry = entry.NextSibling() {
		var station tube.Station
		if name := entry.First("h3"); name != nil {
			station.Name = name.Text()
		}
		station.Message = extractMessage(entry.All("div.message > p"))
		group.Stations = append(group.Stations, station)
	}
	return group
}
