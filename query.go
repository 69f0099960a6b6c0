package tube

import (
	"regexp"
	"strings"
)

// Query selects lines, stations, or station groups. Build one with Exact,
// Fuzzy, Match, or Any. A nil Query passed to FindStations selects every
// station.
type Query interface {
	isQuery()
}

type exactQuery string

type fuzzyQuery string

type patternQuery struct{ re *regexp.Regexp }

type listQuery []Query

func (exactQuery) isQuery()   {}
func (fuzzyQuery) isQuery()   {}
func (patternQuery) isQuery() {}
func (listQuery) isQuery()    {}

// Exact matches a line identifier or station name exactly, case
// sensitively.
func Exact(s string) Query { return exactQuery(s) }

// Fuzzy matches a human-entered name, tolerating case, whitespace,
// ampersand/"and" variants, and (for lines) apostrophe abbreviations such
// as "H'smith" for "Hammersmith".
func Fuzzy(s string) Query { return fuzzyQuery(s) }

// Match matches against a regular expression, applied case-insensitively.
func Match(re *regexp.Regexp) Query { return patternQuery{re} }

// Any combines queries. Results are concatenated in query order and
// de-duplicated by name, keeping the first occurrence.
func Any(qs ...Query) Query { return listQuery(qs) }

// Line finds a single line, or nil if none matches. An Exact query must
// equal the line's identifier; a Fuzzy query is normalized (whitespace
// stripped, "&" read as "and", apostrophes absorbing abbreviated letters)
// and matched case-insensitively against identifiers. The first line in
// board order wins.
func (s *Status) Line(q Query) *Line {
	var match func(id string) bool
	switch q := q.(type) {
	case exactQuery:
		match = func(id string) bool { return id == string(q) }
	case fuzzyQuery:
		re, err := fuzzyLinePattern(string(q))
		if err != nil {
			return nil
		}
		match = re.MatchString
	case patternQuery:
		match = insensitive(q.re).MatchString
	default:
		return nil
	}
	for i := range s.Lines {
		if match(s.Lines[i].ID) {
			return &s.Lines[i]
		}
	}
	return nil
}

// FindStations finds every station matching the query, preserving
// group-then-member order. A nil query returns all stations. Exact queries
// compare whole names case-sensitively; Fuzzy queries match anywhere in the
// name, ignoring case, with flexible whitespace and "&"/"and" treated as
// interchangeable. An Any query resolves each element in turn and drops
// later duplicates by name.
func (s *Status) FindStations(q Query) []Station {
	switch q := q.(type) {
	case exactQuery:
		return s.selectStations(func(name string) bool { return name == string(q) })
	case fuzzyQuery:
		re, err := fuzzyStationPattern(string(q))
		if err != nil {
			return nil
		}
		return s.selectStations(re.MatchString)
	case patternQuery:
		return s.selectStations(insensitive(q.re).MatchString)
	case listQuery:
		var stations []Station
		seen := make(map[string]bool)
		for _, sub := range q {
			for _, station := range s.FindStations(sub) {
				if seen[station.Name] {
					continue
				}
				seen[station.Name] = true
				stations = append(stations, station)
			}
		}
		return stations
	case nil:
		return s.selectStations(func(string) bool { return true })
	}
	return nil
}

// FindStation finds a single station, or nil. When more than one station
// matches, the one with the shortest name wins, ignoring any parenthetical
// suffix; ties go to the earliest match.
func (s *Status) FindStation(q Query) *Station {
	results := s.FindStations(q)
	if len(results) == 0 {
		return nil
	}
	best := 0
	bestLen := unqualifiedLen(results[0].Name)
	for i := 1; i < len(results); i++ {
		if l := unqualifiedLen(results[i].Name); l < bestLen {
			best, bestLen = i, l
		}
	}
	return &results[best]
}

// StationGroup finds a single station group, or nil. Exact and Fuzzy
// queries are both treated as case-insensitive substring matches on the
// group name, so Fuzzy("closed") finds "Closed stations". The first group
// in board order wins.
func (s *Status) StationGroup(q Query) *StationGroup {
	var match func(name string) bool
	switch q := q.(type) {
	case exactQuery:
		match = containsFold(string(q))
	case fuzzyQuery:
		match = containsFold(string(q))
	case patternQuery:
		match = insensitive(q.re).MatchString
	default:
		return nil
	}
	for i := range s.StationGroups {
		if match(s.StationGroups[i].Name) {
			return &s.StationGroups[i]
		}
	}
	return nil
}

func (s *Status) selectStations(match func(name string) bool) []Station {
	var stations []Station
	for _, group := range s.StationGroups {
		for _, station := range group.Stations {
			if match(station.Name) {
				stations = append(stations, station)
			}
		}
	}
	return stations
}

// fuzzyLinePattern turns a display-style name into a pattern over line
// identifiers: whitespace is dropped, "&" becomes "and", and an apostrophe
// stands in for the one or more letters an abbreviation elides.
func fuzzyLinePattern(s string) (*regexp.Regexp, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "'", ".+")
	return regexp.Compile("(?i)" + s)
}

var (
	spaceChar     = regexp.MustCompile(`\s`)
	ampersand     = regexp.MustCompile(`(and|&)`)
	parenthetical = regexp.MustCompile(`\(.+\)`)
)

// fuzzyStationPattern turns a station name fragment into a pattern over
// station names: any whitespace in the query matches zero or more
// whitespace characters, and "and" and "&" are interchangeable.
func fuzzyStationPattern(s string) (*regexp.Regexp, error) {
	s = spaceChar.ReplaceAllString(s, `\s*`)
	s = ampersand.ReplaceAllString(s, `(and|&)`)
	return regexp.Compile("(?i)" + s)
}

func insensitive(re *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile("(?i:" + re.String() + ")")
}

func containsFold(q string) func(string) bool {
	q = strings.ToLower(q)
	return func(name string) bool {
		return strings.Contains(strings.ToLower(name), q)
	}
}

// unqualifiedLen is the length of a station name with any parenthetical
// disambiguator removed, e.g. "Edgware Road (Circle)" counts as "Edgware
// Road ".
func unqualifiedLen(name string) int {
	return len(parenthetical.ReplaceAllString(name, ""))
}
