// Package tube models the live status of the London Underground network as
// published on the TfL "Live travel news" service board.
//
// A Status is an immutable snapshot of the whole network: every line with
// its current service headline, and stations grouped by condition ("Closed
// stations", "Station maintenance"). Snapshots are produced by a Source
// (the scrape package parses the service-board markup, the tflapi package
// reads the TfL Unified API) and queried with the lookup methods on Status.
package tube

import (
	"encoding/xml"
	"time"
)

// Line is a single Underground line and its current service status. ID is
// the stable lowercase token used on the service board (e.g.
// "waterlooandcity") and never changes after parsing; Name is the display
// name (e.g. "Waterloo & City").
type Line struct {
	ID      string `json:"id" xml:"id"`
	Name    string `json:"name" xml:"name"`
	Status  string `json:"status" xml:"status"`
	Problem bool   `json:"problem" xml:"problem"`
	Message string `json:"message,omitempty" xml:"message,omitempty"`
}

// NewLine creates a Line. An empty name defaults to the id.
func NewLine(id, name, status string, problem bool, message string) Line {
	if name == "" {
		name = id
	}
	return Line{
		ID:      id,
		Name:    name,
		Status:  status,
		Problem: problem,
		Message: message,
	}
}

// Station is a named stop, optionally annotated with a disruption message.
// Stations have no stable identifier; the display name is their identity.
type Station struct {
	Name    string `json:"name" xml:"name"`
	Message string `json:"message,omitempty" xml:"message,omitempty"`
}

// StationGroup is a named condition (e.g. "Closed stations") and the
// stations currently under it, in source document order.
type StationGroup struct {
	Name     string    `json:"name" xml:"name"`
	Stations []Station `json:"stations" xml:"stations>station"`
}

// Status is a snapshot of the network at one update time. Lines and
// StationGroups keep the order of the source document, not alphabetical
// order. A Status is never mutated after construction; reloading builds a
// whole new snapshot.
type Status struct {
	XMLName       xml.Name       `json:"-" xml:"status"`
	Updated       time.Time      `json:"updated" xml:"updated"`
	Lines         []Line         `json:"lines" xml:"lines>line"`
	StationGroups []StationGroup `json:"stations" xml:"station_groups>station_group"`
}
