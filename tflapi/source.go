package tflapi

import (
	"context"
	"time"

	"github.com/matsadler/tube"
)

// DefaultModes are the modes included in a snapshot unless overridden.
var DefaultModes = []string{"tube", "dlr", "overground"}

// Source builds Status snapshots from the TfL Unified API. It implements
// tube.Source.
type Source struct {
	Client *Client

	// Modes to include; DefaultModes when empty.
	Modes []string

	// Now stamps the snapshot's update time, the API having no equivalent
	// of the board's "updated at" header. Defaults to time.Now.
	Now func() time.Time
}

// NewSource creates a Source over the given client.
func NewSource(client *Client) *Source {
	return &Source{Client: client}
}

// Load fetches line statuses and stop-point disruptions and assembles
// them into a Status. Lines keep the API's order; station groups are keyed
// by disruption type in first-seen order, mirroring how the board grouped
// stations by condition.
func (s *Source) Load(ctx context.Context) (*tube.Status, error) {
	modes := s.Modes
	if len(modes) == 0 {
		modes = DefaultModes
	}

	details, err := s.Client.LineModeStatus(ctx, modes)
	if err != nil {
		return nil, err
	}
	disruptions, err := s.Client.StopPointModeDisruption(ctx, modes)
	if err != nil {
		return nil, err
	}

	status := &tube.Status{Updated: s.now()}

	for _, detail := range details {
		line := tube.Line{ID: detail.ID, Name: detail.Name}
		if len(detail.LineStatuses) > 0 {
			first := detail.LineStatuses[0]
			line.Status = first.StatusSeverityDescription
			line.Problem = first.StatusSeverity > 10
			line.Message = first.Reason
		}
		status.Lines = append(status.Lines, line)
	}

	groups := make(map[string]int)
	for _, d := range disruptions {
		i, ok := groups[d.Type]
		if !ok {
			i = len(status.StationGroups)
			groups[d.Type] = i
			status.StationGroups = append(status.StationGroups, tube.StationGroup{Name: d.Type})
		}
		status.StationGroups[i].Stations = append(status.StationGroups[i].Stations,
			tube.Station{Name: d.CommonName, Message: d.Description})
	}

	return status, nil
}

func (s *Source) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
