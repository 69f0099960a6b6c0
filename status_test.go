package tube

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineDefaultsNameToID(t *testing.T) {
	line := NewLine("central", "", "Good service", false, "")
	assert.Equal(t, "central", line.Name)

	line = NewLine("waterlooandcity", "Waterloo & City", "Good service", false, "")
	assert.Equal(t, "Waterloo & City", line.Name)
}

func TestLineJSON(t *testing.T) {
	line := NewLine("central", "Central", "Good service", false, "")

	data, err := json.Marshal(line)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"central","name":"Central","status":"Good service","problem":false}`,
		string(data), "absent message is omitted")

	line.Message = "Closed Sunday."
	line.Problem = true
	data, err = json.Marshal(line)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Closed Sunday."`)
}

func TestStatusXML(t *testing.T) {
	status := fixtureStatus()

	data, err := xml.Marshal(status)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<status>"), out)
	assert.Contains(t, out, "<lines><line><id>bakerloo</id>")
	assert.Contains(t, out, "<station_groups><station_group><name>Closed stations</name>")
	assert.Contains(t, out, "<station><name>Camden Town</name>")
}
