// Package tflapi builds tube.Status snapshots from the TfL Unified API
// (https://api.tfl.gov.uk), the structured replacement for scraping the
// service-board page. The API returns ready-made records, so no markup
// parsing or summer-time resolution is involved.
package tflapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	resty "gopkg.in/resty.v1"
)

// DefaultBaseURL is the production TfL Unified API endpoint.
const DefaultBaseURL = "https://api.tfl.gov.uk"

// LineStatus is one status entry on a line, as returned by the API.
type LineStatus struct {
	StatusSeverity            int    `json:"statusSeverity"`
	StatusSeverityDescription string `json:"statusSeverityDescription"`
	Reason                    string `json:"reason"`
}

// LineDetail is the API's view of a line and its current statuses.
type LineDetail struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	LineStatuses []LineStatus `json:"lineStatuses"`
}

// Disruption is one stop-point disruption, as returned by the API.
type Disruption struct {
	Type        string `json:"type"`
	CommonName  string `json:"commonName"`
	Description string `json:"description"`
}

// Client calls the TfL Unified API. App credentials are optional for light
// use; when set they are passed as query parameters on every request.
type Client struct {
	rest   *resty.Client
	appID  string
	appKey string
}

// NewClient creates a Client for the given base URL, or DefaultBaseURL
// when empty.
func NewClient(baseURL, appID, appKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rest := resty.New().SetHostURL(baseURL)
	return &Client{rest: rest, appID: appID, appKey: appKey}
}

// LineModeStatus fetches the current status of every line running one of
// the given modes (e.g. "tube", "dlr", "overground").
func (c *Client) LineModeStatus(ctx context.Context, modes []string) ([]LineDetail, error) {
	var details []LineDetail
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(c.auth()).
		SetResult(&details).
		Get("/Line/Mode/" + strings.Join(modes, ",") + "/Status")
	if err != nil {
		return nil, fmt.Errorf("line status request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("line status request: %s", resp.Status())
	}
	return details, nil
}

// StopPointModeDisruption fetches the current stop-point disruptions for
// the given modes.
func (c *Client) StopPointModeDisruption(ctx context.Context, modes []string) ([]Disruption, error) {
	var disruptions []Disruption
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(c.auth()).
		SetResult(&disruptions).
		Get("/StopPoint/Mode/" + strings.Join(modes, ",") + "/Disruption")
	if err != nil {
		return nil, fmt.Errorf("stop point disruption request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("stop point disruption request: %s", resp.Status())
	}
	return disruptions, nil
}

func (c *Client) auth() map[string]string {
	params := make(map[string]string)
	if c.appID != "" {
		params["app_id"] = c.appID
	}
	if c.appKey != "" {
		params["app_key"] = c.appKey
	}
	return params
}
