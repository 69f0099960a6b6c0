package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/cenkalti/backoff/v4"

	"github.com/matsadler/tube"
	"github.com/matsadler/tube/internal/logging"
)

// DefaultURL is the TfL live travel news service board.
const DefaultURL = "http://www.tfl.gov.uk/tfl/livetravelnews/realtime/tube/default.html"

// Source fetches the live service board over HTTP and parses it. It
// implements tube.Source.
type Source struct {
	// URL of the board; DefaultURL when empty.
	URL string

	// Client used for fetches; http.DefaultClient when nil.
	Client *http.Client

	// Parser used on the fetched markup. The zero value parses the
	// current markup with the real clock.
	Parser Parser

	// MaxRetries bounds the retries on top of the initial fetch attempt.
	MaxRetries uint64
}

// NewSource creates a Source for the given URL, or for DefaultURL when
// empty, retrying failed fetches a few times before giving up.
func NewSource(url string) *Source {
	if url == "" {
		url = DefaultURL
	}
	return &Source{URL: url, MaxRetries: 3}
}

// Load fetches and parses the board. Transient fetch failures are retried
// with exponential backoff; parse failures are not retried.
func (s *Source) Load(ctx context.Context) (*tube.Status, error) {
	var body []byte
	fetch := func() error {
		var err error
		body, err = s.fetch(ctx)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.MaxRetries), ctx)
	if err := backoff.Retry(fetch, policy); err != nil {
		return nil, fmt.Errorf("fetching service board: %w", err)
	}

	doc, err := NewDocument(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing service board: %w", err)
	}
	return s.Parser.Parse(doc)
}

func (s *Source) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer logging.SafeClose(resp.Body,
		logging.FromContext(ctx).With(slog.String("component", "scrape")),
		"http_response_body")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
