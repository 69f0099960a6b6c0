package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLoad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(boardFixture))
	}))
	defer server.Close()

	source := NewSource(server.URL)
	source.Parser = Parser{Now: fixedClock("2010-06-12T17:00:00Z")}

	status, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, status.Lines, 3)
	assert.Len(t, status.StationGroups, 2)
}

func TestSourceLoadRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(boardFixture))
	}))
	defer server.Close()

	source := NewSource(server.URL)
	source.Parser = Parser{Now: fixedClock("2010-06-12T17:00:00Z")}

	status, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, status.Lines, 3)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestSourceLoadGivesUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := NewSource(server.URL)
	source.MaxRetries = 1

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := source.Load(ctx)
	assert.Error(t, err)
}

func TestSourceLoadMalformedDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	}))
	defer server.Close()

	source := NewSource(server.URL)

	_, err := source.Load(context.Background())
	var malformed *MalformedDocumentError
	assert.ErrorAs(t, err, &malformed)
}

func TestNewSourceDefaults(t *testing.T) {
	source := NewSource("")
	assert.Equal(t, DefaultURL, source.URL)
}
