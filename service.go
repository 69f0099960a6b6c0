package tube

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/matsadler/tube/internal/logging"
)

// Source loads a fresh Status snapshot.
type Source interface {
	Load(ctx context.Context) (*Status, error)
}

// Service holds the most recent Status snapshot and refreshes it on
// demand. The snapshot is replaced wholesale: a new Status is built off to
// the side and swapped in under the lock, so readers never see a partially
// updated model, and a failed reload leaves the previous snapshot in
// place.
type Service struct {
	source Source
	logger *slog.Logger

	mu      sync.RWMutex
	current *Status
}

// NewService creates a Service over the given source. A nil logger falls
// back to slog.Default.
func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// Reload fetches and parses a new snapshot. On error the current snapshot
// is untouched and the error is returned.
func (s *Service) Reload(ctx context.Context) error {
	started := time.Now()

	status, err := s.source.Load(ctx)
	if err != nil {
		logging.LogError(s.logger, "status reload failed", err)
		return err
	}

	s.mu.Lock()
	s.current = status
	s.mu.Unlock()

	logging.LogOperation(s.logger, "status_reload",
		slog.Int("lines", len(status.Lines)),
		slog.Int("station_groups", len(status.StationGroups)),
		slog.Duration("duration", time.Since(started)),
	)
	return nil
}

// Status returns the current snapshot, or nil before the first successful
// Reload. The returned Status is immutable and safe to query from any
// goroutine; it stays valid even after a later Reload swaps in a newer
// one.
func (s *Service) Status() *Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
