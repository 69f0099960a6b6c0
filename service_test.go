package tube

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns a canned status or error per Load call.
type stubSource struct {
	statuses []*Status
	errs     []error
	calls    int
}

func (s *stubSource) Load(ctx context.Context) (*Status, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.statuses[i], nil
}

func TestServiceReload(t *testing.T) {
	source := &stubSource{statuses: []*Status{fixtureStatus()}}
	service := NewService(source, nil)

	assert.Nil(t, service.Status(), "no snapshot before the first reload")

	require.NoError(t, service.Reload(context.Background()))
	status := service.Status()
	require.NotNil(t, status)
	assert.Len(t, status.Lines, 4)
}

func TestServiceReloadFailureKeepsSnapshot(t *testing.T) {
	loadErr := errors.New("connection refused")
	source := &stubSource{
		statuses: []*Status{fixtureStatus(), nil},
		errs:     []error{nil, loadErr},
	}
	service := NewService(source, nil)

	require.NoError(t, service.Reload(context.Background()))
	previous := service.Status()

	err := service.Reload(context.Background())
	assert.ErrorIs(t, err, loadErr)
	assert.Same(t, previous, service.Status(), "failed reload leaves the old snapshot")
}

func TestServiceReloadSwapsWholeSnapshot(t *testing.T) {
	first := fixtureStatus()
	second := fixtureStatus()
	second.Lines = second.Lines[:1]

	source := &stubSource{statuses: []*Status{first, second}}
	service := NewService(source, nil)

	require.NoError(t, service.Reload(context.Background()))
	require.NoError(t, service.Reload(context.Background()))

	assert.Same(t, second, service.Status())
	assert.Len(t, first.Lines, 4, "the replaced snapshot is left intact for in-flight readers")
}

func TestServiceConcurrentReads(t *testing.T) {
	source := &stubSource{statuses: []*Status{fixtureStatus()}}
	service := NewService(source, nil)
	require.NoError(t, service.Reload(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				status := service.Status()
				if status.Line(Exact("central")) == nil {
					t.Error("central line missing")
					return
				}
			}
		}()
	}
	wg.Wait()
}
