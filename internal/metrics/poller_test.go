package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLedger struct {
	heights []int64
	calls   int
	err     error
}

func (s *stubLedger) LastBlockIndex(ctx context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	h := s.heights[s.calls]
	if s.calls < len(s.heights)-1 {
		s.calls++
	}
	return h, nil
}

type memStore struct {
	samples []Sample
	err     error
}

func (s *memStore) InsertSample(ctx context.Context, sample Sample) error {
	if s.err != nil {
		return s.err
	}
	s.samples = append(s.samples, sample)
	return nil
}

func (s *memStore) RecentSamples(ctx context.Context, limit int) ([]Sample, error) {
	if limit > len(s.samples) {
		limit = len(s.samples)
	}
	out := make([]Sample, limit)
	for i := range out {
		out[i] = s.samples[len(s.samples)-1-i]
	}
	return out, nil
}

func TestCollectRecordsSamples(t *testing.T) {
	ledger := &stubLedger{heights: []int64{100, 160}}
	store := &memStore{}
	p := NewPoller(ledger, store, time.Second)

	require.NoError(t, p.collect(context.Background()))
	require.Len(t, store.samples, 1)
	assert.Equal(t, int64(100), store.samples[0].Height)
	assert.True(t, store.samples[0].TxRate.IsZero(), "first sample has no previous tick to rate against")
	assert.NotEqual(t, uuid.Nil, store.samples[0].ID)

	// Second tick sees 60 new blocks
	require.NoError(t, p.collect(context.Background()))
	require.Len(t, store.samples, 2)
	assert.Equal(t, int64(160), store.samples[1].Height)
	assert.True(t, store.samples[1].TxRate.IsPositive())
}

func TestCollectSkipsOnLedgerError(t *testing.T) {
	ledger := &stubLedger{err: errors.New("boom")}
	store := &memStore{}
	p := NewPoller(ledger, store, time.Second)

	require.Error(t, p.collect(context.Background()))
	assert.Empty(t, store.samples)
}

func TestCollectSurfacesStoreError(t *testing.T) {
	ledger := &stubLedger{heights: []int64{100}}
	store := &memStore{err: errors.New("insert failed")}
	p := NewPoller(ledger, store, time.Second)

	require.Error(t, p.collect(context.Background()))
}

func TestRunStopsOnCancel(t *testing.T) {
	ledger := &stubLedger{heights: []int64{100}}
	store := &memStore{}
	p := NewPoller(ledger, store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}
