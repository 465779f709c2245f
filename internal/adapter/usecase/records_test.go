package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrofund/internal/adapter/memory"
	"agrofund/internal/core/domain"
)

func TestRecords_UpdateBumpsVersion(t *testing.T) {
	r := NewRecords(memory.NewStore())
	ctx := context.Background()

	snap, err := r.Update(ctx, func(s *domain.Snapshot) error {
		s.AddCampaign(domain.Campaign{ProjectTitle: "Cacao"})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Version)

	view, err := r.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), view.Version)
	assert.Len(t, view.Campaigns, 1)
}

func TestRecords_FailedUpdateSavesNothing(t *testing.T) {
	r := NewRecords(memory.NewStore())
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := r.Update(ctx, func(s *domain.Snapshot) error {
		s.AddCampaign(domain.Campaign{ProjectTitle: "Cacao"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	view, err := r.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Campaigns)
	assert.Equal(t, int64(1), view.NextCampaignID)
}

func TestRecords_ConcurrentUpdatesAllLand(t *testing.T) {
	r := NewRecords(memory.NewStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Update(ctx, func(s *domain.Snapshot) error {
				s.AddInvestment(domain.Investment{Amount: 1})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	view, err := r.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Investments, 20)
	assert.Equal(t, int64(21), view.NextInvestmentID)
}

func TestRecords_LockSerialisesKey(t *testing.T) {
	r := NewRecords(memory.NewStore())

	unlock := r.Lock("microloan:1")
	acquired := make(chan struct{})
	released := make(chan struct{})
	go func() {
		release := r.Lock("microloan:1")
		close(acquired)
		release()
		close(released)
	}()

	other := r.Lock("microloan:2")
	other()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held key")
	default:
	}
	unlock()
	<-acquired
	<-released

	r.keysMu.Lock()
	defer r.keysMu.Unlock()
	assert.Empty(t, r.keys)
}
