package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrofund/internal/core/domain"
)

func TestStore_SaveBumpsVersion(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	snap.AddCampaign(domain.Campaign{ProjectTitle: "Cacao"})
	require.NoError(t, s.Save(ctx, snap))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Version+1, got.Version)
	assert.Len(t, got.Campaigns, 1)

	assert.ErrorIs(t, s.Save(ctx, snap), domain.ErrStaleSnapshot)
}

func TestStore_LoadReturnsCopy(t *testing.T) {
	cur := "CAC"
	s := NewStoreFrom(domain.Snapshot{Campaigns: []domain.Campaign{{ID: 3, TokenCurrency: &cur}}})
	ctx := context.Background()

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.NextCampaignID)
	snap.Campaigns[0].ProjectTitle = "changed"
	*snap.Campaigns[0].TokenCurrency = "ZZZ"

	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Campaigns[0].ProjectTitle)
	assert.Equal(t, "CAC", *again.Campaigns[0].TokenCurrency)
}
