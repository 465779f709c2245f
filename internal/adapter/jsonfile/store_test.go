package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrofund/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NewSnapshot(), snap)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cur := "CAC"
	snap.AddCampaign(domain.Campaign{ProjectTitle: "Cacao Farm", TokenCurrency: &cur, Status: domain.CampaignApproved, CreatedAt: at})
	snap.AddMicroloan(domain.Microloan{LoanAmount: 50, Status: domain.MicroloanCompleted, CompletedAt: &at})
	require.NoError(t, s.Save(ctx, snap))

	reopened, err := NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Version)
	require.Len(t, got.Campaigns, 1)
	assert.Equal(t, "CAC", got.Campaigns[0].Currency())
	require.Len(t, got.Microloans, 1)
	assert.True(t, at.Equal(*got.Microloans[0].CompletedAt))
	assert.Equal(t, int64(2), got.NextMicroloanID)
}

func TestStore_RejectsStaleSave(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)
	ctx := context.Background()

	first, err := s.Load(ctx)
	require.NoError(t, err)
	second, err := s.Load(ctx)
	require.NoError(t, err)

	first.AddCampaign(domain.Campaign{ProjectTitle: "A"})
	require.NoError(t, s.Save(ctx, first))

	second.AddCampaign(domain.Campaign{ProjectTitle: "B"})
	assert.ErrorIs(t, s.Save(ctx, second), domain.ErrStaleSnapshot)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Campaigns, 1)
	assert.Equal(t, "A", got.Campaigns[0].ProjectTitle)
}

func TestStore_NormalizesLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	legacy := `{"campaigns":[{"id":5,"project_title":"Cacao","status":"pending","token_currency":null}],"investments":[]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)
	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), snap.NextCampaignID)
	assert.Equal(t, int64(1), snap.NextMicroloanID)
	assert.NotNil(t, snap.Microloans)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.Load(context.Background())
	assert.Error(t, err)
}
