package instrumented

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrofund/internal/core/port"
	"agrofund/internal/core/port/mocks"
	"agrofund/internal/metrics"
)

func TestLedger_CountsOutcomes(t *testing.T) {
	next := mocks.NewMockLedger(t)
	l := Wrap(next)
	ctx := context.Background()

	okBefore := testutil.ToFloat64(metrics.LedgerCalls.WithLabelValues("transfer_value", "ok"))
	errBefore := testutil.ToFloat64(metrics.LedgerCalls.WithLabelValues("transfer_value", "error"))

	next.EXPECT().TransferValue(mock.Anything, "S", int64(1), "G").Return(port.Receipt{Hash: "H"}, nil).Once()
	next.EXPECT().TransferValue(mock.Anything, "S", int64(2), "G").Return(port.Receipt{}, errors.New("boom")).Once()

	rcpt, err := l.TransferValue(ctx, "S", 1, "G")
	require.NoError(t, err)
	assert.Equal(t, "H", rcpt.Hash)
	_, err = l.TransferValue(ctx, "S", 2, "G")
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.LedgerCalls.WithLabelValues("transfer_value", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.LedgerCalls.WithLabelValues("transfer_value", "error")))
}

func TestLedger_PassesResultsThrough(t *testing.T) {
	next := mocks.NewMockLedger(t)
	l := Wrap(next)

	next.EXPECT().ListEscrows(mock.Anything, "G").Return([]port.EscrowObject{{Sequence: "1"}}, nil)
	next.EXPECT().CreateEscrow(mock.Anything, port.EscrowRequest{SenderSeed: "S"}).Return(port.Receipt{Sequence: "9"}, nil)

	list, err := l.ListEscrows(context.Background(), "G")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	rcpt, err := l.CreateEscrow(context.Background(), port.EscrowRequest{SenderSeed: "S"})
	require.NoError(t, err)
	assert.Equal(t, "9", rcpt.Sequence)
}
