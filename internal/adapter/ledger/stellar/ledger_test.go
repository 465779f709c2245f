package stellar

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrofund/internal/config/configs"
	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
)

func absBefore(ts int64) xdr.ClaimPredicate {
	v := xdr.Int64(ts)
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime, AbsBefore: &v}
}

func not(p xdr.ClaimPredicate) xdr.ClaimPredicate {
	inner := &p
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateNot, NotPredicate: &inner}
}

func and(a, b xdr.ClaimPredicate) xdr.ClaimPredicate {
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateAnd, AndPredicates: &[]xdr.ClaimPredicate{a, b}}
}

func TestClaimWindow(t *testing.T) {
	finish := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	cancel := finish.Add(domain.EscrowGracePeriod)

	f, c := claimWindow(and(not(absBefore(finish.Unix())), absBefore(cancel.Unix())))
	assert.Equal(t, finish, f)
	assert.Equal(t, cancel, c)

	f, c = claimWindow(not(absBefore(cancel.Unix())))
	assert.Equal(t, cancel, f)
	assert.True(t, c.IsZero())

	f, c = claimWindow(xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateUnconditional})
	assert.True(t, f.IsZero())
	assert.True(t, c.IsZero())
}

func TestEscrowFromBalance(t *testing.T) {
	finish := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	cancel := finish.Add(domain.EscrowGracePeriod)

	esc := escrowFromBalance(hProtocol.ClaimableBalance{
		BalanceID: "00000000abc",
		Asset:     "native",
		Amount:    "50.0000000",
		Sponsor:   "GOWNER",
		Claimants: []hProtocol.Claimant{
			{Destination: "GFARMER", Predicate: and(not(absBefore(finish.Unix())), absBefore(cancel.Unix()))},
			{Destination: "GOWNER", Predicate: not(absBefore(cancel.Unix()))},
		},
	})
	assert.Equal(t, port.EscrowObject{
		Sequence:    "00000000abc",
		Owner:       "GOWNER",
		Destination: "GFARMER",
		Subunits:    50_000_000,
		FinishAfter: finish,
		CancelAfter: cancel,
	}, esc)
}

func TestHorizonError_Retryable(t *testing.T) {
	tests := map[int]bool{
		http.StatusTooManyRequests:     true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusInternalServerError: false,
	}
	for status, want := range tests {
		err := &HorizonError{Op: "payment", Status: status, Err: errors.New("x")}
		assert.Equal(t, want, err.Retryable(), status)
	}
}

func TestWrapHorizon_PlainError(t *testing.T) {
	assert.NoError(t, wrapHorizon("payment", nil))

	cause := errors.New("dial tcp: connection refused")
	err := wrapHorizon("payment", cause)
	assert.ErrorIs(t, err, cause)
	var herr *HorizonError
	assert.False(t, errors.As(err, &herr))
}

func newOfflineLedger(t *testing.T, cfg configs.Ledger) *Ledger {
	t.Helper()
	l, err := NewWithClient(nil, cfg, nil)
	require.NoError(t, err)
	return l
}

func TestLedger_RejectsWithoutNetwork(t *testing.T) {
	l := newOfflineLedger(t, configs.Ledger{NetworkPassphrase: "Test SDF Network ; September 2015"})
	ctx := context.Background()

	_, err := l.CreateAccount(ctx)
	assert.ErrorIs(t, err, ErrFundingDisabled)

	_, err = l.CreateEscrow(ctx, port.EscrowRequest{SenderSeed: "S", Condition: "AB"})
	assert.ErrorIs(t, err, ErrConditionUnsupported)

	_, err = l.FinishEscrow(ctx, "S", "G", "00", "CD")
	assert.ErrorIs(t, err, ErrConditionUnsupported)

	_, err = l.LoadAccount(ctx, "not-a-seed")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = l.TransferValue(ctx, "not-a-seed", 1, "G")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewWithClient_InvalidFunder(t *testing.T) {
	_, err := NewWithClient(nil, configs.Ledger{FunderSeed: "bogus"}, nil)
	assert.Error(t, err)
}

func TestUnitsToAmount(t *testing.T) {
	assert.Equal(t, "100.0000000", unitsToAmount(100))
	assert.Equal(t, "0.0000000", unitsToAmount(0))
}
