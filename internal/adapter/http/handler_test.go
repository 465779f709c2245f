package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
	"agrofund/internal/core/port/mocks"
)

const testSecret = "test-secret"

type fixture struct {
	campaigns   *mocks.MockCampaignUseCase
	investments *mocks.MockInvestmentUseCase
	microloans  *mocks.MockMicroloanUseCase
	balances    *mocks.MockBalanceUseCase
	auth        *AdminAuth
	server      *httptest.Server
}

func newFixture(t *testing.T, secret string) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		campaigns:   mocks.NewMockCampaignUseCase(t),
		investments: mocks.NewMockInvestmentUseCase(t),
		microloans:  mocks.NewMockMicroloanUseCase(t),
		balances:    mocks.NewMockBalanceUseCase(t),
		auth:        NewAdminAuth(secret, "agrofund", time.Hour, logger),
	}
	h := NewHandler(Services{
		Campaigns:   f.campaigns,
		Investments: f.investments,
		Microloans:  f.microloans,
		Balances:    f.balances,
	}, f.auth, logger)
	f.server = httptest.NewServer(h.Router())
	t.Cleanup(f.server.Close)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (f *fixture) adminToken(t *testing.T) string {
	t.Helper()
	token, err := f.auth.IssueToken("ops", time.Now())
	require.NoError(t, err)
	return token
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t, testSecret)
	f.campaigns.EXPECT().CreateCampaign(mock.Anything, port.CreateCampaignReq{
		FarmerName: "Ana", ProjectTitle: "Cacao Farm", Description: "beans", FundingGoal: 5000,
	}).Return(domain.Campaign{
		ID: 1, FarmerName: "Ana", ProjectTitle: "Cacao Farm", FundingGoal: 5000,
		FarmerWalletSeed: "SSEED", FarmerAddress: "GFARMER", Status: domain.CampaignPending,
	}, nil)

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns",
		`{"farmer_name":"Ana","project_title":"Cacao Farm","description":"beans","funding_goal":5000}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "SSEED", body["farmer_wallet_seed"])
	assert.Equal(t, "pending", body["status"])
	assert.Nil(t, body["token_currency"])
}

func TestCreateCampaign_InvalidJSON(t *testing.T) {
	f := newFixture(t, testSecret)

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns", `{`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCampaigns_NeverLeaksSeed(t *testing.T) {
	f := newFixture(t, testSecret)
	cur := "CAC"
	f.campaigns.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{
		{ID: 2, ProjectTitle: "Cacao Farm", FarmerWalletSeed: "SSECRET", TokenCurrency: &cur, Status: domain.CampaignApproved},
	}, nil)

	resp := f.do(t, http.MethodGet, "/api/v1/campaigns", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "SSECRET")
	assert.Contains(t, string(raw), `"token_currency":"CAC"`)
}

func TestGetCampaign_NotFound(t *testing.T) {
	f := newFixture(t, testSecret)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(9)).
		Return(domain.Campaign{}, fmt.Errorf("campaign 9: %w", domain.ErrNotFound))

	resp := f.do(t, http.MethodGet, "/api/v1/campaigns/9", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCampaign_InvalidID(t *testing.T) {
	f := newFixture(t, testSecret)

	resp := f.do(t, http.MethodGet, "/api/v1/campaigns/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApproveCampaign_RequiresAdmin(t *testing.T) {
	f := newFixture(t, testSecret)

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns/1/approve", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/v1/campaigns/1/approve", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	claims := AdminClaims{
		Role: "investor",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "agrofund",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	investor, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	resp = f.do(t, http.MethodPost, "/api/v1/campaigns/1/approve", "", investor)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestApproveCampaign_RejectsExpiredAndForeignTokens(t *testing.T) {
	f := newFixture(t, testSecret)

	expired, err := f.auth.IssueToken("ops", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	resp := f.do(t, http.MethodPost, "/api/v1/campaigns/1/approve", "", expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	other := NewAdminAuth("other-secret", "agrofund", time.Hour, slog.Default())
	foreign, err := other.IssueToken("ops", time.Now())
	require.NoError(t, err)
	resp = f.do(t, http.MethodPost, "/api/v1/campaigns/1/approve", "", foreign)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestApproveCampaign(t *testing.T) {
	f := newFixture(t, testSecret)
	cur := "CAC"
	f.campaigns.EXPECT().ApproveCampaign(mock.Anything, int64(1)).
		Return(domain.Campaign{ID: 1, Status: domain.CampaignApproved, TokenCurrency: &cur}, nil)

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns/1/approve", "", f.adminToken(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "approved", body["status"])
	assert.Equal(t, "CAC", body["token_currency"])
}

func TestApproveCampaign_AlreadyApproved(t *testing.T) {
	f := newFixture(t, testSecret)
	f.campaigns.EXPECT().ApproveCampaign(mock.Anything, int64(1)).
		Return(domain.Campaign{}, fmt.Errorf("campaign 1: %w", domain.ErrInvalidState))

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns/1/approve", "", f.adminToken(t))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAdminRoutes_DisabledWithoutSecret(t *testing.T) {
	f := newFixture(t, "")

	_, err := f.auth.IssueToken("ops", time.Now())
	require.ErrorIs(t, err, ErrAuthDisabled)

	resp := f.do(t, http.MethodPost, "/api/v1/admin/reset", "", "anything")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInvest_DegradedStillCreated(t *testing.T) {
	f := newFixture(t, testSecret)
	f.investments.EXPECT().Invest(mock.Anything, port.InvestReq{CampaignID: 3, InvestorSeed: "SINV", Amount: 100}).
		Return(&port.InvestmentReceipt{
			Investment:       domain.Investment{ID: 1, CampaignID: 3, Amount: 100, TrustLineEstablished: true},
			TokenCurrency:    "CAC",
			TokenTransferErr: domain.NewGatewayError("transfer token", errors.New("no trust line")),
		}, nil)

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns/3/investments", `{"investor_seed":"SINV","amount":100}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody[investResponse](t, resp)
	assert.True(t, body.Degraded)
	assert.Contains(t, body.TokenTransferError, "no trust line")
	assert.Empty(t, body.TrustLineError)
	assert.Equal(t, int64(100), body.Investment.Amount)
}

func TestInvest_TransferFailure(t *testing.T) {
	f := newFixture(t, testSecret)
	f.investments.EXPECT().Invest(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("campaign 3: %w", domain.ErrTransferFailed))

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns/3/investments", `{"investor_seed":"SINV","amount":100}`, "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestInvest_PendingCampaign(t *testing.T) {
	f := newFixture(t, testSecret)
	f.investments.EXPECT().Invest(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("campaign 3: %w", domain.ErrCampaignNotApproved))

	resp := f.do(t, http.MethodPost, "/api/v1/campaigns/3/investments", `{"investor_seed":"SINV","amount":100}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestListInvestments(t *testing.T) {
	f := newFixture(t, testSecret)
	f.investments.EXPECT().ListInvestments(mock.Anything, int64(3)).Return([]domain.Investment{{ID: 1}}, nil).Once()
	f.investments.EXPECT().ListInvestments(mock.Anything, int64(0)).Return([]domain.Investment{{ID: 1}, {ID: 2}}, nil).Once()

	resp := f.do(t, http.MethodGet, "/api/v1/campaigns/3/investments", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]domain.Investment](t, resp), 1)

	resp = f.do(t, http.MethodGet, "/api/v1/investments", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]domain.Investment](t, resp), 2)
}

func TestCreateMicroloan_ReturnsFulfillmentOnce(t *testing.T) {
	f := newFixture(t, testSecret)
	f.microloans.EXPECT().CreateMicroloan(mock.Anything, port.CreateMicroloanReq{
		FarmerAddress: "GFARMERADDRESS", InvestorSeed: "SINV", LoanAmount: 50, RepaymentDays: 30, Conditional: true,
	}).Return(&port.MicroloanReceipt{
		Microloan:   domain.Microloan{ID: 1, FarmerAddress: "GFARMERADDRESS", LoanAmount: 50, RepaymentDays: 30, EscrowSequence: "7", Condition: "AB", Status: domain.MicroloanActive},
		Window:      domain.NewEscrowWindow(30),
		Fulfillment: "CD",
	}, nil)

	resp := f.do(t, http.MethodPost, "/api/v1/microloans",
		`{"farmer_address":"GFARMERADDRESS","investor_seed":"SINV","loan_amount":50,"repayment_days":30,"conditional":true}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "CD", body["fulfillment"])
	assert.Equal(t, true, body["conditional"])
	assert.EqualValues(t, 30*24*3600, body["finish_after_seconds"])
	assert.EqualValues(t, 37*24*3600, body["cancel_after_seconds"])
}

func TestListMicroloans_AbbreviatesAddresses(t *testing.T) {
	f := newFixture(t, testSecret)
	f.microloans.EXPECT().ListMicroloans(mock.Anything).Return([]domain.Microloan{
		{ID: 1, FarmerAddress: "GABCDEFGHIJKLMNOP", InvestorAddress: "GSHORT", Status: domain.MicroloanActive},
	}, nil)

	resp := f.do(t, http.MethodGet, "/api/v1/microloans", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[[]microloanResponse](t, resp)
	require.Len(t, body, 1)
	assert.Equal(t, "GABCDEFGHI...", body[0].FarmerAddressShort)
	assert.Equal(t, "GSHORT", body[0].InvestorAddressShort)
}

func TestFinishMicroloan_Terminal(t *testing.T) {
	f := newFixture(t, testSecret)
	f.microloans.EXPECT().FinishMicroloan(mock.Anything, port.FinishMicroloanReq{MicroloanID: 4, FarmerSeed: "SFARM"}).
		Return(domain.Microloan{}, fmt.Errorf("microloan 4: %w", domain.ErrMicroloanTerminal))

	resp := f.do(t, http.MethodPost, "/api/v1/microloans/4/finish", `{"farmer_seed":"SFARM"}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCancelMicroloan(t *testing.T) {
	f := newFixture(t, testSecret)
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	f.microloans.EXPECT().CancelMicroloan(mock.Anything, port.CancelMicroloanReq{MicroloanID: 4, InvestorSeed: "SINV"}).
		Return(domain.Microloan{ID: 4, Status: domain.MicroloanCancelled, CancelledAt: &at}, nil)

	resp := f.do(t, http.MethodPost, "/api/v1/microloans/4/cancel", `{"investor_seed":"SINV"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[microloanResponse](t, resp)
	assert.Equal(t, domain.MicroloanCancelled, body.Status)
	require.NotNil(t, body.CancelledAt)
	assert.Nil(t, body.CompletedAt)
}

func TestWalletAndBalances(t *testing.T) {
	f := newFixture(t, testSecret)
	f.balances.EXPECT().NewWallet(mock.Anything).Return(port.Wallet{Address: "GNEW", Seed: "SNEW"}, nil)
	f.balances.EXPECT().CheckBalances(mock.Anything, "SNEW").Return(&port.WalletBalances{
		Address: "GNEW",
		Base:    port.Balance{Currency: "XLM", Amount: "1000.0000000"},
		Tokens:  []port.Balance{},
	}, nil)

	resp := f.do(t, http.MethodPost, "/api/v1/wallets", "", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "SNEW", decodeBody[walletResponse](t, resp).Seed)

	resp = f.do(t, http.MethodPost, "/api/v1/balances", `{"seed":"SNEW"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1000.0000000", decodeBody[port.WalletBalances](t, resp).Base.Amount)
}

func TestCheckBalances_GatewayFailure(t *testing.T) {
	f := newFixture(t, testSecret)
	f.balances.EXPECT().CheckBalances(mock.Anything, "SBAD").
		Return(nil, domain.NewGatewayError("load account", errors.New("horizon down")))

	resp := f.do(t, http.MethodPost, "/api/v1/balances", `{"seed":"SBAD"}`, "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestResetRecords(t *testing.T) {
	f := newFixture(t, testSecret)
	f.campaigns.EXPECT().ResetRecords(mock.Anything).Return(nil)

	resp := f.do(t, http.MethodPost, "/api/v1/admin/reset", "", f.adminToken(t))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t, testSecret)

	resp := f.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"not found behind gateway", domain.NewGatewayError("get transaction", fmt.Errorf("tx: %w", domain.ErrNotFound)), http.StatusNotFound},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"invalid state", domain.ErrMicroloanTerminal, http.StatusConflict},
		{"stale", fmt.Errorf("save records: %w", domain.ErrStaleSnapshot), http.StatusConflict},
		{"wallet creation", domain.ErrWalletCreation, http.StatusBadGateway},
		{"escrow finish", domain.ErrEscrowFinishFailed, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
