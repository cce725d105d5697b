package integrationtests

import (
	"net/http"
	"testing"

	model "auction-ledger/internal/models"
	"auction-ledger/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

// Full lifecycle: bids, finalize, refunds
func TestAuctionLifecycle(t *testing.T) {
	app := SetupTestApp("Watch")

	resp, w := Bid(t, app, "A", 200000000)
	require.Equal(t, http.StatusCreated, w.Code)
	data := Data(t, resp)
	require.Equal(t, 300000000.0, data["current_bid"])
	require.Equal(t, "A", data["current_bidder"])

	resp, w = Bid(t, app, "B", 150000000)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 450000000.0, Data(t, resp)["current_bid"])

	// winner is now B; A is the loser
	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/withdrawals", "A", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "NotYetFinalized", resp["code"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/finalize", "A", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "NotAuthorized", resp["code"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/finalize", seller, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = Data(t, resp)
	require.Equal(t, true, data["sold"])
	require.Equal(t, "B", data["owner"])
	require.Equal(t, 450000000.0, data["accepted_price"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/withdrawals", "B", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "WinnerCannotWithdraw", resp["code"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/withdrawals", "A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 200000000.0, Data(t, resp)["amount"])
	require.Equal(t, "2", Data(t, resp)["amount_display"])
	require.Equal(t, model.Amount(200000000), app.Vault.PaidTo("A"))

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/withdrawals", "A", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "NothingToWithdraw", resp["code"])

	resp, w = Bid(t, app, "C", 500000000)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "AuctionAlreadySold", resp["code"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/finalize", "B", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "AlreadyFinalized", resp["code"])

	// roster keeps the zeroed entry
	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/auction/bidders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = Data(t, resp)
	require.Equal(t, []any{"A", "B"}, data["identities"])
	require.Equal(t, []any{0.0, 150000000.0}, data["balances"])

	held, err := app.Auction.EscrowHeld()
	require.NoError(t, err)
	require.Equal(t, app.Vault.Held(), held)
}

// Bid validation through the HTTP surface
func TestPlaceBidRejections(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		body       any
		wantStatus int
		wantCode   string
	}{
		{name: "self_bidding", caller: seller, body: helpers.PlaceBidRequest{Value: ptr(uint64(200000000))}, wantStatus: http.StatusForbidden, wantCode: "SelfBiddingNotAllowed"},
		{name: "at_minimum", caller: "A", body: helpers.PlaceBidRequest{Value: ptr(uint64(model.MinimumBid))}, wantStatus: http.StatusBadRequest, wantCode: "BidBelowMinimum"},
		{name: "missing_caller", caller: "", body: helpers.PlaceBidRequest{Value: ptr(uint64(200000000))}, wantStatus: http.StatusBadRequest, wantCode: "InvalidRequest"},
		{name: "invalid_json", caller: "A", body: []byte("{value: 'x'}"), wantStatus: http.StatusBadRequest, wantCode: "InvalidRequest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := SetupTestApp("Watch")
			before := app.Auction.Snapshot()

			resp, w := ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/bids", tt.caller, tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, tt.wantCode, resp["code"])
			require.Equal(t, before, app.Auction.Snapshot())
			require.Empty(t, app.Ledger.Roster())
			require.Zero(t, app.Vault.Held())
		})
	}
}

func TestDuplicateBidPreservesFirstBid(t *testing.T) {
	app := SetupTestApp("Watch")

	_, w := Bid(t, app, "A", 200000000)
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := Bid(t, app, "A", 900000000)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "DuplicateBidder", resp["code"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/auction/bid", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 300000000.0, Data(t, resp)["current_bid"])
	require.Equal(t, model.Amount(200000000), app.Vault.ReceivedFrom("A"))
}

// Payout failure leaves escrow intact and the withdrawal can be retried
func TestWithdrawPayoutFailureRetry(t *testing.T) {
	app := SetupTestApp("Watch", "B")

	_, w := Bid(t, app, "B", 150000001)
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = Bid(t, app, "A", 200000000)
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/finalize", seller, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/withdrawals", "B", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, "PayoutFailed", resp["code"])
	balance, _ := app.Ledger.Balance("B")
	require.Equal(t, model.Amount(150000001), balance)

	app.Vault.Unblock("B")
	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/auction/withdrawals", "B", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 150000001.0, Data(t, resp)["amount"])

	w = ExecuteRequest(t, app.Router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `auction_payouts_total{result="failed"} 1`)
	require.Contains(t, w.Body.String(), `auction_payouts_total{result="paid"} 1`)
}

// Rename is owner-only, leaves the product untouched on failure and is visible on /events
func TestRenameProduct(t *testing.T) {
	app := SetupTestApp("Watch")

	resp, w := ExecuteRequestAndParse(t, app.Router, http.MethodPut, "/auction/product", "mallory", map[string]any{"name": "Fake"})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "NotAuthorized", resp["code"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/auction/product", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Watch", Data(t, resp)["product"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodPut, "/auction/product", seller, map[string]any{"name": "Golden watch"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Golden watch", Data(t, resp)["product"])

	resp, w = ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	events := resp["data"].([]any)
	require.Len(t, events, 1)
	event := events[0].(map[string]any)
	require.Equal(t, seller, event["from"])
	require.Equal(t, "Golden watch", event["product"])
}

func TestQueries(t *testing.T) {
	app := SetupTestApp("Watch")

	tests := []struct {
		url   string
		key   string
		value any
	}{
		{url: "/auction/product", key: "product", value: "Watch"},
		{url: "/auction/owner", key: "owner", value: seller},
		{url: "/auction/bidder", key: "current_bidder", value: seller},
		{url: "/auction/bid", key: "current_bid", value: 100000000.0},
		{url: "/auction/sold", key: "sold", value: false},
		{url: "/auction", key: "accepted_price", value: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, app.Router, http.MethodGet, tt.url, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			require.NotEmpty(t, w.Header().Get("X-Request-ID"))
			require.Equal(t, tt.value, Data(t, resp)[tt.key])
		})
	}

	w := ExecuteRequest(t, app.Router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func ptr[T any](v T) *T { return &v }
