package integrationtests

import (
	auction "auction-ledger/internal/auctionService"
	"auction-ledger/internal/metrics"
	model "auction-ledger/internal/models"
	"auction-ledger/internal/notify"
	"auction-ledger/internal/repository"
	"auction-ledger/internal/server"
	"auction-ledger/internal/treasury"
	handler "auction-ledger/services/auction/handler"
	"auction-ledger/services/auction/helpers"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

const seller = "seller"

// TestApp bundles the router with the collaborators tests inspect directly
type TestApp struct {
	Router  *gin.Engine
	Auction *auction.Auction
	Ledger  *repository.MemoryLedger
	Vault   *treasury.Vault
	Feed    *notify.Feed
	Metrics *metrics.Metrics
}

// SetupTestApp initializes the router with in-memory ledger and vault for integration testing.
func SetupTestApp(product string, blocked ...model.Identity) *TestApp {
	gin.SetMode(gin.TestMode)

	ledger := repository.NewMemoryLedger()
	vault := treasury.NewVault(blocked...)
	feed := notify.NewFeed(32)
	svc := auction.NewAuction(seller, product, ledger, vault, notify.Fanout{notify.LogNotifier{}, feed})
	m := metrics.New(svc)

	h := handler.NewAuctionHandler(svc, feed, m, helpers.AmountFormatter{Decimals: 8})
	router := server.SetupRouter(h, server.Options{Metrics: m})

	return &TestApp{Router: router, Auction: svc, Ledger: ledger, Vault: vault, Feed: feed, Metrics: m}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, caller string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(server.CallerHeader, caller)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, caller string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, caller, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data returns the data object of a successful envelope
func Data(t *testing.T, resp map[string]any) map[string]any {
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

// Bid is a shortcut for POST /auction/bids
func Bid(t *testing.T, app *TestApp, caller string, value uint64) (map[string]any, *httptest.ResponseRecorder) {
	return ExecuteRequestAndParse(t, app.Router, "POST", "/auction/bids", caller, map[string]any{"value": value})
}
