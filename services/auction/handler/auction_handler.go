package handler

import (
	"errors"
	"net/http"

	"auction-ledger/internal/auctionerrors"
	"auction-ledger/internal/metrics"
	model "auction-ledger/internal/models"
	"auction-ledger/services/auction/helpers"
	"auction-ledger/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ProductName() string
	CurrentBidder() model.Identity
	CurrentOwner() model.Identity
	CurrentBid() model.Amount
	SoldStatus() bool
	Snapshot() model.Listing
	AllBidders() ([]model.Identity, []model.Amount, error)
	PlaceBid(caller model.Identity, value model.Amount) (model.Listing, error)
	Finalize(caller model.Identity) (model.Listing, error)
	Withdraw(caller model.Identity) (model.Amount, error)
	RenameProduct(caller model.Identity, newName string) (model.ProductRenamed, error)
}

// EventSource lists recent notifications
type EventSource interface {
	Events() []model.ProductRenamed
}

type AuctionHandler struct {
	service AuctionServiceInterface
	events  EventSource
	metrics *metrics.Metrics
	format  helpers.AmountFormatter
}

func NewAuctionHandler(service AuctionServiceInterface, events EventSource, m *metrics.Metrics, format helpers.AmountFormatter) *AuctionHandler {
	return &AuctionHandler{service: service, events: events, metrics: m, format: format}
}

// GetListingHandler handles GET /auction
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	resp := h.format.ToListingResponse(h.service.Snapshot())
	utils.JSONResponse(c, http.StatusOK, resp, "listing retrieved successfully")
}

// GetProductHandler handles GET /auction/product
func (h *AuctionHandler) GetProductHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"product": h.service.ProductName()}, "product retrieved successfully")
}

// GetBidderHandler handles GET /auction/bidder
func (h *AuctionHandler) GetBidderHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"current_bidder": h.service.CurrentBidder()}, "current bidder retrieved successfully")
}

// GetOwnerHandler handles GET /auction/owner
func (h *AuctionHandler) GetOwnerHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"owner": h.service.CurrentOwner()}, "owner retrieved successfully")
}

// GetBidHandler handles GET /auction/bid
func (h *AuctionHandler) GetBidHandler(c *gin.Context) {
	bid := h.service.CurrentBid()
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"current_bid":         uint64(bid),
		"current_bid_display": h.format.Display(bid),
	}, "current bid retrieved successfully")
}

// GetSoldHandler handles GET /auction/sold
func (h *AuctionHandler) GetSoldHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"sold": h.service.SoldStatus()}, "sold status retrieved successfully")
}

// GetBiddersHandler handles GET /auction/bidders
func (h *AuctionHandler) GetBiddersHandler(c *gin.Context) {
	bidders, balances, err := h.service.AllBidders()
	if err != nil {
		helpers.RespondError(c, err)
		utils.Error("GetBiddersHandler: ledger inconsistency", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.format.ToBiddersResponse(bidders, balances), "bidders retrieved successfully")
	helpers.LogSuccess("GetBiddersHandler", "bidders retrieved successfully", map[string]any{
		"count": len(bidders),
	})
}

// PlaceBidHandler handles POST /auction/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	caller := helpers.Caller(c)
	value := model.Amount(*req.Value)
	listing, err := h.service.PlaceBid(caller, value)
	h.metrics.ObserveCommand("place_bid", err)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"handler": "PlaceBidHandler",
			"caller":  caller,
			"value":   value,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, h.format.ToListingResponse(listing), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"caller":      caller,
		"value":       value,
		"current_bid": listing.CurrentBid,
	})
}

// FinalizeHandler handles POST /auction/finalize
func (h *AuctionHandler) FinalizeHandler(c *gin.Context) {
	caller := helpers.Caller(c)
	listing, err := h.service.Finalize(caller)
	h.metrics.ObserveCommand("finalize", err)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("FinalizeHandler: finalize rejected", map[string]any{"caller": caller, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.format.ToListingResponse(listing), "auction finalized successfully")
	helpers.LogSuccess("FinalizeHandler", "auction finalized successfully", map[string]any{
		"caller":         caller,
		"winner":         listing.Owner,
		"accepted_price": listing.AcceptedPrice,
	})
}

// WithdrawHandler handles POST /auction/withdrawals
func (h *AuctionHandler) WithdrawHandler(c *gin.Context) {
	caller := helpers.Caller(c)
	amount, err := h.service.Withdraw(caller)
	h.metrics.ObserveCommand("withdraw", err)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrPayoutFailed) {
			h.metrics.ObservePayout(err)
		}
		helpers.RespondError(c, err)
		utils.Warn("WithdrawHandler: withdrawal rejected", map[string]any{"caller": caller, "error": err.Error()})
		return
	}
	h.metrics.ObservePayout(nil)

	resp := helpers.WithdrawalResponse{
		Recipient:     string(caller),
		Amount:        uint64(amount),
		AmountDisplay: h.format.Display(amount),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "escrow withdrawn successfully")
	helpers.LogSuccess("WithdrawHandler", "escrow withdrawn successfully", map[string]any{
		"caller": caller,
		"amount": amount,
	})
}

// RenameProductHandler handles PUT /auction/product
func (h *AuctionHandler) RenameProductHandler(c *gin.Context) {
	var req helpers.RenameProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RenameProductHandler", err)
		return
	}

	caller := helpers.Caller(c)
	event, err := h.service.RenameProduct(caller, *req.Name)
	h.metrics.ObserveCommand("rename_product", err)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("RenameProductHandler: rename rejected", map[string]any{"caller": caller, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToEventResponse(event), "product renamed successfully")
	helpers.LogSuccess("RenameProductHandler", "product renamed successfully", map[string]any{
		"caller":   caller,
		"product":  event.Product,
		"event_id": event.EventID,
	})
}

// GetEventsHandler handles GET /events
func (h *AuctionHandler) GetEventsHandler(c *gin.Context) {
	events := h.events.Events()
	resp := make([]helpers.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, helpers.ToEventResponse(e))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "events retrieved successfully")
}
