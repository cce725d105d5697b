package helpers

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"auction-ledger/internal/auctionerrors"
	model "auction-ledger/internal/models"
	"auction-ledger/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CallerKey is the gin context key holding the caller identity
const CallerKey = "caller"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload", auctionerrors.Code(auctionerrors.ErrInvalidRequest))
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrPayoutFailed):
		return http.StatusBadGateway, "payout failed"
	case errors.Is(err, auctionerrors.ErrAuctionAlreadySold):
		return http.StatusConflict, "auction already sold"
	case errors.Is(err, auctionerrors.ErrAlreadyFinalized):
		return http.StatusConflict, "auction already finalized"
	case errors.Is(err, auctionerrors.ErrDuplicateBidder):
		return http.StatusConflict, "bidder already placed a bid"
	case errors.Is(err, auctionerrors.ErrNotYetFinalized):
		return http.StatusConflict, "auction not yet finalized"
	case errors.Is(err, auctionerrors.ErrWinnerCannotWithdraw):
		return http.StatusConflict, "winning bidder cannot withdraw"
	case errors.Is(err, auctionerrors.ErrNothingToWithdraw):
		return http.StatusConflict, "nothing to withdraw"
	case errors.Is(err, auctionerrors.ErrSelfBiddingNotAllowed):
		return http.StatusForbidden, "owner cannot bid on own listing"
	case errors.Is(err, auctionerrors.ErrNotAuthorized):
		return http.StatusForbidden, "caller is not the owner"
	case errors.Is(err, auctionerrors.ErrBidBelowMinimum):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAmountOverflow):
		return http.StatusBadRequest, "amount out of range"
	case errors.Is(err, auctionerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrNoSuchBidder):
		return http.StatusNotFound, "no such bidder"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response
func RespondError(c *gin.Context, err error) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message, auctionerrors.Code(err))
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// Caller returns the caller identity placed on the context by the server middleware
func Caller(c *gin.Context) model.Identity {
	return model.Identity(c.GetString(CallerKey))
}

// AmountFormatter renders amounts in whole token units
type AmountFormatter struct {
	Decimals int32
}

// Display renders a as a decimal string scaled by the configured decimals
func (f AmountFormatter) Display(a model.Amount) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(a)), -f.Decimals).String()
}

// ToListingResponse converts a listing snapshot to its wire form
func (f AmountFormatter) ToListingResponse(l model.Listing) ListingResponse {
	return ListingResponse{
		Product:              l.Product,
		Owner:                string(l.Owner),
		CurrentBid:           uint64(l.CurrentBid),
		CurrentBidDisplay:    f.Display(l.CurrentBid),
		CurrentBidder:        string(l.CurrentBidder),
		Sold:                 l.Sold,
		AcceptedPrice:        uint64(l.AcceptedPrice),
		AcceptedPriceDisplay: f.Display(l.AcceptedPrice),
		MinimumBid:           uint64(model.MinimumBid),
	}
}

// ToBiddersResponse zips the parallel roster and balance sequences
func (f AmountFormatter) ToBiddersResponse(bidders []model.Identity, balances []model.Amount) BiddersResponse {
	resp := BiddersResponse{
		Bidders:    make([]BidderResponse, 0, len(bidders)),
		Identities: make([]string, 0, len(bidders)),
		Balances:   make([]uint64, 0, len(balances)),
	}
	for i, bidder := range bidders {
		resp.Bidders = append(resp.Bidders, BidderResponse{
			Identity:       string(bidder),
			Balance:        uint64(balances[i]),
			BalanceDisplay: f.Display(balances[i]),
		})
		resp.Identities = append(resp.Identities, string(bidder))
		resp.Balances = append(resp.Balances, uint64(balances[i]))
	}
	return resp
}

// ToEventResponse converts a rename notification to its wire form
func ToEventResponse(e model.ProductRenamed) EventResponse {
	return EventResponse{
		EventID:    e.EventID,
		Type:       "ProductRenamed",
		From:       string(e.From),
		Product:    e.Product,
		OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339),
	}
}
