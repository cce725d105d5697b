package auctionerrors

import "errors"

// Bidding errors
var (
	ErrAuctionAlreadySold    = errors.New("auction already sold")
	ErrSelfBiddingNotAllowed = errors.New("owner cannot bid on own listing")
	ErrDuplicateBidder       = errors.New("bidder has already placed a bid")
	ErrBidBelowMinimum       = errors.New("bid does not exceed minimum bid")
)

// Finalization and ownership errors
var (
	ErrNotAuthorized    = errors.New("caller is not the owner")
	ErrAlreadyFinalized = errors.New("auction already finalized")
)

// Withdrawal errors
var (
	ErrNotYetFinalized      = errors.New("auction not yet finalized")
	ErrWinnerCannotWithdraw = errors.New("winning bidder cannot withdraw")
	ErrNoSuchBidder         = errors.New("caller has no escrow entry")
	ErrNothingToWithdraw    = errors.New("nothing to withdraw")
	ErrPayoutFailed         = errors.New("payout transfer failed")
)

// Ledger and input errors
var (
	ErrInconsistentLedger = errors.New("bidder roster entry has no escrow record")
	ErrAmountOverflow     = errors.New("amount overflow")
	ErrInvalidRequest     = errors.New("invalid request")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrAuctionAlreadySold, "AuctionAlreadySold"},
	{ErrSelfBiddingNotAllowed, "SelfBiddingNotAllowed"},
	{ErrDuplicateBidder, "DuplicateBidder"},
	{ErrBidBelowMinimum, "BidBelowMinimum"},
	{ErrNotAuthorized, "NotAuthorized"},
	{ErrAlreadyFinalized, "AlreadyFinalized"},
	{ErrNotYetFinalized, "NotYetFinalized"},
	{ErrWinnerCannotWithdraw, "WinnerCannotWithdraw"},
	{ErrNoSuchBidder, "NoSuchBidder"},
	{ErrNothingToWithdraw, "NothingToWithdraw"},
	{ErrPayoutFailed, "PayoutFailed"},
	{ErrInconsistentLedger, "InconsistentLedger"},
	{ErrAmountOverflow, "AmountOverflow"},
	{ErrInvalidRequest, "InvalidRequest"},
}

// Code returns the failure kind name for err, or "Internal" if err is not one of ours
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "Internal"
}
