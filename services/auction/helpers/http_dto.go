package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	Value *uint64 `json:"value" binding:"required"`
}

type RenameProductRequest struct {
	Name *string `json:"name" binding:"required"`
}

type ListingResponse struct {
	Product              string `json:"product"`
	Owner                string `json:"owner"`
	CurrentBid           uint64 `json:"current_bid"`
	CurrentBidDisplay    string `json:"current_bid_display"`
	CurrentBidder        string `json:"current_bidder"`
	Sold                 bool   `json:"sold"`
	AcceptedPrice        uint64 `json:"accepted_price"`
	AcceptedPriceDisplay string `json:"accepted_price_display"`
	MinimumBid           uint64 `json:"minimum_bid"`
}

type BidderResponse struct {
	Identity       string `json:"identity"`
	Balance        uint64 `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
}

type BiddersResponse struct {
	Bidders    []BidderResponse `json:"bidders"`
	Identities []string         `json:"identities"`
	Balances   []uint64         `json:"balances"`
}

type WithdrawalResponse struct {
	Recipient     string `json:"recipient"`
	Amount        uint64 `json:"amount"`
	AmountDisplay string `json:"amount_display"`
}

type EventResponse struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	From       string `json:"from"`
	Product    string `json:"product"`
	OccurredAt string `json:"occurred_at"`
}
