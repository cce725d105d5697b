package models

import (
	"math/bits"
	"time"
)

// MinimumBid is the reserve threshold; no bid at or below it is accepted
const MinimumBid Amount = 100000000

// DefaultProduct is used when a listing is created without a product name
const DefaultProduct = "Golden watch"

// Identity is an opaque participant reference (seller or bidder)
type Identity string

// Amount is a non-negative quantity of value in the smallest token unit
type Amount uint64

// Add returns a+b and false if the sum would overflow
func (a Amount) Add(b Amount) (Amount, bool) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return 0, false
	}
	return Amount(sum), true
}

// Sub returns a-b and false if the difference would underflow
func (a Amount) Sub(b Amount) (Amount, bool) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, false
	}
	return Amount(diff), true
}

// Listing is a point-in-time snapshot of the auction record
type Listing struct {
	Product       string   `json:"product"`
	Owner         Identity `json:"owner"`
	AcceptedPrice Amount   `json:"accepted_price"`
	CurrentBid    Amount   `json:"current_bid"`
	CurrentBidder Identity `json:"current_bidder"`
	Sold          bool     `json:"sold"`
}

// ProductRenamed is emitted after the owner changes the product descriptor
type ProductRenamed struct {
	EventID    string    `json:"event_id"`
	From       Identity  `json:"from"`
	Product    string    `json:"product"`
	OccurredAt time.Time `json:"occurred_at"`
}
