package repository

import (
	"auction-ledger/internal/auctionerrors"
	model "auction-ledger/internal/models"
	"fmt"
	"sync"
)

// EscrowLedger defines the escrow and bidder roster storage for an auction
type EscrowLedger interface {
	HasEntry(bidder model.Identity) bool
	Balance(bidder model.Identity) (model.Amount, bool)
	RecordDeposit(bidder model.Identity, amount model.Amount) error
	ZeroBalance(bidder model.Identity) error
	RestoreBalance(bidder model.Identity, amount model.Amount) error
	Roster() []model.Identity
}

// MemoryLedger is a concurrency-safe in-memory implementation of EscrowLedger
type MemoryLedger struct {
	mu       sync.RWMutex
	balances map[model.Identity]model.Amount // key: bidder -> value: escrowed amount
	roster   []model.Identity                // bidders in first-bid order
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[model.Identity]model.Amount),
	}
}

// HasEntry reports whether the bidder has an escrow record, zeroed or not
func (l *MemoryLedger) HasEntry(bidder model.Identity) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.balances[bidder]
	return ok
}

// Balance returns the escrowed amount for a bidder
func (l *MemoryLedger) Balance(bidder model.Identity) (model.Amount, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	amount, ok := l.balances[bidder]
	return amount, ok
}

// RecordDeposit creates the escrow entry for a first-time bidder and appends them to the roster
func (l *MemoryLedger) RecordDeposit(bidder model.Identity, amount model.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[bidder]; ok {
		return fmt.Errorf("record deposit for %s: %w", bidder, auctionerrors.ErrDuplicateBidder)
	}

	l.balances[bidder] = amount
	l.roster = append(l.roster, bidder)
	return nil
}

// ZeroBalance sets a bidder's escrow to zero, keeping the entry
func (l *MemoryLedger) ZeroBalance(bidder model.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[bidder]; !ok {
		return fmt.Errorf("zero balance for %s: %w", bidder, auctionerrors.ErrNoSuchBidder)
	}
	l.balances[bidder] = 0
	return nil
}

// RestoreBalance puts amount back on an existing entry after a payout could not be sent
func (l *MemoryLedger) RestoreBalance(bidder model.Identity, amount model.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[bidder]; !ok {
		return fmt.Errorf("restore balance for %s: %w", bidder, auctionerrors.ErrNoSuchBidder)
	}
	l.balances[bidder] = amount
	return nil
}

// Roster returns a copy of the bidder roster in insertion order
func (l *MemoryLedger) Roster() []model.Identity {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]model.Identity(nil), l.roster...)
}
