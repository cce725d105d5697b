package treasury

import (
	"auction-ledger/internal/auctionerrors"
	model "auction-ledger/internal/models"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrRecipientRejected   = errors.New("recipient cannot accept funds")
	ErrInsufficientCustody = errors.New("insufficient funds in custody")
)

// Custodian moves value into and out of the auction's custody
type Custodian interface {
	Receive(from model.Identity, amount model.Amount) error
	Transfer(to model.Identity, amount model.Amount) error
}

// Vault is an in-memory Custodian that tracks held value and payouts per recipient
type Vault struct {
	mu       sync.RWMutex
	held     model.Amount
	paid     map[model.Identity]model.Amount
	received map[model.Identity]model.Amount
	blocked  map[model.Identity]struct{}
}

// NewVault creates an empty vault; payouts to any blocked identity fail
func NewVault(blocked ...model.Identity) *Vault {
	v := &Vault{
		paid:     make(map[model.Identity]model.Amount),
		received: make(map[model.Identity]model.Amount),
		blocked:  make(map[model.Identity]struct{}),
	}
	for _, id := range blocked {
		v.blocked[id] = struct{}{}
	}
	return v
}

// Receive takes value attached by a caller into custody
func (v *Vault) Receive(from model.Identity, amount model.Amount) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	held, ok := v.held.Add(amount)
	if !ok {
		return fmt.Errorf("receive %d from %s: %w", amount, from, auctionerrors.ErrAmountOverflow)
	}
	received, ok := v.received[from].Add(amount)
	if !ok {
		return fmt.Errorf("receive %d from %s: %w", amount, from, auctionerrors.ErrAmountOverflow)
	}

	v.held = held
	v.received[from] = received
	return nil
}

// Transfer pays amount out of custody to the recipient
func (v *Vault) Transfer(to model.Identity, amount model.Amount) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.blocked[to]; ok {
		return fmt.Errorf("transfer %d to %s: %w", amount, to, ErrRecipientRejected)
	}
	held, ok := v.held.Sub(amount)
	if !ok {
		return fmt.Errorf("transfer %d to %s (held %d): %w", amount, to, v.held, ErrInsufficientCustody)
	}
	paid, ok := v.paid[to].Add(amount)
	if !ok {
		return fmt.Errorf("transfer %d to %s: %w", amount, to, auctionerrors.ErrAmountOverflow)
	}

	v.held = held
	v.paid[to] = paid
	return nil
}

// Block makes subsequent payouts to id fail
func (v *Vault) Block(id model.Identity) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.blocked[id] = struct{}{}
}

// Unblock allows payouts to id again
func (v *Vault) Unblock(id model.Identity) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.blocked, id)
}

// Held returns the value currently in custody
func (v *Vault) Held() model.Amount {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.held
}

// PaidTo returns the total paid out to id
func (v *Vault) PaidTo(id model.Identity) model.Amount {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.paid[id]
}

// ReceivedFrom returns the total taken into custody from id
func (v *Vault) ReceivedFrom(id model.Identity) model.Amount {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.received[id]
}
