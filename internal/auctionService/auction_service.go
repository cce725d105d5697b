package auction

import (
	"auction-ledger/internal/auctionerrors"
	model "auction-ledger/internal/models"
	"auction-ledger/internal/notify"
	"auction-ledger/internal/repository"
	"auction-ledger/internal/treasury"
	"auction-ledger/utils"
	"fmt"
	"sync"
	"time"
)

// Auction is the single-listing English auction ledger.
//
// Every query and command holds mu for its whole duration, so callers always
// observe complete transitions. A failed command leaves the listing, the
// escrow ledger and custody exactly as they were.
type Auction struct {
	mu sync.Mutex

	product       string
	owner         model.Identity
	acceptedPrice model.Amount
	currentBid    model.Amount
	currentBidder model.Identity
	sold          bool

	ledger   repository.EscrowLedger
	custody  treasury.Custodian
	notifier notify.Notifier
	now      func() time.Time
}

// NewAuction creates a listing owned by creator
func NewAuction(creator model.Identity, product string, ledger repository.EscrowLedger, custody treasury.Custodian, notifier notify.Notifier) *Auction {
	return &Auction{
		product:       product,
		owner:         creator,
		currentBid:    model.MinimumBid,
		currentBidder: creator,
		ledger:        ledger,
		custody:       custody,
		notifier:      notifier,
		now:           time.Now,
	}
}

// NewDefaultAuction creates a listing for the default product
func NewDefaultAuction(creator model.Identity, ledger repository.EscrowLedger, custody treasury.Custodian, notifier notify.Notifier) *Auction {
	return NewAuction(creator, model.DefaultProduct, ledger, custody, notifier)
}

func (a *Auction) ProductName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.product
}

func (a *Auction) CurrentBidder() model.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentBidder
}

func (a *Auction) CurrentOwner() model.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.owner
}

func (a *Auction) CurrentBid() model.Amount {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentBid
}

func (a *Auction) SoldStatus() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sold
}

// AcceptedPrice is zero until the auction is finalized
func (a *Auction) AcceptedPrice() model.Amount {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.acceptedPrice
}

// Snapshot returns the whole listing record at once
func (a *Auction) Snapshot() model.Listing {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *Auction) snapshotLocked() model.Listing {
	return model.Listing{
		Product:       a.product,
		Owner:         a.owner,
		AcceptedPrice: a.acceptedPrice,
		CurrentBid:    a.currentBid,
		CurrentBidder: a.currentBidder,
		Sold:          a.sold,
	}
}

// AllBidders returns the roster and the escrow balance of each entry, in roster order
func (a *Auction) AllBidders() ([]model.Identity, []model.Amount, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	bidders := a.ledger.Roster()
	balances := make([]model.Amount, 0, len(bidders))
	for _, bidder := range bidders {
		balance, ok := a.ledger.Balance(bidder)
		if !ok {
			return nil, nil, fmt.Errorf("service: all bidders at %s: %w", bidder, auctionerrors.ErrInconsistentLedger)
		}
		balances = append(balances, balance)
	}
	return bidders, balances, nil
}

// EscrowHeld returns the sum of all outstanding escrow balances
func (a *Auction) EscrowHeld() (model.Amount, error) {
	_, balances, err := a.AllBidders()
	if err != nil {
		return 0, err
	}

	var total model.Amount
	for _, balance := range balances {
		sum, ok := total.Add(balance)
		if !ok {
			return 0, fmt.Errorf("service: sum escrow: %w", auctionerrors.ErrAmountOverflow)
		}
		total = sum
	}
	return total, nil
}

// PlaceBid validates and applies a bid carrying value from caller.
// The value is added onto the running current bid.
func (a *Auction) PlaceBid(caller model.Identity, value model.Amount) (model.Listing, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	newBid, err := a.validateBid(caller, value)
	if err != nil {
		return model.Listing{}, err
	}

	if err := a.custody.Receive(caller, value); err != nil {
		return model.Listing{}, fmt.Errorf("service: take bid from %s into custody: %w", caller, err)
	}

	if err := a.ledger.RecordDeposit(caller, value); err != nil {
		// hand the value back so custody matches the ledger again
		if refundErr := a.custody.Transfer(caller, value); refundErr != nil {
			utils.Error("service: failed to return bid value after ledger error", map[string]any{
				"caller": caller,
				"value":  value,
				"error":  refundErr.Error(),
			})
		}
		return model.Listing{}, fmt.Errorf("service: failed to record bid by %s: %w", caller, err)
	}

	a.currentBid = newBid
	a.currentBidder = caller

	utils.Info("service: bid accepted", map[string]any{
		"bidder":      caller,
		"value":       value,
		"current_bid": a.currentBid,
	})
	return a.snapshotLocked(), nil
}

// validateBid checks the bidding rules in order and returns the resulting current bid
func (a *Auction) validateBid(caller model.Identity, value model.Amount) (model.Amount, error) {
	if a.sold {
		return 0, fmt.Errorf("service: bid by %s: %w", caller, auctionerrors.ErrAuctionAlreadySold)
	}
	if caller == "" {
		return 0, fmt.Errorf("service: %w - missing caller identity", auctionerrors.ErrInvalidRequest)
	}
	if caller == a.owner {
		return 0, fmt.Errorf("service: bid by %s: %w", caller, auctionerrors.ErrSelfBiddingNotAllowed)
	}
	if a.ledger.HasEntry(caller) {
		return 0, fmt.Errorf("service: bid by %s: %w", caller, auctionerrors.ErrDuplicateBidder)
	}
	if value <= model.MinimumBid {
		return 0, fmt.Errorf("service: %w - value %d, minimum is %d", auctionerrors.ErrBidBelowMinimum, value, model.MinimumBid)
	}

	newBid, ok := a.currentBid.Add(value)
	if !ok {
		return 0, fmt.Errorf("service: bid by %s: %w - current bid %d plus %d", caller, auctionerrors.ErrAmountOverflow, a.currentBid, value)
	}
	return newBid, nil
}

// Finalize settles the sale at the current bid and hands ownership to the current bidder
func (a *Auction) Finalize(caller model.Identity) (model.Listing, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if caller != a.owner {
		return model.Listing{}, fmt.Errorf("service: finalize by %s: %w", caller, auctionerrors.ErrNotAuthorized)
	}
	if a.sold {
		return model.Listing{}, fmt.Errorf("service: finalize by %s: %w", caller, auctionerrors.ErrAlreadyFinalized)
	}

	a.acceptedPrice = a.currentBid
	a.sold = true
	a.owner = a.currentBidder

	utils.Info("service: auction finalized", map[string]any{
		"seller":         caller,
		"winner":         a.owner,
		"accepted_price": a.acceptedPrice,
	})
	return a.snapshotLocked(), nil
}

// Withdraw pays a losing bidder's escrow back to them and returns the amount paid
func (a *Auction) Withdraw(caller model.Identity) (model.Amount, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.sold {
		return 0, fmt.Errorf("service: withdraw by %s: %w", caller, auctionerrors.ErrNotYetFinalized)
	}
	if caller == a.currentBidder {
		return 0, fmt.Errorf("service: withdraw by %s: %w", caller, auctionerrors.ErrWinnerCannotWithdraw)
	}
	balance, ok := a.ledger.Balance(caller)
	if !ok {
		return 0, fmt.Errorf("service: withdraw by %s: %w", caller, auctionerrors.ErrNoSuchBidder)
	}
	if balance == 0 {
		return 0, fmt.Errorf("service: withdraw by %s: %w", caller, auctionerrors.ErrNothingToWithdraw)
	}

	// escrow is zeroed before the payout and restored if the payout fails
	if err := a.ledger.ZeroBalance(caller); err != nil {
		return 0, fmt.Errorf("service: clear escrow for %s: %w", caller, err)
	}

	if err := a.custody.Transfer(caller, balance); err != nil {
		utils.Warn("service: payout failed", map[string]any{
			"bidder": caller,
			"amount": balance,
			"error":  err.Error(),
		})
		if restoreErr := a.ledger.RestoreBalance(caller, balance); restoreErr != nil {
			utils.Error("service: payout failed and escrow could not be restored", map[string]any{
				"bidder": caller,
				"amount": balance,
				"error":  restoreErr.Error(),
			})
			return 0, fmt.Errorf("service: restore escrow of %d for %s: %w: %w", balance, caller, auctionerrors.ErrInconsistentLedger, restoreErr)
		}
		return 0, fmt.Errorf("service: withdraw %d to %s: %w: %w", balance, caller, auctionerrors.ErrPayoutFailed, err)
	}

	utils.Info("service: escrow withdrawn", map[string]any{
		"bidder": caller,
		"amount": balance,
	})
	return balance, nil
}

// RenameProduct changes the product descriptor. Only the owner may rename,
// and a rejected call leaves the descriptor untouched.
func (a *Auction) RenameProduct(caller model.Identity, newName string) (model.ProductRenamed, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if caller != a.owner {
		return model.ProductRenamed{}, fmt.Errorf("service: rename by %s: %w", caller, auctionerrors.ErrNotAuthorized)
	}

	a.product = newName

	event := model.ProductRenamed{
		EventID:    utils.GenerateID(),
		From:       caller,
		Product:    newName,
		OccurredAt: a.now().UTC(),
	}
	a.notifier.ProductRenamed(event)
	return event, nil
}
