package perftests

import (
	"fmt"
	"testing"

	model "auction-ledger/internal/models"
)

// Benchmark 1: PlaceBid - distinct bidders (sequential)
func Benchmark_PlaceBid_Sequential(b *testing.B) {
	a, _ := setupAuction()

	bidders := make([]model.Identity, b.N)
	for i := range bidders {
		bidders[i] = model.Identity(fmt.Sprintf("bidder_%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := a.PlaceBid(bidders[i], model.MinimumBid+1); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: AllBidders over a large roster
func Benchmark_AllBidders_LargeRoster(b *testing.B) {
	a, _ := setupAuction()
	for i := 0; i < 10000; i++ {
		if _, err := a.PlaceBid(model.Identity(fmt.Sprintf("bidder_%d", i)), model.MinimumBid+1); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidders, balances, err := a.AllBidders()
		if err != nil || len(bidders) != len(balances) {
			b.Fatalf("all bidders: %v", err)
		}
	}
}

// Benchmark 3: Withdraw after settlement
func Benchmark_Withdraw(b *testing.B) {
	a, _ := setupAuction()
	for i := 0; i < b.N; i++ {
		if _, err := a.PlaceBid(model.Identity(fmt.Sprintf("bidder_%d", i)), model.MinimumBid+1); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}
	if _, err := a.PlaceBid("winner", model.MinimumBid+1); err != nil {
		b.Fatalf("failed to place winning bid: %v", err)
	}
	if _, err := a.Finalize("seller"); err != nil {
		b.Fatalf("finalize: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := a.Withdraw(model.Identity(fmt.Sprintf("bidder_%d", i))); err != nil {
			b.Fatalf("withdraw: %v", err)
		}
	}
}
