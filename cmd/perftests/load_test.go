package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-ledger/internal/auctionService"
	model "auction-ledger/internal/models"
	"auction-ledger/internal/notify"
	"auction-ledger/internal/repository"
	"auction-ledger/internal/treasury"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name           string
	ReadRatio      int // out of 10
	MaxBidIncrease int
	Burst          bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.latencies) == 0 {
		return
	}
	latencies := append([]time.Duration(nil), om.latencies...)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupAuction creates an auction wired to the in-memory ledger and vault
func setupAuction() (*auction.Auction, *treasury.Vault) {
	vault := treasury.NewVault()
	a := auction.NewAuction("seller", "Load test watch", repository.NewMemoryLedger(), vault, notify.NewFeed(16))
	return a, vault
}

// Benchmark_Load_AuctionLedger runs multiple scenarios
func Benchmark_Load_AuctionLedger(b *testing.B) {
	scenarios := []LoadScenario{
		{"WriteHeavy", 0, 1000, false},
		{"Mixed-Workload", 7, 1000, false},
		{"ReadHeavy", 9, 1000, false},
		{"Peak-Burst", 2, 1000, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	a, vault := setupAuction()

	var totalOps, acceptedBids, rejectedBids, totalReads, seq int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			opStart := time.Now()
			if rnd.Intn(10) < s.ReadRatio {
				if _, _, err := a.AllBidders(); err != nil {
					b.Errorf("all bidders: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				bidder := model.Identity(fmt.Sprintf("bidder_%d", atomic.AddInt64(&seq, 1)))
				value := model.MinimumBid + model.Amount(1+rnd.Intn(s.MaxBidIncrease))
				if _, err := a.PlaceBid(bidder, value); err != nil {
					atomic.AddInt64(&rejectedBids, 1)
				} else {
					atomic.AddInt64(&acceptedBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)

	// settle and refund everyone except the winner
	if _, err := a.Finalize("seller"); err != nil {
		b.Fatalf("finalize: %v", err)
	}
	bidders, _, err := a.AllBidders()
	if err != nil {
		b.Fatalf("all bidders: %v", err)
	}
	winner := a.CurrentBidder()
	for _, bidder := range bidders {
		if bidder == winner {
			continue
		}
		if _, err := a.Withdraw(bidder); err != nil {
			b.Fatalf("withdraw %s: %v", bidder, err)
		}
	}
	held, err := a.EscrowHeld()
	if err != nil || held != vault.Held() {
		b.Fatalf("custody mismatch: escrow %d, vault %d, err %v", held, vault.Held(), err)
	}

	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Total Ops: %d | Accepted Bids: %d | Rejected Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, totalOps, acceptedBids, rejectedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
