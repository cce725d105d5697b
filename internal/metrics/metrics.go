package metrics

import (
	"auction-ledger/internal/auctionerrors"
	model "auction-ledger/internal/models"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "auction"

// StateSource exposes the listing state sampled at scrape time
type StateSource interface {
	Snapshot() model.Listing
	EscrowHeld() (model.Amount, error)
}

// Metrics owns the auction's prometheus registry. A nil *Metrics records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	commands     *prometheus.CounterVec
	payouts      *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers all collectors, including a state collector reading from source
func New(source StateSource) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Auction commands by outcome (ok or failure kind).",
		}, []string{"command", "outcome"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payouts_total",
			Help:      "Escrow payout attempts by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{1e-4, 1e-3, 1e-2, 1e-1, 1},
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.commands,
		m.payouts,
		m.httpRequests,
		m.httpDuration,
		newStateCollector(source),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveCommand counts one command call; err nil means success
func (m *Metrics) ObserveCommand(command string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = auctionerrors.Code(err)
	}
	m.commands.WithLabelValues(command, outcome).Inc()
}

// ObservePayout counts a payout attempt made by a withdrawal
func (m *Metrics) ObservePayout(err error) {
	if m == nil {
		return
	}
	result := "paid"
	if err != nil {
		result = "failed"
	}
	m.payouts.WithLabelValues(result).Inc()
}

// ObserveHTTP records a finished request
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

type stateCollector struct {
	source     StateSource
	currentBid *prometheus.Desc
	escrowHeld *prometheus.Desc
	sold       *prometheus.Desc
}

func newStateCollector(source StateSource) *stateCollector {
	return &stateCollector{
		source:     source,
		currentBid: prometheus.NewDesc(namespace+"_current_bid", "Running current bid.", nil, nil),
		escrowHeld: prometheus.NewDesc(namespace+"_escrow_held", "Sum of outstanding escrow balances.", nil, nil),
		sold:       prometheus.NewDesc(namespace+"_sold", "1 once the auction is finalized.", nil, nil),
	}
}

func (c *stateCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.currentBid
	ch <- c.escrowHeld
	ch <- c.sold
}

func (c *stateCollector) Collect(ch chan<- prometheus.Metric) {
	listing := c.source.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.currentBid, prometheus.GaugeValue, float64(listing.CurrentBid))

	sold := 0.0
	if listing.Sold {
		sold = 1
	}
	ch <- prometheus.MustNewConstMetric(c.sold, prometheus.GaugeValue, sold)

	if held, err := c.source.EscrowHeld(); err == nil {
		ch <- prometheus.MustNewConstMetric(c.escrowHeld, prometheus.GaugeValue, float64(held))
	} else {
		ch <- prometheus.NewInvalidMetric(c.escrowHeld, err)
	}
}
