package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tallybot_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tallybot_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tallybot_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)
)

// Business Metrics
var (
	ClaimsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tallybot_claims_total",
			Help: "Total number of successful daily claims.",
		},
	)

	PointsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tallybot_points_claimed_total",
			Help: "Total points paid out by daily claims.",
		},
	)

	WagersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tallybot_wagers_total",
			Help: "Total number of settled wagers by game and outcome.",
		},
		[]string{"game", "outcome"},
	)

	PointsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tallybot_points_wagered_total",
			Help: "Total points staked by game.",
		},
		[]string{"game"},
	)

	PointsTransferred = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tallybot_points_transferred_total",
			Help: "Total points moved between accounts.",
		},
	)

	GiftCardsRedeemed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tallybot_giftcards_redeemed_total",
			Help: "Total gift-card redemptions by kind.",
		},
		[]string{"kind"},
	)

	ConversionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tallybot_conversions_total",
			Help: "Total bulk gift-card conversions back to points.",
		},
	)
)

// Persistence Metrics
var (
	SnapshotSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tallybot_snapshot_saves_total",
			Help: "Total successful snapshot saves.",
		},
	)

	SnapshotFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tallybot_snapshot_failures_total",
			Help: "Total failed snapshot saves.",
		},
	)
)
