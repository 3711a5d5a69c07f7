// Package metrics exposes the bot's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersRecorded counts orders that reached the store.
	OrdersRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "choyxona_orders_recorded_total",
			Help: "Total number of orders recorded",
		},
	)

	// OrderFailures counts rejected submissions by reason.
	OrderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "choyxona_order_failures_total",
			Help: "Total number of rejected order submissions",
		},
		[]string{"reason"},
	)

	// SummaryRequests counts daily report requests.
	SummaryRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "choyxona_summary_requests_total",
			Help: "Total number of daily summary requests",
		},
	)
)
