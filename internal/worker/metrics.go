package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	pollCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradebell_poll_cycles_total",
		Help: "Offer poll cycles per account.",
	}, []string{"account"})
	pollFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradebell_poll_failures_total",
		Help: "Offer poll cycles that failed per account.",
	}, []string{"account"})
	tradesNotified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradebell_trades_notified_total",
		Help: "Completed trades notified per account.",
	}, []string{"account"})
	notifyFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradebell_notify_failures_total",
		Help: "Notification deliveries that failed per account.",
	}, []string{"account"})
)
