package trades

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradebell_item_cache_hits_total",
		Help: "Asset resolutions served from the item cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradebell_item_cache_misses_total",
		Help: "Asset resolutions that required a remote lookup.",
	})
	lookupBatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradebell_asset_lookup_batches_total",
		Help: "Batched GetAssetClassInfo requests issued.",
	})
	lookupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradebell_asset_lookup_failures_total",
		Help: "Batched GetAssetClassInfo requests that failed.",
	})
	correlationMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradebell_correlation_misses_total",
		Help: "Accepted offers with no matching trade history record.",
	})
)
