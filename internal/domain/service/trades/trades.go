// Package trades implements the reconciliation pipeline: correlating a
// completed trade offer with its trade-history record and resolving the
// exchanged assets into display names.
package trades

import (
	"context"
	"time"

	"github.com/dylan-park/TradeBell/internal/domain"
	"github.com/dylan-park/TradeBell/internal/domain/entity"
	"github.com/dylan-park/TradeBell/pkg/contextx"
	"github.com/dylan-park/TradeBell/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	// History scan starts this many seconds before the offer's update time,
	// because Steam's two APIs disagree slightly on timestamps.
	historySearchMargin = 60

	historyMaxTrades = 10

	defaultMatchWindow = 120 * time.Second
)

type HistorySource interface {
	ListHistory(ctx context.Context, startTime int64, maxTrades int) ([]entity.TradeHistoryRecord, error)
}

type NameLookupSource interface {
	// BatchLookup returns class info keyed by either "classid" or
	// "classid_instanceid"; the API is inconsistent for certain item types.
	// Partial results are allowed.
	BatchLookup(ctx context.Context, appID uint32, pairs []entity.ClassInstance) (map[string]entity.ItemInfo, error)
}

type ItemCache interface {
	Get(classID string) (entity.ItemInfo, bool)
	Insert(classID string, info entity.ItemInfo) error
}

type Service struct {
	history  HistorySource
	resolver *Resolver
	strategy MatchStrategy
}

func NewService(history HistorySource, lookup NameLookupSource, cache ItemCache) *Service {
	return &Service{
		history:  history,
		resolver: NewResolver(cache, lookup),
		strategy: FirstWithinWindow{Window: defaultMatchWindow},
	}
}

func (s *Service) WithMatchStrategy(strategy MatchStrategy) *Service {
	s.strategy = strategy
	return s
}

// ProcessCompletedTrade turns an accepted trade offer into notification text.
// ok is false when no history record could be correlated with the offer; the
// caller must skip the notification, not retry.
func (s *Service) ProcessCompletedTrade(ctx context.Context, offer entity.TradeOffer) (text string, ok bool, err error) {
	records, err := s.history.ListHistory(ctx, offer.TimeUpdated-historySearchMargin, historyMaxTrades)
	if err != nil {
		return "", false, domain.WrapError(err, errcodes.TradeHistoryError, "list trade history")
	}

	record, ok := s.strategy.Match(offer, records)
	if !ok {
		correlationMisses.Inc()
		return "", false, nil
	}

	received := s.resolver.Resolve(ctx, record.AssetsReceived)
	given := s.resolver.Resolve(ctx, record.AssetsGiven)

	return ComposeNotification(record, received, given), true, nil
}
