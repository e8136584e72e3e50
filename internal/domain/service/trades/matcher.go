package trades

import (
	"time"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
)

// MatchStrategy selects the history record that corresponds to a completed
// offer. The two Steam APIs share no common key, so any strategy is a
// heuristic; keeping it behind an interface lets it be swapped without
// touching the rest of the pipeline.
type MatchStrategy interface {
	Match(offer entity.TradeOffer, records []entity.TradeHistoryRecord) (entity.TradeHistoryRecord, bool)
}

// FirstWithinWindow picks the first record whose init time falls within Window
// of the offer's update time. Records arrive newest-first per the API
// ordering contract, so the first hit wins even when a later record sits
// closer. Breaks down if two trades land inside the same window.
type FirstWithinWindow struct {
	Window time.Duration
}

func (s FirstWithinWindow) Match(
	offer entity.TradeOffer,
	records []entity.TradeHistoryRecord,
) (entity.TradeHistoryRecord, bool) {
	window := int64(s.Window / time.Second)

	for _, record := range records {
		diff := record.TimeInit - offer.TimeUpdated
		if diff < 0 {
			diff = -diff
		}

		if diff < window {
			return record, true
		}
	}

	return entity.TradeHistoryRecord{}, false
}
