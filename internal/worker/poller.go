// Package worker runs one long-lived poller per watched account.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/dylan-park/TradeBell/internal/domain"
	"github.com/dylan-park/TradeBell/internal/domain/entity"
	"github.com/dylan-park/TradeBell/pkg/errcodes"
	"github.com/dylan-park/TradeBell/pkg/contextx"
	"github.com/dylan-park/TradeBell/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// The cutoff for the next poll backs off by this many seconds to tolerate
// clock and propagation skew on Steam's side.
const pollCutoffMargin = 60

type OfferSource interface {
	ListOffers(ctx context.Context, cutoff int64) (entity.TradeOffers, error)
}

type TradeProcessor interface {
	ProcessCompletedTrade(ctx context.Context, offer entity.TradeOffer) (text string, ok bool, err error)
}

type NotificationSink interface {
	Send(ctx context.Context, text string) error
}

// Poller watches one account. It owns its dedup state and poll cutoff; no
// state is shared between accounts and none of it survives a restart.
type Poller struct {
	account   entity.Account
	offers    OfferSource
	processor TradeProcessor
	sink      NotificationSink
	interval  time.Duration

	// Trade offer ids already notified this session.
	processed *cache.Cache

	bootTime int64
	lastPoll int64

	mu         sync.Mutex
	lastPollAt time.Time
	lastError  string
}

func NewPoller(
	account entity.Account,
	offers OfferSource,
	processor TradeProcessor,
	sink NotificationSink,
	interval time.Duration,
) *Poller {
	return &Poller{
		account:   account,
		offers:    offers,
		processor: processor,
		sink:      sink,
		interval:  interval,
		processed: cache.New(cache.NoExpiration, 0),
	}
}

func (p *Poller) Name() string {
	return p.account.Name
}

// Snapshot is a point-in-time view of the poller for the status API.
type Snapshot struct {
	Name            string
	ProcessedTrades int
	LastPollAt      time.Time
	LastError       string
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Snapshot{
		Name:            p.account.Name,
		ProcessedTrades: p.processed.ItemCount(),
		LastPollAt:      p.lastPollAt,
		LastError:       p.lastError,
	}
}

// Run polls until the context is canceled. A failed cycle is logged and the
// next one proceeds on schedule; this account's failures never affect other
// accounts.
func (p *Poller) Run(ctx context.Context) error {
	ctx = contextx.WithAccountName(ctx, contextx.AccountName(p.account.Name))
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldAccount, p.account.Name)))

	// Offers that resolved before boot belong to a previous run and are
	// never notified, even though the dedup set starts empty.
	p.bootTime = time.Now().Unix()
	p.lastPoll = p.bootTime

	logger(ctx).Info("poller started")

	for {
		p.pollOnce(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("poller stopped")
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context) {
	pollCycles.WithLabelValues(p.account.Name).Inc()

	offers, err := p.offers.ListOffers(ctx, p.lastPoll)
	if err != nil {
		pollFailures.WithLabelValues(p.account.Name).Inc()
		p.noteError(domain.WrapError(err, errcodes.SteamAPIError, "poll trade offers"))
		logger(ctx).Error("offer poll failed", logx.Error(err))
		return
	}

	for _, offer := range append(offers.Received, offers.Sent...) {
		if !p.eligible(offer) {
			continue
		}

		logger(ctx).Info(
			"found new completed trade",
			slog.String(logx.FieldTradeOfferID, offer.TradeOfferID),
		)

		// Mark before any remote work so a mid-flight failure cannot lead to
		// a second notification on the next cycle.
		p.processed.Set(offer.TradeOfferID, true, cache.NoExpiration)

		p.handleTrade(ctx, offer)
	}

	p.lastPoll = time.Now().Unix() - pollCutoffMargin

	p.mu.Lock()
	p.lastPollAt = time.Now()
	p.mu.Unlock()
}

func (p *Poller) eligible(offer entity.TradeOffer) bool {
	if offer.State != entity.AcceptedOfferState {
		return false
	}

	if _, done := p.processed.Get(offer.TradeOfferID); done {
		return false
	}

	return offer.TimeUpdated >= p.bootTime
}

func (p *Poller) handleTrade(ctx context.Context, offer entity.TradeOffer) {
	text, ok, err := p.processor.ProcessCompletedTrade(ctx, offer)
	if err != nil {
		p.noteError(err)
		logger(ctx).Error(
			"failed to process trade",
			slog.String(logx.FieldTradeOfferID, offer.TradeOfferID),
			logx.Error(err),
		)
		return
	}

	if !ok {
		logger(ctx).Warn(
			"trade history not found, skipping notification",
			slog.String(logx.FieldTradeOfferID, offer.TradeOfferID),
		)
		return
	}

	message := fmt.Sprintf("<b>Account: %s</b>\n%s", p.account.Name, text)

	if err := p.sink.Send(ctx, message); err != nil {
		notifyFailures.WithLabelValues(p.account.Name).Inc()
		p.noteError(err)
		logger(ctx).Error(
			"failed to send notification",
			slog.String(logx.FieldTradeOfferID, offer.TradeOfferID),
			logx.Error(err),
		)
		return
	}

	tradesNotified.WithLabelValues(p.account.Name).Inc()
}

// noteError records the failure for the status API, prefixed with the domain
// error code when one is attached.
func (p *Poller) noteError(err error) {
	message := err.Error()
	if code, ok := domain.GetCode(err); ok {
		message = fmt.Sprintf("%s: %s", code, message)
	}

	p.mu.Lock()
	p.lastError = message
	p.mu.Unlock()
}
