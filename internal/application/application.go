package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dylan-park/TradeBell/internal/config"
	"github.com/dylan-park/TradeBell/internal/domain/service/trades"
	"github.com/dylan-park/TradeBell/internal/infrastructure/itemcache"
	"github.com/dylan-park/TradeBell/internal/infrastructure/notifier"
	"github.com/dylan-park/TradeBell/internal/infrastructure/steamweb"
	"github.com/dylan-park/TradeBell/internal/server"
	"github.com/dylan-park/TradeBell/internal/worker"
	"github.com/dylan-park/TradeBell/pkg/application/modules"
	"github.com/dylan-park/TradeBell/pkg/httpx"
	"github.com/dylan-park/TradeBell/pkg/logx"
	"github.com/dylan-park/TradeBell/pkg/metrics"
	"github.com/dylan-park/TradeBell/pkg/middlewarex"
	"github.com/dylan-park/TradeBell/pkg/probe"
)

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	httpServerShutdownTimeout   = 10 * time.Second
	logFieldMaxLen              = 2048
)

func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	// 1. Accounts
	accounts, err := config.LoadAccounts(cfg.Poller.AccountsFile)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	log.Info("loaded accounts", slog.Int("count", len(accounts)))

	// 2. Item cache
	itemCache, err := itemcache.New(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("item cache: %w", err)
	}
	log.Info("item cache loaded", slog.Int("entries", itemCache.Len()))

	// 3. Notification bot
	bot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
	if err != nil {
		return fmt.Errorf("notifier bot: %w", err)
	}

	if err := bot.SendText(ctx, "TradeBell is starting."); err != nil {
		log.Error("bot check failed, check BOT_TOKEN and BOT_CHAT_ID", logx.Error(err))
	} else {
		log.Info("bot check passed")
	}

	// 4. Pollers, one per account with its own API key
	var clientOpts []steamweb.Option
	if cfg.App.HTTPDebug {
		clientOpts = append(clientOpts, steamweb.WithTransport(httpx.NewLoggingRoundTripper(
			cleanhttp.DefaultPooledTransport(),
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		)))
	}

	pollers := make([]*worker.Poller, 0, len(accounts))

	for _, account := range accounts {
		client := steamweb.NewClient(account.APIKey, clientOpts...)
		tradeService := trades.NewService(client, client, itemCache)

		pollers = append(pollers, worker.NewPoller(
			account,
			client,
			tradeService,
			bot,
			cfg.Poller.Interval,
		))
	}

	registry := worker.NewRegistry(pollers...)

	g, ctx := errgroup.WithContext(ctx)

	// 5. Servers
	probeServer := probe.NewServer(cfg.Servers.ProbeAddress, probe.Options{
		Name:    cfg.App.Name,
		Version: cfg.App.Version,
	})
	g.Go(func() error { return probeServer.Run(ctx) })

	prometheusServer := metrics.NewPrometheusServer(cfg.Servers.MetricsAddress)
	g.Go(func() error { return prometheusServer.Run(ctx) })

	modules.HTTPServer{ShutdownTimeout: httpServerShutdownTimeout}.Run(
		ctx, g, newStatusHTTPServer(ctx, cfg, registry),
	)

	// 6. Pollers
	for _, poller := range registry.Pollers() {
		g.Go(func() error { return poller.Run(ctx) })
	}

	log.Info("watcher started", slog.Int("accounts", registry.Size()))

	return g.Wait()
}

func newStatusHTTPServer(ctx context.Context, cfg config.Config, registry *worker.Registry) *http.Server {
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	statusServer := server.NewServer(server.NewStatusServer(cfg.App.Name, cfg.App.Version, registry))
	statusServer.RegisterRoutes(router)

	return &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.Servers.StatusAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
