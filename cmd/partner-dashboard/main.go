package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	_ "github.com/MikeMC777/partner-dashboard/docs"
	"github.com/MikeMC777/partner-dashboard/internal/config"
	"github.com/MikeMC777/partner-dashboard/internal/dashboard"
	"github.com/MikeMC777/partner-dashboard/internal/finance"
	"github.com/MikeMC777/partner-dashboard/internal/httpx"
	"github.com/MikeMC777/partner-dashboard/internal/menu"
	"github.com/MikeMC777/partner-dashboard/internal/notify"
	"github.com/MikeMC777/partner-dashboard/internal/order"
	"github.com/MikeMC777/partner-dashboard/internal/partner"
	"github.com/MikeMC777/partner-dashboard/internal/realtime"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := cfg.Logger()
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("partner-dashboard stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting partner-dashboard", "config", cfg)
	decimal.MarshalJSONWithoutQuotes = true

	api := httpx.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.HTTPTimeout)
	partners := partner.NewClient(api)

	partnerID := cfg.PartnerID
	if partnerID == "" && cfg.UserID != "" {
		id, err := partner.ResolvePartnerID(ctx, partners, cfg.UserID)
		if err != nil {
			log.Warn("could not resolve partner id, registering without it", "user_id", cfg.UserID, "err", err)
		}
		partnerID = id
	}

	rec := notify.NewRecorder(100)
	toasters := notify.Multi{rec, notify.LogToaster{Log: log.With("component", "toast")}}
	if cfg.RabbitMQURL != "" {
		mq, err := notify.DialAMQP(cfg.RabbitMQURL, partnerID)
		if err != nil {
			log.Warn("rabbitmq unavailable, toasts stay local", "err", err)
		} else {
			defer mq.Close()
			toasters = append(toasters, mq)
		}
	}

	orders := order.NewClient(api, log)
	ctrl := order.NewController(orders, log, cfg.TransitionTimeout)

	var journal order.Journal = order.NewMemoryJournal()
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer pool.Close()
		pg := order.NewPGJournal(pool)
		if err := pg.Migrate(ctx); err != nil {
			return fmt.Errorf("postgres migrate: %w", err)
		}
		journal = pg
	}
	defer order.Record(ctrl, journal, log)()

	poller := order.NewPoller(orders, ctrl, cfg.PollInterval, log)
	poller.OnError = func(ctx context.Context, err error) {
		_ = toasters.Toast(ctx, notify.Toast{
			Level:       notify.LevelError,
			Title:       "Failed to load orders",
			Description: fmt.Sprintf("Retrying in %s", cfg.PollInterval),
			Duration:    5 * time.Second,
			At:          time.Now(),
		})
	}

	live := realtime.New(realtime.Options{
		Dialer:         realtime.NewWSDialer(cfg.WSURL, cfg.APIToken),
		Identity:       realtime.Identity{UserID: cfg.UserID, PartnerID: partnerID},
		Sink:           ctrl,
		Toaster:        toasters,
		Log:            log,
		AlertTTL:       cfg.AlertTTL,
		AudioCeiling:   cfg.AudioCeiling,
		ReconnectDelay: cfg.ReconnectDelay,
		MaxReconnects:  cfg.MaxReconnects,
		OnGiveUp:       poller.Kick,
	})

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := dashboard.NewRouter(dashboard.Deps{
		Orders:  ctrl,
		Journal: journal,
		Live:    live,
		Toasts:  rec,
		Toaster: toasters,
		Finance: finance.NewClient(api),
		Partner: partners,
		Menu:    menu.NewClient(api),
		Refresh: poller.Kick,
		Log:     log,
	})
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return poller.Run(gctx) })
	g.Go(func() error { return live.Run(gctx) })
	g.Go(func() error {
		log.Info("partner-dashboard listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
