package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authforms/modules/account"
	"github.com/dmitrymomot/authforms/pkg/clientip"
	"github.com/dmitrymomot/authforms/pkg/config"
	"github.com/dmitrymomot/authforms/pkg/cookie"
	"github.com/dmitrymomot/authforms/pkg/httpserver"
	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/metrics"
	"github.com/dmitrymomot/authforms/pkg/ratelimiter"
	"github.com/dmitrymomot/authforms/pkg/requestid"
	"github.com/dmitrymomot/authforms/pkg/session"
	"github.com/dmitrymomot/authforms/svc/accounts"
)

type serveConfig struct {
	dummy bool
	addr  string
}

func newServeCmd() *cobra.Command {
	cfg := &serveConfig{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Start the web server with the login, signup and home pages, the accounts
API under /_api/v1, health at /health and Prometheus metrics at /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.dummy, "dummy", false, "seed the demo account person@email.com / TestPassword123")
	cmd.Flags().StringVar(&cfg.addr, "addr", "", "listen address, overrides HTTP_ADDR")

	return cmd
}

func runServe(ctx context.Context, cfg *serveConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	log, err := logger.NewFromConfig(logCfg, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		clientip.LoggerExtractor(),
	))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	limits := ratelimiter.NewMemoryStore()
	defer limits.Close()

	app, err := buildApp(ctx, cfg, log, prometheus.NewRegistry(), limits)
	if err != nil {
		return err
	}

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	opts := []httpserver.Option{httpserver.WithLogger(log)}
	if cfg.addr != "" {
		opts = append(opts, httpserver.WithAddr(cfg.addr))
	}
	return httpserver.NewFromConfig(srvCfg, opts...).Run(ctx, app)
}

// buildApp wires the services and returns the root router. Collectors are
// registered with reg and served from it on /metrics; submission limits are
// kept in limits.
func buildApp(ctx context.Context, cfg *serveConfig, log *slog.Logger, reg *prometheus.Registry, limits ratelimiter.Store) (http.Handler, error) {
	var (
		cookieCfg  cookie.Config
		sessionCfg session.Config
		accountCfg account.Config
		limitCfg   ratelimiter.Config
		ipCfg      clientip.Config
	)
	if err := config.Load(&limitCfg); err != nil {
		return nil, err
	}
	if err := config.Load(&ipCfg); err != nil {
		return nil, err
	}
	if err := config.Load(&cookieCfg); err != nil {
		return nil, err
	}
	if err := config.Load(&sessionCfg); err != nil {
		return nil, err
	}
	if err := config.Load(&accountCfg); err != nil {
		return nil, err
	}

	var fallback []string
	if cookieCfg.Secrets == "" {
		secret, err := devSecret()
		if err != nil {
			return nil, err
		}
		log.WarnContext(ctx, "COOKIE_SECRETS is not set, sessions will not survive a restart",
			logger.Component("serve"),
		)
		fallback = append(fallback, secret)
	}
	cookies, err := cookie.NewFromConfig(cookieCfg, fallback...)
	if err != nil {
		return nil, fmt.Errorf("cookie manager: %w", err)
	}

	svc := accounts.NewService(accounts.NewMemoryStorage(), accounts.WithLogger(log))
	if cfg.dummy {
		if err := svc.SeedDummy(ctx); err != nil {
			return nil, fmt.Errorf("seed dummy account: %w", err)
		}
		log.InfoContext(ctx, "dummy account seeded",
			slog.String("email", accounts.Dummy.Email),
			logger.Component("serve"),
		)
	}

	sessions := session.NewFromConfig(sessionCfg, cookies, session.WithLogger(log))
	modOpts := []account.Option{account.WithLogger(log)}
	if limitCfg.Enabled {
		limiter, err := ratelimiter.NewBucket(limits, limitCfg)
		if err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
		modOpts = append(modOpts, account.WithSubmitLimiter(limiter))
	}
	mod := account.New(accountCfg, svc, sessions, modOpts...)

	metrics.RegisterMetrics(reg)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware(ipCfg.TrustProxy), logger.Middleware(log))
	r.Get("/health", httpserver.HealthCheckHandler())
	r.Handle("/metrics", metrics.Handler(reg))
	r.Mount("/", mod.Handle())

	return r, nil
}

func devSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate cookie secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
