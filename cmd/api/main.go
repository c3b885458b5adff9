package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sustainalink/platform/internal/api"
	"github.com/sustainalink/platform/internal/api/middleware"
	"github.com/sustainalink/platform/internal/core/ports"
	"github.com/sustainalink/platform/internal/core/service"
	"github.com/sustainalink/platform/internal/core/token"
	"github.com/sustainalink/platform/internal/infrastructure/ai"
	"github.com/sustainalink/platform/internal/infrastructure/config"
	"github.com/sustainalink/platform/internal/infrastructure/db/memory"
	mongodb "github.com/sustainalink/platform/internal/infrastructure/db/mongo"
	redisdb "github.com/sustainalink/platform/internal/infrastructure/db/redis"
	"github.com/sustainalink/platform/internal/infrastructure/db/seed"
	"github.com/sustainalink/platform/internal/infrastructure/http/handlers"
	"github.com/sustainalink/platform/internal/infrastructure/notify"
	"github.com/sustainalink/platform/internal/infrastructure/queue"
	"github.com/sustainalink/platform/pkg/logger"
)

type stores struct {
	users     ports.CredentialStore
	products  ports.ProductRepository
	suppliers ports.SupplierRepository
	reports   ports.ESGReportRepository
	rewards   ports.RewardRepository
	resets    ports.ResetTokenStore
	checks    []handlers.DependencyCheck
	closers   []func(context.Context) error
}

// @title						SustainaLink API
// @version					1.0
// @description				Sustainability marketplace API: accounts, products, suppliers, ESG reports, rewards and AI assistants.
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the JWT.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sustainalink-api: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "sustainalink-api",
	})
	log.Info().Str("env", cfg.Env).Str("store", cfg.StoreDriver).Msg("starting")

	s, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		for _, closeFn := range s.closers {
			if err := closeFn(context.WithoutCancel(ctx)); err != nil {
				log.Warn().Err(err).Msg("close store")
			}
		}
	}()

	if cfg.Seed() {
		if err := seed.Run(ctx, seed.Stores{
			Users:     s.users,
			Products:  s.products,
			Suppliers: s.suppliers,
			Rewards:   s.rewards,
		}, cfg.Auth.BcryptCost, log); err != nil {
			return err
		}
	}

	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)
	if err != nil {
		return err
	}

	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, notify.NewLogNotifier(log), log)
	gemini := ai.NewGeminiClient(ai.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	}, log)
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, AI endpoints will return 503")
	}

	e := api.NewRouter(api.Dependencies{
		Auth: service.NewAuthService(s.users, tokens, s.resets, dispatcher, service.AuthOptions{
			BcryptCost:  cfg.Auth.BcryptCost,
			ResetTTL:    cfg.Auth.ResetTokenTTL,
			FrontendURL: cfg.Auth.FrontendURL,
		}, log),
		Users:             service.NewUserService(s.users, log),
		Products:          service.NewProductService(s.products, log),
		Suppliers:         service.NewSupplierService(s.suppliers, log),
		Reports:           service.NewESGReportService(s.reports, s.suppliers, log),
		Rewards:           service.NewRewardService(s.rewards, s.users, log),
		AI:                service.NewAIService(gemini, s.products, s.suppliers, log),
		Authenticator:     middleware.NewAuthenticator(tokens, s.users, log),
		Readiness:         handlers.NewReadinessHandler(0, s.checks...),
		MetricsRegisterer: prometheus.DefaultRegisterer,
		MetricsGatherer:   prometheus.DefaultGatherer,
		Log:               log,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
		RateLimitRPS:      cfg.HTTP.RateLimitRPS,
		BodyLimit:         cfg.HTTP.BodyLimit,
	})

	// The dispatcher stops only after the HTTP server has shut down.
	dispatchCtx, stopDispatch := context.WithCancel(context.WithoutCancel(ctx))
	defer stopDispatch()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(dispatchCtx)
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr()).Msg("http server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		defer stopDispatch()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("stopped")
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	s := &stores{}

	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Disconnect)

		repos := mongodb.NewRepositories(db)
		if err := repos.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		s.users, s.products, s.suppliers = repos.Users, repos.Products, repos.Suppliers
		s.reports, s.rewards = repos.Reports, repos.Rewards
		s.checks = append(s.checks, handlers.MongoCheck(db))
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	default:
		s.users = memory.NewUserStore()
		s.products = memory.NewProductStore()
		s.suppliers = memory.NewSupplierStore()
		s.reports = memory.NewReportStore()
		s.rewards = memory.NewRewardStore()
		log.Warn().Msg("using in-memory stores, data is lost on restart")
	}

	if cfg.Redis.Addr == "" {
		s.resets = memory.NewResetTokenStore()
		return s, nil
	}
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })
	s.resets = redisdb.NewResetTokenStore(rdb)
	s.checks = append(s.checks, handlers.RedisCheck(rdb))
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	return s, nil
}
