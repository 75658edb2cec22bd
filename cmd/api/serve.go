package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jiffy-backoffice-api-server/internal/api/routes"
	"jiffy-backoffice-api-server/internal/auth"
	"jiffy-backoffice-api-server/internal/cache"
	"jiffy-backoffice-api-server/internal/database"
	"jiffy-backoffice-api-server/internal/notify"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/socket"
	"jiffy-backoffice-api-server/internal/storage"
	"jiffy-backoffice-api-server/internal/validation"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.JWT.Secret == "" {
		return errors.New("SECRET must be set to sign tokens")
	}
	gin.SetMode(cfg.Server.Mode)
	if err := validation.RegisterWithGin(); err != nil {
		return err
	}

	client, db, err := database.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect failed", zap.Error(err))
		}
	}()
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	mailer, err := notify.NewMailer(cfg.Mail)
	if err != nil {
		return err
	}
	notifier := notify.NewNotifier(mailer, log)
	defer notifier.Wait()

	reportCache := cache.New(cfg.Redis, log)
	defer reportCache.Close()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}

	deps := routes.Deps{
		Config:   cfg,
		DB:       db,
		Log:      log,
		Tokens:   auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration),
		Notifier: notifier,
		Cache:    reportCache,
		Hub:      socket.NewHub(log),
		Storage:  store,
		Ping: func(c *gin.Context) error {
			return client.Ping(c.Request.Context(), readpref.Primary())
		},
	}
	router := routes.SetupRouter(deps, routes.NewRepositories(db))

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("starting API server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info("shutting down API server")
		return server.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
