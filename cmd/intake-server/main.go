package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venture-intake/internal/common/aws"
	"venture-intake/internal/common/config"
	"venture-intake/internal/common/database"
	apperrors "venture-intake/internal/common/errors"
	"venture-intake/internal/common/logger"
	"venture-intake/internal/intake/intro"
	"venture-intake/internal/intake/network"
	"venture-intake/internal/intake/notify"
	"venture-intake/internal/intake/submit"
	"venture-intake/internal/server"
)

const (
	connectRetries = 5
	connectBackoff = 2 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting intake server", map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
	})

	pg, err := connectPostgres(cfg, log)
	if err != nil {
		log.Error("postgres unavailable", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer pg.Close()

	redisClient, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		log.Warn("redis unavailable, submitted marker disabled", map[string]interface{}{
			"error": err.Error(),
		})
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	ctx := context.Background()
	s3Client, err := aws.NewS3Client(ctx, cfg.Storage.Region)
	if err != nil {
		log.Error("s3 client init failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	notifier := buildNotifier(ctx, cfg, log)

	// interface values must stay nil-nil, not typed nil
	var cache submit.Cache
	if redisClient != nil {
		cache = redisClient
	}
	var submitNotifier submit.Notifier
	if notifier != nil {
		submitNotifier = notifier
	}
	deps := server.Deps{
		Submit: submit.NewHandler(
			pg.GetDB(), s3Client, cache, submitNotifier, log,
			submit.NewConfig(cfg.Storage.DeckBucket),
		),
		Network:  network.NewHandler(pg.GetDB(), log),
		Intro:    intro.NewHandler(pg.GetDB(), log),
		Notifier: notifier,
		Postgres: pg,
		Redis:    redisClient,
	}

	srv := server.New(cfg, log, deps)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	case sig := <-sigCh:
		log.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown incomplete", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}
	log.Info("stopped", nil)
}

// connectPostgres retries with a fixed backoff so the service survives a
// database that comes up after it.
func connectPostgres(cfg *config.Config, log logger.Logger) (*database.PostgresClient, error) {
	var lastErr error
	for attempt := 1; attempt <= connectRetries; attempt++ {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err == nil {
			return pg, nil
		}
		lastErr = err
		stdErr := apperrors.NewDatabaseConnectionFailedError(err)
		log.Warn(stdErr.Message, map[string]interface{}{
			"code":    string(stdErr.Code),
			"attempt": attempt,
			"details": stdErr.Details,
		})
		time.Sleep(time.Duration(attempt) * connectBackoff)
	}
	return nil, lastErr
}

// buildNotifier wires SES and SNS when either channel is enabled. A nil
// notifier simply disables ops alerts.
func buildNotifier(ctx context.Context, cfg *config.Config, log logger.Logger) *notify.Notifier {
	nc := cfg.Notifications
	if !nc.Email.Enabled && !nc.SMS.Enabled {
		return nil
	}

	var (
		sesSvc notify.SESService
		snsSvc notify.SNSService
	)
	if nc.Email.Enabled {
		client, err := aws.NewSESClient(ctx, nc.AWS.Region)
		if err != nil {
			log.Warn("ses client init failed, email alerts disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			sesSvc = client
		}
	}
	if nc.SMS.Enabled {
		client, err := aws.NewSNSClient(ctx, nc.AWS.Region)
		if err != nil {
			log.Warn("sns client init failed, sms alerts disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			snsSvc = client
		}
	}
	if sesSvc == nil && snsSvc == nil {
		return nil
	}
	return notify.New(sesSvc, snsSvc, nc, log)
}
