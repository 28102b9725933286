package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"lifeguard/internal/activity"
	"lifeguard/internal/api"
	"lifeguard/internal/api/handler/v1handler"
	"lifeguard/internal/checker"
	"lifeguard/internal/config"
	"lifeguard/internal/worker"
	"lifeguard/pkg/activitystream"
	"lifeguard/pkg/activitystream/kafka"
	"lifeguard/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// newStream returns the kafka activity publisher when brokers are configured.
func newStream(ctx context.Context, cfg *config.Config) (activitystream.Publisher, func()) {
	if len(cfg.Activity.Kafka.Brokers) == 0 {
		return nil, func() {}
	}

	publisher, err := kafka.New(kafka.Options{
		Brokers:  cfg.Activity.Kafka.Brokers,
		Topic:    cfg.Activity.Kafka.Topic,
		ClientID: cfg.Activity.Kafka.ClientID,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create kafka activity publisher", zap.Error(err))
	}

	return publisher, func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
		defer cancel()

		if err := publisher.Close(closeCtx); err != nil {
			logger.Warn(ctx, "could not close kafka publisher", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that starts the HTTP API
// together with the River worker persisting activities.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs password and URL check API alongside the activity worker",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c, closeCache := newCache(ctx, cfg)
			defer closeCache()

			stream, closeStream := newStream(ctx, cfg)
			defer closeStream()

			httpClient := newHTTPClient(cfg)

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Options{
				Queue:      cfg.Activity.Queue,
				MaxWorkers: cfg.Activity.Workers,
			}, strg, stream)
			if err != nil {
				logger.Fatal(ctx, "could not start river worker", zap.Error(err))
			}

			notifier := activity.NewJobNotifier(strg, activity.NewOptions(cfg))

			svc := checker.New(checker.Deps{
				Storage:  strg,
				Breach:   newBreachChecker(cfg, httpClient, c),
				URLs:     newAggregator(ctx, cfg, httpClient, c),
				Notifier: notifier,
			})

			server, err := api.NewServer(ctx, api.Deps{
				Deps:        v1handler.Deps{Checker: svc},
				Health:      strg,
				RiverClient: riverClient,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create http server", zap.Error(err))
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting http server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}

				return nil
			})
			g.Go(func() error {
				<-gCtx.Done()
				logger.Info(ctx, "shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not gracefully shutdown http server", zap.Error(err))
				}
				notifier.Wait()
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not gracefully stop river client", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
