package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/carebridge/chat-gateway/internal/chatlog"
	"github.com/carebridge/chat-gateway/internal/client/care"
	"github.com/carebridge/chat-gateway/internal/client/stream"
	"github.com/carebridge/chat-gateway/internal/config"
	"github.com/carebridge/chat-gateway/internal/databus/delivery"
	"github.com/carebridge/chat-gateway/internal/infra"
	"github.com/carebridge/chat-gateway/internal/model"
	"github.com/carebridge/chat-gateway/internal/pkg/jwt"
	"github.com/carebridge/chat-gateway/internal/pkg/tx"
	"github.com/carebridge/chat-gateway/internal/pkg/validator"
	"github.com/carebridge/chat-gateway/internal/presence"
	db "github.com/carebridge/chat-gateway/internal/repository/postgres"
	"github.com/carebridge/chat-gateway/internal/rest"
	"github.com/carebridge/chat-gateway/internal/rtc"
)

const trackSweepInterval = 15 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	streamClient := stream.New(cfg)
	defer streamClient.Close()

	careClient := care.New(cfg)
	defer careClient.Close()

	presenceStore := presence.New(cfg)
	defer presenceStore.Close() //nolint:errcheck // .

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.RTC.JWTSecret, cfg.RTC.AppID)
	sessions := chatlog.NewRegistry()

	ctx := context.WithValue(context.Background(), config.KeyLogger, logger)

	// Live push path: the vendor delivers events on the service websocket;
	// the same handler also backs the kafka worker.
	deliveryHandler := delivery.New(dbRepo, cfg.RTC.DefaultAvatar)
	unsubscribe := streamClient.Subscribe(func(event model.TransportEvent) {
		deliveryHandler.HandleEvent(ctx, event)
	})
	defer unsubscribe()

	// Track lifecycle frames feed the subscription bookkeeping; the sweep
	// picks up whatever the bounded retries gave up on.
	trackClient := rtc.NewClient(cfg)
	defer trackClient.Close()

	trackSubscriber := rtc.NewSubscriber(trackClient)
	unsubscribeTracks := streamClient.Subscribe(func(event model.TransportEvent) {
		trackSubscriber.HandleTransportEvent(ctx, event)
	})
	defer unsubscribeTracks()

	go trackSubscriber.RunSweep(ctx, trackSweepInterval)

	err := streamClient.Connect(ctx, cfg.Service.Name, func(ctx context.Context) (string, error) {
		token, _, tokenErr := jwtGenerator.GenerateConnectToken(cfg.Service.Name)
		return token, tokenErr
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect to chat transport: %v", err))
	}

	handler := rest.New(
		dbRepo,
		streamClient,
		careClient,
		presenceStore,
		vldtr,
		jwtGenerator,
		sessions,
		cfg.RTC.AppID,
		cfg.RTC.DefaultAvatar,
	)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, cfg.Auth.AccessSecret)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	rest.RegisterRoutes(router, handler)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
