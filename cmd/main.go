package main

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/couponhub/payment/internal/api"
	"github.com/couponhub/payment/internal/clients/auth"
	"github.com/couponhub/payment/internal/clients/merchant"
	"github.com/couponhub/payment/internal/clients/slipok"
	"github.com/couponhub/payment/internal/repository"
	"github.com/couponhub/payment/internal/service"
	"github.com/couponhub/payment/pkg/broker"
	"github.com/couponhub/payment/pkg/config"
	"github.com/couponhub/payment/pkg/job"
	"github.com/couponhub/payment/pkg/logger"
	"github.com/couponhub/payment/pkg/postgres"
	"github.com/couponhub/payment/pkg/security"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(pool)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	merchantService := merchant.NewClient(cfg.MerchantServiceURL)
	slipService := slipok.NewClient(cfg.SlipOK)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.OrderPaidTopic)
	defer producer.Close()

	s := service.New(repo, merchantService, slipService, producer, cfg.PromptPay.PlatformID)

	authService := auth.NewClient(cfg.AuthServiceURL)

	{
		job.NewService().
			RegisterJob("expire old orders", time.Hour, s.ExpireOldOrders).
			Start(ctx)
	}

	var slipCallbackPublicKey *rsa.PublicKey

	if cfg.SlipOK.CallbackCheckEnabled {
		decodedPKey, err := base64.StdEncoding.DecodeString(cfg.SlipOK.CallbackPublicKey)
		panicOnErr("decode slip callback public key", err)

		slipCallbackPublicKey, err = security.ParsePublicKey(decodedPKey)
		panicOnErr("parse slip callback public key", err)
	}

	handler := api.NewHandler(s, cfg.SlipOK.CallbackCheckEnabled, slipCallbackPublicKey)
	mw := api.NewMiddleware(authService, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey, cfg.SlipOK.CallbackIPWL)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
