// HTTP API сервис дневных чекинов и бонусных транзакций
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/checkin/internal/api"
	db "github.com/glkeru/checkin/internal/db"
	auth "github.com/glkeru/checkin/internal/external/auth"
	chain "github.com/glkeru/checkin/internal/external/chain"
	kafka "github.com/glkeru/checkin/internal/external/kafka"
	wallet "github.com/glkeru/checkin/internal/external/wallet"
	interf "github.com/glkeru/checkin/internal/interfaces"
	services "github.com/glkeru/checkin/internal/services"
	otelinit "github.com/glkeru/checkin/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("CHECKIN_PORT")
	if port == "" {
		panic("env CHECKIN_PORT is not set")
	}

	// tracing
	ctx := context.Background()
	shutdown := otelinit.InitTracer(ctx)
	defer shutdown()

	// storage
	var ledger interf.LedgerStorage
	ldb, err := db.NewLedgerDB(logger)
	if err != nil {
		panic(err)
	}
	ledger = ldb

	var journal interf.JournalStorage
	jdb, err := db.NewJournalDB(logger)
	if err != nil {
		panic(err)
	}
	journal = jdb

	limitsdb, err := db.NewLimitsDB()
	if err != nil {
		panic(err)
	}

	// external
	authsrv, err := auth.NewAuthService()
	if err != nil {
		panic(err)
	}
	walletsrv, err := wallet.NewWalletService()
	if err != nil {
		panic(err)
	}
	watcher, err := chain.NewWatcher(logger)
	if err != nil {
		panic(err)
	}

	// kafka, сервис работает и без публикации событий
	var events interf.EventPublisher
	kafkaevents, err := kafka.GetNewWriter("checkins")
	if err != nil {
		logger.Error(err.Error())
	} else {
		events = kafkaevents
		defer kafkaevents.CloseWriter()
	}

	// services
	lifecycle, err := services.NewLifecycleService(limitsdb, ledger, journal, walletsrv, watcher, events, logger)
	if err != nil {
		panic(err)
	}
	sessions := services.NewSessionManager(lifecycle, authsrv, logger)

	// api handlers
	h := api.NewHandler(sessions, journal, lifecycle.Limits(), logger)
	srv := &http.Server{
		Handler: otelhttp.NewHandler(h, "checkin"),
		Addr:    ":" + port,
		// действия ждут кошелек и подтверждение в цепочке
		WriteTimeout: 5 * time.Minute,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
