// Job - восстановление незавершенных транзакций
// Отправленные до падения сервиса транзакции дожидаются подтверждения и коммитятся
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	db "github.com/glkeru/checkin/internal/db"
	chain "github.com/glkeru/checkin/internal/external/chain"
	kafka "github.com/glkeru/checkin/internal/external/kafka"
	wallet "github.com/glkeru/checkin/internal/external/wallet"
	interf "github.com/glkeru/checkin/internal/interfaces"
	services "github.com/glkeru/checkin/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

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
	walletsrv, err := wallet.NewWalletService()
	if err != nil {
		panic(err)
	}
	watcher, err := chain.NewWatcher(logger)
	if err != nil {
		panic(err)
	}

	// kafka, джоб работает и без публикации событий
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

	// TODO: default
	var semcount int
	semenv := os.Getenv("CHECKIN_RECONCILE_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	// os signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	err = lifecycle.Reconcile(ctx, semcount)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Job reconcile is finished")
}
