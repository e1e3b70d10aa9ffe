package chain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	model "github.com/glkeru/checkin/internal/models"
	"go.uber.org/zap"
)

type Watcher struct {
	client *ethclient.Client
	logger *zap.Logger
	poll   time.Duration
}

func NewWatcher(logger *zap.Logger) (*Watcher, error) {
	// config
	rpcurl := os.Getenv("CHAIN_RPC_URL")
	if rpcurl == "" {
		return nil, fmt.Errorf("env CHAIN_RPC_URL is not set")
	}

	// TODO: default
	var poll int
	pollenv := os.Getenv("CHAIN_POLL_SECONDS")
	if pollenv == "" {
		poll = 2
	} else {
		var err error
		poll, err = strconv.Atoi(pollenv)
		if err != nil {
			poll = 2
		}
	}
	if poll == 0 {
		poll = 1
	}

	client, err := ethclient.Dial(rpcurl)
	if err != nil {
		return nil, err
	}
	return &Watcher{client, logger, time.Duration(poll) * time.Second}, nil
}

// Опрос ноды по хэшу транзакции. Канал получает loading-события, пока транзакция
// не замайнена, затем ровно одно терминальное событие (успех или ошибка), после
// чего канал закрывается.
func (w *Watcher) Watch(ctx context.Context, hash common.Hash) (<-chan model.TxEvent, error) {
	events := make(chan model.TxEvent, 1)

	go func() {
		defer close(events)
		ticker := time.NewTicker(w.poll)
		defer ticker.Stop()

		for {
			receipt, err := w.client.TransactionReceipt(ctx, hash)
			if err == nil {
				if receipt.Status == types.ReceiptStatusSuccessful {
					events <- model.TxEvent{Success: true}
				} else {
					events <- model.TxEvent{Err: &model.TxError{Message: "transaction reverted: " + hash.Hex()}}
				}
				return
			}
			if !errors.Is(err, ethereum.NotFound) {
				w.logger.Error("receipt poll",
					zap.Error(err),
					zap.String("hash", hash.Hex()),
				)
				events <- model.TxEvent{Err: &model.TxError{Message: err.Error()}}
				return
			}

			events <- model.TxEvent{Loading: true}
			select {
			case <-ctx.Done():
				events <- model.TxEvent{Err: &model.TxError{Message: ctx.Err().Error()}}
				return
			case <-ticker.C:
			}
		}
	}()

	return events, nil
}
