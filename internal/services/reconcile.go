package services

import (
	"context"
	"sync"
	"time"

	model "github.com/glkeru/checkin/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Восстановление после падения: транзакции, отправленные, но не дождавшиеся
// подтверждения, докоммичиваются. Строка журнала в статусе pending служит
// гардом от повторного коммита.
func (l *LifecycleService) Reconcile(ctx context.Context, workers int) error {
	pending, err := l.journal.GetPending(ctx)
	if err != nil {
		return err
	}
	if workers <= 0 {
		workers = 1
	}

	// семафор
	semch := make(chan struct{}, workers)
	wg := &sync.WaitGroup{}
	for _, tx := range pending {
		semch <- struct{}{}
		wg.Add(1)
		go func(tx model.TxRecord) {
			defer func() {
				wg.Done()
				<-semch
			}()
			l.reconcileTx(ctx, tx)
		}(tx)
	}
	wg.Wait()
	return nil
}

func (l *LifecycleService) reconcileTx(ctx context.Context, tx model.TxRecord) {
	wctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	events, err := l.watcher.Watch(wctx, tx.Hash)
	if err != nil {
		l.logger.Error("reconcile watch",
			zap.Error(err),
			zap.String("hash", tx.Hash.Hex()),
		)
		return
	}

	for event := range events {
		switch {
		case event.Loading:
			continue
		case event.Success:
			if err := l.commitRecord(ctx, tx); err != nil {
				l.logger.Error("reconcile commit",
					zap.Error(err),
					zap.String("hash", tx.Hash.Hex()),
				)
				return
			}
			if err := l.journal.TxFinish(ctx, tx.Hash, model.TxConfirmed, ""); err != nil {
				l.logger.Error("journal finish", zap.Error(err), zap.String("hash", tx.Hash.Hex()))
			}
			if l.events != nil {
				err := l.events.Publish(ctx, model.CommitEvent{
					Identity: tx.Identity,
					Kind:     tx.Kind,
					Day:      tx.Day,
					Hash:     tx.Hash.Hex(),
					At:       l.now(),
				})
				if err != nil {
					l.logger.Error("publish commit event", zap.Error(err))
				}
			}
			txCommitted.With(prometheus.Labels{"kind": string(tx.Kind)}).Inc()
			return
		case event.Err != nil:
			// таймаут ожидания не помечаем failed - транзакция может быть
			// еще не замайнена, заберем на следующем запуске
			if wctx.Err() != nil {
				return
			}
			if err := l.journal.TxFinish(ctx, tx.Hash, model.TxFailed, event.Err.Error()); err != nil {
				l.logger.Error("journal finish", zap.Error(err), zap.String("hash", tx.Hash.Hex()))
			}
			return
		}
	}
}

func (l *LifecycleService) commitRecord(ctx context.Context, tx model.TxRecord) error {
	switch tx.Kind {
	case model.ActionCheckIn:
		_, err := l.store.CommitCheckIn(ctx, tx.Identity, tx.Day)
		return err
	case model.ActionBonus:
		_, err := l.store.CommitBonus(ctx, tx.Identity, tx.Day, l.limits.Bonus)
		return err
	}
	return nil
}
