package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	model "github.com/glkeru/checkin/internal/models"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// формат хранения: префикс и версия входят в ключ,
// при смене формата версия обязана поменяться
const (
	storageNamespace = "daily-check-in"
	storageVersion   = "v2"
)

type LedgerDB struct {
	client *redis.Client
	logger *zap.Logger
}

func NewLedgerDB(logger *zap.Logger) (db *LedgerDB, err error) {

	// config
	addr := os.Getenv("CHECKIN_REDIS_URL")
	if addr == "" {
		return nil, fmt.Errorf("env CHECKIN_REDIS_URL is not set")
	}
	user := os.Getenv("CHECKIN_REDIS_USER")
	pwd := os.Getenv("CHECKIN_REDIS_PWD")

	// redis
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Username:    user,
		Password:    pwd,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = client.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &LedgerDB{client, logger}, nil
}

func checkInKey(id model.Identity) string {
	return fmt.Sprintf("%s:%s:%d", storageNamespace, storageVersion, id)
}

func bonusKey(id model.Identity) string {
	return fmt.Sprintf("%s:bonus:%s:%d", storageNamespace, storageVersion, id)
}

// битые данные считаем отсутствующими: возвращаем пустой список дней
func parseDays(raw string) model.CheckInLedger {
	if raw == "" {
		return model.CheckInLedger{}
	}
	var days []string
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return model.CheckInLedger{}
	}
	return model.NormalizeDays(days)
}

// битые данные считаем отсутствующими: возвращаем пустую мапу
func parseCounts(raw string) model.BonusLedger {
	if raw == "" {
		return model.BonusLedger{}
	}
	counts := model.BonusLedger{}
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		return model.BonusLedger{}
	}
	return counts
}

// Загрузка обоих леджеров пользователя
func (l *LedgerDB) Load(ctx context.Context, id model.Identity) (model.CheckInLedger, model.BonusLedger, error) {
	var rawDays, rawCounts string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		val, err := l.client.Get(gctx, checkInKey(id)).Result()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
		rawDays = val
		return nil
	})
	g.Go(func() error {
		val, err := l.client.Get(gctx, bonusKey(id)).Result()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
		rawCounts = val
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return parseDays(rawDays), parseCounts(rawCounts), nil
}

// Коммит чекина: идемпотентный, день добавляется один раз, запись синхронная
func (l *LedgerDB) CommitCheckIn(ctx context.Context, id model.Identity, day string) (model.CheckInLedger, error) {
	raw, err := l.client.Get(ctx, checkInKey(id)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	ledger := parseDays(raw)
	if ledger.Contains(day) {
		return ledger, nil
	}
	ledger = ledger.Add(day)

	data, err := json.Marshal([]string(ledger))
	if err != nil {
		return nil, err
	}
	// без TTL - хранилище постоянное
	err = l.client.Set(ctx, checkInKey(id), data, 0).Err()
	if err != nil {
		l.logger.Error("ledger write",
			zap.Error(err),
			zap.String("key", checkInKey(id)),
		)
		return nil, err
	}
	return ledger, nil
}

// Коммит бонуса: min(count+1, limit), запись синхронная
func (l *LedgerDB) CommitBonus(ctx context.Context, id model.Identity, day string, limit int) (model.BonusLedger, error) {
	raw, err := l.client.Get(ctx, bonusKey(id)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	counts := parseCounts(raw)
	counts.Increment(day, limit)

	data, err := json.Marshal(map[string]int(counts))
	if err != nil {
		return nil, err
	}
	err = l.client.Set(ctx, bonusKey(id), data, 0).Err()
	if err != nil {
		l.logger.Error("ledger write",
			zap.Error(err),
			zap.String("key", bonusKey(id)),
		)
		return nil, err
	}
	return counts, nil
}
