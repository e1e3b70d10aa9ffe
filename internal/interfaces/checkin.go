package checkin

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	model "github.com/glkeru/checkin/internal/models"
)

//go:generate mockgen -destination=./../services/mock_checkin_test.go -package=services . LedgerStorage,JournalStorage,LimitStorage,IdentityProvider,Wallet,TxWatcher,EventPublisher

// Хранилище истории чекинов и бонусов (версионированный KV)
type LedgerStorage interface {
	Load(ctx context.Context, id model.Identity) (model.CheckInLedger, model.BonusLedger, error)
	CommitCheckIn(ctx context.Context, id model.Identity, day string) (model.CheckInLedger, error)
	CommitBonus(ctx context.Context, id model.Identity, day string, limit int) (model.BonusLedger, error)
}

// Журнал транзакций
type JournalStorage interface {
	TxCreate(ctx context.Context, tx model.TxRecord) error
	TxFinish(ctx context.Context, hash common.Hash, status string, errmsg string) error
	GetPending(ctx context.Context) ([]model.TxRecord, error)
	GetTx(ctx context.Context, id model.Identity, from time.Time, to time.Time) ([]model.TxRecord, error)
}

// Хранилище лимитов
type LimitStorage interface {
	GetLimits(ctx context.Context) (model.Limits, error)
}

// Сервис аутентификации
type IdentityProvider interface {
	Resolve(ctx context.Context, token string) (model.AuthUser, error)
}

// Провайдер кошелька
type Wallet interface {
	Connectors(ctx context.Context) ([]string, error)
	Connect(ctx context.Context, connector string) (model.Connection, error)
	SendTransaction(ctx context.Context, tx model.TxRequest) (common.Hash, error)
}

// Наблюдатель подтверждения транзакции по хэшу
type TxWatcher interface {
	Watch(ctx context.Context, hash common.Hash) (<-chan model.TxEvent, error)
}

// Публикация событий коммитов
type EventPublisher interface {
	Publish(ctx context.Context, event model.CommitEvent) error
}
