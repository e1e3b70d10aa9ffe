package services

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	interf "github.com/glkeru/checkin/internal/interfaces"
	model "github.com/glkeru/checkin/internal/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// метрики жизненного цикла
var (
	txCommitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_tx_committed_total",
			Help: "Кол-во подтвержденных и закоммиченных транзакций",
		},
		[]string{"kind"},
	)
	txFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_tx_failed_total",
			Help: "Кол-во неуспешных транзакций",
		},
		[]string{"kind"},
	)
)

type LifecycleService struct {
	logger  *zap.Logger
	store   interf.LedgerStorage
	journal interf.JournalStorage
	wallet  interf.Wallet
	watcher interf.TxWatcher
	events  interf.EventPublisher
	limits  model.Limits
	now     func() time.Time
}

// Лимиты загружаются один раз при старте сервиса
func NewLifecycleService(limitsdb interf.LimitStorage, store interf.LedgerStorage, journal interf.JournalStorage,
	wallet interf.Wallet, watcher interf.TxWatcher, events interf.EventPublisher, logger *zap.Logger) (*LifecycleService, error) {
	limits, err := limitsdb.GetLimits(context.Background())
	if err != nil {
		return nil, err
	}
	return &LifecycleService{logger, store, journal, wallet, watcher, events, limits, time.Now}, nil
}

func (l *LifecycleService) Limits() model.Limits {
	return l.limits
}

// Сессия одного пользователя: кэш леджеров, подключенный кошелек
// и транзакция в полете. Все гейты проверяются здесь.
type Session struct {
	service *LifecycleService

	identity model.Identity
	authErr  error

	mu            sync.Mutex
	checkins      model.CheckInLedger
	bonus         model.BonusLedger
	address       common.Address
	connected     bool
	pending       model.ActionKind
	lastCommitted common.Hash
	state         model.State
	status        string
}

// Снимок сессии для отображения
type Snapshot struct {
	Identity  model.Identity
	AuthError string
	State     model.State
	Status    string
	CheckIns  model.CheckInLedger
	Bonus     model.BonusLedger
	Address   common.Address
	Connected bool
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Identity:  s.identity,
		State:     s.state,
		Status:    s.status,
		CheckIns:  append(model.CheckInLedger{}, s.checkins...),
		Bonus:     model.BonusLedger{},
		Address:   s.address,
		Connected: s.connected,
	}
	for day, count := range s.bonus {
		snap.Bonus[day] = count
	}
	if s.authErr != nil {
		snap.AuthError = s.authErr.Error()
	}
	return snap
}

// Полный цикл действия: гейты -> кошелек -> отправка -> подтверждение -> коммит.
// Блокирует до терминального состояния, конкурентный второй вызов отклоняется гейтом.
func (s *Session) Do(ctx context.Context, kind model.ActionKind) error {
	day, err := s.begin(kind)
	if err != nil {
		return err
	}
	defer s.idle()

	err = s.run(ctx, kind, day)
	if err != nil {
		s.fail(kind, err)
		return err
	}
	return nil
}

// Гейты, без смены состояния при отказе.
// Ключ дня вычисляется непосредственно перед проверкой лимитов.
func (s *Session) begin(kind model.ActionKind) (day string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ""
	if s.authErr != nil {
		s.status = s.authErr.Error()
		return "", s.authErr
	}
	if s.identity == 0 {
		s.status = "Waiting for user identity..."
		return "", model.ErrWaitingIdentity
	}

	day = DayKeyFor(s.service.now())
	switch kind {
	case model.ActionCheckIn:
		if !CanCheckIn(s.checkins, day) {
			s.status = "You already checked in today"
			return "", model.ErrCheckedInToday
		}
	case model.ActionBonus:
		if !CanSendBonus(s.bonus, day, s.service.limits.Bonus) {
			s.status = "Daily bonus limit reached."
			return "", model.ErrBonusLimit
		}
	}
	if s.pending != model.ActionNone {
		s.status = "Transaction already in progress..."
		return "", model.ErrTxInProgress
	}

	// PendingAction фиксируется до отправки, чтобы подтверждение
	// было отнесено к правильному действию
	s.pending = kind
	return day, nil
}

func (s *Session) run(ctx context.Context, kind model.ActionKind, day string) error {
	s.mu.Lock()
	connected := s.connected
	addr := s.address
	s.mu.Unlock()

	// подключение кошелька: первый предложенный коннектор
	if !connected {
		s.transition(model.StateConnectingWallet, "Connecting wallet...")
		connectors, err := s.service.wallet.Connectors(ctx)
		if err != nil {
			return err
		}
		if len(connectors) == 0 {
			return model.ErrNoConnector
		}
		conn, err := s.service.wallet.Connect(ctx, connectors[0])
		if err != nil {
			return err
		}
		if len(conn.Accounts) > 0 {
			addr = conn.Accounts[0]
			s.mu.Lock()
			s.address = addr
			s.connected = true
			s.mu.Unlock()
		}
	}
	if addr == (common.Address{}) {
		return model.ErrNoWallet
	}

	// отправка транзакции с нулевым значением на свой адрес
	if kind == model.ActionBonus {
		s.transition(model.StateAwaitingSubmission, "Confirm the bonus 0 ETH transaction...")
	} else {
		s.transition(model.StateAwaitingSubmission, "Confirm the 0 ETH transaction...")
	}
	hash, err := s.service.wallet.SendTransaction(ctx, model.TxRequest{To: addr, Value: big.NewInt(0)})
	if err != nil {
		return err
	}

	// журнал не влияет на жизненный цикл
	err = s.service.journal.TxCreate(ctx, model.TxRecord{
		UUID:     uuid.New(),
		Identity: s.identity,
		Kind:     kind,
		Day:      day,
		Hash:     hash,
		Status:   model.TxPending,
	})
	if err != nil {
		s.service.logger.Error("journal create",
			zap.Error(err),
			zap.String("hash", hash.Hex()),
		)
	}

	// ожидание подтверждения конкретного хэша
	s.transition(model.StateAwaitingConfirmation, "Waiting for transaction confirmation...")
	events, err := s.service.watcher.Watch(ctx, hash)
	if err != nil {
		s.finishJournal(ctx, hash, model.TxFailed, err.Error())
		return err
	}
	for event := range events {
		switch {
		case event.Loading:
			s.setStatus("Waiting for transaction confirmation...")
		case event.Success:
			if err := s.commit(ctx, kind, day, hash); err != nil {
				s.finishJournal(ctx, hash, model.TxFailed, err.Error())
				return err
			}
		case event.Err != nil:
			s.finishJournal(ctx, hash, model.TxFailed, event.Err.Error())
			return event.Err
		}
	}

	s.mu.Lock()
	committed := s.lastCommitted == hash
	s.mu.Unlock()
	if !committed {
		err := &model.TxError{Message: "confirmation watcher stopped"}
		s.finishJournal(ctx, hash, model.TxFailed, err.Message)
		return err
	}
	return nil
}

// Коммит по подтверждению: не больше одного раза на хэш,
// повторные события подтверждения игнорируются
func (s *Session) commit(ctx context.Context, kind model.ActionKind, day string, hash common.Hash) error {
	s.mu.Lock()
	if s.lastCommitted == hash {
		s.mu.Unlock()
		return nil
	}
	// гард выставляется до записи, чтобы дубликат события
	// не привел к повторному коммиту
	s.lastCommitted = hash
	s.mu.Unlock()

	switch kind {
	case model.ActionCheckIn:
		ledger, err := s.service.store.CommitCheckIn(ctx, s.identity, day)
		if err != nil {
			s.service.logger.Error("ledger commit",
				zap.Error(err),
				zap.String("kind", string(kind)),
				zap.String("hash", hash.Hex()),
			)
			return err
		}
		s.mu.Lock()
		s.checkins = ledger
		s.mu.Unlock()
		s.setStatus("Check-in confirmed on Base.")
	case model.ActionBonus:
		counts, err := s.service.store.CommitBonus(ctx, s.identity, day, s.service.limits.Bonus)
		if err != nil {
			s.service.logger.Error("ledger commit",
				zap.Error(err),
				zap.String("kind", string(kind)),
				zap.String("hash", hash.Hex()),
			)
			return err
		}
		s.mu.Lock()
		s.bonus = counts
		s.mu.Unlock()
		s.setStatus("Bonus transaction confirmed.")
	}

	s.finishJournal(ctx, hash, model.TxConfirmed, "")
	s.publish(ctx, kind, day, hash)
	txCommitted.With(prometheus.Labels{"kind": string(kind)}).Inc()

	s.mu.Lock()
	s.pending = model.ActionNone
	s.state = model.StateCommitted
	s.mu.Unlock()
	return nil
}

func (s *Session) publish(ctx context.Context, kind model.ActionKind, day string, hash common.Hash) {
	if s.service.events == nil {
		return
	}
	err := s.service.events.Publish(ctx, model.CommitEvent{
		Identity: s.identity,
		Kind:     kind,
		Day:      day,
		Hash:     hash.Hex(),
		At:       s.service.now(),
	})
	if err != nil {
		s.service.logger.Error("publish commit event", zap.Error(err))
	}
}

func (s *Session) finishJournal(ctx context.Context, hash common.Hash, status string, errmsg string) {
	err := s.service.journal.TxFinish(ctx, hash, status, errmsg)
	if err != nil {
		s.service.logger.Error("journal finish",
			zap.Error(err),
			zap.String("hash", hash.Hex()),
		)
	}
}

// Любая ошибка провайдера: PendingAction снимается, леджер не меняется
func (s *Session) fail(kind model.ActionKind, err error) {
	txFailed.With(prometheus.Labels{"kind": string(kind)}).Inc()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = model.ActionNone
	s.state = model.StateFailed
	s.status = err.Error()
}

func (s *Session) transition(state model.State, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.status = status
}

func (s *Session) setStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// возврат в Idle после терминального состояния
func (s *Session) idle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = model.ActionNone
	s.state = model.StateIdle
}
