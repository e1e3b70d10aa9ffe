package models

import (
	"errors"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// Идентификатор пользователя (fid), 0 = не определен
type Identity int64

// Вид действия
type ActionKind string

const (
	ActionNone    ActionKind = ""
	ActionCheckIn ActionKind = "checkin"
	ActionBonus   ActionKind = "bonus"
)

// Состояния жизненного цикла транзакции
type State int

const (
	StateIdle State = iota
	StateConnectingWallet
	StateAwaitingSubmission
	StateAwaitingConfirmation
	StateCommitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConnectingWallet:
		return "connecting_wallet"
	case StateAwaitingSubmission:
		return "awaiting_submission"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	}
	return "idle"
}

// Дни с подтвержденным чекином, отсортированы по возрастанию, без дублей
type CheckInLedger []string

func (l CheckInLedger) Contains(day string) bool {
	for _, d := range l {
		if d == day {
			return true
		}
	}
	return false
}

// добавление дня, если день уже есть - не меняем
func (l CheckInLedger) Add(day string) CheckInLedger {
	if l.Contains(day) {
		return l
	}
	updated := append(append(CheckInLedger{}, l...), day)
	sort.Strings(updated)
	return updated
}

func (l CheckInLedger) Last() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}

// сортировка и удаление дублей после чтения из хранилища
func NormalizeDays(days []string) CheckInLedger {
	seen := make(map[string]struct{}, len(days))
	ledger := make(CheckInLedger, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		ledger = append(ledger, d)
	}
	sort.Strings(ledger)
	return ledger
}

// Кол-во бонусных транзакций по дням
type BonusLedger map[string]int

func (b BonusLedger) Count(day string) int {
	return b[day]
}

// инкремент с потолком: min(count+1, limit)
func (b BonusLedger) Increment(day string, limit int) int {
	next := b[day] + 1
	if next > limit {
		next = limit
	}
	b[day] = next
	return next
}

// Дневные лимиты
type Limits struct {
	CheckIn int `bson:"checkin" json:"checkin"`
	Bonus   int `bson:"bonus" json:"bonus"`
}

func DefaultLimits() Limits {
	return Limits{CheckIn: 1, Bonus: 10}
}

// Пользователь из сервиса аутентификации
type AuthUser struct {
	FID       int64 `json:"fid"`
	IssuedAt  int64 `json:"issuedAt,omitempty"`
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// Статусы транзакции в журнале
const (
	TxPending   = "pending"
	TxConfirmed = "confirmed"
	TxFailed    = "failed"
)

// Запись журнала транзакций
type TxRecord struct {
	UUID      uuid.UUID
	Identity  Identity
	Kind      ActionKind
	Day       string
	Hash      common.Hash
	Status    string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Событие подтвержденного коммита (kafka)
type CommitEvent struct {
	Identity Identity   `json:"identity"`
	Kind     ActionKind `json:"kind"`
	Day      string     `json:"day"`
	Hash     string     `json:"hash"`
	At       time.Time  `json:"at"`
}

// Запрос на отправку транзакции, Value всегда 0
type TxRequest struct {
	To    common.Address
	Value *big.Int
}

// Событие наблюдателя подтверждений
type TxEvent struct {
	Loading bool
	Success bool
	Err     error
}

// Подключение кошелька
type Connection struct {
	Accounts []common.Address
}

var (
	ErrNotFound        = errors.New("not found")
	ErrWaitingIdentity = errors.New("waiting for user identity")
	ErrCheckedInToday  = errors.New("you already checked in today")
	ErrBonusLimit      = errors.New("daily bonus limit reached")
	ErrTxInProgress    = errors.New("transaction already in progress")
	ErrNoConnector     = errors.New("no wallet connector available")
	ErrNoWallet        = errors.New("wallet not available")
)

// Ошибка аутентификации - блокирует все действия до конца сессии
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "unable to verify identity"
	}
	return e.Message
}

// Ошибка кошелька (подключение отклонено, нет адреса)
type WalletError struct {
	Message string
}

func (e *WalletError) Error() string {
	if e.Message == "" {
		return "transaction cancelled"
	}
	return e.Message
}

// Ошибка отправки или подтверждения транзакции
type TxError struct {
	Message string
}

func (e *TxError) Error() string {
	if e.Message == "" {
		return "transaction failed"
	}
	return e.Message
}
