package services

import (
	"fmt"
	"time"

	model "github.com/glkeru/checkin/internal/models"
)

// Ключ дня YYYY-MM-DD по локальному времени.
// Вычисляется заново перед каждой проверкой лимитов, чтобы сессия через полночь
// не работала с устаревшим днем.
func DayKeyFor(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Чекин доступен один раз в день
func CanCheckIn(ledger model.CheckInLedger, day string) bool {
	return !ledger.Contains(day)
}

// Бонусные транзакции доступны до лимита в день
func CanSendBonus(bonus model.BonusLedger, day string, limit int) bool {
	return bonus.Count(day) < limit
}

// Сколько бонусных транзакций осталось на день
func BonusRemaining(bonus model.BonusLedger, day string, limit int) int {
	remaining := limit - bonus.Count(day)
	if remaining < 0 {
		return 0
	}
	return remaining
}
