package services

import (
	"context"
	"sync"

	interf "github.com/glkeru/checkin/internal/interfaces"
	model "github.com/glkeru/checkin/internal/models"
	"go.uber.org/zap"
)

// Сессии по пользователям. Identity резолвится один раз при создании сессии,
// ошибка аутентификации залипает на сессию до конца - ретраев нет.
type SessionManager struct {
	service *LifecycleService
	auth    interf.IdentityProvider
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[model.Identity]*Session
	tokens   map[string]model.Identity
	denied   map[string]*Session
}

func NewSessionManager(service *LifecycleService, auth interf.IdentityProvider, logger *zap.Logger) *SessionManager {
	return &SessionManager{
		service:  service,
		auth:     auth,
		logger:   logger,
		sessions: make(map[model.Identity]*Session),
		tokens:   make(map[string]model.Identity),
		denied:   make(map[string]*Session),
	}
}

func (m *SessionManager) Session(ctx context.Context, token string) (*Session, error) {
	// токен резолвится один раз
	m.mu.Lock()
	if session, ok := m.denied[token]; ok {
		m.mu.Unlock()
		return session, nil
	}
	if id, ok := m.tokens[token]; ok {
		session := m.sessions[id]
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	user, err := m.auth.Resolve(ctx, token)
	if err != nil {
		m.logger.Error("auth resolve", zap.Error(err))
		session := &Session{service: m.service, authErr: err}
		m.mu.Lock()
		m.denied[token] = session
		m.mu.Unlock()
		return session, nil
	}

	id := model.Identity(user.FID)
	m.mu.Lock()
	if session, ok := m.sessions[id]; ok {
		m.tokens[token] = id
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	// загрузка леджеров при создании сессии
	checkins, bonus, err := m.service.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	session := &Session{
		service:  m.service,
		identity: id,
		checkins: checkins,
		bonus:    bonus,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if exist, ok := m.sessions[id]; ok {
		m.tokens[token] = id
		return exist, nil
	}
	m.sessions[id] = session
	m.tokens[token] = id
	return session, nil
}
