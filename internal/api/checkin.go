package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	interf "github.com/glkeru/checkin/internal/interfaces"
	model "github.com/glkeru/checkin/internal/models"
	service "github.com/glkeru/checkin/internal/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type CheckInHandler struct {
	router   *mux.Router
	sessions *service.SessionManager
	journal  interf.JournalStorage
	limits   model.Limits
	logger   *zap.Logger
}

func NewHandler(sessions *service.SessionManager, journal interf.JournalStorage, limits model.Limits, logger *zap.Logger) *CheckInHandler {
	router := mux.NewRouter()
	handler := &CheckInHandler{router, sessions, journal, limits, logger}
	router.Use(MiddlewareLog())
	router.HandleFunc("/status", handler.StatusHandler).Methods(http.MethodGet)
	router.HandleFunc("/checkin", handler.CheckInActionHandler).Methods(http.MethodPost)
	router.HandleFunc("/bonus", handler.BonusActionHandler).Methods(http.MethodPost)
	router.HandleFunc("/history", handler.HistoryHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (h *CheckInHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *CheckInHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

type StatusResponse struct {
	Identity       int64    `json:"identity,omitempty"`
	AuthError      string   `json:"authError,omitempty"`
	Today          string   `json:"today"`
	CheckedInToday bool     `json:"checkedInToday"`
	DaysCheckedIn  int      `json:"daysCheckedIn"`
	LastCheckIn    string   `json:"lastCheckIn,omitempty"`
	History        []string `json:"history"`
	BonusToday     int      `json:"bonusToday"`
	BonusRemaining int      `json:"bonusRemaining"`
	CanCheckIn     bool     `json:"canCheckIn"`
	CanSendBonus   bool     `json:"canSendBonus"`
	Wallet         string   `json:"wallet,omitempty"`
	State          string   `json:"state"`
	Status         string   `json:"status,omitempty"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
}

type TxMessage struct {
	UUID      string `json:"uuid"`
	Kind      string `json:"kind"`
	Day       string `json:"day"`
	Hash      string `json:"hash"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type HistoryResponse struct {
	Days         []string    `json:"days"`
	Transactions []TxMessage `json:"transactions"`
}

// сокращенный адрес кошелька для отображения
func shortAddress(addr common.Address) string {
	hex := addr.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}

func bearerToken(req *http.Request) string {
	return strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
}

// Текущее состояние сессии - чистая проекция, вычисляется на каждый запрос
func (h *CheckInHandler) StatusHandler(w http.ResponseWriter, req *http.Request) {
	session, err := h.sessions.Session(req.Context(), bearerToken(req))
	if err != nil {
		h.Log("Session", "StatusHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	snap := session.Snapshot()
	today := service.DayKeyFor(time.Now())

	response := &StatusResponse{
		Identity:       int64(snap.Identity),
		AuthError:      snap.AuthError,
		Today:          today,
		CheckedInToday: snap.CheckIns.Contains(today),
		DaysCheckedIn:  len(snap.CheckIns),
		LastCheckIn:    snap.CheckIns.Last(),
		BonusToday:     snap.Bonus.Count(today),
		BonusRemaining: service.BonusRemaining(snap.Bonus, today, h.limits.Bonus),
		CanCheckIn:     snap.Identity != 0 && service.CanCheckIn(snap.CheckIns, today),
		CanSendBonus:   snap.Identity != 0 && service.CanSendBonus(snap.Bonus, today, h.limits.Bonus),
		State:          snap.State.String(),
		Status:         snap.Status,
	}
	// последние 7 дней, новые сверху
	history := make([]string, 0, 7)
	for i := len(snap.CheckIns) - 1; i >= 0 && len(history) < 7; i-- {
		history = append(history, snap.CheckIns[i])
	}
	response.History = history
	if snap.Connected {
		response.Wallet = shortAddress(snap.Address)
	}

	h.writeJSON(w, http.StatusOK, response)
}

// Чекин: одна zero-value транзакция в день
func (h *CheckInHandler) CheckInActionHandler(w http.ResponseWriter, req *http.Request) {
	h.action(w, req, model.ActionCheckIn)
}

// Бонусная транзакция: до лимита в день
func (h *CheckInHandler) BonusActionHandler(w http.ResponseWriter, req *http.Request) {
	h.action(w, req, model.ActionBonus)
}

func (h *CheckInHandler) action(w http.ResponseWriter, req *http.Request, kind model.ActionKind) {
	session, err := h.sessions.Session(req.Context(), bearerToken(req))
	if err != nil {
		h.Log("Session", "ActionHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	err = session.Do(req.Context(), kind)
	status := session.Snapshot().Status
	if err != nil {
		h.writeJSON(w, actionErrorCode(err), &ActionResponse{Success: false, Status: status})
		return
	}
	h.writeJSON(w, http.StatusOK, &ActionResponse{Success: true, Status: status})
}

// коды ответов по виду ошибки
func actionErrorCode(err error) int {
	var autherr *model.AuthError
	if errors.As(err, &autherr) || errors.Is(err, model.ErrWaitingIdentity) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, model.ErrCheckedInToday) ||
		errors.Is(err, model.ErrBonusLimit) ||
		errors.Is(err, model.ErrTxInProgress) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// История: дни чекинов и транзакции за период
func (h *CheckInHandler) HistoryHandler(w http.ResponseWriter, req *http.Request) {
	session, err := h.sessions.Session(req.Context(), bearerToken(req))
	if err != nil {
		h.Log("Session", "HistoryHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	snap := session.Snapshot()
	if snap.Identity == 0 {
		http.Error(w, model.ErrWaitingIdentity.Error(), http.StatusUnauthorized)
		return
	}

	// период, по умолчанию последние 30 дней
	from := time.Now().Add(-30 * 24 * time.Hour)
	to := time.Now()
	if datefrom := req.URL.Query().Get("from"); datefrom != "" {
		from, err = time.Parse("2006-01-02 15:04:05", datefrom+" 00:00:00")
		if err != nil {
			http.Error(w, "from is not correct", http.StatusBadRequest)
			return
		}
	}
	if dateto := req.URL.Query().Get("to"); dateto != "" {
		to, err = time.Parse("2006-01-02 15:04:05", dateto+" 23:59:59")
		if err != nil {
			http.Error(w, "to is not correct", http.StatusBadRequest)
			return
		}
	}

	txs, err := h.journal.GetTx(req.Context(), snap.Identity, from, to)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		h.Log("Journal get", "HistoryHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := &HistoryResponse{Days: []string(snap.CheckIns), Transactions: make([]TxMessage, 0, len(txs))}
	for _, tx := range txs {
		response.Transactions = append(response.Transactions, TxMessage{
			UUID:      tx.UUID.String(),
			Kind:      string(tx.Kind),
			Day:       tx.Day,
			Hash:      tx.Hash.Hex(),
			Status:    tx.Status,
			Error:     tx.Error,
			CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		})
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *CheckInHandler) writeJSON(w http.ResponseWriter, code int, response any) {
	j, err := json.Marshal(response)
	if err != nil {
		h.Log("Marshal", "writeJSON", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}
