package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	model "github.com/glkeru/checkin/internal/models"
)

type WalletService struct {
	url    string
	client *http.Client
}

func NewWalletService() (*WalletService, error) {
	// config
	url := os.Getenv("WALLET_URL")
	if url == "" {
		return nil, fmt.Errorf("env WALLET_URL is not set")
	}
	client := &http.Client{Timeout: 60 * time.Second} // подключение и отправка ждут действий пользователя
	return &WalletService{url, client}, nil
}

type connectorsResponse struct {
	Connectors []string `json:"connectors"`
}

type connectRequest struct {
	Connector string `json:"connector"`
}

type connectResponse struct {
	Accounts []common.Address `json:"accounts"`
	Message  string           `json:"message,omitempty"`
}

type sendRequest struct {
	To    common.Address `json:"to"`
	Value *hexutil.Big   `json:"value"`
}

type sendResponse struct {
	Hash    common.Hash `json:"hash"`
	Message string      `json:"message,omitempty"`
}

// Доступные коннекторы провайдера
func (w *WalletService) Connectors(ctx context.Context) ([]string, error) {
	body, err := w.call(ctx, http.MethodGet, "/connectors", nil)
	if err != nil {
		return nil, err
	}
	data := &connectorsResponse{}
	if err := json.Unmarshal(body, data); err != nil {
		return nil, &model.WalletError{Message: err.Error()}
	}
	return data.Connectors, nil
}

// Запрос подключения кошелька, может быть отклонен пользователем
func (w *WalletService) Connect(ctx context.Context, connector string) (model.Connection, error) {
	payload, err := json.Marshal(&connectRequest{connector})
	if err != nil {
		return model.Connection{}, err
	}
	body, err := w.call(ctx, http.MethodPost, "/connect", payload)
	if err != nil {
		return model.Connection{}, err
	}
	data := &connectResponse{}
	if err := json.Unmarshal(body, data); err != nil {
		return model.Connection{}, &model.WalletError{Message: err.Error()}
	}
	return model.Connection{Accounts: data.Accounts}, nil
}

// Отправка транзакции, value всегда 0
func (w *WalletService) SendTransaction(ctx context.Context, tx model.TxRequest) (common.Hash, error) {
	payload, err := json.Marshal(&sendRequest{To: tx.To, Value: (*hexutil.Big)(tx.Value)})
	if err != nil {
		return common.Hash{}, err
	}
	body, err := w.call(ctx, http.MethodPost, "/transactions", payload)
	if err != nil {
		return common.Hash{}, err
	}
	data := &sendResponse{}
	if err := json.Unmarshal(body, data); err != nil {
		return common.Hash{}, &model.TxError{Message: err.Error()}
	}
	return data.Hash, nil
}

func (w *WalletService) call(ctx context.Context, method string, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewBuffer(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, w.url+path, reader)
	if err != nil {
		return nil, &model.WalletError{Message: err.Error()}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, &model.WalletError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.WalletError{Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		// провайдер возвращает текст отказа в message
		data := &sendResponse{}
		if json.Unmarshal(body, data) == nil && data.Message != "" {
			return nil, &model.WalletError{Message: data.Message}
		}
		return nil, &model.WalletError{Message: "wallet provider HTTP error: " + resp.Status}
	}
	return body, nil
}
