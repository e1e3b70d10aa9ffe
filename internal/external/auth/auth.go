package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	model "github.com/glkeru/checkin/internal/models"
)

type AuthService struct {
	url    string
	client *http.Client
}

type authResponse struct {
	Success bool            `json:"success"`
	User    *model.AuthUser `json:"user,omitempty"`
	Message string          `json:"message,omitempty"`
}

func NewAuthService() (*AuthService, error) {
	// config
	url := os.Getenv("AUTH_URL")
	if url == "" {
		return nil, fmt.Errorf("env AUTH_URL is not set")
	}
	client := &http.Client{Timeout: 5 * time.Second}
	return &AuthService{url, client}, nil
}

// Проверка идентичности пользователя, вызывается один раз на сессию.
// Любая ошибка - AuthError, повторных попыток нет.
func (a *AuthService) Resolve(ctx context.Context, token string) (model.AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return model.AuthUser{}, &model.AuthError{Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return model.AuthUser{}, &model.AuthError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.AuthUser{}, &model.AuthError{Message: "auth service HTTP error: " + resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.AuthUser{}, &model.AuthError{Message: err.Error()}
	}

	data := &authResponse{}
	err = json.Unmarshal(body, data)
	if err != nil {
		return model.AuthUser{}, &model.AuthError{Message: err.Error()}
	}
	if !data.Success || data.User == nil {
		return model.AuthUser{}, &model.AuthError{Message: data.Message}
	}
	return *data.User, nil
}
