package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/couponhub/payment/internal/entity"
	"github.com/couponhub/payment/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   time.Second,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type ValidateTokenRequest struct {
	Token string `json:"accessToken"`
}

type ValidateTokenResponse struct {
	ID        uuid.UUID       `json:"id"`
	LastName  string          `json:"lastName"`
	FirstName string          `json:"firstName"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
}

func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(ValidateTokenRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.User{}, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.User{}, fmt.Errorf("%w: %s", entity.ErrForbidden, body)
	default:
		return entity.User{}, fmt.Errorf("bad response status %d: %s", resp.StatusCode, body)
	}

	var respData ValidateTokenResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.User{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return entity.User{
		ID:        respData.ID,
		FirstName: respData.FirstName,
		LastName:  respData.LastName,
		Email:     respData.Email,
		Role:      respData.Role,
	}, nil
}
