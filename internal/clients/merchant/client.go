package merchant

import (
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
	const timeout = 3 * time.Second

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type MerchantResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	PromptPayID string    `json:"promptpayId"`
	Status      string    `json:"status"`
}

func (c *Client) Merchant(ctx context.Context, id uuid.UUID) (entity.Merchant, error) {
	reqURL := fmt.Sprintf("%s/api/merchants/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Merchant{}, fmt.Errorf("create request: %w", err)
	}

	jwt := entity.JWTFromCtx(ctx)
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.Merchant{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Merchant{}, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entity.Merchant{}, fmt.Errorf("merchant %s: %w", id, entity.ErrNotFound)
	default:
		return entity.Merchant{}, fmt.Errorf("bad response status %d: %s", resp.StatusCode, body)
	}

	var respData MerchantResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.Merchant{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return entity.Merchant{
		ID:          respData.ID,
		OwnerID:     respData.OwnerID,
		Name:        respData.Name,
		PromptPayID: respData.PromptPayID,
		Status:      entity.MerchantStatus(respData.Status),
	}, nil
}
