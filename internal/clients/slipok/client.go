// Package slipok calls the external slip-verification service that extracts
// structured transaction data from a bank payment slip.
package slipok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/couponhub/payment/internal/entity"
	"github.com/couponhub/payment/pkg/config"
	"github.com/couponhub/payment/pkg/transport"
)

type Client struct {
	cfg config.SlipOK
	c   *http.Client
}

func NewClient(cfg config.SlipOK) *Client {
	const timeout = 10 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type VerifySlipRequest struct {
	RefNbr string `json:"refNbr"`
}

// VerifySlipResponse mirrors the verifier's shape. The service reports fields
// inconsistently across banks, so everything below the success flag is
// optional and validated before use.
type VerifySlipResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *SlipData `json:"data"`
}

type SlipData struct {
	TransRef       string       `json:"transRef"`
	TransTimestamp string       `json:"transTimestamp"` // ISO-8601
	Amount         *json.Number `json:"amount"`
	Receiver       *SlipAccount `json:"receiver"`
	Sender         *SlipAccount `json:"sender"`
}

type SlipAccount struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	Proxy   string `json:"proxy"` // PromptPay id the transfer addressed, when one was used.
}

// VerifySlip resolves a slip reference number into a structured receipt.
// Responses missing required fields are rejected with
// entity.ErrMalformedReceipt at this boundary instead of propagating partial
// data inward.
func (c *Client) VerifySlip(ctx context.Context, refNbr string) (entity.Receipt, error) {
	b, err := json.Marshal(VerifySlipRequest{RefNbr: refNbr})
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := c.cfg.BaseURL + "/api/v1/slips/verify"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Authorization", c.cfg.APIKey)

	resp, err := c.c.Do(req)
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.Receipt{}, fmt.Errorf("bad response status %d: %s", resp.StatusCode, body)
	}

	var respData VerifySlipResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if !respData.Success {
		return entity.Receipt{}, fmt.Errorf("%w: verifier rejected slip: %s", entity.ErrMalformedReceipt, respData.Message)
	}

	return receiptFromSlipData(respData.Data)
}

func receiptFromSlipData(data *SlipData) (entity.Receipt, error) {
	if data == nil {
		return entity.Receipt{}, fmt.Errorf("%w: no data", entity.ErrMalformedReceipt)
	}

	if data.TransRef == "" {
		return entity.Receipt{}, fmt.Errorf("%w: no transaction reference", entity.ErrMalformedReceipt)
	}

	if data.Amount == nil {
		return entity.Receipt{}, fmt.Errorf("%w: no amount", entity.ErrMalformedReceipt)
	}

	amount, err := decimal.NewFromString(data.Amount.String())
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("%w: bad amount %q", entity.ErrMalformedReceipt, data.Amount.String())
	}

	if data.Receiver == nil || (data.Receiver.Proxy == "" && data.Receiver.Account == "") {
		return entity.Receipt{}, fmt.Errorf("%w: no receiver account", entity.ErrMalformedReceipt)
	}

	// The proxy is the PromptPay id the payer actually addressed; the raw
	// account is a masked fallback some banks report instead.
	receiverAccount := data.Receiver.Proxy
	if receiverAccount == "" {
		receiverAccount = data.Receiver.Account
	}

	transTime, err := time.Parse(time.RFC3339, data.TransTimestamp)
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("%w: bad transaction timestamp %q", entity.ErrMalformedReceipt, data.TransTimestamp)
	}

	receipt := entity.Receipt{
		Amount:          amount,
		ReceiverAccount: receiverAccount,
		TransactionTime: transTime,
		TransactionID:   data.TransRef,
	}

	if data.Sender != nil {
		receipt.Sender = entity.ReceiptSender{
			Account: data.Sender.Account,
			Name:    data.Sender.Name,
		}
	}

	return receipt, nil
}
