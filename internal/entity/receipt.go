package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the structured result of verifying a payment slip with the
// external verification service. The receiver account may arrive in a
// different normalization than the merchant's configured PromptPay id.
type Receipt struct {
	Amount          decimal.Decimal
	ReceiverAccount string
	TransactionTime time.Time
	TransactionID   string
	Sender          ReceiptSender // Optional, not every bank reports it.
}

type ReceiptSender struct {
	Account string
	Name    string
}

func (r Receipt) IsEmpty() bool {
	return r.TransactionID == "" && r.ReceiverAccount == "" && r.Amount.IsZero()
}
