package slipverify_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/couponhub/payment/internal/entity"
	"github.com/couponhub/payment/internal/slipverify"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	orderCreatedAt := now.Add(-30 * time.Minute)

	receipt := func(amount string, receiver string, at time.Time) entity.Receipt {
		return entity.Receipt{
			Amount:          decimal.RequireFromString(amount),
			ReceiverAccount: receiver,
			TransactionTime: at,
			TransactionID:   "2025061012000001",
		}
	}

	for _, tt := range []struct {
		name       string
		receipt    entity.Receipt
		wantValid  bool
		wantReason slipverify.Reason
	}{
		{
			name:      "exact match",
			receipt:   receipt("150.00", "0812345678", now.Add(-time.Minute)),
			wantValid: true,
		},
		{
			name:      "amount within tolerance",
			receipt:   receipt("150.004", "0812345678", now.Add(-time.Minute)),
			wantValid: true,
		},
		{
			name:       "amount off by two satang",
			receipt:    receipt("150.02", "0812345678", now.Add(-time.Minute)),
			wantReason: slipverify.ReasonAmountMismatch,
		},
		{
			name:       "underpaid",
			receipt:    receipt("100.00", "0812345678", now.Add(-time.Minute)),
			wantReason: slipverify.ReasonAmountMismatch,
		},
		{
			name:       "empty receipt",
			receipt:    entity.Receipt{},
			wantReason: slipverify.ReasonEmptyReceipt,
		},
		{
			name:      "receiver in international format",
			receipt:   receipt("150.00", "66812345678", now.Add(-time.Minute)),
			wantValid: true,
		},
		{
			name:      "receiver masked with punctuation",
			receipt:   receipt("150.00", "081-234-5678", now.Add(-time.Minute)),
			wantValid: true,
		},
		{
			name:       "wrong receiver",
			receipt:    receipt("150.00", "0899999999", now.Add(-time.Minute)),
			wantReason: slipverify.ReasonReceiverMismatch,
		},
		{
			name:       "paid before the order existed",
			receipt:    receipt("150.00", "0812345678", orderCreatedAt.Add(-10*time.Minute)),
			wantReason: slipverify.ReasonPrematureTransaction,
		},
		{
			name:      "paid just before the order within grace",
			receipt:   receipt("150.00", "0812345678", orderCreatedAt.Add(-4*time.Minute)),
			wantValid: true,
		},
		{
			name:       "receipt older than a day",
			receipt:    receipt("150.00", "0812345678", now.Add(-25*time.Hour)),
			wantReason: slipverify.ReasonExpiredReceipt,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verdict := slipverify.Verify(tt.receipt, decimal.RequireFromString("150.00"), "0812345678", orderCreatedAt, now)

			require.Equal(t, tt.wantValid, verdict.Valid)
			require.Equal(t, tt.wantReason, verdict.Reason)
		})
	}
}

func TestVerify_FirstFailureWins(t *testing.T) {
	t.Parallel()

	// Wrong amount and wrong receiver: the amount check runs first.
	receipt := entity.Receipt{
		Amount:          decimal.NewFromInt(1),
		ReceiverAccount: "0899999999",
		TransactionTime: time.Now(),
		TransactionID:   "ref",
	}

	verdict := slipverify.Verify(receipt, decimal.NewFromInt(500), "0812345678", time.Now().Add(-time.Hour), time.Now())

	require.False(t, verdict.Valid)
	require.Equal(t, slipverify.ReasonAmountMismatch, verdict.Reason)
}

func TestVerify_ExpiryMeasuredAtValidationTime(t *testing.T) {
	t.Parallel()

	// 23h old when paid, 25h old by the time validation runs.
	paidAt := time.Date(2025, 6, 9, 11, 0, 0, 0, time.UTC)
	orderCreatedAt := paidAt.Add(-time.Minute)
	now := paidAt.Add(25 * time.Hour)

	receipt := entity.Receipt{
		Amount:          decimal.NewFromInt(90),
		ReceiverAccount: "0812345678",
		TransactionTime: paidAt,
		TransactionID:   "ref",
	}

	verdict := slipverify.Verify(receipt, decimal.NewFromInt(90), "0812345678", orderCreatedAt, now)

	require.False(t, verdict.Valid)
	require.Equal(t, slipverify.ReasonExpiredReceipt, verdict.Reason)
}

func TestReason_Message(t *testing.T) {
	t.Parallel()

	for _, r := range []slipverify.Reason{
		slipverify.ReasonEmptyReceipt,
		slipverify.ReasonAmountMismatch,
		slipverify.ReasonReceiverMismatch,
		slipverify.ReasonPrematureTransaction,
		slipverify.ReasonExpiredReceipt,
		slipverify.Reason("SOMETHING_ELSE"),
	} {
		require.NotEmpty(t, r.Message(), "reason %s", r)
	}
}
