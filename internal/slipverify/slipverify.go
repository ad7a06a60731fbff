// Package slipverify decides whether an externally verified payment slip
// satisfies a pending order. Every rejection here is an expected business
// outcome (wrong or stale screenshot), not a system error.
package slipverify

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/couponhub/payment/internal/entity"
)

type Reason string

const (
	ReasonEmptyReceipt         Reason = "EMPTY_RECEIPT"
	ReasonAmountMismatch       Reason = "AMOUNT_MISMATCH"
	ReasonReceiverMismatch     Reason = "RECEIVER_MISMATCH"
	ReasonPrematureTransaction Reason = "PREMATURE_TRANSACTION"
	ReasonExpiredReceipt       Reason = "EXPIRED_RECEIPT"
)

func (r Reason) String() string {
	return string(r)
}

// Message returns the user-facing explanation, so the payer can correct the
// upload.
func (r Reason) Message() string {
	switch r {
	case ReasonEmptyReceipt:
		return "The slip could not be read. Please upload a clearer screenshot."
	case ReasonAmountMismatch:
		return "The slip amount does not match the order amount."
	case ReasonReceiverMismatch:
		return "The slip was paid to a different account."
	case ReasonPrematureTransaction:
		return "The slip predates this order. Please pay the order and upload the new slip."
	case ReasonExpiredReceipt:
		return "The slip is older than 24 hours and can no longer be accepted."
	default:
		return "The slip could not be verified."
	}
}

type Verdict struct {
	Valid  bool
	Reason Reason // Set only when Valid is false.
}

var valid = Verdict{Valid: true}

func invalid(r Reason) Verdict {
	return Verdict{Reason: r}
}

const (
	// prematureGrace absorbs clock skew between the payer device, the bank
	// and the verification service.
	prematureGrace = 5 * time.Minute
	// receiptTTL bounds how old a slip may be at validation time.
	receiptTTL = 24 * time.Hour
)

// amountTolerance absorbs rounding drift introduced by the upstream verifier.
var amountTolerance = decimal.New(1, -2) // 0.01

var nonDigitRe = regexp.MustCompile(`\D`)

// Verify checks receipt against the expected order context. Checks run in a
// fixed order and the first failure wins. now is the validation time, passed
// in so the decision stays pure.
func Verify(
	receipt entity.Receipt,
	expectedAmount decimal.Decimal,
	expectedReceiver string,
	orderCreatedAt time.Time,
	now time.Time,
) Verdict {
	if receipt.IsEmpty() {
		return invalid(ReasonEmptyReceipt)
	}

	if receipt.Amount.Sub(expectedAmount).Abs().GreaterThan(amountTolerance) {
		return invalid(ReasonAmountMismatch)
	}

	if normalizeAccount(receipt.ReceiverAccount) != normalizeAccount(expectedReceiver) {
		return invalid(ReasonReceiverMismatch)
	}

	if receipt.TransactionTime.Before(orderCreatedAt.Add(-prematureGrace)) {
		return invalid(ReasonPrematureTransaction)
	}

	if now.Sub(receipt.TransactionTime) > receiptTTL {
		return invalid(ReasonExpiredReceipt)
	}

	return valid
}

// normalizeAccount reduces an account string to comparable digits. The two
// sides of the comparison may arrive in different national or international
// formats with no shared canonical form upstream, so both the "66" country
// code and the "0" local prefix are stripped.
func normalizeAccount(account string) string {
	digits := nonDigitRe.ReplaceAllString(account, "")

	switch {
	case strings.HasPrefix(digits, "66"):
		return digits[2:]
	case strings.HasPrefix(digits, "0"):
		return digits[1:]
	}

	return digits
}
