// Package promptpay builds EMVCo merchant-presented QR payloads for the
// Thailand PromptPay profile.
package promptpay

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidPhoneLength = errors.New("phone number must be 10 digits")
)

// PromptPay application id, fixed by the Bank of Thailand profile.
const applicationID = "A000000677010111"

// EMVCo merchant account sub-field type codes.
const (
	typePhone = "01"
	typeTaxID = "02"
)

const nationalIDLength = 13

var (
	phoneLocalRe = regexp.MustCompile(`^0\d{9}$`)
	phoneIntlRe  = regexp.MustCompile(`^66\d{9}$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

// Generate returns the full EMVCo payload string for a dynamic one-time QR
// paying amount THB to payeeID. payeeID accepts phone numbers in local
// (0XXXXXXXXX), +66 and 66 formats, 13-digit national ids and tax ids.
// The amount is rendered with exactly two decimal places, rounding half away
// from zero.
//
// The function is pure: identical inputs always produce an identical payload.
func Generate(payeeID string, amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	typeCode, digits, err := classify(payeeID)
	if err != nil {
		return "", err
	}

	merchantAccount := field("00", applicationID) + field("01", typeCode+digits)

	// Tag order is fixed by EMVCo: scanners parse strictly left to right.
	payload := field("00", "01") + // Payload format indicator.
		field("01", "12") + // Point of initiation: dynamic QR.
		field("29", merchantAccount) +
		field("52", "0000") + // Merchant category code, unspecified.
		field("53", "764") + // ISO 4217 numeric code for THB.
		field("54", amount.StringFixed(2)) +
		field("58", "TH") +
		"6304" // Checksum tag and length; the CRC covers it too.

	return payload + checksum(payload), nil
}

// classify normalizes a free-form payee id into an EMVCo type code and digit
// string. Phones win over national/tax ids; first matching form applies.
func classify(raw string) (typeCode, digits string, err error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, raw)

	switch {
	case strings.HasPrefix(clean, "+66"):
		phone := "0" + nonDigitRe.ReplaceAllString(clean[len("+66"):], "")
		if len(phone) != 10 {
			return "", "", fmt.Errorf("%w: got %q", ErrInvalidPhoneLength, phone)
		}

		return typePhone, phone, nil

	case phoneLocalRe.MatchString(clean):
		return typePhone, clean, nil

	case phoneIntlRe.MatchString(clean):
		return typePhone, "0" + clean[2:], nil

	default:
		id := nonDigitRe.ReplaceAllString(clean, "")
		if len(id) != nationalIDLength {
			// Some external systems issue shorter tax ids, so this is not a
			// hard failure.
			slog.Warn("payee id is not 13 digits", "len", len(id))
		}

		return typeTaxID, id, nil
	}
}

// field renders one TLV element. The 2-digit decimal length field caps values
// at 99 bytes; callers never pass values that long.
func field(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}
