package entity

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrAlreadyPaid         = errors.New("already paid")
	ErrOrderNotPayable     = errors.New("order is not payable")
	ErrMerchantNotApproved = errors.New("merchant not approved")
	ErrMalformedReceipt    = errors.New("malformed receipt")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
)
