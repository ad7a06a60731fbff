package entity

import (
	"github.com/gofrs/uuid/v5"
)

type MerchantStatus string

const (
	MerchantStatusApproved  MerchantStatus = "approved"
	MerchantStatusPending   MerchantStatus = "pending"
	MerchantStatusSuspended MerchantStatus = "suspended"
)

type Merchant struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	PromptPayID string // Phone, national id or tax id; empty if the platform account receives instead.
	Status      MerchantStatus
}
