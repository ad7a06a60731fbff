package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusExpired   OrderStatus = "EXPIRED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	ID          uuid.UUID
	Number      int64 // Global running order number. Filled by our DB.
	Name        string
	MerchantID  uuid.UUID
	BuyerID     uuid.UUID
	Amount      decimal.Decimal
	PromptPayID string // Receiver id the QR payload was built for.
	QRPayload   string // EMVCo merchant-presented QR string.
	Status      OrderStatus
	SlipRef     string // Bank transaction id of the matched slip, only for OrderStatusPaid.
	PaidAt      time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderFilter struct {
	ID        *string
	Amount    *string
	CreatedAt *string
	Status    *string
	Page      uint64
	Limit     uint64
	SortBy    OrderSortCol
	OrderBy   OrderByCol
}

type OrderSortCol string

func (c OrderSortCol) String() string {
	return string(c)
}

const (
	SortByID        OrderSortCol = "id"
	SortByAmount    OrderSortCol = "amount"
	SortByCreatedAt OrderSortCol = "created_at"
)

func (c OrderSortCol) IsValid() bool {
	switch c {
	case SortByID, SortByAmount, SortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
