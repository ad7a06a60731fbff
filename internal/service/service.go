package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/couponhub/payment/internal/entity"
	"github.com/couponhub/payment/internal/promptpay"
	"github.com/couponhub/payment/internal/slipverify"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateOrder(ctx context.Context, o entity.Order) (entity.Order, error)
	Order(ctx context.Context, id uuid.UUID) (entity.Order, error)
	Orders(ctx context.Context, merchantID uuid.UUID, filter entity.OrderFilter) ([]entity.Order, int, error)
	PendingOrders(ctx context.Context) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error
	MarkOrderPaid(ctx context.Context, id uuid.UUID, slipRef string, paidAt time.Time) error
	SetStatus(ctx context.Context, prevStatus, status entity.OrderStatus, createdAtFrom time.Time) error
}

type MerchantService interface {
	Merchant(ctx context.Context, id uuid.UUID) (entity.Merchant, error)
}

type SlipService interface {
	VerifySlip(ctx context.Context, refNbr string) (entity.Receipt, error)
}

type Producer interface {
	SendOrderPaid(ctx context.Context, orderID, merchantID uuid.UUID, amount decimal.Decimal)
}

type Service struct {
	repo     Repository
	merchant MerchantService
	slip     SlipService
	producer Producer

	// platformPromptPayID receives payments for merchants that have not
	// configured their own id. Injected from config so payload generation
	// never reads ambient state.
	platformPromptPayID string
}

func New(repo Repository, merchant MerchantService, slip SlipService, producer Producer, platformPromptPayID string) *Service {
	return &Service{
		repo:                repo,
		merchant:            merchant,
		slip:                slip,
		producer:            producer,
		platformPromptPayID: platformPromptPayID,
	}
}

func (s *Service) CreateOrder(ctx context.Context, merchantID uuid.UUID, name string, amount decimal.Decimal) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	merchant, err := s.merchant.Merchant(ctx, merchantID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("get merchant %s: %w", merchantID, err)
	}

	if merchant.Status != entity.MerchantStatusApproved {
		return entity.Order{}, fmt.Errorf("%w: merchant %s status is %q", entity.ErrMerchantNotApproved, merchant.ID, merchant.Status)
	}

	receiverID := merchant.PromptPayID
	if receiverID == "" {
		receiverID = s.platformPromptPayID
	}

	payload, err := promptpay.Generate(receiverID, amount)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%w: generate payload: %w", entity.ErrInvalidArgument, err)
	}

	now := time.Now()

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        name,
		MerchantID:  merchant.ID,
		BuyerID:     user.ID,
		Amount:      amount,
		PromptPayID: receiverID,
		QRPayload:   payload,
		Status:      entity.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		return entity.Order{}, fmt.Errorf("create order: %w", err)
	}

	slog.InfoContext(ctx, "order created",
		"order_id", order.ID, "merchant_id", merchant.ID, "amount", amount.StringFixed(2))

	return order, nil
}

// SubmitSlip resolves a slip reference with the verification service and
// reconciles the resulting receipt against the order. A failed verdict is a
// normal outcome surfaced to the payer, not an error.
func (s *Service) SubmitSlip(ctx context.Context, orderID uuid.UUID, refNbr string) (entity.Order, slipverify.Verdict, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, slipverify.Verdict{}, err
	}

	order, err := s.repo.Order(ctx, orderID)
	if err != nil {
		return entity.Order{}, slipverify.Verdict{}, fmt.Errorf("get order %s: %w", orderID, err)
	}

	if user.ID != order.BuyerID && user.Role.Name != entity.RoleAdmin {
		return entity.Order{}, slipverify.Verdict{}, fmt.Errorf("%w: user %s is not the buyer", entity.ErrForbidden, user.ID)
	}

	err = checkPayable(order)
	if err != nil {
		return entity.Order{}, slipverify.Verdict{}, err
	}

	receipt, err := s.slip.VerifySlip(ctx, refNbr)
	if err != nil {
		return entity.Order{}, slipverify.Verdict{}, fmt.Errorf("verify slip %q: %w", refNbr, err)
	}

	return s.applyReceipt(ctx, order, receipt)
}

// ApplySlipReceipt reconciles a receipt pushed by the verification service's
// webhook. The webhook route is guarded upstream; there is no user context.
func (s *Service) ApplySlipReceipt(ctx context.Context, orderID uuid.UUID, receipt entity.Receipt) (entity.Order, slipverify.Verdict, error) {
	order, err := s.repo.Order(ctx, orderID)
	if err != nil {
		return entity.Order{}, slipverify.Verdict{}, fmt.Errorf("get order %s: %w", orderID, err)
	}

	err = checkPayable(order)
	if err != nil {
		return entity.Order{}, slipverify.Verdict{}, err
	}

	return s.applyReceipt(ctx, order, receipt)
}

// checkPayable rejects orders a slip can no longer settle, with a
// status-specific error so the payer is not told a cancelled order is paid.
func checkPayable(order entity.Order) error {
	switch order.Status {
	case entity.OrderStatusPaid:
		return fmt.Errorf("order %s: %w", order.ID, entity.ErrAlreadyPaid)
	case entity.OrderStatusCancelled, entity.OrderStatusExpired:
		return fmt.Errorf("order %s is %s: %w", order.ID, order.Status, entity.ErrOrderNotPayable)
	}

	return nil
}

func (s *Service) applyReceipt(ctx context.Context, order entity.Order, receipt entity.Receipt) (entity.Order, slipverify.Verdict, error) {
	verdict := slipverify.Verify(receipt, order.Amount, order.PromptPayID, order.CreatedAt, time.Now())
	if !verdict.Valid {
		slog.InfoContext(ctx, "slip rejected",
			"order_id", order.ID, "reason", verdict.Reason.String(), "slip_ref", receipt.TransactionID)

		return order, verdict, nil
	}

	err := s.repo.MarkOrderPaid(ctx, order.ID, receipt.TransactionID, time.Now())
	if err != nil {
		return entity.Order{}, slipverify.Verdict{}, fmt.Errorf("mark order %s paid: %w", order.ID, err)
	}

	s.producer.SendOrderPaid(ctx, order.ID, order.MerchantID, order.Amount)

	slog.InfoContext(ctx, "order paid",
		"order_id", order.ID, "merchant_id", order.MerchantID, "slip_ref", receipt.TransactionID)

	order.Status = entity.OrderStatusPaid
	order.SlipRef = receipt.TransactionID

	return order, verdict, nil
}

func (s *Service) Order(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	order, err := s.repo.Order(ctx, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}

	if user.ID != order.BuyerID && user.Role.Name != entity.RoleAdmin {
		merchant, err := s.merchant.Merchant(ctx, order.MerchantID)
		if err != nil {
			return entity.Order{}, fmt.Errorf("get merchant %s: %w", order.MerchantID, err)
		}

		if user.ID != merchant.OwnerID {
			return entity.Order{}, fmt.Errorf("%w: user %s", entity.ErrForbidden, user.ID)
		}
	}

	return order, nil
}

func (s *Service) Orders(
	ctx context.Context,
	merchantID uuid.UUID,
	filter entity.OrderFilter,
) ([]entity.Order, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("get user from context: %w", err)
	}

	merchant, err := s.merchant.Merchant(ctx, merchantID)
	if err != nil {
		return nil, 0, fmt.Errorf("get merchant %s: %w", merchantID, err)
	}

	if user.ID != merchant.OwnerID && user.Role.Name != entity.RoleAdmin {
		return nil, 0, fmt.Errorf("%w: user %s is not owner", entity.ErrForbidden, user.ID)
	}

	orders, count, err := s.repo.Orders(ctx, merchantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("get orders: %w", err)
	}

	return orders, count, nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.repo.Order(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order %s: %w", orderID, err)
	}

	if order.Status == entity.OrderStatusPaid {
		return fmt.Errorf("order %s: %w", order.ID, entity.ErrAlreadyPaid)
	}

	err = s.repo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled, time.Now())
	if err != nil {
		return fmt.Errorf("update order %s status to %q: %w", order.ID, entity.OrderStatusCancelled, err)
	}

	return nil
}

// ExpireOldOrders moves stale pending orders to EXPIRED so their QR codes stop
// being payable on our side. A slip for an expired order fails the freshness
// check anyway once the receipt itself ages out.
func (s *Service) ExpireOldOrders(ctx context.Context) error {
	const maxWaitInterval = 24 * time.Hour

	cutoff := time.Now().Add(-maxWaitInterval)

	orders, err := s.repo.PendingOrders(ctx)
	if err != nil {
		return fmt.Errorf("get pending orders: %w", err)
	}

	var stale int

	for _, o := range orders {
		if o.CreatedAt.Before(cutoff) {
			slog.InfoContext(ctx, "expiring order",
				"order_id", o.ID, "merchant_id", o.MerchantID, "created_at", o.CreatedAt)

			stale++
		}
	}

	if stale == 0 {
		return nil
	}

	err = s.repo.SetStatus(ctx, entity.OrderStatusPending, entity.OrderStatusExpired, cutoff)
	if err != nil {
		return fmt.Errorf("expire old orders: %w", err)
	}

	return nil
}
