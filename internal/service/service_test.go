package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/couponhub/payment/internal/entity"
	"github.com/couponhub/payment/internal/mocks"
	"github.com/couponhub/payment/internal/service"
	"github.com/couponhub/payment/internal/slipverify"
)

const platformPromptPayID = "0899999999"

func newService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockMerchantService, *mocks.MockSlipService, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	merchant := mocks.NewMockMerchantService(ctrl)
	slip := mocks.NewMockSlipService(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	return service.New(repo, merchant, slip, producer, platformPromptPayID), repo, merchant, slip, producer
}

func buyerCtx(user entity.User) context.Context {
	return entity.CtxWithUser(context.Background(), user)
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()

	s, repo, merchant, _, _ := newService(t)

	buyer := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.UserRole{Name: entity.RoleCustomer}}
	ctx := buyerCtx(buyer)

	m := entity.Merchant{
		ID:          uuid.Must(uuid.NewV4()),
		OwnerID:     uuid.Must(uuid.NewV4()),
		PromptPayID: "0812345678",
		Status:      entity.MerchantStatusApproved,
	}

	merchant.EXPECT().Merchant(ctx, m.ID).Return(m, nil)
	repo.EXPECT().CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o entity.Order) (entity.Order, error) {
			o.Number = 42
			return o, nil
		})

	order, err := s.CreateOrder(ctx, m.ID, "coupon bundle", decimal.RequireFromString("149.50"))
	require.NoError(t, err)

	require.Equal(t, int64(42), order.Number)
	require.Equal(t, entity.OrderStatusPending, order.Status)
	require.Equal(t, buyer.ID, order.BuyerID)
	require.Equal(t, "0812345678", order.PromptPayID)
	require.Contains(t, order.QRPayload, "5406149.50")
}

func TestService_CreateOrder_PlatformFallback(t *testing.T) {
	t.Parallel()

	s, repo, merchant, _, _ := newService(t)

	ctx := buyerCtx(entity.User{ID: uuid.Must(uuid.NewV4())})

	m := entity.Merchant{
		ID:      uuid.Must(uuid.NewV4()),
		OwnerID: uuid.Must(uuid.NewV4()),
		Status:  entity.MerchantStatusApproved,
	}

	merchant.EXPECT().Merchant(ctx, m.ID).Return(m, nil)
	repo.EXPECT().CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o entity.Order) (entity.Order, error) {
			return o, nil
		})

	order, err := s.CreateOrder(ctx, m.ID, "coupon", decimal.NewFromInt(50))
	require.NoError(t, err)
	require.Equal(t, platformPromptPayID, order.PromptPayID)
}

func TestService_CreateOrder_MerchantNotApproved(t *testing.T) {
	t.Parallel()

	s, _, merchant, _, _ := newService(t)

	ctx := buyerCtx(entity.User{ID: uuid.Must(uuid.NewV4())})

	m := entity.Merchant{ID: uuid.Must(uuid.NewV4()), Status: entity.MerchantStatusPending}

	merchant.EXPECT().Merchant(ctx, m.ID).Return(m, nil)

	_, err := s.CreateOrder(ctx, m.ID, "coupon", decimal.NewFromInt(50))
	require.ErrorIs(t, err, entity.ErrMerchantNotApproved)
}

func TestService_CreateOrder_Unauthenticated(t *testing.T) {
	t.Parallel()

	s, _, _, _, _ := newService(t)

	_, err := s.CreateOrder(context.Background(), uuid.Must(uuid.NewV4()), "coupon", decimal.NewFromInt(50))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_SubmitSlip(t *testing.T) {
	t.Parallel()

	s, repo, _, slip, producer := newService(t)

	buyer := entity.User{ID: uuid.Must(uuid.NewV4())}
	ctx := buyerCtx(buyer)

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		MerchantID:  uuid.Must(uuid.NewV4()),
		BuyerID:     buyer.ID,
		Amount:      decimal.RequireFromString("199.00"),
		PromptPayID: "0812345678",
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now().Add(-10 * time.Minute),
	}

	receipt := entity.Receipt{
		Amount:          decimal.RequireFromString("199.00"),
		ReceiverAccount: "66812345678",
		TransactionTime: time.Now().Add(-time.Minute),
		TransactionID:   "2025061012000001",
	}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)
	slip.EXPECT().VerifySlip(ctx, "REF123").Return(receipt, nil)
	repo.EXPECT().MarkOrderPaid(ctx, order.ID, receipt.TransactionID, gomock.Any()).Return(nil)
	producer.EXPECT().SendOrderPaid(ctx, order.ID, order.MerchantID, order.Amount)

	got, verdict, err := s.SubmitSlip(ctx, order.ID, "REF123")
	require.NoError(t, err)
	require.True(t, verdict.Valid)
	require.Equal(t, entity.OrderStatusPaid, got.Status)
	require.Equal(t, receipt.TransactionID, got.SlipRef)
}

func TestService_SubmitSlip_Rejected(t *testing.T) {
	t.Parallel()

	s, repo, _, slip, _ := newService(t)

	buyer := entity.User{ID: uuid.Must(uuid.NewV4())}
	ctx := buyerCtx(buyer)

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		BuyerID:     buyer.ID,
		Amount:      decimal.RequireFromString("199.00"),
		PromptPayID: "0812345678",
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now().Add(-10 * time.Minute),
	}

	receipt := entity.Receipt{
		Amount:          decimal.RequireFromString("50.00"),
		ReceiverAccount: "0812345678",
		TransactionTime: time.Now(),
		TransactionID:   "ref",
	}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)
	slip.EXPECT().VerifySlip(ctx, "REF123").Return(receipt, nil)

	got, verdict, err := s.SubmitSlip(ctx, order.ID, "REF123")
	require.NoError(t, err)
	require.False(t, verdict.Valid)
	require.Equal(t, slipverify.ReasonAmountMismatch, verdict.Reason)
	require.Equal(t, entity.OrderStatusPending, got.Status)
}

func TestService_SubmitSlip_NotBuyer(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	ctx := buyerCtx(entity.User{ID: uuid.Must(uuid.NewV4())})

	order := entity.Order{
		ID:      uuid.Must(uuid.NewV4()),
		BuyerID: uuid.Must(uuid.NewV4()),
		Status:  entity.OrderStatusPending,
	}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)

	_, _, err := s.SubmitSlip(ctx, order.ID, "REF123")
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_SubmitSlip_AlreadyPaid(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	buyer := entity.User{ID: uuid.Must(uuid.NewV4())}
	ctx := buyerCtx(buyer)

	order := entity.Order{
		ID:      uuid.Must(uuid.NewV4()),
		BuyerID: buyer.ID,
		Status:  entity.OrderStatusPaid,
	}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)

	_, _, err := s.SubmitSlip(ctx, order.ID, "REF123")
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)
}

func TestService_SubmitSlip_OrderNotPayable(t *testing.T) {
	t.Parallel()

	for _, status := range []entity.OrderStatus{
		entity.OrderStatusCancelled,
		entity.OrderStatusExpired,
	} {
		status := status
		t.Run(status.String(), func(t *testing.T) {
			t.Parallel()

			s, repo, _, _, _ := newService(t)

			buyer := entity.User{ID: uuid.Must(uuid.NewV4())}
			ctx := buyerCtx(buyer)

			order := entity.Order{
				ID:      uuid.Must(uuid.NewV4()),
				BuyerID: buyer.ID,
				Status:  status,
			}

			repo.EXPECT().Order(ctx, order.ID).Return(order, nil)

			_, _, err := s.SubmitSlip(ctx, order.ID, "REF123")
			require.ErrorIs(t, err, entity.ErrOrderNotPayable)
			require.NotErrorIs(t, err, entity.ErrAlreadyPaid)
		})
	}
}

func TestService_ApplySlipReceipt(t *testing.T) {
	t.Parallel()

	s, repo, _, _, producer := newService(t)

	ctx := context.Background()

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		MerchantID:  uuid.Must(uuid.NewV4()),
		Amount:      decimal.RequireFromString("75.25"),
		PromptPayID: "0812345678",
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now().Add(-time.Hour),
	}

	receipt := entity.Receipt{
		Amount:          decimal.RequireFromString("75.25"),
		ReceiverAccount: "0812345678",
		TransactionTime: time.Now().Add(-time.Minute),
		TransactionID:   "ref-hook",
	}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)
	repo.EXPECT().MarkOrderPaid(ctx, order.ID, "ref-hook", gomock.Any()).Return(nil)
	producer.EXPECT().SendOrderPaid(ctx, order.ID, order.MerchantID, order.Amount)

	got, verdict, err := s.ApplySlipReceipt(ctx, order.ID, receipt)
	require.NoError(t, err)
	require.True(t, verdict.Valid)
	require.Equal(t, entity.OrderStatusPaid, got.Status)
}

func TestService_ApplySlipReceipt_MarkPaidConflict(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	ctx := context.Background()

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      decimal.NewFromInt(10),
		PromptPayID: "0812345678",
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now().Add(-time.Hour),
	}

	receipt := entity.Receipt{
		Amount:          decimal.NewFromInt(10),
		ReceiverAccount: "0812345678",
		TransactionTime: time.Now(),
		TransactionID:   "ref",
	}

	// Another request won the conditional update in between.
	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)
	repo.EXPECT().MarkOrderPaid(ctx, order.ID, "ref", gomock.Any()).Return(entity.ErrAlreadyPaid)

	_, _, err := s.ApplySlipReceipt(ctx, order.ID, receipt)
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)
}

func TestService_Order_MerchantOwnerAccess(t *testing.T) {
	t.Parallel()

	s, repo, merchant, _, _ := newService(t)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.UserRole{Name: entity.RoleMerchant}}
	ctx := buyerCtx(owner)

	order := entity.Order{
		ID:         uuid.Must(uuid.NewV4()),
		MerchantID: uuid.Must(uuid.NewV4()),
		BuyerID:    uuid.Must(uuid.NewV4()),
	}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)
	merchant.EXPECT().Merchant(ctx, order.MerchantID).
		Return(entity.Merchant{ID: order.MerchantID, OwnerID: owner.ID}, nil)

	got, err := s.Order(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)
}

func TestService_Order_Forbidden(t *testing.T) {
	t.Parallel()

	s, repo, merchant, _, _ := newService(t)

	ctx := buyerCtx(entity.User{ID: uuid.Must(uuid.NewV4())})

	order := entity.Order{
		ID:         uuid.Must(uuid.NewV4()),
		MerchantID: uuid.Must(uuid.NewV4()),
		BuyerID:    uuid.Must(uuid.NewV4()),
	}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)
	merchant.EXPECT().Merchant(ctx, order.MerchantID).
		Return(entity.Merchant{ID: order.MerchantID, OwnerID: uuid.Must(uuid.NewV4())}, nil)

	_, err := s.Order(ctx, order.ID)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_Orders_NotOwner(t *testing.T) {
	t.Parallel()

	s, _, merchant, _, _ := newService(t)

	ctx := buyerCtx(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.UserRole{Name: entity.RoleCustomer}})

	merchantID := uuid.Must(uuid.NewV4())
	merchant.EXPECT().Merchant(ctx, merchantID).
		Return(entity.Merchant{ID: merchantID, OwnerID: uuid.Must(uuid.NewV4())}, nil)

	_, _, err := s.Orders(ctx, merchantID, entity.OrderFilter{})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	ctx := context.Background()
	order := entity.Order{ID: uuid.Must(uuid.NewV4()), Status: entity.OrderStatusPending}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)
	repo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled, gomock.Any()).Return(nil)

	err := s.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
}

func TestService_CancelOrder_AlreadyPaid(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	ctx := context.Background()
	order := entity.Order{ID: uuid.Must(uuid.NewV4()), Status: entity.OrderStatusPaid}

	repo.EXPECT().Order(ctx, order.ID).Return(order, nil)

	err := s.CancelOrder(ctx, order.ID)
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)
}

func TestService_ExpireOldOrders(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	ctx := context.Background()

	pending := []entity.Order{
		{ID: uuid.Must(uuid.NewV4()), Status: entity.OrderStatusPending, CreatedAt: time.Now().Add(-25 * time.Hour)},
		{ID: uuid.Must(uuid.NewV4()), Status: entity.OrderStatusPending, CreatedAt: time.Now().Add(-time.Hour)},
	}

	repo.EXPECT().PendingOrders(ctx).Return(pending, nil)
	repo.EXPECT().SetStatus(ctx, entity.OrderStatusPending, entity.OrderStatusExpired, gomock.Any()).Return(nil)

	err := s.ExpireOldOrders(ctx)
	require.NoError(t, err)
}

func TestService_ExpireOldOrders_NothingStale(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	ctx := context.Background()

	pending := []entity.Order{
		{ID: uuid.Must(uuid.NewV4()), Status: entity.OrderStatusPending, CreatedAt: time.Now().Add(-time.Hour)},
	}

	// No bulk update when every pending order is still fresh.
	repo.EXPECT().PendingOrders(ctx).Return(pending, nil)

	err := s.ExpireOldOrders(ctx)
	require.NoError(t, err)
}

func TestService_ExpireOldOrders_RepoError(t *testing.T) {
	t.Parallel()

	s, repo, _, _, _ := newService(t)

	ctx := context.Background()
	wantErr := errors.New("pool closed")

	repo.EXPECT().PendingOrders(ctx).Return(nil, wantErr)

	err := s.ExpireOldOrders(ctx)
	require.ErrorIs(t, err, wantErr)
}
