package api

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/couponhub/payment/internal/entity"
	"github.com/couponhub/payment/internal/slipverify"
)

// @title Coupon Payment API
// @version 1.0
// @description PromptPay QR order payments and slip verification for the coupon marketplace
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

type Service interface {
	CreateOrder(ctx context.Context, merchantID uuid.UUID, name string, amount decimal.Decimal) (entity.Order, error)
	SubmitSlip(ctx context.Context, orderID uuid.UUID, refNbr string) (entity.Order, slipverify.Verdict, error)
	ApplySlipReceipt(ctx context.Context, orderID uuid.UUID, receipt entity.Receipt) (entity.Order, slipverify.Verdict, error)
	Order(ctx context.Context, id uuid.UUID) (entity.Order, error)
	Orders(ctx context.Context, merchantID uuid.UUID, filter entity.OrderFilter) ([]entity.Order, int, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) error
}

type Handler struct {
	s                        Service
	slipCallbackCheckEnabled bool
	slipCallbackPublicKey    *rsa.PublicKey
}

func NewHandler(s Service, slipCallbackCheckEnabled bool, slipCallbackPublicKey *rsa.PublicKey) *Handler {
	return &Handler{
		s:                        s,
		slipCallbackCheckEnabled: slipCallbackCheckEnabled,
		slipCallbackPublicKey:    slipCallbackPublicKey,
	}
}

type CreateOrderRequest struct {
	MerchantID uuid.UUID       `json:"merchantId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
}

type OrderEntity struct {
	ID          string    `json:"id"`
	Number      int64     `json:"number"`
	Name        string    `json:"name"`
	MerchantID  string    `json:"merchantId"`
	BuyerID     string    `json:"buyerId"`
	Amount      string    `json:"amount"`
	QRPayload   string    `json:"qrPayload"`
	Status      string    `json:"status"`
	SlipRef     string    `json:"slipRef,omitempty"`
	PaidAt      time.Time `json:"paidAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateOrderResponse struct {
	Order OrderEntity `json:"order"`
}

// CreateOrder creates a pending order with a PromptPay QR payload
// @Summary Create order
// @Description Creates a pending order and the PromptPay QR payload to pay it
// @Tags orders
// @Accept json
// @Produce json
// @Param CreateOrderRequest body CreateOrderRequest true "Order creation request"
// @Success 201 {object} CreateOrderResponse
// @Failure 400 {object} ErrorResponse "Merchant not approved"
// @Failure 404 {object} ErrorResponse "Merchant not found"
// @Failure 422 {object} ErrorResponse "Amount must be positive"
// @Failure 500 {object} ErrorResponse "Failed to create order"
// @Router /orders [post]
// @Security BearerAuth
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if !req.Amount.IsPositive() {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
			fmt.Errorf("not positive amount %s", req.Amount), "Amount must be positive")
		return
	}

	order, err := h.s.CreateOrder(ctx, req.MerchantID, req.Name, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Merchant not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
		case errors.Is(err, entity.ErrMerchantNotApproved):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Merchant is not approved")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid payment details")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create order")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateOrderResponse{Order: orderToAPI(order)})
}

type SubmitSlipRequest struct {
	RefNbr string `json:"refNbr"`
}

type SubmitSlipResponse struct {
	Valid   bool        `json:"valid"`
	Reason  string      `json:"reason,omitempty"`
	Message string      `json:"message,omitempty"`
	Order   OrderEntity `json:"order"`
}

// SubmitSlip verifies a payment slip against an order
// @Summary Submit payment slip
// @Description Verifies the uploaded slip reference with the verification service and marks the order paid on success
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID (UUID)"
// @Param SubmitSlipRequest body SubmitSlipRequest true "Slip reference"
// @Success 200 {object} SubmitSlipResponse
// @Failure 400 {object} ErrorResponse "Invalid request or unreadable slip"
// @Failure 403 {object} ErrorResponse "Not the buyer of the order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order already paid"
// @Failure 500 {object} ErrorResponse "Failed to verify slip"
// @Router /orders/{orderId}/slips [post]
// @Security BearerAuth
func (h *Handler) SubmitSlip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.FromString(chi.URLParam(r, "orderId"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'orderId' must be a UUID")
		return
	}

	var req SubmitSlipRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.RefNbr == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "refNbr is required")
		return
	}

	order, verdict, err := h.s.SubmitSlip(ctx, orderID, req.RefNbr)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Only the buyer can submit a slip")
		case errors.Is(err, entity.ErrAlreadyPaid):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Order is already paid")
		case errors.Is(err, entity.ErrOrderNotPayable):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Order is no longer payable")
		case errors.Is(err, entity.ErrMalformedReceipt):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "The slip could not be read. Please upload a clearer screenshot.")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to verify slip")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, verdictResponse(order, verdict))
}

type SlipCallbackRequest struct {
	OrderID        uuid.UUID       `json:"orderId"`
	TransRef       string          `json:"transRef"`
	TransTimestamp time.Time       `json:"transTimestamp"`
	Amount         decimal.Decimal `json:"amount"`
	Receiver       string          `json:"receiver"`
	Sender         struct {
		Account string `json:"account"`
		Name    string `json:"name"`
	} `json:"sender"`
}

type SlipCallbackResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// SlipCallback applies a receipt pushed by the slip verification service
// @Summary Handle slip verification webhook
// @Description Applies a verified receipt pushed by the slip verification service to its order
// @Tags callbacks
// @Accept json
// @Produce json
// @Param SlipCallbackRequest body SlipCallbackRequest true "Verified receipt"
// @Success 200 {object} SlipCallbackResponse
// @Failure 400 {object} ErrorResponse "Invalid or incomplete receipt"
// @Failure 403 {object} ErrorResponse "Signature check failed"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Failed to apply receipt"
// @Router /callbacks/slip [post]
func (h *Handler) SlipCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "read request body")
		return
	}

	err = h.validateSlipCallbackSignature(body, r.Header.Get("X-Signature"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusForbidden, fmt.Errorf("validate callback signature: %w", err), "Signature check failed")
		return
	}

	var req SlipCallbackRequest

	err = json.Unmarshal(body, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.TransRef == "" || req.Receiver == "" || req.TransTimestamp.IsZero() {
		SendJSONErr(ctx, w, http.StatusBadRequest,
			fmt.Errorf("%w: missing required fields", entity.ErrMalformedReceipt), "Incomplete receipt")
		return
	}

	receipt := entity.Receipt{
		Amount:          req.Amount,
		ReceiverAccount: req.Receiver,
		TransactionTime: req.TransTimestamp,
		TransactionID:   req.TransRef,
		Sender: entity.ReceiptSender{
			Account: req.Sender.Account,
			Name:    req.Sender.Name,
		},
	}

	_, verdict, err := h.s.ApplySlipReceipt(ctx, req.OrderID, receipt)

	switch {
	case err == nil:
		SendJSON(ctx, w, http.StatusOK, SlipCallbackResponse{Valid: verdict.Valid, Reason: verdict.Reason.String()})
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSON(ctx, w, http.StatusOK, SlipCallbackResponse{Valid: true})
	case errors.Is(err, entity.ErrOrderNotPayable):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Order is no longer payable")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to apply receipt")
	}
}

// OrderResponse wraps a single order.
type OrderResponse struct {
	Order OrderEntity `json:"order"`
}

// Order returns one order with its QR payload
// @Summary Get order
// @Description Retrieves an order, including the PromptPay QR payload to render
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID (UUID)"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} ErrorResponse "'orderId' must be a UUID"
// @Failure 403 {object} ErrorResponse "Not a party to the order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /orders/{orderId} [get]
// @Security BearerAuth
func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.FromString(chi.URLParam(r, "orderId"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'orderId' must be a UUID")
		return
	}

	order, err := h.s.Order(ctx, orderID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "forbidden")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Internal error")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, OrderResponse{Order: orderToAPI(order)})
}

type OrdersResponse struct {
	Orders     []OrderEntity `json:"orders"`
	TotalCount int           `json:"totalCount"`
}

// Orders retrieves order history for a merchant with optional filters
// @Summary List merchant orders
// @Description Lists a merchant's orders with filtering, sorting and pagination
// @Tags orders
// @Accept json
// @Produce json
// @Param merchant_id path string true "Merchant ID (UUID)"
// @Param id query string false "Filter by order id"
// @Param amount query string false "Filter by amount"
// @Param status query string false "Filter by status"
// @Param createdAt query string false "Filter by creation date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (id, amount, created_at)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} OrdersResponse
// @Failure 400 {object} ErrorResponse "Invalid merchant_id"
// @Failure 403 {object} ErrorResponse "forbidden"
// @Failure 500 {object} ErrorResponse "Failed to get orders"
// @Router /merchants/{merchant_id}/orders [get]
// @Security BearerAuth
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sMerchantID := chi.URLParam(r, "merchant_id")
	if sMerchantID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "merchant_id is required")
		return
	}

	merchantID, err := uuid.FromString(sMerchantID)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid merchant_id")
		return
	}

	filter := parseOrderFilter(r.URL.Query())

	orders, totalCount, err := h.s.Orders(ctx, merchantID, filter)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendJSONErr(ctx, w, http.StatusForbidden, err, "forbidden")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get orders")

		return
	}

	SendJSON(ctx, w, http.StatusOK, OrdersResponse{Orders: ordersToAPI(orders), TotalCount: totalCount})
}

type CancelOrderResponse struct{}

// CancelOrder cancels a pending order
// @Summary Cancel order
// @Description Cancels a pending order so its QR code is no longer payable
// @Tags internal
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID (UUID)"
// @Success 200 {object} CancelOrderResponse
// @Failure 400 {object} ErrorResponse "'orderId' must be a UUID"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order is already paid"
// @Failure 500 {object} ErrorResponse "Failed to cancel order"
// @Router /internal/orders/{orderId}/cancel [post]
// @Security ApiKeyAuth
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.FromString(chi.URLParam(r, "orderId"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'orderId' must be a UUID")
		return
	}

	err = h.s.CancelOrder(ctx, orderID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, entity.ErrAlreadyPaid):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Order is already paid")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to cancel order")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, CancelOrderResponse{})
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "not ok")
		return
	}
}

func (h *Handler) validateSlipCallbackSignature(body []byte, signature string) error {
	if !h.slipCallbackCheckEnabled {
		return nil
	}

	binarySignature, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("decode hex signature: %w", err)
	}

	hashedBody := sha512.Sum512(body)

	err = rsa.VerifyPKCS1v15(h.slipCallbackPublicKey, crypto.SHA512, hashedBody[:], binarySignature)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}

	return nil
}

func parseOrderFilter(url url.Values) entity.OrderFilter {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	id := url.Get("id")
	amount := url.Get("amount")
	status := url.Get("status")
	createdAt := url.Get("createdAt")
	qLimit := url.Get("limit")
	qPage := url.Get("page")
	sortBy := entity.OrderSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	limit, err := strconv.ParseUint(qLimit, 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	// page is 1-based; 0 would underflow the offset calculation.
	page, err := strconv.ParseUint(qPage, 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	if !sortBy.IsValid() {
		sortBy = entity.SortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.OrderFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if id != "" {
		filter.ID = &id
	}

	if amount != "" {
		filter.Amount = &amount
	}

	if status != "" {
		filter.Status = &status
	}

	if createdAt != "" {
		filter.CreatedAt = &createdAt
	}

	return filter
}

func verdictResponse(order entity.Order, verdict slipverify.Verdict) SubmitSlipResponse {
	resp := SubmitSlipResponse{
		Valid: verdict.Valid,
		Order: orderToAPI(order),
	}

	if !verdict.Valid {
		resp.Reason = verdict.Reason.String()
		resp.Message = verdict.Reason.Message()
	}

	return resp
}

func orderToAPI(o entity.Order) OrderEntity {
	return OrderEntity{
		ID:         o.ID.String(),
		Number:     o.Number,
		Name:       o.Name,
		MerchantID: o.MerchantID.String(),
		BuyerID:    o.BuyerID.String(),
		Amount:     o.Amount.StringFixed(2),
		QRPayload:  o.QRPayload,
		Status:     o.Status.String(),
		SlipRef:    o.SlipRef,
		PaidAt:     o.PaidAt,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ordersToAPI(orders []entity.Order) []OrderEntity {
	res := make([]OrderEntity, 0, len(orders))
	for _, o := range orders {
		res = append(res, orderToAPI(o))
	}

	return res
}
