package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/couponhub/payment/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateOrder(ctx context.Context, o entity.Order) (entity.Order, error) {
	const q = `
	INSERT INTO orders (
		id,
		name,
		merchant_id,
		buyer_id,
		amount,
		promptpay_id,
		qr_payload,
		status,
		slip_ref,
		paid_at,
		created_at,
		updated_at
	)
	VALUES ( $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING number
	`

	err := r.db.QueryRow(
		ctx,
		q,
		o.ID,
		o.Name,
		o.MerchantID,
		o.BuyerID,
		o.Amount,
		o.PromptPayID,
		o.QRPayload,
		o.Status,
		zeronull.Text(o.SlipRef),
		zeronull.Timestamptz(o.PaidAt),
		o.CreatedAt,
		o.UpdatedAt,
	).Scan(&o.Number)
	if err != nil {
		return entity.Order{}, err
	}

	return o, nil
}

func (r *Repository) Order(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	q := selectOrder + " WHERE id = $1"
	return scanOrder(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) UpdateOrderStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.OrderStatus,
	updatedAt time.Time,
) error {
	const q = `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkOrderPaid transitions a pending order to PAID. The status guard in the
// WHERE clause serializes concurrent slip submissions against the same order:
// only one of them observes an affected row.
func (r *Repository) MarkOrderPaid(ctx context.Context, id uuid.UUID, slipRef string, paidAt time.Time) error {
	const q = `UPDATE orders
	SET status = $1, slip_ref = $2, paid_at = $3, updated_at = $3
	WHERE id = $4 AND status = $5`

	result, err := r.db.Exec(ctx, q, entity.OrderStatusPaid, slipRef, paidAt, id, entity.OrderStatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrAlreadyPaid
	}

	return nil
}

func (r *Repository) PendingOrders(ctx context.Context) (orders []entity.Order, err error) {
	q := selectOrder + " WHERE status = $1"

	rows, err := r.db.Query(ctx, q, entity.OrderStatusPending)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, nil
}

func (r *Repository) Orders(
	ctx context.Context,
	merchantID uuid.UUID,
	f entity.OrderFilter,
) ([]entity.Order, int, error) {
	stmt := sq.Select(
		"id",
		"number",
		"name",
		"merchant_id",
		"buyer_id",
		"amount",
		"promptpay_id",
		"qr_payload",
		"status",
		"slip_ref",
		"paid_at",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("orders").Where(sq.Eq{"merchant_id": merchantID}).PlaceholderFormat(sq.Dollar)

	stmt = applyOrderFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var o entity.Order

		var count int

		err = rows.Scan(
			&o.ID,
			&o.Number,
			&o.Name,
			&o.MerchantID,
			&o.BuyerID,
			&o.Amount,
			&o.PromptPayID,
			&o.QRPayload,
			&o.Status,
			(*zeronull.Text)(&o.SlipRef),
			(*zeronull.Timestamptz)(&o.PaidAt),
			&o.CreatedAt,
			&o.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		orders = append(orders, o)
	}

	return orders, totalCount, nil
}

func applyOrderFilter(stmt sq.SelectBuilder, f entity.OrderFilter) sq.SelectBuilder {
	if f.ID != nil {
		stmt = stmt.Where(sq.Eq{"id": *f.ID})
	}

	if f.Amount != nil {
		stmt = stmt.Where(sq.Eq{"amount": *f.Amount})
	}

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.CreatedAt != nil {
		stmt = stmt.Where(sq.GtOrEq{"created_at": *f.CreatedAt})
	}

	return stmt
}

func scanOrder(row pgx.Row) (o entity.Order, err error) {
	err = row.Scan(
		&o.ID,
		&o.Number,
		&o.Name,
		&o.MerchantID,
		&o.BuyerID,
		&o.Amount,
		&o.PromptPayID,
		&o.QRPayload,
		&o.Status,
		(*zeronull.Text)(&o.SlipRef),
		(*zeronull.Timestamptz)(&o.PaidAt),
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, entity.ErrNotFound
		}

		return entity.Order{}, err
	}

	return o, nil
}

func (r *Repository) SetStatus(ctx context.Context, prevStatus, status entity.OrderStatus, createdAtFrom time.Time) error {
	q := `UPDATE orders SET status = $1 WHERE status = $2 AND created_at < $3`

	_, err := r.db.Exec(ctx, q, status, prevStatus, createdAtFrom)
	if err != nil {
		return err
	}

	return nil
}
