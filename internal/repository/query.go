package repository

const (
	selectOrder = `SELECT
		id,
		number,
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
	FROM orders`
)
