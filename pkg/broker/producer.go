package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l              *slog.Logger
	w              *kafka.Writer
	orderPaidTopic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:              l,
		w:              w,
		orderPaidTopic: topic,
	}
}

type OrderPaidEvent struct {
	OrderID    uuid.UUID `json:"orderId"`
	MerchantID uuid.UUID `json:"merchantId"`
	Amount     string    `json:"amount"`
	PaidAt     time.Time `json:"paidAt"`
}

func (p *Producer) SendOrderPaid(ctx context.Context, orderID, merchantID uuid.UUID, amount decimal.Decimal) {
	event := OrderPaidEvent{
		OrderID:    orderID,
		MerchantID: merchantID,
		Amount:     amount.StringFixed(2),
		PaidAt:     time.Now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID.String()),
		Value: b,
		Topic: p.orderPaidTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
