package notification

import (
	"context"

	"go.uber.org/zap"
)

type EventType string

const (
	EventOrderCreated     EventType = "order.created"
	EventOrderConfirmed   EventType = "order.confirmed"
	EventOrderPreparing   EventType = "order.preparing"
	EventOrderReady       EventType = "order.ready"
	EventTabOpened        EventType = "tab.opened"
	EventKitchenFired     EventType = "kitchen.fired"
	EventBillRequested    EventType = "bill.requested"
	EventBillPrinted      EventType = "bill.printed"
	EventBillSplit        EventType = "bill.split"
	EventPaymentCompleted EventType = "payment.completed"
	EventMenuUpdated      EventType = "menu.updated"
)

// Event is a fire-and-forget acknowledgement of a state transition.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// Sink receives events strictly after a transition has succeeded. A sink
// failure is never a transition failure, so Notify returns nothing.
type Sink interface {
	Notify(ctx context.Context, event Event)
}

// LogSink writes every event to the structured log.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(_ context.Context, event Event) {
	s.logger.Info("notification", zap.String("event", string(event.Type)), zap.Any("payload", event.Payload))
}

// Multi fans an event out to several sinks.
type Multi []Sink

func (m Multi) Notify(ctx context.Context, event Event) {
	for _, sink := range m {
		sink.Notify(ctx, event)
	}
}
