package repository

import (
	"context"
	"sync"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
)

// InMemoryPaymentLedger collects closed-and-paid tabs for reporting.
type InMemoryPaymentLedger struct {
	mu       sync.RWMutex
	payments []domain.Payment
}

func NewInMemoryPaymentLedger() *InMemoryPaymentLedger {
	return &InMemoryPaymentLedger{}
}

func (l *InMemoryPaymentLedger) Record(ctx context.Context, payment domain.Payment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.payments = append(l.payments, payment)
	return nil
}

func (l *InMemoryPaymentLedger) List(ctx context.Context) ([]domain.Payment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]domain.Payment(nil), l.payments...), nil
}
