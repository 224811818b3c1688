package payment

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// StubGateway is an in-memory gateway for development; created orders can be
// fetched back, so the reconciliation path works without credentials.
type StubGateway struct {
	mu     sync.Mutex
	orders map[string]*GatewayOrder
	seq    int
}

func NewStubGateway() *StubGateway {
	return &StubGateway{orders: make(map[string]*GatewayOrder)}
}

func (s *StubGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	order := &GatewayOrder{
		ID:       fmt.Sprintf("order_stub_%d_%d", time.Now().Unix(), s.seq),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *StubGateway) FetchOrder(ctx context.Context, orderID string) (*GatewayOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("stub: order %s not found", orderID)
	}
	return order, nil
}
