package service

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type marketListener struct {
	handle int
	fn     func(ports.MarketEvent)
}

// MarketServiceImpl implements ports.Market. Open requests and deliveries
// live in memory guarded by a single mutex; the MarketStore receives the full
// state after every mutation. Listeners are invoked outside the lock from a
// snapshot of the registration list, so a callback may read (or even mutate)
// the market without deadlocking.
type MarketServiceImpl struct {
	mu    sync.Mutex
	state *domain.MarketState

	listeners  []marketListener
	nextHandle int

	store  ports.MarketStore
	ledger ports.Ledger
	taxBps int64
	log    zerolog.Logger
}

// NewMarketService loads the persisted request ledger, starting empty when
// nothing was persisted yet.
func NewMarketService(ctx context.Context, store ports.MarketStore, ledger ports.Ledger, taxBps int64, log zerolog.Logger) (*MarketServiceImpl, error) {
	state, found, err := store.Load(ctx)
	if err != nil {
		return nil, apperror.ErrStorageError(err)
	}
	if !found || state == nil {
		state = domain.NewMarketState()
	}
	if state.Deliveries == nil {
		state.Deliveries = make(map[uuid.UUID][]domain.ItemStack)
	}
	// the allocator must stay ahead of every persisted id
	for _, r := range state.Requests {
		if r.ID >= state.NextID {
			state.NextID = r.ID + 1
		}
	}
	if state.NextID == 0 {
		state.NextID = 1
	}
	log.Info().
		Int("requests", len(state.Requests)).
		Int("delivery_queues", len(state.Deliveries)).
		Msg("market loaded")
	return &MarketServiceImpl{
		state:  state,
		store:  store,
		ledger: ledger,
		taxBps: taxBps,
		log:    log,
	}, nil
}

// persistLocked writes the full state through to storage. Save failures are
// logged and the in-memory mutation stands. Caller holds s.mu.
func (s *MarketServiceImpl) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.state); err != nil {
		s.log.Error().Err(err).Msg("market state write failed")
	}
}

// snapshotListenersLocked copies the registration list so callbacks run
// without the lock held. Caller holds s.mu.
func (s *MarketServiceImpl) snapshotListenersLocked() []marketListener {
	if len(s.listeners) == 0 {
		return nil
	}
	return append([]marketListener(nil), s.listeners...)
}

func notify(listeners []marketListener, ev ports.MarketEvent) {
	for _, l := range listeners {
		l.fn(ev)
	}
}

// CreateRequest implements ports.Market.
func (s *MarketServiceImpl) CreateRequest(ctx context.Context, typ domain.RequestType, requester uuid.UUID, item domain.ItemStack, price int64) (domain.TradeRequest, error) {
	if typ != domain.RequestBuy && typ != domain.RequestSell {
		return domain.TradeRequest{}, apperror.Validation("unknown request type")
	}
	if item.Quantity <= 0 {
		return domain.TradeRequest{}, apperror.Validation("item quantity must be positive")
	}
	if price < 0 {
		return domain.TradeRequest{}, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	req := domain.TradeRequest{
		ID:        s.state.NextID,
		Type:      typ,
		Requester: requester,
		Item:      item,
		Price:     price,
	}
	s.state.NextID++
	s.state.Requests = append(s.state.Requests, req)
	s.persistLocked(ctx)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	s.log.Info().
		Uint64("request_id", req.ID).
		Str("type", string(typ)).
		Str("requester", requester.String()).
		Str("kind", string(item.Kind)).
		Int64("price", price).
		Msg("trade request created")
	notify(listeners, ports.MarketEvent{Kind: "request_created", RequestID: req.ID, Request: &req})
	return req, nil
}

// ListOpenRequests implements ports.Market.
func (s *MarketServiceImpl) ListOpenRequests() []domain.TradeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TradeRequest(nil), s.state.Requests...)
}

// findLocked returns the index of the request with the given id, or -1.
// Caller holds s.mu.
func (s *MarketServiceImpl) findLocked(id uint64) int {
	for i, r := range s.state.Requests {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// removeLocked drops the request at index i, keeping id order. Caller holds
// s.mu.
func (s *MarketServiceImpl) removeLocked(i int) {
	s.state.Requests = append(s.state.Requests[:i], s.state.Requests[i+1:]...)
}

// WithdrawRequest implements ports.Market.
func (s *MarketServiceImpl) WithdrawRequest(ctx context.Context, id uint64, requester uuid.UUID) (*domain.TradeRequest, error) {
	s.mu.Lock()
	i := s.findLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, nil
	}
	req := s.state.Requests[i]
	if req.Requester != requester {
		s.mu.Unlock()
		return nil, apperror.ErrNotRequester()
	}
	s.removeLocked(i)
	s.persistLocked(ctx)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	s.log.Info().Uint64("request_id", id).Msg("trade request withdrawn")
	notify(listeners, ports.MarketEvent{Kind: "request_withdrawn", RequestID: id, Request: &req})
	return &req, nil
}

// coversDescriptor reports whether the handed-over items include at least the
// requested quantity of the requested kind. Aux-data variants count toward
// the base kind.
func coversDescriptor(items []domain.ItemStack, want domain.ItemStack) bool {
	have := 0
	for _, it := range items {
		if it.Kind.Base() == want.Kind.Base() && it.Quantity > 0 {
			have += it.Quantity
		}
	}
	return have >= want.Quantity
}

// FulfillRequest implements ports.Market. Buy requests move price from the
// requester to the fulfiller against the handed-over items; sell listings
// move price from the fulfiller to the requester against the escrowed item.
// The tax is withheld from the seller's proceeds inside the settlement and is
// not credited anywhere.
func (s *MarketServiceImpl) FulfillRequest(ctx context.Context, id uint64, fulfiller uuid.UUID, items []domain.ItemStack) (domain.FulfillOutcome, error) {
	s.mu.Lock()
	i := s.findLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.FulfillNotFound, nil
	}
	req := s.state.Requests[i]

	var payer, payee, recipient uuid.UUID
	var delivered domain.ItemStack
	switch req.Type {
	case domain.RequestBuy:
		if !coversDescriptor(items, req.Item) {
			s.mu.Unlock()
			return domain.FulfillInsufficientFulfillerItems, nil
		}
		payer, payee, recipient = req.Requester, fulfiller, req.Requester
		delivered = req.Item
	case domain.RequestSell:
		payer, payee, recipient = fulfiller, req.Requester, fulfiller
		delivered = req.Item
	default:
		s.mu.Unlock()
		return domain.FulfillNotFound, apperror.Validation("unknown request type")
	}

	tax := domain.TaxAmount(req.Price, s.taxBps)
	if err := s.ledger.PayWithTax(ctx, payer, payee, req.Price, tax); err != nil {
		s.mu.Unlock()
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "LED_001" {
			return domain.FulfillInsufficientRequesterFunds, nil
		}
		return domain.FulfillNotFound, err
	}

	s.removeLocked(i)
	s.state.Deliveries[recipient] = append(s.state.Deliveries[recipient], delivered)
	s.persistLocked(ctx)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	s.log.Info().
		Uint64("request_id", id).
		Str("fulfiller", fulfiller.String()).
		Int64("price", req.Price).
		Msg("trade request fulfilled")
	notify(listeners, ports.MarketEvent{Kind: "request_fulfilled", RequestID: id, Recipient: recipient, Request: &req})
	return domain.FulfillOK, nil
}

// AddDelivery implements ports.Market.
func (s *MarketServiceImpl) AddDelivery(ctx context.Context, recipient uuid.UUID, item domain.ItemStack) error {
	if item.Quantity <= 0 {
		return apperror.Validation("item quantity must be positive")
	}
	s.mu.Lock()
	s.state.Deliveries[recipient] = append(s.state.Deliveries[recipient], item)
	s.persistLocked(ctx)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, ports.MarketEvent{Kind: "delivery_added", Recipient: recipient})
	return nil
}

// GetDeliveries implements ports.Market.
func (s *MarketServiceImpl) GetDeliveries(recipient uuid.UUID) []domain.ItemStack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ItemStack(nil), s.state.Deliveries[recipient]...)
}

// ClaimDeliveries implements ports.Market.
func (s *MarketServiceImpl) ClaimDeliveries(ctx context.Context, recipient uuid.UUID) ([]domain.ItemStack, error) {
	s.mu.Lock()
	items := s.state.Deliveries[recipient]
	if len(items) == 0 {
		s.mu.Unlock()
		return nil, nil
	}
	delete(s.state.Deliveries, recipient)
	s.persistLocked(ctx)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, ports.MarketEvent{Kind: "delivery_claimed", Recipient: recipient})
	return items, nil
}

// RemoveDelivery implements ports.Market. The first pending item matching
// kind, quantity and metadata is removed; empty queues are pruned. Removing
// an item that is not pending is a no-op.
func (s *MarketServiceImpl) RemoveDelivery(ctx context.Context, recipient uuid.UUID, item domain.ItemStack) error {
	s.mu.Lock()
	items := s.state.Deliveries[recipient]
	found := -1
	for i, it := range items {
		if it.Kind == item.Kind && it.Quantity == item.Quantity && bytes.Equal(it.Meta, item.Meta) {
			found = i
			break
		}
	}
	if found < 0 {
		s.mu.Unlock()
		return nil
	}
	items = append(items[:found], items[found+1:]...)
	if len(items) == 0 {
		delete(s.state.Deliveries, recipient)
	} else {
		s.state.Deliveries[recipient] = items
	}
	s.persistLocked(ctx)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, ports.MarketEvent{Kind: "delivery_claimed", Recipient: recipient})
	return nil
}

// AddListener implements ports.Market.
func (s *MarketServiceImpl) AddListener(fn func(ports.MarketEvent)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextHandle++
	s.listeners = append(s.listeners, marketListener{handle: s.nextHandle, fn: fn})
	return s.nextHandle
}

// RemoveListener implements ports.Market.
func (s *MarketServiceImpl) RemoveListener(handle int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.handle == handle {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Flush implements ports.Market.
func (s *MarketServiceImpl) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, s.state); err != nil {
		return apperror.ErrStorageError(err)
	}
	s.log.Info().
		Int("requests", len(s.state.Requests)).
		Int("delivery_queues", len(s.state.Deliveries)).
		Msg("market flushed")
	return nil
}
