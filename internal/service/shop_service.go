package service

import (
	"context"

	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ShopServiceImpl implements ports.Shop: direct trades against the price
// catalog. Bought items go through the InventoryPlacer when one is wired and
// fall back to a market delivery when placement is refused or no placer
// exists.
type ShopServiceImpl struct {
	catalog ports.PriceCatalog
	ledger  ports.Ledger
	market  ports.Market
	placer  ports.InventoryPlacer // optional
	log     zerolog.Logger
}

// NewShopService creates a new ShopServiceImpl. placer may be nil, in which
// case every purchase is escrowed as a delivery.
func NewShopService(catalog ports.PriceCatalog, ledger ports.Ledger, market ports.Market, placer ports.InventoryPlacer, log zerolog.Logger) *ShopServiceImpl {
	return &ShopServiceImpl{
		catalog: catalog,
		ledger:  ledger,
		market:  market,
		placer:  placer,
		log:     log,
	}
}

// Buy implements ports.Shop.
func (s *ShopServiceImpl) Buy(ctx context.Context, buyer uuid.UUID, kind domain.ItemKind, quantity int) (*ports.ShopReceipt, error) {
	if quantity <= 0 {
		return nil, apperror.Validation("quantity must be positive")
	}
	entry, ok := s.catalog.GetPrice(kind)
	if !ok {
		return nil, apperror.ErrUnknownItemKind(string(kind))
	}
	if !entry.Buyable() {
		return nil, apperror.ErrItemNotBuyable()
	}
	total, ok := domain.SafeMul(entry.Buy, int64(quantity))
	if !ok {
		return nil, apperror.ErrPriceTooLarge()
	}
	if err := s.ledger.Withdraw(ctx, buyer, total); err != nil {
		return nil, err
	}

	stack := domain.ItemStack{Kind: entry.Kind, Quantity: quantity}
	delivered := false
	if s.placer == nil || !s.placer.Place(ctx, buyer, stack) {
		if err := s.market.AddDelivery(ctx, buyer, stack); err != nil {
			// refund: the items went nowhere
			s.ledger.AddBalance(ctx, buyer, total)
			return nil, err
		}
		delivered = true
	}

	s.log.Info().
		Str("buyer", buyer.String()).
		Str("kind", string(entry.Kind)).
		Int("quantity", quantity).
		Int64("total", total).
		Bool("escrowed", delivered).
		Msg("shop purchase")
	return &ports.ShopReceipt{
		Kind:      entry.Kind,
		Quantity:  quantity,
		UnitPrice: entry.Buy,
		Total:     total,
		Delivered: delivered,
	}, nil
}

// Sell implements ports.Shop.
func (s *ShopServiceImpl) Sell(ctx context.Context, seller uuid.UUID, kind domain.ItemKind, quantity int) (*ports.ShopReceipt, error) {
	if quantity <= 0 {
		return nil, apperror.Validation("quantity must be positive")
	}
	entry, ok := s.catalog.GetPrice(kind)
	if !ok {
		return nil, apperror.ErrUnknownItemKind(string(kind))
	}
	if !entry.Sellable() {
		return nil, apperror.ErrItemNotSellable()
	}
	total, ok := domain.SafeMul(entry.Sell, int64(quantity))
	if !ok {
		return nil, apperror.ErrPriceTooLarge()
	}
	s.ledger.AddBalance(ctx, seller, total)

	s.log.Info().
		Str("seller", seller.String()).
		Str("kind", string(entry.Kind)).
		Int("quantity", quantity).
		Int64("total", total).
		Msg("shop sale")
	return &ports.ShopReceipt{
		Kind:      entry.Kind,
		Quantity:  quantity,
		UnitPrice: entry.Sell,
		Total:     total,
	}, nil
}
