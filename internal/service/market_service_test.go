package service

import (
	"context"
	"testing"

	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/internal/core/ports/mocks"
	"craft-economy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type marketTestDeps struct {
	svc    *MarketServiceImpl
	ledger *LedgerServiceImpl
	ctrl   *gomock.Controller
}

// setupMarketService wires a market against a real in-memory ledger so
// fulfillment settles actual balances. Stores are mocked permissive.
func setupMarketService(t *testing.T, taxBps int64, balances map[uuid.UUID]int64) *marketTestDeps {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	balStore := mocks.NewMockBalanceStore(ctrl)
	balStore.EXPECT().Load(gomock.Any()).Return(balances, nil)
	balStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ledger, err := NewLedgerService(ctx, balStore, nil, 100, 1_000_000_000, zerolog.Nop())
	require.NoError(t, err)

	mktStore := mocks.NewMockMarketStore(ctrl)
	mktStore.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
	mktStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	svc, err := NewMarketService(ctx, mktStore, ledger, taxBps, zerolog.Nop())
	require.NoError(t, err)

	return &marketTestDeps{svc: svc, ledger: ledger, ctrl: ctrl}
}

func TestMarketService_CreateRequest_SequentialIDs(t *testing.T) {
	d := setupMarketService(t, 0, nil)
	defer d.ctrl.Finish()

	ctx := context.Background()
	r := uuid.New()
	stack := domain.ItemStack{Kind: domain.Kind("iron_ore"), Quantity: 3}

	first, err := d.svc.CreateRequest(ctx, domain.RequestBuy, r, stack, 300)
	require.NoError(t, err)
	second, err := d.svc.CreateRequest(ctx, domain.RequestBuy, r, stack, 150)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)

	open := d.svc.ListOpenRequests()
	require.Len(t, open, 2)
	assert.Equal(t, first, open[0])
	assert.Equal(t, second, open[1])
}

func TestMarketService_CreateRequest_Validation(t *testing.T) {
	d := setupMarketService(t, 0, nil)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stack := domain.ItemStack{Kind: domain.Kind("iron_ore"), Quantity: 1}

	_, err := d.svc.CreateRequest(ctx, domain.RequestBuy, uuid.New(), domain.ItemStack{Kind: stack.Kind}, 10)
	assert.Error(t, err)

	_, err = d.svc.CreateRequest(ctx, domain.RequestBuy, uuid.New(), stack, -1)
	assert.Error(t, err)

	_, err = d.svc.CreateRequest(ctx, domain.RequestType("barter"), uuid.New(), stack, 10)
	assert.Error(t, err)
}

func TestMarketService_LoadRepairsIDAllocator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	persisted := &domain.MarketState{
		NextID: 1, // stale allocator, behind the persisted requests
		Requests: []domain.TradeRequest{
			{ID: 7, Type: domain.RequestBuy, Requester: uuid.New(), Item: domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}, Price: 10},
		},
	}
	store := mocks.NewMockMarketStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(persisted, true, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := NewMarketService(ctx, store, nil, 0, zerolog.Nop())
	require.NoError(t, err)

	req, err := svc.CreateRequest(ctx, domain.RequestBuy, uuid.New(), domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), req.ID)
}

// Buy-request settlement scenario: requester pays, fulfiller receives price
// minus tax, items land in the requester's delivery queue.
func TestMarketService_FulfillRequest_BuySettlement(t *testing.T) {
	requester := uuid.New()
	fulfiller := uuid.New()
	d := setupMarketService(t, 500, map[uuid.UUID]int64{requester: 1000, fulfiller: 0})
	defer d.ctrl.Finish()

	ctx := context.Background()
	stack := domain.ItemStack{Kind: domain.Kind("iron_ore"), Quantity: 3}
	req, err := d.svc.CreateRequest(ctx, domain.RequestBuy, requester, stack, 300)
	require.NoError(t, err)

	outcome, err := d.svc.FulfillRequest(ctx, req.ID, fulfiller, []domain.ItemStack{stack})
	require.NoError(t, err)
	require.Equal(t, domain.FulfillOK, outcome)

	// 5% of 300 = 15 destroyed
	assert.Equal(t, int64(700), d.ledger.GetBalance(ctx, requester))
	assert.Equal(t, int64(285), d.ledger.GetBalance(ctx, fulfiller))
	assert.Empty(t, d.svc.ListOpenRequests())

	claimed, err := d.svc.ClaimDeliveries(ctx, requester)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, stack, claimed[0])

	again, err := d.svc.ClaimDeliveries(ctx, requester)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestMarketService_FulfillRequest_SellSettlement(t *testing.T) {
	seller := uuid.New()
	buyer := uuid.New()
	d := setupMarketService(t, 500, map[uuid.UUID]int64{seller: 0, buyer: 400})
	defer d.ctrl.Finish()

	ctx := context.Background()
	stack := domain.ItemStack{Kind: domain.Kind("gold_ingot"), Quantity: 2}
	req, err := d.svc.CreateRequest(ctx, domain.RequestSell, seller, stack, 200)
	require.NoError(t, err)

	outcome, err := d.svc.FulfillRequest(ctx, req.ID, buyer, nil)
	require.NoError(t, err)
	require.Equal(t, domain.FulfillOK, outcome)

	assert.Equal(t, int64(200), d.ledger.GetBalance(ctx, buyer))
	assert.Equal(t, int64(190), d.ledger.GetBalance(ctx, seller))

	claimed, err := d.svc.ClaimDeliveries(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, stack, claimed[0])
}

// Fulfilling one's own request must not mint money: the account only loses
// the tax, and the items come straight back as a delivery.
func TestMarketService_FulfillRequest_SelfFulfillmentBurnsOnlyTax(t *testing.T) {
	player := uuid.New()
	d := setupMarketService(t, 500, map[uuid.UUID]int64{player: 1000})
	defer d.ctrl.Finish()

	ctx := context.Background()
	stack := domain.ItemStack{Kind: domain.Kind("iron_ore"), Quantity: 3}
	req, err := d.svc.CreateRequest(ctx, domain.RequestBuy, player, stack, 300)
	require.NoError(t, err)

	outcome, err := d.svc.FulfillRequest(ctx, req.ID, player, []domain.ItemStack{stack})
	require.NoError(t, err)
	require.Equal(t, domain.FulfillOK, outcome)

	// 5% of 300 = 15 destroyed, nothing else moves
	assert.Equal(t, int64(985), d.ledger.GetBalance(ctx, player))
	assert.Empty(t, d.svc.ListOpenRequests())

	claimed, err := d.svc.ClaimDeliveries(ctx, player)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, stack, claimed[0])
}

func TestMarketService_FulfillRequest_NotFound(t *testing.T) {
	d := setupMarketService(t, 0, nil)
	defer d.ctrl.Finish()

	outcome, err := d.svc.FulfillRequest(context.Background(), 99, uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.FulfillNotFound, outcome)
}

func TestMarketService_FulfillRequest_InsufficientRequesterFunds(t *testing.T) {
	requester := uuid.New()
	fulfiller := uuid.New()
	d := setupMarketService(t, 0, map[uuid.UUID]int64{requester: 50, fulfiller: 0})
	defer d.ctrl.Finish()

	ctx := context.Background()
	stack := domain.ItemStack{Kind: domain.Kind("diamond"), Quantity: 1}
	req, err := d.svc.CreateRequest(ctx, domain.RequestBuy, requester, stack, 300)
	require.NoError(t, err)

	outcome, err := d.svc.FulfillRequest(ctx, req.ID, fulfiller, []domain.ItemStack{stack})
	require.NoError(t, err)
	assert.Equal(t, domain.FulfillInsufficientRequesterFunds, outcome)

	// state unchanged
	assert.Equal(t, int64(50), d.ledger.GetBalance(ctx, requester))
	assert.Equal(t, int64(0), d.ledger.GetBalance(ctx, fulfiller))
	assert.Len(t, d.svc.ListOpenRequests(), 1)
	assert.Empty(t, d.svc.GetDeliveries(requester))
}

func TestMarketService_FulfillRequest_InsufficientFulfillerItems(t *testing.T) {
	requester := uuid.New()
	d := setupMarketService(t, 0, map[uuid.UUID]int64{requester: 1000})
	defer d.ctrl.Finish()

	ctx := context.Background()
	req, err := d.svc.CreateRequest(ctx, domain.RequestBuy, requester,
		domain.ItemStack{Kind: domain.Kind("iron_ore"), Quantity: 3}, 300)
	require.NoError(t, err)

	short := []domain.ItemStack{{Kind: domain.Kind("iron_ore"), Quantity: 2}}
	outcome, err := d.svc.FulfillRequest(ctx, req.ID, uuid.New(), short)
	require.NoError(t, err)
	assert.Equal(t, domain.FulfillInsufficientFulfillerItems, outcome)
	assert.Len(t, d.svc.ListOpenRequests(), 1)
}

func TestMarketService_FulfillRequest_VariantsCountTowardDescriptor(t *testing.T) {
	requester := uuid.New()
	d := setupMarketService(t, 0, map[uuid.UUID]int64{requester: 1000})
	defer d.ctrl.Finish()

	ctx := context.Background()
	req, err := d.svc.CreateRequest(ctx, domain.RequestBuy, requester,
		domain.ItemStack{Kind: domain.Kind("iron_ore"), Quantity: 3}, 300)
	require.NoError(t, err)

	handed := []domain.ItemStack{
		{Kind: domain.Kind("iron_ore"), Quantity: 2},
		{Kind: domain.Kind("iron_ore#1"), Quantity: 1},
	}
	outcome, err := d.svc.FulfillRequest(ctx, req.ID, uuid.New(), handed)
	require.NoError(t, err)
	assert.Equal(t, domain.FulfillOK, outcome)
}

// Withdraw racing a fulfillment: the loser sees absent and no second payment
// happens.
func TestMarketService_WithdrawAfterFulfillReturnsAbsent(t *testing.T) {
	requester := uuid.New()
	fulfiller := uuid.New()
	d := setupMarketService(t, 0, map[uuid.UUID]int64{requester: 500, fulfiller: 0})
	defer d.ctrl.Finish()

	ctx := context.Background()
	stack := domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}
	req, err := d.svc.CreateRequest(ctx, domain.RequestBuy, requester, stack, 100)
	require.NoError(t, err)

	outcome, err := d.svc.FulfillRequest(ctx, req.ID, fulfiller, []domain.ItemStack{stack})
	require.NoError(t, err)
	require.Equal(t, domain.FulfillOK, outcome)

	removed, err := d.svc.WithdrawRequest(ctx, req.ID, requester)
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Equal(t, int64(400), d.ledger.GetBalance(ctx, requester))
	assert.Equal(t, int64(100), d.ledger.GetBalance(ctx, fulfiller))
}

func TestMarketService_WithdrawRequest_OnlyRequester(t *testing.T) {
	requester := uuid.New()
	d := setupMarketService(t, 0, map[uuid.UUID]int64{requester: 500})
	defer d.ctrl.Finish()

	ctx := context.Background()
	req, err := d.svc.CreateRequest(ctx, domain.RequestBuy, requester,
		domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}, 100)
	require.NoError(t, err)

	_, err = d.svc.WithdrawRequest(ctx, req.ID, uuid.New())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MKT_004", appErr.Code)

	removed, err := d.svc.WithdrawRequest(ctx, req.ID, requester)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, req, *removed)
	assert.Empty(t, d.svc.ListOpenRequests())
}

func TestMarketService_Deliveries_AddGetRemove(t *testing.T) {
	d := setupMarketService(t, 0, nil)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipient := uuid.New()
	a := domain.ItemStack{Kind: domain.Kind("oak_log"), Quantity: 4}
	b := domain.ItemStack{Kind: domain.Kind("stone"), Quantity: 8}

	require.NoError(t, d.svc.AddDelivery(ctx, recipient, a))
	require.NoError(t, d.svc.AddDelivery(ctx, recipient, b))
	assert.Equal(t, []domain.ItemStack{a, b}, d.svc.GetDeliveries(recipient))

	require.NoError(t, d.svc.RemoveDelivery(ctx, recipient, a))
	assert.Equal(t, []domain.ItemStack{b}, d.svc.GetDeliveries(recipient))

	// removing something not pending is a no-op
	require.NoError(t, d.svc.RemoveDelivery(ctx, recipient, a))
	assert.Equal(t, []domain.ItemStack{b}, d.svc.GetDeliveries(recipient))

	// draining the queue prunes the recipient entry
	require.NoError(t, d.svc.RemoveDelivery(ctx, recipient, b))
	assert.Empty(t, d.svc.GetDeliveries(recipient))
}

func TestMarketService_AddDelivery_RejectsEmptyStack(t *testing.T) {
	d := setupMarketService(t, 0, nil)
	defer d.ctrl.Finish()

	err := d.svc.AddDelivery(context.Background(), uuid.New(), domain.ItemStack{Kind: domain.Kind("stone")})
	assert.Error(t, err)
}

func TestMarketService_Listeners_NotifiedInOrder(t *testing.T) {
	d := setupMarketService(t, 0, nil)
	defer d.ctrl.Finish()

	ctx := context.Background()
	var order []string
	h1 := d.svc.AddListener(func(ev ports.MarketEvent) { order = append(order, "first:"+ev.Kind) })
	h2 := d.svc.AddListener(func(ev ports.MarketEvent) { order = append(order, "second:"+ev.Kind) })

	_, err := d.svc.CreateRequest(ctx, domain.RequestBuy, uuid.New(),
		domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"first:request_created", "second:request_created"}, order)

	d.svc.RemoveListener(h1)
	order = nil
	require.NoError(t, d.svc.AddDelivery(ctx, uuid.New(), domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}))
	assert.Equal(t, []string{"second:delivery_added"}, order)

	d.svc.RemoveListener(h2)
	order = nil
	require.NoError(t, d.svc.AddDelivery(ctx, uuid.New(), domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}))
	assert.Empty(t, order)
}

// A listener reading the open-request list during its callback must not
// deadlock.
func TestMarketService_ListenerMayReadBack(t *testing.T) {
	d := setupMarketService(t, 0, nil)
	defer d.ctrl.Finish()

	var seen int
	d.svc.AddListener(func(ports.MarketEvent) { seen = len(d.svc.ListOpenRequests()) })

	_, err := d.svc.CreateRequest(context.Background(), domain.RequestBuy, uuid.New(),
		domain.ItemStack{Kind: domain.Kind("coal"), Quantity: 1}, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}
