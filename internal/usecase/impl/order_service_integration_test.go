package impl

import (
	"context"
	"sync"
	"testing"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/cache"
	"shop/internal/infra/persistence/postgres"
	"shop/internal/infra/persistence/sqlitetest"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type shopFixture struct {
	db      *gorm.DB
	members usecase.MemberUsecase
	items   usecase.ItemUsecase
	orders  usecase.OrderUsecase
}

func newShopFixture(t *testing.T) *shopFixture {
	t.Helper()

	db := sqlitetest.Open(t)
	cfg := &config.Config{}
	txManager := postgres.NewTransactionManager(db, cfg)
	logger := newDiscardLogger()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return &shopFixture{
		db: db,
		members: NewMemberService(MemberServiceParams{
			TxManager:  txManager,
			MemberRepo: postgres.NewMemberRepository(db),
			Logger:     logger,
		}),
		items: NewItemService(ItemServiceParams{
			TxManager: txManager,
			ItemRepo:  postgres.NewItemRepository(db),
			Logger:    logger,
		}),
		orders: NewOrderService(OrderServiceParams{
			TxManager:   txManager,
			OrderRepo:   postgres.NewOrderRepository(db, 100),
			Publisher:   publisher,
			Idempotency: cache.NewIdempotencyStore(nil, cfg),
			StatusCache: cache.NewOrderStatusCache(nil, cfg),
			Logger:      logger,
		}),
	}
}

func (f *shopFixture) joinKimWithBookA(t *testing.T, stock int) (*entity.Member, *entity.Item) {
	t.Helper()
	ctx := context.Background()

	memberID, err := f.members.Join(ctx, &usecase.JoinMemberInput{
		Name:    "kim",
		Address: entity.NewAddress("Seoul", "River", "12345"),
	})
	require.NoError(t, err)

	itemID, err := f.items.SaveItem(ctx, &usecase.SaveItemInput{
		Kind:          entity.ItemKindBook,
		Name:          "Book A",
		Price:         10000,
		StockQuantity: stock,
		Author:        "kim",
		ISBN:          "1111",
	})
	require.NoError(t, err)

	member, err := f.members.FindOne(ctx, memberID)
	require.NoError(t, err)
	item, err := f.items.FindOne(ctx, itemID)
	require.NoError(t, err)

	return member, item
}

func (f *shopFixture) stockOf(t *testing.T, item *entity.Item) int {
	t.Helper()

	found, err := f.items.FindOne(context.Background(), item.ID)
	require.NoError(t, err)

	return found.StockQuantity
}

func TestOrderLifecycle_OrderThenCancel(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()
	member, book := f.joinKimWithBookA(t, 10)

	orderID, err := f.orders.Order(ctx, &usecase.PlaceOrderInput{MemberID: member.ID, ItemID: book.ID, Count: 2})
	require.NoError(t, err)

	orders, err := f.orders.FindOrders(ctx, repository.OrderSearch{MemberName: "ki"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.OrderStatusOrdered, order.Status)
	assert.Equal(t, 20000, order.TotalPrice())
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 10000, order.OrderItems[0].OrderPrice)
	assert.True(t, member.Address.Equal(order.Delivery.Address))
	assert.Equal(t, 8, f.stockOf(t, book))

	require.NoError(t, f.orders.CancelOrder(ctx, orderID))
	assert.Equal(t, 10, f.stockOf(t, book))

	cancelled, err := f.orders.FindOrders(ctx, repository.OrderSearch{OrderStatus: entity.OrderStatusCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)

	err = f.orders.CancelOrder(ctx, orderID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderState))
	assert.Equal(t, 10, f.stockOf(t, book))
}

func TestOrderLifecycle_InsufficientStockLeavesNoTrace(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()
	member, book := f.joinKimWithBookA(t, 2)

	_, err := f.orders.Order(ctx, &usecase.PlaceOrderInput{MemberID: member.ID, ItemID: book.ID, Count: 5})

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Equal(t, 2, f.stockOf(t, book))

	orders, err := f.orders.FindOrders(ctx, repository.OrderSearch{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderLifecycle_ConcurrentCancelRestoresStockOnce(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()
	member, book := f.joinKimWithBookA(t, 10)

	orderID, err := f.orders.Order(ctx, &usecase.PlaceOrderInput{MemberID: member.ID, ItemID: book.ID, Count: 3})
	require.NoError(t, err)
	require.Equal(t, 7, f.stockOf(t, book))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.orders.CancelOrder(ctx, orderID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domainerrors.ErrInvalidOrderState):
				rejected++
			default:
				t.Errorf("unexpected cancel error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
	assert.Equal(t, 10, f.stockOf(t, book))
}

func TestMemberJoin_ConcurrentDuplicateNamesKeepOneRow(t *testing.T) {
	f := newShopFixture(t)
	ctx := context.Background()

	const workers = 6
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.members.Join(ctx, &usecase.JoinMemberInput{Name: "kim"})
		}()
	}
	wg.Wait()

	joined := 0
	for _, err := range errs {
		if err == nil {
			joined++

			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateMemberName), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, joined)

	members, err := f.members.FindMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}
