package readmodel

import (
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFlatRows_KeepsFirstSeenOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	date := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	addr := entity.NewAddress("Seoul", "1", "1111")

	rows := []FlatRow{
		{OrderID: second, Name: "userB", OrderDate: date, OrderStatus: entity.OrderStatusOrdered, Address: addr, ItemName: "SPRING1", OrderPrice: 20000, Count: 3},
		{OrderID: first, Name: "userA", OrderDate: date, OrderStatus: entity.OrderStatusOrdered, Address: addr, ItemName: "JPA1", OrderPrice: 10000, Count: 1},
		{OrderID: second, Name: "userB", OrderDate: date, OrderStatus: entity.OrderStatusOrdered, Address: addr, ItemName: "SPRING2", OrderPrice: 40000, Count: 4},
		{OrderID: first, Name: "userA", OrderDate: date, OrderStatus: entity.OrderStatusOrdered, Address: addr, ItemName: "JPA2", OrderPrice: 20000, Count: 2},
	}

	views := GroupFlatRows(rows)

	require.Len(t, views, 2)
	assert.Equal(t, second, views[0].OrderID)
	assert.Equal(t, "userB", views[0].Name)
	require.Len(t, views[0].OrderItems, 2)
	assert.Equal(t, "SPRING1", views[0].OrderItems[0].ItemName)
	assert.Equal(t, "SPRING2", views[0].OrderItems[1].ItemName)
	assert.Equal(t, first, views[1].OrderID)
	require.Len(t, views[1].OrderItems, 2)
	assert.Equal(t, "JPA1", views[1].OrderItems[0].ItemName)
}

func TestGroupFlatRows_Empty(t *testing.T) {
	views := GroupFlatRows(nil)

	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestFromOrder_MatchesGroupedRows(t *testing.T) {
	member, err := entity.NewMember("userA", entity.NewAddress("Seoul", "1", "1111"))
	require.NoError(t, err)
	book, err := entity.NewBook("JPA1", 10000, 100, entity.BookDetails{})
	require.NoError(t, err)
	line, err := entity.NewOrderItem(book, 10000, 1)
	require.NoError(t, err)
	order, err := entity.CreateOrder(member, entity.NewDelivery(member.Address), line)
	require.NoError(t, err)
	order.ID = uuid.New()

	fromEntity := FromOrder(order)
	fromRows := GroupFlatRows([]FlatRow{{
		OrderID:     order.ID,
		Name:        member.Name,
		OrderDate:   order.OrderDate,
		OrderStatus: order.Status,
		Address:     member.Address,
		ItemName:    book.Name,
		OrderPrice:  10000,
		Count:       1,
	}})

	assert.Equal(t, Canonical([]OrderView{fromEntity}), Canonical(fromRows))
}

func TestAttachItems(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	roots := []OrderView{{OrderID: a}, {OrderID: b}}
	items := []OrderItemView{
		{OrderID: b, ItemName: "x"},
		{OrderID: b, ItemName: "y"},
	}

	views := AttachItems(roots, items)

	assert.Empty(t, views[0].OrderItems)
	assert.NotNil(t, views[0].OrderItems)
	assert.Len(t, views[1].OrderItems, 2)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyBatch, s)

	s, err = ParseStrategy("flat")
	require.NoError(t, err)
	assert.Equal(t, StrategyFlat, s)
	assert.True(t, s.Pageable())
	assert.False(t, StrategyJoin.Pageable())

	_, err = ParseStrategy("lazy")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	simple, err := ParseSimpleStrategy("dto")
	require.NoError(t, err)
	assert.Equal(t, SimpleStrategyDTO, simple)
}
