package entity

import (
	"testing"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook(t *testing.T, name string, price, stock int) *Item {
	t.Helper()

	item, err := NewBook(name, price, stock, BookDetails{Author: "author", ISBN: "isbn"})
	require.NoError(t, err)

	return item
}

func newTestMember(t *testing.T, name string) *Member {
	t.Helper()

	member, err := NewMember(name, NewAddress("Seoul", "River", "12345"))
	require.NoError(t, err)

	return member
}

func TestCreateOrder_WiresRelationsAndTakesStock(t *testing.T) {
	member := newTestMember(t, "kim")
	book := newTestBook(t, "Book A", 10000, 10)

	orderItem, err := NewOrderItem(book, book.Price, 2)
	require.NoError(t, err)

	delivery := NewDelivery(member.Address)
	order, err := CreateOrder(member, delivery, orderItem)
	require.NoError(t, err)

	assert.Equal(t, OrderStatusOrdered, order.Status)
	assert.False(t, order.OrderDate.IsZero())
	assert.Same(t, member, order.Member)
	assert.Contains(t, member.Orders, order)
	assert.Same(t, order, delivery.Order)
	assert.Equal(t, DeliveryStatusReady, delivery.Status)
	assert.Same(t, order, orderItem.Order)
	assert.Equal(t, 8, book.StockQuantity)
	assert.Equal(t, 20000, order.TotalPrice())
}

func TestCreateOrder_RejectsMissingParts(t *testing.T) {
	member := newTestMember(t, "kim")
	book := newTestBook(t, "Book A", 10000, 10)
	orderItem, err := NewOrderItem(book, book.Price, 1)
	require.NoError(t, err)

	tests := []struct {
		name     string
		member   *Member
		delivery *Delivery
		items    []*OrderItem
	}{
		{name: "no member", delivery: NewDelivery(member.Address), items: []*OrderItem{orderItem}},
		{name: "no delivery", member: member, items: []*OrderItem{orderItem}},
		{name: "no items", member: member, delivery: NewDelivery(member.Address)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateOrder(tt.member, tt.delivery, tt.items...)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCreateOrder_NilItemLeavesRelationsUntouched(t *testing.T) {
	member := newTestMember(t, "kim")
	delivery := NewDelivery(member.Address)
	book := newTestBook(t, "Book A", 10000, 10)
	orderItem, err := NewOrderItem(book, book.Price, 1)
	require.NoError(t, err)

	order, err := CreateOrder(member, delivery, orderItem, nil)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Empty(t, member.Orders)
	assert.Nil(t, delivery.Order)
	assert.Nil(t, orderItem.Order)
}

func TestOrder_Cancel_RestoresStock(t *testing.T) {
	member := newTestMember(t, "kim")
	book := newTestBook(t, "Book A", 10000, 10)
	orderItem, err := NewOrderItem(book, book.Price, 2)
	require.NoError(t, err)
	order, err := CreateOrder(member, NewDelivery(member.Address), orderItem)
	require.NoError(t, err)

	require.NoError(t, order.Cancel())

	assert.Equal(t, OrderStatusCancelled, order.Status)
	assert.Equal(t, 10, book.StockQuantity)
}

func TestOrder_Cancel_TwiceIsInvalidState(t *testing.T) {
	member := newTestMember(t, "kim")
	book := newTestBook(t, "Book A", 10000, 10)
	orderItem, err := NewOrderItem(book, book.Price, 2)
	require.NoError(t, err)
	order, err := CreateOrder(member, NewDelivery(member.Address), orderItem)
	require.NoError(t, err)

	require.NoError(t, order.Cancel())
	err = order.Cancel()

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderState))
	assert.Equal(t, 10, book.StockQuantity)
}

func TestOrder_Cancel_CompletedDelivery(t *testing.T) {
	member := newTestMember(t, "kim")
	book := newTestBook(t, "Book A", 10000, 10)
	orderItem, err := NewOrderItem(book, book.Price, 2)
	require.NoError(t, err)
	order, err := CreateOrder(member, NewDelivery(member.Address), orderItem)
	require.NoError(t, err)

	order.Delivery.Status = DeliveryStatusComplete

	err = order.Cancel()
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderState))
	assert.Equal(t, OrderStatusOrdered, order.Status)
	assert.Equal(t, 8, book.StockQuantity)
}

func TestOrder_TotalPrice_MultipleLines(t *testing.T) {
	member := newTestMember(t, "kim")
	first := newTestBook(t, "JPA1 BOOK", 10000, 100)
	second := newTestBook(t, "JPA2 BOOK", 20000, 100)

	line1, err := NewOrderItem(first, 10000, 1)
	require.NoError(t, err)
	line2, err := NewOrderItem(second, 20000, 2)
	require.NoError(t, err)

	order, err := CreateOrder(member, NewDelivery(member.Address), line1, line2)
	require.NoError(t, err)

	assert.Equal(t, 50000, order.TotalPrice())
}

func TestNewOrderItem_InsufficientStock(t *testing.T) {
	book := newTestBook(t, "Book A", 10000, 2)

	_, err := NewOrderItem(book, book.Price, 5)

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Equal(t, 2, book.StockQuantity)
}

func TestNewOrderItem_RejectsNonPositiveCount(t *testing.T) {
	book := newTestBook(t, "Book A", 10000, 2)

	_, err := NewOrderItem(book, book.Price, 0)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, 2, book.StockQuantity)
}

func TestNewOrderItem_KeepsOrderPrice(t *testing.T) {
	book := newTestBook(t, "Book A", 10000, 5)

	orderItem, err := NewOrderItem(book, 9000, 3)
	require.NoError(t, err)

	book.Price = 12000
	assert.Equal(t, 27000, orderItem.TotalPrice())
}
