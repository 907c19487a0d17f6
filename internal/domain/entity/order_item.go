// Package entity contains the core business objects of the project.
package entity

import (
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// OrderItem is one line of an order: an item, the unit price at order time and a count.
type OrderItem struct {
	ID         uuid.UUID
	Item       *Item
	Order      *Order // Back-reference, set by CreateOrder.
	OrderPrice int    // Unit price captured when the line was created.
	Count      int
}

// NewOrderItem takes count units out of the item's stock and returns the line.
// On InsufficientStock the item is left untouched.
func NewOrderItem(item *Item, orderPrice, count int) (*OrderItem, error) {
	if item == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order item requires an item")
	}
	if count <= 0 {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "order count must be positive, got %d", count)
	}
	if orderPrice < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order price must not be negative")
	}

	if err := item.RemoveStock(count); err != nil {
		return nil, err
	}

	return &OrderItem{
		Item:       item,
		OrderPrice: orderPrice,
		Count:      count,
	}, nil
}

// Cancel puts the ordered units back into the item's stock.
// Calling it twice restores the stock twice; Order.Cancel is the only caller.
func (oi *OrderItem) Cancel() {
	oi.Item.AddStock(oi.Count)
}

// TotalPrice is the line total.
func (oi *OrderItem) TotalPrice() int {
	return oi.OrderPrice * oi.Count
}
