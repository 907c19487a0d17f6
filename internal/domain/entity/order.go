// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusOrdered is the state of a freshly placed order.
	OrderStatusOrdered OrderStatus = "ORDERED"
	// OrderStatusCancelled is terminal.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOrdered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is the aggregate root of a purchase. It owns its line items and its delivery.
type Order struct {
	ID         uuid.UUID
	Member     *Member
	OrderItems []*OrderItem
	Delivery   *Delivery
	OrderDate  time.Time
	Status     OrderStatus
}

// CreateOrder assembles a new order and wires every back-reference:
// member <-> order, order <-> delivery and order <-> each line item.
// Stock has already been taken by NewOrderItem.
func CreateOrder(member *Member, delivery *Delivery, orderItems ...*OrderItem) (*Order, error) {
	if member == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order requires a member")
	}
	if delivery == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order requires a delivery")
	}
	if len(orderItems) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order requires at least one item")
	}
	for _, orderItem := range orderItems {
		if orderItem == nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order item must not be nil")
		}
	}

	// Relations are wired only once every part is known to be valid
	order := &Order{
		OrderDate: time.Now(),
		Status:    OrderStatusOrdered,
	}
	order.setMember(member)
	order.setDelivery(delivery)
	for _, orderItem := range orderItems {
		order.addOrderItem(orderItem)
	}

	return order, nil
}

func (o *Order) setMember(member *Member) {
	o.Member = member
	member.attachOrder(o)
}

func (o *Order) setDelivery(delivery *Delivery) {
	o.Delivery = delivery
	delivery.Order = o
}

func (o *Order) addOrderItem(orderItem *OrderItem) {
	o.OrderItems = append(o.OrderItems, orderItem)
	orderItem.Order = o
}

// Cancel marks the order CANCELLED and returns every line's units to stock.
// A completed delivery or an already cancelled order is rejected and nothing changes.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusCancelled {
		return errors.Wrap(domainerrors.ErrInvalidOrderState, "order is already cancelled")
	}
	if o.Delivery != nil && o.Delivery.Status == DeliveryStatusComplete {
		return errors.Wrap(domainerrors.ErrInvalidOrderState, "order with a completed delivery cannot be cancelled")
	}

	o.Status = OrderStatusCancelled
	for _, orderItem := range o.OrderItems {
		orderItem.Cancel()
	}

	return nil
}

// TotalPrice sums the line totals.
func (o *Order) TotalPrice() int {
	total := 0
	for _, orderItem := range o.OrderItems {
		total += orderItem.TotalPrice()
	}

	return total
}
