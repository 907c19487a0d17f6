// Package readmodel holds the read-side projections of the Order aggregate.
// Every loading strategy produces the same OrderView trees.
package readmodel

import (
	"sort"
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemView is one line of an OrderView.
type OrderItemView struct {
	OrderID    uuid.UUID `json:"-"`
	ItemName   string    `json:"itemName"`
	OrderPrice int       `json:"orderPrice"`
	Count      int       `json:"count"`
}

// OrderView is the full order tree handed to API clients.
type OrderView struct {
	OrderID     uuid.UUID          `json:"orderId"`
	Name        string             `json:"name"`
	OrderDate   time.Time          `json:"orderDate"`
	OrderStatus entity.OrderStatus `json:"orderStatus"`
	Address     entity.Address     `json:"address"`
	OrderItems  []OrderItemView    `json:"orderItems"`
}

// SimpleOrderView is the to-one projection of an order: no line items.
type SimpleOrderView struct {
	OrderID     uuid.UUID          `json:"orderId"`
	Name        string             `json:"name"`
	OrderDate   time.Time          `json:"orderDate"`
	OrderStatus entity.OrderStatus `json:"orderStatus"`
	Address     entity.Address     `json:"address"`
}

// FlatRow is a single row of the flat aggregation query: one per order line.
type FlatRow struct {
	OrderID     uuid.UUID
	Name        string
	OrderDate   time.Time
	OrderStatus entity.OrderStatus
	Address     entity.Address
	ItemName    string
	OrderPrice  int
	Count       int
}

// FromOrder maps a fully loaded order (member, delivery, lines and their items) to its view.
func FromOrder(order *entity.Order) OrderView {
	view := OrderView{
		OrderID:     order.ID,
		OrderDate:   order.OrderDate,
		OrderStatus: order.Status,
		OrderItems:  make([]OrderItemView, 0, len(order.OrderItems)),
	}
	if order.Member != nil {
		view.Name = order.Member.Name
	}
	if order.Delivery != nil {
		view.Address = order.Delivery.Address
	}

	for _, orderItem := range order.OrderItems {
		line := OrderItemView{
			OrderID:    order.ID,
			OrderPrice: orderItem.OrderPrice,
			Count:      orderItem.Count,
		}
		if orderItem.Item != nil {
			line.ItemName = orderItem.Item.Name
		}
		view.OrderItems = append(view.OrderItems, line)
	}

	return view
}

// FromOrders maps a slice of orders, keeping their order.
func FromOrders(orders []*entity.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, FromOrder(order))
	}

	return views
}

// SimpleFromOrder maps an order with member and delivery loaded to its to-one view.
func SimpleFromOrder(order *entity.Order) SimpleOrderView {
	view := SimpleOrderView{
		OrderID:     order.ID,
		OrderDate:   order.OrderDate,
		OrderStatus: order.Status,
	}
	if order.Member != nil {
		view.Name = order.Member.Name
	}
	if order.Delivery != nil {
		view.Address = order.Delivery.Address
	}

	return view
}

// GroupFlatRows folds flat rows into order trees. Orders appear in the order
// their first row was seen; lines keep their row order.
func GroupFlatRows(rows []FlatRow) []OrderView {
	index := make(map[uuid.UUID]int)
	views := make([]OrderView, 0)

	for _, row := range rows {
		pos, ok := index[row.OrderID]
		if !ok {
			pos = len(views)
			index[row.OrderID] = pos
			views = append(views, OrderView{
				OrderID:     row.OrderID,
				Name:        row.Name,
				OrderDate:   row.OrderDate,
				OrderStatus: row.OrderStatus,
				Address:     row.Address,
				OrderItems:  make([]OrderItemView, 0, 1),
			})
		}

		views[pos].OrderItems = append(views[pos].OrderItems, OrderItemView{
			OrderID:    row.OrderID,
			ItemName:   row.ItemName,
			OrderPrice: row.OrderPrice,
			Count:      row.Count,
		})
	}

	return views
}

// AttachItems distributes line views onto their roots by order id.
func AttachItems(roots []OrderView, items []OrderItemView) []OrderView {
	byOrder := make(map[uuid.UUID][]OrderItemView, len(roots))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	for i := range roots {
		lines := byOrder[roots[i].OrderID]
		if lines == nil {
			lines = make([]OrderItemView, 0)
		}
		roots[i].OrderItems = lines
	}

	return roots
}

// Canonical returns a copy with orders and their lines in a stable order, so
// trees built by different strategies can be compared as sets.
func Canonical(views []OrderView) []OrderView {
	out := make([]OrderView, len(views))
	for i, view := range views {
		lines := append([]OrderItemView(nil), view.OrderItems...)
		sort.Slice(lines, func(a, b int) bool {
			if lines[a].ItemName != lines[b].ItemName {
				return lines[a].ItemName < lines[b].ItemName
			}
			if lines[a].OrderPrice != lines[b].OrderPrice {
				return lines[a].OrderPrice < lines[b].OrderPrice
			}
			return lines[a].Count < lines[b].Count
		})
		view.OrderItems = lines
		view.OrderDate = view.OrderDate.UTC().Truncate(time.Millisecond)
		out[i] = view
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].OrderID.String() < out[b].OrderID.String()
	})

	return out
}
