// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MemberHandler    *handler.MemberHandler
	ItemHandler      *handler.ItemHandler
	OrderHandler     *handler.OrderHandler
	OrderViewHandler *handler.OrderViewHandler
	DeliveryHandler  *handler.DeliveryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	memberHandler    *handler.MemberHandler
	itemHandler      *handler.ItemHandler
	orderHandler     *handler.OrderHandler
	orderViewHandler *handler.OrderViewHandler
	deliveryHandler  *handler.DeliveryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		memberHandler:    params.MemberHandler,
		itemHandler:      params.ItemHandler,
		orderHandler:     params.OrderHandler,
		orderViewHandler: params.OrderViewHandler,
		deliveryHandler:  params.DeliveryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	membersGroup := apiV1.Group("/members")
	{
		membersGroup.POST("", r.memberHandler.CreateMember)
		membersGroup.GET("", r.memberHandler.ListMembers)
		membersGroup.GET("/:id", r.memberHandler.GetMember)
		membersGroup.PUT("/:id", r.memberHandler.UpdateMember)
	}

	itemsGroup := apiV1.Group("/items")
	{
		itemsGroup.POST("", r.itemHandler.CreateItem)
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.GET("/:id", r.itemHandler.GetItem)
		itemsGroup.PUT("/:id", r.itemHandler.UpdateItem)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.SearchOrders)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		ordersGroup.GET("/:id/status", r.orderHandler.GetOrderStatus)

		// Delivery progress of an order
		ordersGroup.POST("/:id/delivery/advance", r.deliveryHandler.AdvanceDelivery)
		ordersGroup.GET("/:id/delivery/label", r.deliveryHandler.GetDeliveryLabel)
	}

	apiV1.POST("/deliveries/scan", r.deliveryHandler.ScanDeliveryLabel)

	// Read models
	apiV1.GET("/order-views", r.orderViewHandler.ListOrderViews)
	apiV1.GET("/simple-orders", r.orderViewHandler.ListSimpleOrders)
}
