// Package entity contains the core business objects of the project.
package entity

import (
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// DeliveryStatus is the shipping progress of an order.
type DeliveryStatus string

const (
	// DeliveryStatusReady means the parcel is waiting to be picked up.
	DeliveryStatusReady DeliveryStatus = "READY"
	// DeliveryStatusInProgress means the parcel is on its way.
	DeliveryStatusInProgress DeliveryStatus = "IN_PROGRESS"
	// DeliveryStatusComplete means the parcel was handed over.
	DeliveryStatusComplete DeliveryStatus = "COMPLETE"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the DeliveryStatus is a known value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusReady, DeliveryStatusInProgress, DeliveryStatusComplete:
		return true
	default:
		return false
	}
}

// Delivery is owned by exactly one Order and created together with it.
type Delivery struct {
	ID      uuid.UUID
	Order   *Order // Back-reference, set by CreateOrder.
	Address Address
	Status  DeliveryStatus
}

// NewDelivery creates a delivery to the given address in READY state.
func NewDelivery(address Address) *Delivery {
	return &Delivery{
		Address: address,
		Status:  DeliveryStatusReady,
	}
}

// Advance moves the delivery one step forward: READY -> IN_PROGRESS -> COMPLETE.
func (d *Delivery) Advance() error {
	if d.Order != nil && d.Order.Status == OrderStatusCancelled {
		return errors.Wrap(domainerrors.ErrInvalidOrderState, "delivery of a cancelled order cannot advance")
	}

	switch d.Status {
	case DeliveryStatusReady:
		d.Status = DeliveryStatusInProgress
	case DeliveryStatusInProgress:
		d.Status = DeliveryStatusComplete
	default:
		return errors.Wrapf(domainerrors.ErrInvalidOrderState, "delivery is already %s", d.Status)
	}

	return nil
}
