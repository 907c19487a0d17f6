package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. Member and Delivery are belongs-to
// relations; OrderItems is has-many.
type OrderModel struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	MemberID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Member     *MemberModel     `gorm:"foreignKey:MemberID"`
	DeliveryID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	Delivery   *DeliveryModel   `gorm:"foreignKey:DeliveryID"`
	OrderItems []OrderItemModel `gorm:"foreignKey:OrderID"`
	OrderDate  time.Time        `gorm:"not null;index"`
	Status     string           `gorm:"type:varchar(16);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Item       *ItemModel `gorm:"foreignKey:ItemID"`
	OrderPrice int        `gorm:"not null"`
	Count      int        `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the primary key.
func (m *OrderItemModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// DeliveryModel mirrors the 'deliveries' table.
type DeliveryModel struct {
	ID      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Address AddressColumns `gorm:"embedded"`
	Status  string         `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// BeforeCreate assigns the primary key.
func (m *DeliveryModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All lists every model in dependency order, for migrations.
func All() []any {
	return []any{
		&MemberModel{},
		&ItemModel{},
		&DeliveryModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
