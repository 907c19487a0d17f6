package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ItemAttributes holds the kind-specific columns of every item variant.
// Only the fields of the row's dtype are set.
type ItemAttributes struct {
	Author   string `json:"author,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Etc      string `json:"etc,omitempty"`
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

// ItemModel mirrors the single 'items' table shared by all item kinds.
// Dtype discriminates the kind; Attributes is a JSON column.
type ItemModel struct {
	ID            uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Dtype         string                             `gorm:"column:dtype;type:varchar(16);not null;index"`
	Name          string                             `gorm:"type:varchar(255);not null"`
	Price         int                                `gorm:"not null;default:0"`
	StockQuantity int                                `gorm:"not null;default:0"`
	Attributes    datatypes.JSONType[ItemAttributes] `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// BeforeCreate assigns the primary key.
func (m *ItemModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
