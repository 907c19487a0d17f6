package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberModel mirrors the 'members' table. Names are unique.
type MemberModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null;uniqueIndex:uk_members_name"`
	Address   AddressColumns `gorm:"embedded"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}

// BeforeCreate assigns the primary key.
func (m *MemberModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
