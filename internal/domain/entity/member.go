// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// Member is a registered customer of the shop.
type Member struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the member.
	Name      string    // Display name, unique across members.
	Address   Address   // Default shipping address.
	Orders    []*Order  // Orders placed by this member. Only populated when explicitly loaded.
	CreatedAt time.Time // Timestamp of when this member was registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// NewMember validates the name and builds a member ready to be joined.
func NewMember(name string, address Address) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "member name is required")
	}

	return &Member{
		Name:    name,
		Address: address,
	}, nil
}

// Rename changes the member's display name.
func (m *Member) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "member name is required")
	}

	m.Name = name

	return nil
}

// attachOrder keeps the member side of the Member <-> Order relation in sync.
func (m *Member) attachOrder(order *Order) {
	for _, existing := range m.Orders {
		if existing == order {
			return
		}
	}

	m.Orders = append(m.Orders, order)
}
