// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for member persistence.
var (
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = errors.New("member not found")
	// ErrDuplicateMemberName is returned when the unique index on member names rejects an insert or update.
	ErrDuplicateMemberName = errors.New("member name already exists")
)

// MemberRepository defines the interface for member-related database operations.
type MemberRepository interface {
	// Save persists a new member and assigns its ID.
	Save(ctx context.Context, member *entity.Member) error

	// Update writes the mutable fields of an existing member.
	Update(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindAll retrieves every member ordered by registration.
	FindAll(ctx context.Context) ([]*entity.Member, error)

	// FindByName retrieves the members carrying exactly the given name.
	FindByName(ctx context.Context, name string) ([]*entity.Member, error)
}
