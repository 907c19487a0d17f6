// Package usecase defines the application's use case interfaces and their inputs.
package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// JoinMemberInput carries the data of a new member
type JoinMemberInput struct {
	Name    string
	Address entity.Address
}

// MemberUsecase defines the member registration use cases
type MemberUsecase interface {
	// Join registers a member. Names are unique.
	Join(ctx context.Context, input *JoinMemberInput) (uuid.UUID, error)

	// FindMembers lists every member
	FindMembers(ctx context.Context) ([]*entity.Member, error)

	// FindOne retrieves a member by ID
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// Update renames a member, keeping names unique
	Update(ctx context.Context, id uuid.UUID, name string) (*entity.Member, error)
}
