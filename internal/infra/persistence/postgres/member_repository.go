package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// Save persists a new member and assigns its ID.
func (repo *memberRepository) Save(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMemberName
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMemberCreationFailed.WrapMessage("missing required member information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update writes the name and address of an existing member.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	address := fromAddressDomain(member.Address)

	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"name":    member.Name,
			"city":    address.City,
			"street":  address.Street,
			"zipcode": address.Zipcode,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateMemberName
		}

		return errors.Wrap(result.Error, "failed to update member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// FindByID retrieves a member by its unique ID.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by ID")
	}

	return toMemberDomain(&memberM), nil
}

// FindAll retrieves every member ordered by registration.
func (repo *memberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	var memberModels []*model.MemberModel

	if err := repo.db.WithContext(ctx).
		Order("created_at, id").
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find members")
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

// FindByName retrieves the members carrying exactly the given name.
func (repo *memberRepository) FindByName(ctx context.Context, name string) ([]*entity.Member, error) {
	var memberModels []*model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find members by name")
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}
