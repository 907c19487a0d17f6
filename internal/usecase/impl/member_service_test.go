package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemberServiceUnderTest(t *testing.T) (usecase.MemberUsecase, *mockRepo.MockMemberRepository) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)

	mockFactory.EXPECT().NewMemberRepository().Return(mockMemberRepo).Maybe()
	expectTx(mockTx, mockFactory)

	svc := NewMemberService(MemberServiceParams{
		TxManager:  mockTx,
		MemberRepo: mockMemberRepo,
		Logger:     newDiscardLogger(),
	})

	return svc, mockMemberRepo
}

func TestMemberService_Join_Success(t *testing.T) {
	svc, mockMemberRepo := newMemberServiceUnderTest(t)
	assignedID := uuid.New()

	mockMemberRepo.EXPECT().
		FindByName(mock.Anything, "kim").
		Return([]*entity.Member{}, nil)
	mockMemberRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Member")).
		Run(func(_ context.Context, member *entity.Member) {
			member.ID = assignedID
		}).
		Return(nil)

	id, err := svc.Join(context.Background(), &usecase.JoinMemberInput{
		Name:    "kim",
		Address: entity.NewAddress("Seoul", "River", "12345"),
	})

	require.NoError(t, err)
	assert.Equal(t, assignedID, id)
}

func TestMemberService_Join_DuplicateName(t *testing.T) {
	svc, mockMemberRepo := newMemberServiceUnderTest(t)

	mockMemberRepo.EXPECT().
		FindByName(mock.Anything, "kim").
		Return([]*entity.Member{newTestMember(t, "kim")}, nil)

	_, err := svc.Join(context.Background(), &usecase.JoinMemberInput{Name: "kim"})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateMemberName))
}

func TestMemberService_Join_UniqueIndexViolation(t *testing.T) {
	svc, mockMemberRepo := newMemberServiceUnderTest(t)

	mockMemberRepo.EXPECT().
		FindByName(mock.Anything, "kim").
		Return(nil, nil)
	mockMemberRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Member")).
		Return(repository.ErrDuplicateMemberName)

	_, err := svc.Join(context.Background(), &usecase.JoinMemberInput{Name: "kim"})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateMemberName))
}

func TestMemberService_Join_EmptyName(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	svc := NewMemberService(MemberServiceParams{
		TxManager:  mockTx,
		MemberRepo: mockRepo.NewMockMemberRepository(t),
		Logger:     newDiscardLogger(),
	})

	_, err := svc.Join(context.Background(), &usecase.JoinMemberInput{Name: "   "})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMemberService_FindOne_NotFound(t *testing.T) {
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	svc := NewMemberService(MemberServiceParams{
		TxManager:  mockRepo.NewMockTransactionManager(t),
		MemberRepo: mockMemberRepo,
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()
	id := uuid.New()

	mockMemberRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMemberNotFound)

	_, err := svc.FindOne(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
}

func TestMemberService_Update(t *testing.T) {
	tests := []struct {
		name      string
		others    []*entity.Member
		updateErr error
		wantErr   error
	}{
		{name: "renamed", others: nil},
		{name: "name taken", others: []*entity.Member{{ID: uuid.New(), Name: "lee"}}, wantErr: domainerrors.ErrDuplicateMemberName},
		{name: "index violation", updateErr: repository.ErrDuplicateMemberName, wantErr: domainerrors.ErrDuplicateMemberName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockMemberRepo := newMemberServiceUnderTest(t)
			member := newTestMember(t, "kim")

			mockMemberRepo.EXPECT().FindByID(mock.Anything, member.ID).Return(member, nil)
			mockMemberRepo.EXPECT().FindByName(mock.Anything, "lee").Return(tt.others, nil)
			if len(tt.others) == 0 {
				mockMemberRepo.EXPECT().Update(mock.Anything, member).Return(tt.updateErr)
			}

			updated, err := svc.Update(context.Background(), member.ID, "lee")

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "lee", updated.Name)
		})
	}
}
