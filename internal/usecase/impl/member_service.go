// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	txManager  repository.TransactionManager
	memberRepo repository.MemberRepository
	tracer     trace.Tracer
	logger     *slog.Logger
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.MemberRepository
	Tracer     trace.Tracer
	Logger     *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		tracer:     tracerOrNoop(params.Tracer),
		logger:     params.Logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Join registers a member. The name check is a fast path; the unique index
// settles concurrent joins with the same name.
func (srv *memberService) Join(ctx context.Context, input *usecase.JoinMemberInput) (uuid.UUID, error) {
	ctx, span := srv.tracer.Start(ctx, "member.Join")
	defer span.End()

	member, err := entity.NewMember(input.Name, input.Address)
	if err != nil {
		return uuid.Nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		if err := validateDuplicateMember(ctx, memberRepo, member.Name, uuid.Nil); err != nil {
			return err
		}

		if err := memberRepo.Save(ctx, member); err != nil {
			return mapMemberError(err)
		}

		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		srv.log(ctx).Warn("Member join failed", slog.String("name", member.Name), slog.Any("error", err))

		return uuid.Nil, errors.Wrap(err, "failed to join member")
	}

	srv.log(ctx).Info("Member joined", slog.String("member_id", member.ID.String()))

	return member.ID, nil
}

// FindMembers lists every member
func (srv *memberService) FindMembers(ctx context.Context) ([]*entity.Member, error) {
	members, err := srv.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find members")
	}

	return members, nil
}

// FindOne retrieves a member by ID
func (srv *memberService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapMemberError(err)
	}

	return member, nil
}

// Update renames a member
func (srv *memberService) Update(ctx context.Context, id uuid.UUID, name string) (*entity.Member, error) {
	ctx, span := srv.tracer.Start(ctx, "member.Update")
	defer span.End()

	var updated *entity.Member
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		member, err := memberRepo.FindByID(ctx, id)
		if err != nil {
			return mapMemberError(err)
		}

		if err := member.Rename(name); err != nil {
			return err
		}

		if err := validateDuplicateMember(ctx, memberRepo, member.Name, member.ID); err != nil {
			return err
		}

		if err := memberRepo.Update(ctx, member); err != nil {
			return mapMemberError(err)
		}
		updated = member

		return nil
	})
	if err != nil {
		recordSpanError(span, err)

		return nil, errors.Wrap(err, "failed to update member")
	}

	return updated, nil
}

// validateDuplicateMember rejects a name already used by a member other than self.
func validateDuplicateMember(ctx context.Context, memberRepo repository.MemberRepository, name string, self uuid.UUID) error {
	existing, err := memberRepo.FindByName(ctx, name)
	if err != nil {
		return errors.Wrap(err, "failed to find members by name")
	}

	for _, member := range existing {
		if member.ID != self {
			return domainerrors.ErrDuplicateMemberName.WrapMessage("member name already in use: " + name)
		}
	}

	return nil
}

func mapMemberError(err error) error {
	switch {
	case errors.Is(err, repository.ErrMemberNotFound):
		return domainerrors.ErrMemberNotFound.WrapMessage(err.Error())
	case errors.Is(err, repository.ErrDuplicateMemberName):
		return domainerrors.ErrDuplicateMemberName.WrapMessage(err.Error())
	default:
		return err
	}
}
