package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemberHandlerParams holds dependencies for MemberHandler, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	MemberUC usecase.MemberUsecase
	Logger   *slog.Logger
}

// MemberHandler serves member registration and lookup
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	logger   *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler
func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		memberUC: params.MemberUC,
		logger:   params.Logger,
	}
}

// CreateMemberRequest is the body of POST /members
type CreateMemberRequest struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// CreateMemberResponse carries the ID of the joined member
type CreateMemberResponse struct {
	ID uuid.UUID `json:"id"`
}

// UpdateMemberRequest is the body of PUT /members/:id
type UpdateMemberRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateMemberResponse echoes the renamed member
type UpdateMemberResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MemberResponse is the public view of a member
type MemberResponse struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Address entity.Address `json:"address"`
}

// MemberListResponse wraps the member list with its size
type MemberListResponse struct {
	Count   int              `json:"count"`
	Members []MemberResponse `json:"members"`
}

func toMemberResponse(member *entity.Member) MemberResponse {
	return MemberResponse{
		ID:      member.ID,
		Name:    member.Name,
		Address: member.Address,
	}
}

// CreateMember handles member registration
func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req CreateMemberRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	id, err := h.memberUC.Join(c.Request().Context(), &usecase.JoinMemberInput{
		Name:    req.Name,
		Address: entity.NewAddress(req.City, req.Street, req.Zipcode),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateMemberResponse{ID: id})
}

// ListMembers returns every member
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.memberUC.FindMembers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, toMemberResponse(member))
	}

	return response.Success(c, http.StatusOK, MemberListResponse{Count: len(out), Members: out})
}

// GetMember returns one member
func (h *MemberHandler) GetMember(c echo.Context) error {
	id, ok, err := pathID(c, "member")
	if !ok {
		return err
	}

	member, err := h.memberUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMemberResponse(member))
}

// UpdateMember renames a member
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	id, ok, err := pathID(c, "member")
	if !ok {
		return err
	}

	var req UpdateMemberRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	member, err := h.memberUC.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UpdateMemberResponse{ID: member.ID, Name: member.Name})
}
