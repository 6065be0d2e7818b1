package services

import (
	"context"
	"errors"

	"talentsite_backend/internal/models"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/pkg/apperrors"
)

type AdminService interface {
	ListUsers(ctx context.Context, query *dto.ListQuery) (*dto.UserListResponse, error)
	BlockUser(ctx context.Context, id uint) error
	UnblockUser(ctx context.Context, id uint) error
	SuspendUser(ctx context.Context, id uint, req *dto.SuspendRequest) error
	UnsuspendUser(ctx context.Context, id uint) error
	ChangePlan(ctx context.Context, id uint, plan string) error

	ListTickets(ctx context.Context, query *dto.ListQuery) ([]models.Ticket, int64, error)
	UpdateTicketStatus(ctx context.Context, id uint, status string) error
}

type AdminServiceImpl struct {
	userRepo   repositories.UserRepository
	ticketRepo repositories.TicketRepository
}

func NewAdminService(userRepo repositories.UserRepository, ticketRepo repositories.TicketRepository) AdminService {
	return &AdminServiceImpl{userRepo: userRepo, ticketRepo: ticketRepo}
}

func (s *AdminServiceImpl) ListUsers(ctx context.Context, query *dto.ListQuery) (*dto.UserListResponse, error) {
	query.Normalize()

	users, total, err := s.userRepo.FindAll(ctx, query.PageSize, (query.Page-1)*query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users:    make([]dto.UserResponse, 0, len(users)),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *AdminServiceImpl) BlockUser(ctx context.Context, id uint) error {
	return s.wrapUserErr(s.userRepo.SetBlocked(ctx, id, true))
}

func (s *AdminServiceImpl) UnblockUser(ctx context.Context, id uint) error {
	return s.wrapUserErr(s.userRepo.SetBlocked(ctx, id, false))
}

func (s *AdminServiceImpl) SuspendUser(ctx context.Context, id uint, req *dto.SuspendRequest) error {
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return apperrors.ValidationError("suspension window end is before its start")
	}
	return s.wrapUserErr(s.userRepo.SetSuspended(ctx, id, req.From, req.To))
}

func (s *AdminServiceImpl) UnsuspendUser(ctx context.Context, id uint) error {
	return s.wrapUserErr(s.userRepo.ClearSuspension(ctx, id))
}

func (s *AdminServiceImpl) ChangePlan(ctx context.Context, id uint, plan string) error {
	return s.wrapUserErr(s.userRepo.SetPlan(ctx, id, plan))
}

func (s *AdminServiceImpl) ListTickets(ctx context.Context, query *dto.ListQuery) ([]models.Ticket, int64, error) {
	query.Normalize()
	tickets, total, err := s.ticketRepo.FindAll(ctx, query.PageSize, (query.Page-1)*query.PageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return tickets, total, nil
}

func (s *AdminServiceImpl) UpdateTicketStatus(ctx context.Context, id uint, status string) error {
	if err := s.ticketRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			return apperrors.NotFound("ticket")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) wrapUserErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrUserNotFound
	}
	return apperrors.InternalError(err)
}
