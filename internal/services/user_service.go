package services

import (
	"context"
	"errors"

	"talentsite_backend/internal/email"
	"talentsite_backend/internal/logger"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	CreateTicket(ctx context.Context, userID *uint, req *dto.TicketRequest) (*models.Ticket, error)
	MyTickets(ctx context.Context, userID uint) ([]models.Ticket, error)
}

type UserServiceImpl struct {
	userRepo   repositories.UserRepository
	ticketRepo repositories.TicketRepository
	mailer     email.Provider
}

func NewUserService(userRepo repositories.UserRepository, ticketRepo repositories.TicketRepository, mailer email.Provider) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		mailer:     mailer,
	}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := s.userRepo.UpdateName(ctx, userID, req.Name); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetProfile(ctx, userID)
}

// CreateTicket принимает обращение; userID nil для анонимной формы
func (s *UserServiceImpl) CreateTicket(ctx context.Context, userID *uint, req *dto.TicketRequest) (*models.Ticket, error) {
	ticket := &models.Ticket{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "open",
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, apperrors.PersistenceFailed(err)
	}

	// Уведомление уходит в фоне: отказ почты не должен ронять запрос
	go func(t models.Ticket) {
		if err := s.mailer.SendTicketNotification(t.Name, t.Email, t.Subject, t.Message); err != nil {
			logger.WithError(err).Warn("failed to send ticket notification", "ticket_id", t.ID)
		}
	}(*ticket)

	return ticket, nil
}

func (s *UserServiceImpl) MyTickets(ctx context.Context, userID uint) ([]models.Ticket, error) {
	tickets, err := s.ticketRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tickets, nil
}
