package repositories

import (
	"context"
	"errors"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	FindByID(ctx context.Context, id uint) (*models.Ticket, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Ticket, int64, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Ticket, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type TicketRepositoryImpl struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &TicketRepositoryImpl{db: db}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]models.Ticket, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Ticket{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []models.Ticket
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *TicketRepositoryImpl) FindByUser(ctx context.Context, userID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Ticket{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Ticket{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrTicketNotFound
		}
	}
	return nil
}
