package repositories

import (
	"context"
	"errors"
	"time"

	"talentsite_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	UpdateName(ctx context.Context, id uint, name string) error

	// Admin operations
	SetBlocked(ctx context.Context, id uint, blocked bool) error
	SetSuspended(ctx context.Context, id uint, from, to *time.Time) error
	ClearSuspension(ctx context.Context, id uint) error
	SetPlan(ctx context.Context, id uint, plan string) error
	CountAdmins(ctx context.Context) (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	var existing models.User
	if err := r.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, total, err
}

func (r *UserRepositoryImpl) UpdateName(ctx context.Context, id uint, name string) error {
	return r.updateFields(ctx, id, map[string]interface{}{"name": name})
}

func (r *UserRepositoryImpl) SetBlocked(ctx context.Context, id uint, blocked bool) error {
	return r.updateFields(ctx, id, map[string]interface{}{"blocked": blocked})
}

func (r *UserRepositoryImpl) SetSuspended(ctx context.Context, id uint, from, to *time.Time) error {
	return r.updateFields(ctx, id, map[string]interface{}{
		"suspended":      true,
		"suspended_from": from,
		"suspended_to":   to,
	})
}

func (r *UserRepositoryImpl) ClearSuspension(ctx context.Context, id uint) error {
	return r.updateFields(ctx, id, map[string]interface{}{
		"suspended":      false,
		"suspended_from": nil,
		"suspended_to":   nil,
	})
}

func (r *UserRepositoryImpl) SetPlan(ctx context.Context, id uint, plan string) error {
	return r.updateFields(ctx, id, map[string]interface{}{"plan": plan})
}

func (r *UserRepositoryImpl) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) updateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUserNotFound
		}
	}
	return nil
}
