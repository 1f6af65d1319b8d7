// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Create(userModel)
	return translateError(result.Error, "user")
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, translateError(result.Error, "user")
	}
	return userModel.ToEntity(), nil
}

// FindByUsername retrieves a user by their username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, translateError(result.Error, "user")
	}
	return userModel.ToEntity(), nil
}

// Update applies the non-nil fields of update and returns the stored user.
func (r *userRepository) Update(ctx context.Context, id int64, update entity.UserUpdate) (*entity.User, error) {
	if update.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if update.Username != nil {
		updates["username"] = *update.Username
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.PasswordHash != nil {
		updates["password_hash"] = *update.PasswordHash
	}

	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, translateError(result.Error, "user")
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a user together with all of their expenses and budgets.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.BudgetModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.UserModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrUserNotFound
		}
		return nil
	})
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return err
	}
	return translateError(err, "user")
}

// Count returns the number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count)
	if result.Error != nil {
		return 0, translateError(result.Error, "user")
	}
	return count, nil
}
