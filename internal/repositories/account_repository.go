package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type AccountRepository interface {
	FindByID(ctx context.Context, accountID string) (*db_models.Account, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Insert(ctx context.Context, account *db_models.Account) error
	UpdateFields(ctx context.Context, accountID string, updates map[string]interface{}) error

	// ListCustomers returns non-archived accounts with the user role; this
	// is the broadcast recipient set.
	ListCustomers(ctx context.Context) ([]db_models.Account, error)
	CountCustomers(ctx context.Context) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a accountRepository) findOne(ctx context.Context, query string, args ...interface{}) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Where(query, args...).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a accountRepository) FindByID(ctx context.Context, accountID string) (*db_models.Account, error) {
	return a.findOne(ctx, "id = ?", accountID)
}

func (a accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	return a.findOne(ctx, "username = ?", username)
}

func (a accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.findOne(ctx, "email = ?", email)
}

func (a accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a accountRepository) UpdateFields(ctx context.Context, accountID string, updates map[string]interface{}) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", accountID).
		Updates(updates).Error
}

func (a accountRepository) ListCustomers(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Where("role = ?", db_models.RoleUser).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a accountRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("role = ?", db_models.RoleUser).
		Count(&count).Error
	return count, err
}
