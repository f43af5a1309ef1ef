package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/meron6/authsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM.
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// SessionID and ResetToken are nullable columns; NULL means "none".
type DBUser struct {
	ID             uint    `gorm:"primaryKey"`
	Email          string  `gorm:"uniqueIndex;size:255"`
	HashedPassword string  `gorm:"size:255"`
	SessionID      *string `gorm:"index;size:64"`
	ResetToken     *string `gorm:"index;size:64"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM.
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Insert implements domain.UserRepository. The unique email index backs
// uniqueness: a duplicate insert surfaces as domain.ErrAlreadyRegistered
// rather than relying on a preceding read.
func (r *UserRepositoryImpl) Insert(ctx context.Context, email, hashedPassword string) (*domain.User, error) {
	if email == "" || hashedPassword == "" {
		return nil, domain.ErrInvalidInput
	}

	dbUser := &DBUser{Email: email, HashedPassword: hashedPassword}
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, err
	}
	return r.dbToDomain(dbUser), nil
}

// FindOne implements domain.UserRepository. An empty filter is a
// programming error; more than one match is an integrity violation and
// is signalled distinctly rather than silently picking a row.
func (r *UserRepositoryImpl) FindOne(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	if filter.Empty() {
		return nil, domain.ErrInvalidQuery
	}

	var dbUsers []DBUser
	err := r.filterQuery(ctx, filter).Limit(2).Find(&dbUsers).Error
	if err != nil {
		return nil, err
	}
	switch len(dbUsers) {
	case 0:
		return nil, domain.ErrUserNotFound
	case 1:
		return r.dbToDomain(&dbUsers[0]), nil
	default:
		return nil, domain.ErrMultipleRecords
	}
}

// Update implements domain.UserRepository. All requested field writes
// commit as one transaction; a missing user leaves nothing applied.
func (r *UserRepositoryImpl) Update(ctx context.Context, userID uint, update domain.UserUpdate) error {
	if update.Empty() {
		return domain.ErrInvalidField
	}

	values := map[string]any{
		"updated_at": time.Now(),
	}
	if update.HashedPassword != nil {
		values["hashed_password"] = *update.HashedPassword
	}
	if update.SessionID != nil {
		values["session_id"] = nullable(*update.SessionID)
	}
	if update.ResetToken != nil {
		values["reset_token"] = nullable(*update.ResetToken)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dbUser DBUser
		if err := tx.Where("id = ?", userID).First(&dbUser).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		return tx.Model(&DBUser{}).Where("id = ?", userID).Updates(values).Error
	})
}

func (r *UserRepositoryImpl) filterQuery(ctx context.Context, filter domain.UserFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&DBUser{})
	if filter.ID != nil {
		q = q.Where("id = ?", *filter.ID)
	}
	if filter.Email != nil {
		q = q.Where("email = ?", *filter.Email)
	}
	if filter.HashedPassword != nil {
		q = q.Where("hashed_password = ?", *filter.HashedPassword)
	}
	if filter.SessionID != nil {
		q = q.Where("session_id = ?", *filter.SessionID)
	}
	if filter.ResetToken != nil {
		q = q.Where("reset_token = ?", *filter.ResetToken)
	}
	return q
}

// nullable maps the empty string to NULL so cleared back-references are
// stored as absent, not as "".
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// dbToDomain converts a database user to a domain user.
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	user := &domain.User{
		ID:             dbUser.ID,
		Email:          dbUser.Email,
		HashedPassword: dbUser.HashedPassword,
		CreatedAt:      dbUser.CreatedAt,
		UpdatedAt:      dbUser.UpdatedAt,
	}
	if dbUser.SessionID != nil {
		user.SessionID = *dbUser.SessionID
	}
	if dbUser.ResetToken != nil {
		user.ResetToken = *dbUser.ResetToken
	}
	return user
}
