package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meron6/authsvc/domain"
)

// DBSessionStore implements domain.SessionStore on the same database that
// backs the user repository. Records survive restarts; expiry is passive:
// Resolve treats stale rows as absent but does not remove them.
type DBSessionStore struct {
	db       *gorm.DB
	duration time.Duration
	now      func() time.Time
}

// DBUserSession is the database model for a session record.
type DBUserSession struct {
	SessionID string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (DBUserSession) TableName() string {
	return "user_sessions"
}

// NewDBSessionStore creates a database-backed session store. A duration of
// zero or less means sessions never expire.
func NewDBSessionStore(db *gorm.DB, duration time.Duration) *DBSessionStore {
	return &DBSessionStore{db: db, duration: duration, now: time.Now}
}

// Create implements domain.SessionStore. If the insert cannot commit the
// error propagates and no session id is handed out.
func (s *DBSessionStore) Create(ctx context.Context, userID uint) (string, error) {
	record := &DBUserSession{
		SessionID: uuid.NewString(),
		UserID:    userID,
		CreatedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return "", err
	}
	return record.SessionID, nil
}

// Resolve implements domain.SessionStore.
func (s *DBSessionStore) Resolve(ctx context.Context, sessionID string) (uint, error) {
	var record DBUserSession
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, err
	}
	if s.duration > 0 && s.now().After(record.CreatedAt.Add(s.duration)) {
		return 0, domain.ErrSessionNotFound
	}
	return record.UserID, nil
}

// Destroy implements domain.SessionStore. The record delete and the clear
// of the owning user's session_id back-reference commit as one
// transaction.
func (s *DBSessionStore) Destroy(ctx context.Context, sessionID string) (bool, error) {
	destroyed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("session_id = ?", sessionID).Delete(&DBUserSession{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		destroyed = true
		return tx.Model(&DBUser{}).
			Where("session_id = ?", sessionID).
			Update("session_id", nil).Error
	})
	if err != nil {
		return false, err
	}
	return destroyed, nil
}

var _ domain.SessionStore = (*DBSessionStore)(nil)
