package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meron6/authsvc/domain"
)

func TestDBSessionStore_CreateAndResolve(t *testing.T) {
	db := setupTestDB(t)
	store := NewDBSessionStore(db, 0)
	ctx := context.Background()

	sessionID, err := store.Create(ctx, 42)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The record is durably visible, not just cached.
	var record DBUserSession
	if err := db.Where("session_id = ?", sessionID).First(&record).Error; err != nil {
		t.Fatalf("session record not persisted: %v", err)
	}
	if record.UserID != 42 {
		t.Errorf("expected user 42 on record, got %d", record.UserID)
	}

	userID, err := store.Resolve(ctx, sessionID)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42, got %d", userID)
	}
}

func TestDBSessionStore_ResolveUnknown(t *testing.T) {
	store := NewDBSessionStore(setupTestDB(t), 0)

	_, err := store.Resolve(context.Background(), "no-such-session")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDBSessionStore_PassiveExpiry(t *testing.T) {
	db := setupTestDB(t)
	store := NewDBSessionStore(db, 1*time.Second)
	current := time.Unix(2000, 0)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	sessionID, err := store.Create(ctx, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := store.Resolve(ctx, sessionID); err != nil {
		t.Fatalf("Resolve() before expiry error = %v", err)
	}

	current = current.Add(2 * time.Second)
	if _, err := store.Resolve(ctx, sessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after expiry, got %v", err)
	}

	// Passive expiry: the stale record stays on disk until destroyed.
	var count int64
	db.Model(&DBUserSession{}).Where("session_id = ?", sessionID).Count(&count)
	if count != 1 {
		t.Errorf("expired record should remain stored, found %d rows", count)
	}
}

func TestDBSessionStore_Destroy(t *testing.T) {
	db := setupTestDB(t)
	store := NewDBSessionStore(db, 0)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	user, err := userRepo.Insert(ctx, "owner@test.com", "digest")
	if err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}
	sessionID, err := store.Create(ctx, user.ID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := userRepo.Update(ctx, user.ID, domain.UserUpdate{SessionID: domain.String(sessionID)}); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}

	destroyed, err := store.Destroy(ctx, sessionID)
	if err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if !destroyed {
		t.Error("expected the session to be removed")
	}

	if _, err := store.Resolve(ctx, sessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("destroyed session should not resolve, got %v", err)
	}

	// The owning user's back-reference is cleared in the same transaction.
	reloaded, err := userRepo.FindOne(ctx, domain.UserFilter{ID: &user.ID})
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.SessionID != "" {
		t.Errorf("expected cleared session back-reference, got %q", reloaded.SessionID)
	}

	destroyed, err = store.Destroy(ctx, sessionID)
	if err != nil {
		t.Fatalf("second Destroy() error = %v", err)
	}
	if destroyed {
		t.Error("destroying twice should report nothing removed")
	}
}
