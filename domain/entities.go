package domain

import "time"

// User represents an account in the system. SessionID and ResetToken are
// back-references: empty means none is outstanding.
type User struct {
	ID             uint
	Email          string
	HashedPassword string
	SessionID      string
	ResetToken     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SessionRecord is a durable session entry. CreatedAt exists solely to
// compute expiration; the User remains the source of truth for ownership.
type SessionRecord struct {
	SessionID string
	UserID    uint
	CreatedAt time.Time
}

// UserFilter selects users by exact field match. Only the fields a lookup
// may use are representable; a filter with no field set is invalid.
type UserFilter struct {
	ID             *uint
	Email          *string
	HashedPassword *string
	SessionID      *string
	ResetToken     *string
}

// Empty reports whether no filter field is set.
func (f UserFilter) Empty() bool {
	return f.ID == nil && f.Email == nil && f.HashedPassword == nil &&
		f.SessionID == nil && f.ResetToken == nil
}

// UserUpdate carries the mutable fields of a user. A nil pointer leaves
// the field unchanged; a pointer to "" clears it (stored as NULL).
type UserUpdate struct {
	HashedPassword *string
	SessionID      *string
	ResetToken     *string
}

// Empty reports whether no update field is set.
func (u UserUpdate) Empty() bool {
	return u.HashedPassword == nil && u.SessionID == nil && u.ResetToken == nil
}

// String is a convenience for building filter and update values.
func String(s string) *string { return &s }

// Clear marks a nullable field for clearing in a UserUpdate.
func Clear() *string { s := ""; return &s }
