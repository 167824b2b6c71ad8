package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

// sessionService issues and validates opaque session tokens stored
// server-side. Tokens are 32 random bytes, hex encoded, so they carry no
// information and cannot be guessed or forged.
type sessionService struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSessionService creates a new SessionServicer with the given lifetime.
func NewSessionService(db *gorm.DB, ttl time.Duration) SessionServicer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionService{db: db, ttl: ttl}
}

// Create issues a fresh session token bound to the given user.
func (s *sessionService) Create(userID uint) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	session := &models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.db.Create(session).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return token, nil
}

// Resolve maps a token back to its user ID. Unknown and expired tokens both
// fail with ErrUnauthorized; expired rows are removed on the way out.
func (s *sessionService) Resolve(token string) (uint, error) {
	if token == "" {
		return 0, apperrors.ErrUnauthorized
	}

	var session models.Session
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUnauthorized
		}
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	if session.Expired(time.Now()) {
		// Sweep every stale row while we are here, not just this one.
		_ = s.PurgeExpired()
		return 0, apperrors.ErrUnauthorized
	}

	return session.UserID, nil
}

// PurgeExpired bulk-deletes all sessions past their expiry time. Called
// from the resolve path when a stale session surfaces, so expired rows of
// users who never return do not accumulate.
func (s *sessionService) PurgeExpired() error {
	if err := s.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// Destroy removes a session. Destroying an unknown or already-destroyed
// token is not an error.
func (s *sessionService) Destroy(token string) error {
	if token == "" {
		return nil
	}
	if err := s.db.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// generateToken returns 32 cryptographically random bytes as hex.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
