package sessionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// GormSessionStore implements SessionStore using GORM.
type GormSessionStore struct {
	db *gorm.DB
}

// NewGormSessionStore creates a new GORM session store.
func NewGormSessionStore(db *gorm.DB) (*GormSessionStore, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	return &GormSessionStore{db: db}, nil
}

// Load returns the active session. Returns ObjectNotFoundError when no
// session row exists.
func (s *GormSessionStore) Load(ctx context.Context) (ports.Session, error) {
	var dto SessionDTO
	err := s.db.WithContext(ctx).Order("updated_at DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Session{}, errs.NewObjectNotFoundError("session", "active")
		}
		return ports.Session{}, err
	}

	return toPort(dto), nil
}

// Save persists the session, replacing any previous one. The replace runs
// inside a transaction so readers never observe zero or two active rows.
func (s *GormSessionStore) Save(ctx context.Context, session ports.Session) error {
	dto := fromPort(session)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&SessionDTO{}).Error; err != nil {
			return err
		}
		return tx.Create(&dto).Error
	})
}

// Clear removes the active session. Clearing an empty store is not an error.
func (s *GormSessionStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&SessionDTO{}).Error
}
