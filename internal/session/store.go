package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-console/internal/backend"
	"clinic-console/internal/domain/clinic"
)

// State is the session lifecycle state.
type State int

const (
	// StateAnonymous means no admin is signed in.
	StateAnonymous State = iota
	// StateAuthenticating means a login attempt is in flight.
	StateAuthenticating
	// StateAuthenticated means a verified admin session is active.
	StateAuthenticated
)

// Authenticator is the slice of the backend client the store depends on.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*backend.LoginResult, error)
	VerifyToken(ctx context.Context) error
	SetToken(token string)
	ClearToken()
}

// Result is returned by Login. Credential rejection is reported here, never
// as a Go error escaping the store.
type Result struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	User    *clinic.AdminUser `json:"user,omitempty"`
}

// sessionSchema is the single-row table holding the persisted session. All
// fields are written and cleared together.
type sessionSchema struct {
	ID            int64  `gorm:"primaryKey"`
	UserJSON      string `gorm:"not null"`
	Role          string
	Token         string `gorm:"not null"`
	Authenticated bool
	UpdatedAt     time.Time
}

// TableName specifies the table name for the sessionSchema model.
func (sessionSchema) TableName() string {
	return "sessions"
}

const sessionRowID = 1

// Store holds the current admin session, persisted to a local SQLite
// database so it survives restarts. It is created once and injected where
// needed; Restore runs at startup, Logout tears the session down.
type Store struct {
	db   *gorm.DB
	auth Authenticator
	log  *zap.Logger

	mu    sync.RWMutex
	state State
	user  *clinic.AdminUser
}

// NewStore creates the session store and prepares its table.
func NewStore(db *gorm.DB, auth Authenticator, log *zap.Logger) (*Store, error) {
	if err := db.AutoMigrate(&sessionSchema{}); err != nil {
		return nil, err
	}
	return &Store{db: db, auth: auth, log: log, state: StateAnonymous}, nil
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns the signed-in admin, or nil when anonymous.
func (s *Store) Current() *clinic.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a verified session is active.
func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// IsAdmin is a pure predicate on the cached role; it never revalidates
// against the backend after startup.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.user != nil && s.user.Role == "admin"
}

// Restore loads the persisted session and verifies its token against the
// backend. Success restores the authenticated state; any failure, transport
// or rejection, wipes the persisted record and settles anonymous.
func (s *Store) Restore(ctx context.Context) {
	var record sessionSchema
	err := s.db.WithContext(ctx).First(&record, sessionRowID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("failed to load persisted session", zap.Error(err))
		}
		s.settleAnonymous(ctx)
		return
	}

	if !record.Authenticated || record.Token == "" {
		s.settleAnonymous(ctx)
		return
	}

	s.auth.SetToken(record.Token)
	if err := s.auth.VerifyToken(ctx); err != nil {
		s.log.Info("token verification failed, clearing session data", zap.Error(err))
		s.settleAnonymous(ctx)
		return
	}

	var u clinic.AdminUser
	if err := json.Unmarshal([]byte(record.UserJSON), &u); err != nil {
		s.log.Warn("persisted session user record is corrupt", zap.Error(err))
		s.settleAnonymous(ctx)
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &u
	s.mu.Unlock()

	s.log.Info("session restored", zap.String("username", u.Username), zap.String("role", u.Role))
}

// Login authenticates against the backend. Credential rejection and
// transport failure both come back in the Result; the state settles
// anonymous in either case.
func (s *Store) Login(ctx context.Context, username, password string) Result {
	s.mu.Lock()
	s.state = StateAuthenticating
	s.mu.Unlock()

	s.log.Info("admin login attempt", zap.String("username", username))

	res, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.log.Warn("login failed", zap.String("username", username), zap.Error(err))
		s.settleAnonymous(ctx)
		return Result{Success: false, Error: err.Error()}
	}

	user := res.User
	user.LoginTime = time.Now().UTC()

	if err := s.persist(ctx, &user, res.Token); err != nil {
		// The in-memory session still works; it just won't survive a restart.
		s.log.Warn("failed to persist session", zap.Error(err))
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &user
	s.mu.Unlock()

	s.log.Info("admin logged in", zap.String("username", user.Username), zap.String("role", user.Role))
	return Result{Success: true, User: &user}
}

// Logout clears the session and its persisted record.
func (s *Store) Logout(ctx context.Context) {
	s.log.Info("admin logout")
	s.settleAnonymous(ctx)
}

func (s *Store) persist(ctx context.Context, u *clinic.AdminUser, token string) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	record := sessionSchema{
		ID:            sessionRowID,
		UserJSON:      string(data),
		Role:          u.Role,
		Token:         token,
		Authenticated: true,
		UpdatedAt:     time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Save(&record).Error
}

// settleAnonymous wipes persisted state, the client token, and the cached
// user as a unit.
func (s *Store) settleAnonymous(ctx context.Context) {
	if err := s.db.WithContext(ctx).Delete(&sessionSchema{}, sessionRowID).Error; err != nil {
		s.log.Warn("failed to clear persisted session", zap.Error(err))
	}
	s.auth.ClearToken()

	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()
}
