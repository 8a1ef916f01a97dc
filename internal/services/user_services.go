package services

import (
	"context"
	"regexp"
	"strings"

	"BrLegalAPI/internal/crypto"
	"BrLegalAPI/internal/model"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// UserStore is the persistence contract for accounts.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash, name string, isStaff, isSuperuser bool) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateSelf(ctx context.Context, id int64, name, email *string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// TokenStore keeps one bearer token hash per account.
type TokenStore interface {
	Save(ctx context.Context, userID int64, tokenHash string) error
	GetUserByHash(ctx context.Context, tokenHash string) (*model.User, error)
}

type UserService struct {
	Users  UserStore
	Tokens TokenStore
}

func NewUserService(users UserStore, tokens TokenStore) *UserService {
	return &UserService{Users: users, Tokens: tokens}
}

// NormalizeEmail lower-cases the domain part only; the local part is
// kept verbatim.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func validateEmail(email string) error {
	if email == "" {
		return model.ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return model.ErrInvalidEmail
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return model.ErrPasswordTooShort
	}
	return nil
}

// Create registers a regular account. Nothing is persisted when any
// field fails validation, and the password only ever leaves here as a
// bcrypt hash.
func (s *UserService) Create(ctx context.Context, email, password, name string) (*model.User, error) {
	return s.create(ctx, email, password, name, false, false)
}

// CreateSuperuser registers a staff + superuser account. Wired to the
// startup bootstrap (ADMIN_EMAIL / ADMIN_PASSWORD).
func (s *UserService) CreateSuperuser(ctx context.Context, email, password string) (*model.User, error) {
	return s.create(ctx, email, password, "", true, true)
}

func (s *UserService) create(ctx context.Context, email, password, name string, isStaff, isSuperuser bool) (*model.User, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	id, err := s.Users.Create(ctx, email, string(hash), name, isStaff, isSuperuser)
	if err != nil {
		return nil, err
	}
	return s.Users.GetByID(ctx, id)
}

// Authenticate verifies email + password. Unknown email, wrong password
// and deactivated account all fail the same way.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, model.ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken returns a fresh opaque bearer token for the account. Only
// its hash is stored, keyed by user id, so re-issuing rotates the token
// instead of accumulating rows.
func (s *UserService) IssueToken(ctx context.Context, userID int64) (string, error) {
	token, hash, err := crypto.GenerateToken()
	if err != nil {
		return "", err
	}
	if err := s.Tokens.Save(ctx, userID, hash); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveToken maps a presented bearer token back to its account, or
// ErrNotFound when it matches nothing usable.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrNotFound
	}
	u, err := s.Tokens.GetUserByHash(ctx, crypto.HashToken(token))
	if err != nil {
		return nil, model.ErrNotFound
	}
	if !u.IsActive {
		return nil, model.ErrNotFound
	}
	return u, nil
}

// UpdateSelf applies a partial update to the caller's own account. A
// supplied password is pulled out, validated and re-hashed in its own
// step; the remaining fields follow generic assignment.
func (s *UserService) UpdateSelf(ctx context.Context, userID int64, name, email, password *string) (*model.User, error) {
	if name == nil && email == nil && password == nil {
		return nil, model.ErrNothingToUpdate
	}
	if email != nil {
		normalized := NormalizeEmail(*email)
		if err := validateEmail(normalized); err != nil {
			return nil, err
		}
		email = &normalized
	}
	if password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, err
		}
	}
	if name != nil || email != nil {
		if err := s.Users.UpdateSelf(ctx, userID, name, email); err != nil {
			return nil, err
		}
	}
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := s.Users.UpdatePassword(ctx, userID, string(hash)); err != nil {
			return nil, err
		}
	}
	return s.Users.GetByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.Users.List(ctx)
}

// Delete removes an account outright. Owners of geo records are
// protected at the storage layer and surface ErrProtected.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.Users.Delete(ctx, userID)
}
