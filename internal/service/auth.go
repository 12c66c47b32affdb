package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhonstore/admin-console/internal/dto"
	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/remote"
	"github.com/jhonstore/admin-console/internal/session"
)

// CredentialVerifier is the credential boundary. Implementations decide how
// passwords are checked; the auth service only cares whether the caller is
// an active administrator.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*model.User, error)
}

type AuthService struct {
	verifier CredentialVerifier
	sessions *session.Holder
}

func NewAuthService(verifier CredentialVerifier, sessions *session.Holder) *AuthService {
	return &AuthService{verifier: verifier, sessions: sessions}
}

// Login verifies credentials and starts a session. Only active
// administrators may hold a console session.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *model.Session, error) {
	user, err := s.verifier.Verify(ctx, req.Email, req.Password)
	if err != nil {
		return "", nil, err
	}
	if user.Role != model.RoleAdmin || user.Status != model.UserActive {
		return "", nil, ErrInvalidCredentials
	}
	token, sess, err := s.sessions.Start(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("start session: %w", err)
	}
	return token, sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.End(ctx, token)
}

func (s *AuthService) Session(ctx context.Context, token string) (*model.Session, error) {
	return s.sessions.Current(ctx, token)
}

// StoreVerifier verifies against credentials held by the remote store.
// Hashed credentials are compared with bcrypt; records predating hashing
// fall back to a constant-time comparison.
type StoreVerifier struct {
	users remote.UserStore
}

func NewStoreVerifier(users remote.UserStore) *StoreVerifier {
	return &StoreVerifier{users: users}
}

func (v *StoreVerifier) Verify(ctx context.Context, email, password string) (*model.User, error) {
	users, err := v.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		u := &users[i]
		if !strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			continue
		}
		if !credentialMatches(u.Password, password) {
			return nil, ErrInvalidCredentials
		}
		return u, nil
	}
	return nil, ErrInvalidCredentials
}

func credentialMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

var _ CredentialVerifier = (*StoreVerifier)(nil)
