package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/invoicepad/invoicepad/internal/auth"
	"github.com/invoicepad/invoicepad/internal/models"
	"github.com/invoicepad/invoicepad/internal/storage"
)

// Stock demo credentials. Login succeeds only for this pair (or the
// configured override); the comparison is a stub, not a credential system.
const (
	demoEmail    = "demo@example.com"
	demoPassword = "password"
)

// AuthService implements the session operations. The session record lives in
// the substrate under its own key and is deliberately not routed through the
// TTL guard: it survives collection expiry and is cleared only by Logout.
type AuthService struct {
	store        storage.Store
	tokens       *auth.TokenManager
	latency      time.Duration
	demoEmail    string
	demoPassword string
}

// Login authenticates the demo credential pair. On match it constructs the
// demo User, persists it as the current session and returns it together with
// a signed session token. Any other pair fails with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	simulateLatency(s.latency)

	if email != s.demoEmail || password != s.demoPassword {
		slog.Warn("Login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	user := &models.User{
		ID:           "user-1",
		Email:        email,
		Name:         "Demo User",
		BusinessName: "My Freelance Biz",
		ThemeColor:   "blue",
	}
	token, err := s.persistSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	slog.Info("User logged in", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Register always succeeds: there is no account book to check uniqueness
// against. It constructs and persists a fresh session User.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	simulateLatency(s.latency)
	_ = password // accepted but never stored

	user := &models.User{
		ID:           "user-1",
		Email:        email,
		Name:         name,
		BusinessName: "New Business",
		ThemeColor:   "blue",
	}
	token, err := s.persistSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	slog.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Logout clears the session record.
func (s *AuthService) Logout(ctx context.Context) error {
	simulateLatency(s.latency)

	if err := s.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	slog.Info("User logged out")
	return nil
}

// CurrentUser returns the persisted session User, or nil when no session
// exists.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	simulateLatency(s.latency)

	raw, err := s.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &user, nil
}

func (s *AuthService) persistSession(ctx context.Context, user *models.User) (string, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeySession, raw); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		slog.Error("Failed to generate session token", "user_id", user.ID, "error", err)
		return "", err
	}
	return token, nil
}
