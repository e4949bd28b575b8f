//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"polyglot/internal/repository"
)

// Settings keys for the single admin account.
const (
	KeyUserUsername     = "auth.username"
	KeyUserPasswordHash = "auth.password_hash"
	KeyJWTSecret        = "auth.jwt_secret"
)

const tokenTTL = 30 * 24 * time.Hour

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidUsername  = errors.New("username must start with a letter and contain only letters, digits and underscores")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// User is the authenticated account.
type User struct {
	Username string
}

// AuthResponse carries a signed token and the account it belongs to.
type AuthResponse struct {
	Token string
	User  *User
}

// AuthService manages the single admin account and its tokens.
type AuthService interface {
	CheckUserExists(ctx context.Context) (bool, error)
	Register(ctx context.Context, username, password string) (*AuthResponse, error)
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	ValidateToken(token string) (bool, error)
}

type authService struct {
	settings repository.SettingsRepository

	mu     sync.Mutex
	secret []byte
}

// NewAuthService creates a new auth service. An empty secret is generated and
// persisted on first use so tokens survive restarts.
func NewAuthService(settings repository.SettingsRepository, secret string) AuthService {
	svc := &authService{settings: settings}
	if secret != "" {
		svc.secret = []byte(secret)
	}
	return svc
}

// CheckUserExists reports whether the admin account has been registered.
func (s *authService) CheckUserExists(ctx context.Context) (bool, error) {
	_, err := s.settings.Get(ctx, KeyUserUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check user: %w", err)
	}
	return true, nil
}

// Register creates the admin account. Only one account can exist.
func (s *authService) Register(ctx context.Context, username, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.CheckUserExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.settings.Set(ctx, KeyUserUsername, username); err != nil {
		return nil, fmt.Errorf("store username: %w", err)
	}
	if err := s.settings.Set(ctx, KeyUserPasswordHash, string(hash)); err != nil {
		return nil, fmt.Errorf("store password hash: %w", err)
	}

	token, err := s.issueToken(ctx, username)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: &User{Username: username}}, nil
}

// Login verifies credentials and returns a fresh token.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	storedUsername, err := s.settings.Get(ctx, KeyUserUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load username: %w", err)
	}
	if !strings.EqualFold(storedUsername, username) {
		return nil, ErrUserNotFound
	}

	hash, err := s.settings.Get(ctx, KeyUserPasswordHash)
	if err != nil {
		return nil, fmt.Errorf("load password hash: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}

	token, err := s.issueToken(ctx, storedUsername)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: &User{Username: storedUsername}}, nil
}

// ValidateToken reports whether the token is well-formed, signed with the
// current secret and unexpired.
func (s *authService) ValidateToken(token string) (bool, error) {
	secret, err := s.loadSecret(context.Background())
	if err != nil {
		return false, err
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return false, nil
	}
	return parsed.Valid, nil
}

func (s *authService) issueToken(ctx context.Context, username string) (string, error) {
	secret, err := s.loadSecret(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *authService) loadSecret(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.secret) > 0 {
		return s.secret, nil
	}

	stored, err := s.settings.Get(ctx, KeyJWTSecret)
	if err == nil {
		s.secret = []byte(stored)
		return s.secret, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load jwt secret: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	secret := hex.EncodeToString(raw)
	if err := s.settings.Set(ctx, KeyJWTSecret, secret); err != nil {
		return nil, fmt.Errorf("store jwt secret: %w", err)
	}
	s.secret = []byte(secret)
	return s.secret, nil
}
