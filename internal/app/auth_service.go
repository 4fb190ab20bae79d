// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fitfusion/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken indicates a malformed, mis-signed or expired access token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserInactive indicates a deactivated account.
	ErrUserInactive = errors.New("user account is inactive")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken indicates the username is already taken.
	ErrUsernameTaken = errors.New("username already taken")
)

// TokenConfig holds the signing parameters for issued access tokens.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AuthService handles registration, login and access-token validation.
// Tokens are stateless HS256 JWTs; there is no session store.
type AuthService struct {
	users  domain.UserRepository
	tokens TokenConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens TokenConfig) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register validates the input, hashes the password and creates the user.
func (s *AuthService) Register(ctx context.Context, email, username, password, fullName string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", ErrValidation)
	}
	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	if existing, err := s.users.GetUserByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.users.GetUserByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(ctx, email, username, string(hash), fullName)
}

// Login authenticates a user and issues an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrUserInactive
	}
	return s.issueToken(user)
}

// LoginWithEmail issues a token for an externally authenticated identity
// (e.g. an OIDC callback), auto-provisioning the user on first login.
func (s *AuthService) LoginWithEmail(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		// Empty password hash: the account can only log in via SSO.
		username := email
		if i := strings.Index(email, "@"); i > 0 {
			username = email[:i]
		}
		user, err = s.users.CreateUser(ctx, email, username, "", email)
		if err != nil {
			// Creation may lose a race on the unique constraint; retry the lookup.
			user, err = s.users.GetUserByEmail(ctx, email)
			if err != nil {
				return "", err
			}
			if user == nil {
				return "", ErrUserNotFound
			}
		}
	}
	if !user.IsActive {
		return "", ErrUserInactive
	}
	return s.issueToken(user)
}

// ValidateToken parses an access token and resolves the active user it
// belongs to.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.tokens.Secret), nil
	}, jwt.WithIssuer(s.tokens.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		Issuer:    s.tokens.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokens.TTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(s.tokens.Secret))
}
