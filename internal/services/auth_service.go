package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/models"
	"coffeinimals/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles the identity lifecycle: registration, login, logout
// and token validation. It owns the session registry that exposes the
// current user to the rest of the application.
type AuthService struct {
	accounts   repositories.AccountRepository
	profiles   repositories.ProfileRepository
	sessions   *SessionManager
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts repositories.AccountRepository, profiles repositories.ProfileRepository, sessions *SessionManager, jwtSecret string) *AuthService {
	return &AuthService{
		accounts:   accounts,
		profiles:   profiles,
		sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Sessions returns the session registry owned by this service.
func (s *AuthService) Sessions() *SessionManager {
	return s.sessions
}

// Register creates a new identity and its profile document with an empty
// favorites list. It does not sign the caller in; the caller is expected
// to go through Login afterwards.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if existing, err := s.accounts.GetByEmail(email); err == nil && existing != nil {
		return &apperr.AuthError{
			Message: fmt.Sprintf("email '%s' already registered", email),
			Err:     apperr.ErrEmailRegistered,
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.accounts.Create(account); err != nil {
		return &apperr.AuthError{Err: err}
	}

	profile := &models.User{
		ID:        account.ID,
		Name:      name,
		Email:     email,
		Favorites: []string{},
	}
	if err := s.profiles.Set(ctx, account.ID, profile); err != nil {
		return err
	}
	return nil
}

// Login authenticates the credential pair, loads the profile document,
// publishes it as the current user and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", nil, &apperr.AuthError{Message: "invalid credentials", Err: apperr.ErrInvalidCredentials}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", nil, &apperr.AuthError{Message: "invalid credentials", Err: apperr.ErrInvalidCredentials}
	}

	user, err := s.profiles.Get(ctx, account.ID)
	if errors.Is(err, apperr.ErrNotFound) {
		// The account exists but its document is gone; rebuild a minimal
		// one so the session still starts with a consistent profile.
		user = &models.User{ID: account.ID, Email: account.Email, Favorites: []string{}}
		if err := s.profiles.Set(ctx, account.ID, user); err != nil {
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, err
	}

	s.sessions.Put(*user)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": account.ID,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, user, nil
}

// Logout tears down the session for the given account ID.
func (s *AuthService) Logout(accountID string) error {
	if !s.sessions.Drop(accountID) {
		return apperr.ErrNotAuthenticated
	}
	return nil
}

// CurrentUser returns a snapshot of the current user for the account ID.
func (s *AuthService) CurrentUser(accountID string) (*models.User, error) {
	user, ok := s.sessions.Current(accountID)
	if !ok {
		return nil, apperr.ErrNotAuthenticated
	}
	return &user, nil
}

// ValidateToken parses and validates a session token, returning the claims
// if valid. A token is only accepted while its session is still live.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	accountID, _ := claims["user_id"].(string)
	if _, live := s.sessions.Current(accountID); !live {
		return nil, apperr.ErrNotAuthenticated
	}
	return claims, nil
}
