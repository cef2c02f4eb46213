// Package service provides application business logic (auth, matching, messaging).
package service

import (
	"context"
	"fmt"
	"time"

	"duet/internal/models"
	"duet/internal/observability"
	"duet/internal/repository"
	"duet/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "duet-api"
	tokenAudience = "duet-client"
)

// AuthService orchestrates registration, login and bearer-token resolution.
type AuthService struct {
	userRepo repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

// RegisterInput is the input for registering a new user.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user with a bcrypt password hash. The plaintext
// password is never stored or logged.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateRole(in.Role); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:    in.Email,
		Name:     in.Name,
		Role:     in.Role,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.RegistrationsTotal.Inc()
	return user, nil
}

// Login verifies credentials and issues a signed bearer token. Unknown email
// and wrong password produce the same error so nothing is leaked.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		observability.AuthFailures.WithLabelValues("unknown_email").Inc()
		return "", models.NewUnauthorizedError("Incorrect email or password")
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); cmpErr != nil {
		observability.AuthFailures.WithLabelValues("bad_password").Inc()
		return "", models.NewUnauthorizedError("Incorrect email or password")
	}

	return s.generateToken(user)
}

// ResolveToken verifies a bearer token and resolves its subject to a user.
// Every protected endpoint goes through this guard.
func (s *AuthService) ResolveToken(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.secret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		observability.AuthFailures.WithLabelValues("invalid_token").Inc()
		return nil, models.NewUnauthorizedError("Could not validate credentials")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.NewUnauthorizedError("Could not validate credentials")
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, models.NewUnauthorizedError("Could not validate credentials")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.AuthFailures.WithLabelValues("unknown_subject").Inc()
		return nil, models.NewUnauthorizedError("Could not validate credentials")
	}

	return user, nil
}

// generateToken creates a signed JWT with the user's email as subject
func (s *AuthService) generateToken(user *models.User) (string, error) {
	if s.secret == "" {
		return "", models.NewInternalError(fmt.Errorf("JWT secret not configured"))
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.Email,                 // Subject (email)
		"iss": tokenIssuer,                // Issuer
		"aud": tokenAudience,              // Audience
		"exp": now.Add(s.tokenTTL).Unix(), // Expiration
		"iat": now.Unix(),                 // Issued at
		"nbf": now.Unix(),                 // Not before
		"jti": generateJTI(),              // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return signed, nil
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.NewString()[:8])
}
