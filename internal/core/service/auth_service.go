package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/storefront-api/internal/core/domain"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// AuthService implements the shared credential check and token issuance.
type AuthService struct {
	admins    ports.AdminRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(admins ports.AdminRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{admins: admins, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Authenticate verifies email+password against the admins table. A missing
// admin and a wrong password collapse into the same error on purpose.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.Admin, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("email", email).Msg("failed login attempt")
		return nil, domain.ErrInvalidCredentials
	}

	return admin, nil
}

// IssueToken signs an HS256 bearer token for admin. The subject travels in
// the "uid" claim, which the token middleware requires on every request.
func (s *AuthService) IssueToken(admin *domain.Admin) (string, int64, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
		"uid":   admin.ID,
		"email": admin.Email,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.tokenTTL.Seconds()), nil
}
