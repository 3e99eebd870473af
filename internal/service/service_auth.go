package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/utils"
	"github.com/MKhiriev/coin-gateway/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything after the 72nd byte.
const maxPasswordLen = 72

// authService is the concrete implementation of AuthService.
// It accepts exactly one credential pair taken from configuration and issues
// stateless HS256 tokens; nothing about issued tokens is stored.
type authService struct {
	// username is the only accepted login, compared in constant time.
	username []byte

	// passwordHash is the bcrypt hash of the configured password, computed
	// once at construction.
	passwordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for "iat", "exp" and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the auth section of the
// configuration. The configured password is hashed with bcrypt here, so a
// password longer than 72 bytes is rejected at startup.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	return newAuthService(cfg, bcrypt.DefaultCost, time.Now, logger)
}

func newAuthService(cfg config.Auth, cost int, now func() time.Time, logger *logger.Logger) (*authService, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrInvalidAuthConfig
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing configured password: %w", err)
	}

	return &authService{
		username:      []byte(cfg.Username),
		passwordHash:  hash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}, nil
}

// Login authenticates creds and issues a token.
//
// Returns the signed token or:
//   - ErrInvalidCredentials if either field is empty or does not match the
//     configured pair.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Warn().Str("username", creds.Username).Msg("empty credentials provided")
		return models.Token{}, ErrInvalidCredentials
	}

	usernameMatches := subtle.ConstantTimeCompare([]byte(creds.Username), a.username) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(creds.Password))
	if !usernameMatches || passwordErr != nil || len(creds.Password) > maxPasswordLen {
		log.Warn().Str("username", creds.Username).Msg("wrong username or password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, creds.Username, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("username", creds.Username).Str("jti", token.ID).Msg("token issued")
	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenExpired. Every other failure (malformed,
// tampered, wrong key, wrong algorithm, wrong issuer, missing claims) is
// normalised to ErrTokenInvalid so callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
