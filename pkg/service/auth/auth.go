// Package auth verifies credentials and manages cookie sessions.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/repository"
	repouser "github.com/amirasaad/minibank/pkg/repository/user"
	"github.com/amirasaad/minibank/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionTTL is the fixed lifetime of a session token.
const SessionTTL = 30 * time.Minute

// dummyHash is compared against when the user does not exist so a lookup
// miss costs about as much as a wrong password.
var dummyHash = func() string {
	h, _ := utils.HashPassword("minibank-dummy-password", bcrypt.DefaultCost)
	return h
}()

// RevocationStore remembers logged-out token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, id string, ttl time.Duration) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// Session is a signed token and its expiry.
type Session struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

type Service struct {
	uow     repository.UnitOfWork
	cfg     *config.Jwt
	revoked RevocationStore
	logger  *slog.Logger
	now     func() time.Time
}

// New creates the auth service. revoked may be nil, in which case logout
// only clears the cookie.
func New(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	revoked RevocationStore,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:     uow,
		cfg:     cfg,
		revoked: revoked,
		logger:  logger,
		now:     time.Now,
	}
}

// Authenticate returns the user with nationalID if password matches.
// Unknown users and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *Service) Authenticate(
	ctx context.Context,
	nationalID, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Authenticate", "national_id", utils.MaskNationalID(nationalID))
	log.Debug("Authenticate called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := userRepository(uow)
		if err != nil {
			return err
		}
		u, err = repo.GetByNationalID(ctx, nationalID)
		if err != nil {
			return err
		}
		return checkPassword(u, password)
	})
	if err != nil {
		log.Info("Authenticate failed", "error", err)
		return nil, err
	}
	log.Info("Authenticate successful", "userID", u.ID)
	return u, nil
}

// Verify re-checks the password of an already identified user before a
// destructive operation.
func (s *Service) Verify(
	ctx context.Context,
	userID uuid.UUID,
	password string,
) error {
	log := s.logger.With("context", "Verify", "userID", userID)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := userRepository(uow)
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		return checkPassword(u, password)
	})
	if err != nil {
		log.Info("Verify failed", "error", err)
		return err
	}
	log.Debug("Verify successful")
	return nil
}

// IssueSession signs a token for u that expires after SessionTTL.
func (s *Service) IssueSession(
	ctx context.Context,
	u *dto.UserRead,
) (*Session, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("IssueSession called")
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   u.NationalID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("IssueSession failed", "error", err)
		return nil, err
	}
	log.Info("IssueSession successful", "expires_at", claims.ExpiresAt.Time)
	return &Session{Token: token, ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ResolveSession returns the user bound to a raw token string, or nil when
// the token is missing, malformed, tampered, expired, revoked or names an
// unknown user.
func (s *Service) ResolveSession(ctx context.Context, tokenString string) *dto.UserRead {
	if tokenString == "" {
		return nil
	}
	token, err := s.parse(tokenString)
	if err != nil {
		s.logger.Debug("ResolveSession rejected token", "error", err)
		return nil
	}
	return s.ResolveToken(ctx, token)
}

// ResolveToken is ResolveSession for a token the JWT middleware already
// verified.
func (s *Service) ResolveToken(ctx context.Context, token *jwt.Token) *dto.UserRead {
	log := s.logger.With("context", "ResolveToken")
	if token == nil || !token.Valid {
		return nil
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil || !s.now().Before(exp.Time) {
		log.Debug("Token has no valid expiry")
		return nil
	}
	subject, err := token.Claims.GetSubject()
	if err != nil || !utils.IsNationalID(subject) {
		log.Debug("Token has no valid subject")
		return nil
	}
	if revoked, err := s.isRevoked(ctx, tokenID(token.Claims)); err != nil || revoked {
		log.Debug("Token revoked or revocation lookup failed", "error", err)
		return nil
	}

	var u *dto.UserRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := userRepository(uow)
		if err != nil {
			return err
		}
		u, err = repo.GetByNationalID(ctx, subject)
		return err
	})
	if err != nil {
		log.Error("ResolveToken user lookup failed", "error", err)
		return nil
	}
	return u
}

// RevokeSession makes a still valid token unusable until it expires.
// Invalid tokens are ignored.
func (s *Service) RevokeSession(ctx context.Context, tokenString string) error {
	if s.revoked == nil || tokenString == "" {
		return nil
	}
	token, err := s.parse(tokenString)
	if err != nil {
		return nil
	}
	id := tokenID(token.Claims)
	exp, err := token.Claims.GetExpirationTime()
	if id == "" || err != nil || exp == nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, id, exp.Sub(s.now())); err != nil {
		s.logger.Error("RevokeSession failed", "error", err)
		return err
	}
	s.logger.Info("Session revoked", "jti", id)
	return nil
}

func (s *Service) parse(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return []byte(s.cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
}

func (s *Service) isRevoked(ctx context.Context, id string) (bool, error) {
	if s.revoked == nil || id == "" {
		return false, nil
	}
	return s.revoked.IsRevoked(ctx, id)
}

func tokenID(claims jwt.Claims) string {
	switch c := claims.(type) {
	case *jwt.RegisteredClaims:
		return c.ID
	case jwt.MapClaims:
		id, _ := c["jti"].(string)
		return id
	}
	return ""
}

func checkPassword(u *dto.UserRead, password string) error {
	if u == nil {
		// Always check password hash to avoid timing attacks
		_ = utils.CheckPasswordHash(password, dummyHash)
		return domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func userRepository(uow repository.UnitOfWork) (repouser.Repository, error) {
	repoAny, err := uow.GetRepository(reflect.TypeOf((*repouser.Repository)(nil)).Elem())
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}
	repo, ok := repoAny.(repouser.Repository)
	if !ok {
		return nil, errors.New("invalid user repository type")
	}
	return repo, nil
}
