package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/jwt"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, userID uuid.UUID, name string, email *string) (*models.UserDB, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// TokenIssuer issues and verifies access tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, role models.Role) (string, *jwt.Claims, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenRevoker records logged-out tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// LoginResult is returned on successful login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        models.UserProfile
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenIssuer
	revoker     TokenRevoker
	adminEmails map[string]struct{}
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithAdminEmails makes accounts registered with any of the given emails
// administrators.
func WithAdminEmails(emails ...string) AuthOpt {
	return func(svc *AuthService) {
		for _, e := range emails {
			if e = strings.TrimSpace(e); e != "" {
				svc.adminEmails[e] = struct{}{}
			}
		}
	}
}

// NewAuthService creates a new AuthService instance. revoker may be nil, in
// which case logout is a no-op and tokens are valid until they expire.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer, revoker TokenRevoker, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		revoker:     revoker,
		adminEmails: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// Register creates a new user with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.UserDB, error) {
	if len(password) > maxPasswordBytes {
		logger.Log.Warnw("password too long", "email", email, "bytes", len(password))
		return nil, ErrPasswordTooLong
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "email", email)
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	role := models.RoleUser
	if _, ok := svc.adminEmails[email]; ok {
		role = models.RoleAdmin
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			logger.Log.Warnw("user already exists", "email", email)
			return nil, ErrDuplicateEmail
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.UserID, "role", user.Role)
	return user, nil
}

// Login authenticates a user and returns an access token. Unknown email and
// wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "user_id", user.UserID)
		return nil, ErrInvalidCredentials
	}

	token, claims, err := svc.tokens.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        user.Profile(),
	}, nil
}

// Authenticate verifies the token and resolves the caller. The role is read
// from the stored user so role changes take effect immediately.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Warnw("token rejected", "err", err)
		return models.Identity{}, ErrInvalidToken
	}

	if svc.revoker != nil {
		revoked, err := svc.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			logger.Log.Errorw("failed to check token revocation", "err", err)
			return models.Identity{}, err
		}
		if revoked {
			logger.Log.Warnw("revoked token used", "user_id", claims.UserID)
			return models.Identity{}, ErrInvalidToken
		}
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load token user", "err", err)
		return models.Identity{}, err
	}
	if user == nil {
		logger.Log.Warnw("token for deleted user", "user_id", claims.UserID)
		return models.Identity{}, ErrInvalidToken
	}

	identity := models.Identity{
		UserID:  user.UserID,
		Role:    user.Role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// Logout revokes the token the identity authenticated with.
func (svc *AuthService) Logout(ctx context.Context, identity models.Identity) error {
	if svc.revoker == nil || identity.TokenID == "" {
		return nil
	}
	if err := svc.revoker.Revoke(ctx, identity.TokenID, time.Until(identity.ExpiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "user_id", identity.UserID, "err", err)
		return err
	}
	return nil
}
