package usecases

import (
	"context"
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/pkg/crypto"
	"club-site.backend/pkg/jwt"
	"club-site.backend/pkg/logger"
)

// MsgNotAuthorized is returned for every rejected bearer token.
const MsgNotAuthorized = "Not authorized to access this route"

// AuthUsecase authenticates the single configured admin.
type AuthUsecase struct {
	adminUser     string
	adminPassHash string
	jwtService    *jwt.JWTService
}

// NewAuthUsecase takes the admin username and the bcrypt hash of its password.
func NewAuthUsecase(adminUser, adminPassHash string, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		adminUser:     adminUser,
		adminPassHash: adminPassHash,
		jwtService:    jwtService,
	}
}

// Login checks the credentials and issues a token. The password hash is
// compared even when the username is wrong.
func (u *AuthUsecase) Login(ctx context.Context, input entities.LoginInput) (*entities.AuthResponse, error) {
	if u.adminUser == "" || u.adminPassHash == "" {
		logger.Error(ctx, "Admin credentials are not configured")
		return nil, domainerrors.NewAppError(http.StatusInternalServerError, msgAdminNotConfigured, domainerrors.ErrNotConfigured)
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(u.adminUser)) == 1
	hash := u.adminPassHash
	if !userOK {
		hash = ""
	}
	passOK := crypto.CheckPassword(input.Password, hash)
	if !userOK || !passOK {
		logger.Warn(ctx, "Admin login rejected", zap.Bool("usernameMatched", userOK))
		return nil, domainerrors.InvalidCredentials()
	}

	token, expiresAt, err := u.jwtService.GenerateToken(entities.AdminID, u.adminUser)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Admin logged in")

	return &entities.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User: entities.AdminIdentity{
			ID:       entities.AdminID,
			Username: u.adminUser,
		},
	}, nil
}

// Verify decodes a bearer token into the admin identity.
func (u *AuthUsecase) Verify(token string) (*entities.AdminIdentity, error) {
	if token == "" {
		return nil, domainerrors.Unauthorized(MsgNotAuthorized)
	}
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.NewAppError(http.StatusUnauthorized, MsgNotAuthorized, err)
	}
	return &entities.AdminIdentity{ID: claims.ID, Username: claims.Username}, nil
}
