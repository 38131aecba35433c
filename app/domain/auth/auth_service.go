package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lendsqr.dev/admin-api-gateway/app/domain/admin"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/cache"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/requests"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/responses"
	"lendsqr.dev/admin-api-gateway/app/utils/idgen"
	"lendsqr.dev/admin-api-gateway/app/utils/password"
	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

type AuthService struct {
	adminService *admin.AdminService
	cache        *cache.RedisCacheService
}

func NewAuthService(
	adminService *admin.AdminService,
	cacheService *cache.RedisCacheService,
) *AuthService {
	return &AuthService{
		adminService,
		cacheService,
	}
}

const AccessTokenExpirationDuration = 15 * time.Minute
const SessionExpirationDuration = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

type AdminContextKey string

const (
	AdminContextKeyEntity AdminContextKey = "AdminContextKeyEntity"
	AdminContextKeyID     AdminContextKey = "AdminContextKeyID"
)

// InitAdmins provisions one enabled account per configured admin email and
// applies the local password when one is set.
func (s *AuthService) InitAdmins(ctx context.Context) error {
	emails := environment_variables.EnvironmentVariables.ADMIN_EMAILS
	if len(emails) == 0 {
		return fmt.Errorf("no ADMIN_EMAILS configured")
	}

	for _, rawEmail := range emails {
		email := strings.TrimSpace(rawEmail)
		if email == "" {
			continue
		}

		account, err := s.adminService.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if account == nil {
			account, err = s.adminService.RegisterAccount(ctx, &admin.Account{
				Name:    "Admin",
				Email:   email,
				Enabled: true,
			})
			if err != nil {
				return err
			}
		}

		if pwd := environment_variables.EnvironmentVariables.LOCAL_ADMIN_PASSWORD; pwd != "" {
			if err := s.SetAccountPassword(ctx, account, pwd); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *AuthService) SetAccountPassword(ctx context.Context, account *admin.Account, plainPassword string) error {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	_, err = s.adminService.UpdateAccount(ctx, account)
	return err
}

func (s *AuthService) AuthenticateLocalAdmin(ctx context.Context, email, plainPassword string) (*admin.Account, error) {
	normalized := strings.TrimSpace(strings.ToLower(email))
	if normalized == "" || strings.TrimSpace(plainPassword) == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.adminService.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if account == nil || account.PasswordHash == "" || !account.Enabled {
		return nil, ErrInvalidCredentials
	}
	match, err := password.Verify(plainPassword, account.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// CreateSession records a revocable server-side session for the account.
func (s *AuthService) CreateSession(ctx context.Context, account *admin.Account) (string, error) {
	sessionID, err := idgen.GenerateSecureID("sess", 24)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		key := fmt.Sprintf(cache.SessionByIDKey, sessionID)
		if err := s.cache.Set(ctx, key, account.PublicID, SessionExpirationDuration); err != nil {
			return "", err
		}
	}
	return sessionID, nil
}

func (s *AuthService) RevokeSession(ctx context.Context, sessionID string) error {
	if s.cache == nil || sessionID == "" {
		return nil
	}
	return s.cache.Unlink(ctx, fmt.Sprintf(cache.SessionByIDKey, sessionID))
}

// sessionAlive reports whether the claim's session still exists and belongs
// to the claim's account.
func (s *AuthService) sessionAlive(ctx context.Context, claim *AdminClaim) bool {
	if s.cache == nil {
		return true
	}
	if claim.SessionID == "" {
		return false
	}
	owner, err := s.cache.Get(ctx, fmt.Sprintf(cache.SessionByIDKey, claim.SessionID))
	if err != nil {
		return false
	}
	return owner == claim.ID
}

// JWTAuthMiddleware resolves the admin claim from the bearer token or the
// session cookie and verifies the session has not been revoked. It never
// aborts; guarded routes follow up with RegisteredAdminMiddleware.
func (s *AuthService) JWTAuthMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		claim, ok := s.getAdminClaimFromRequest(reqCtx)
		if !ok {
			reqCtx.Next()
			return
		}
		if !s.sessionAlive(reqCtx.Request.Context(), claim) {
			reqCtx.Next()
			return
		}
		SetAdminClaimToContext(reqCtx, claim)
		SetAdminIDToContext(reqCtx, claim.ID)
		reqCtx.Next()
	}
}

// RegisteredAdminMiddleware loads the account behind the authenticated claim
// and aborts with 401 when there is none.
func (s *AuthService) RegisteredAdminMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		ctx := reqCtx.Request.Context()
		adminPublicId, ok := GetAdminIDFromContext(reqCtx)
		if !ok || adminPublicId == "" {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "8be1c9a7-40c2-4b7f-9e64-2d5b1f0a6c31",
			})
			return
		}
		account, err := s.adminService.FindByPublicID(ctx, adminPublicId)
		if err != nil {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "c40a2df3-51e7-4f89-a9b0-7c63e19d8452",
			})
			return
		}
		if account == nil || !account.Enabled {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "e92f7b16-83dd-47a5-b2c8-0f41a6d95e73",
			})
			return
		}
		SetAdminToContext(reqCtx, account)
		reqCtx.Next()
	}
}

func (s *AuthService) getAdminClaimFromRequest(reqCtx *gin.Context) (*AdminClaim, bool) {
	if tokenString, ok := requests.GetTokenFromBearer(reqCtx); ok {
		return ParseAdminClaim(tokenString)
	}
	if tokenString, err := reqCtx.Cookie(SessionCookieKey); err == nil && tokenString != "" {
		return ParseAdminClaim(tokenString)
	}
	return nil, false
}

func GetAdminFromContext(reqCtx *gin.Context) (*admin.Account, bool) {
	v, ok := reqCtx.Get(string(AdminContextKeyEntity))
	if !ok {
		return nil, false
	}
	return v.(*admin.Account), true
}

func SetAdminToContext(reqCtx *gin.Context, account *admin.Account) {
	reqCtx.Set(string(AdminContextKeyEntity), account)
}

func GetAdminIDFromContext(reqCtx *gin.Context) (string, bool) {
	adminId, ok := reqCtx.Get(string(AdminContextKeyID))
	if !ok {
		return "", false
	}
	v, ok := adminId.(string)
	if !ok {
		return "", false
	}
	return v, true
}

func SetAdminIDToContext(reqCtx *gin.Context, v string) {
	reqCtx.Set(string(AdminContextKeyID), v)
}

func GetAdminClaimFromContext(reqCtx *gin.Context) (*AdminClaim, bool) {
	v, ok := reqCtx.Get(ContextAdminClaim)
	if !ok {
		return nil, false
	}
	claim, ok := v.(*AdminClaim)
	return claim, ok
}

func SetAdminClaimToContext(reqCtx *gin.Context, claim *AdminClaim) {
	reqCtx.Set(ContextAdminClaim, claim)
}
