package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"lendsqr.dev/admin-api-gateway/app/domain/admin"
	"lendsqr.dev/admin-api-gateway/app/domain/auth"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/responses"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
)

type AuthRoute struct {
	adminService *admin.AdminService
	authService  *auth.AuthService
}

func NewAuthRoute(
	adminService *admin.AdminService,
	authService *auth.AuthService) *AuthRoute {
	return &AuthRoute{
		adminService,
		authService,
	}
}

func (authRoute *AuthRoute) RegisterRouter(router gin.IRouter) {
	authRouter := router.Group("/auth")
	authRouter.POST("/login", authRoute.Login)
	authRouter.GET("/logout", authRoute.authService.JWTAuthMiddleware(), authRoute.Logout)
	authRouter.GET("/me",
		authRoute.authService.JWTAuthMiddleware(),
		authRoute.authService.RegisteredAdminMiddleware(),
		authRoute.GetMe,
	)
}

// @Enum(access.token)
type AccessTokenResponseObjectType string

const AccessTokenResponseObjectTypeObject = "access.token"

type AccessTokenResponse struct {
	Object      AccessTokenResponseObjectType `json:"object"`
	AccessToken string                        `json:"access_token"`
	ExpiresIn   int                           `json:"expires_in"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GetMeResponse struct {
	Object string `json:"object"`
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// @Summary Get admin profile
// @Description Retrieves the profile of the authenticated administrator.
// @Tags Authentication API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} GetMeResponse "Successfully retrieved admin profile"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized (e.g., missing or invalid JWT)"
// @Router /v1/auth/me [get]
func (authRoute *AuthRoute) GetMe(reqCtx *gin.Context) {
	account, _ := auth.GetAdminFromContext(reqCtx)
	reqCtx.JSON(http.StatusOK, GetMeResponse{
		Object: "me",
		ID:     account.PublicID,
		Email:  account.Email,
		Name:   account.Name,
	})
}

// @Summary Admin credential login
// @Description Authenticates an administrator using email and password and opens a revocable session.
// @Tags Authentication API
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AccessTokenResponse "Successfully authenticated"
// @Failure 400 {object} responses.ErrorResponse "Invalid request payload"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/auth/login [post]
func (authRoute *AuthRoute) Login(reqCtx *gin.Context) {
	var request LoginRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "a3f18c2d-7b54-4e09-bc16-d8e527a9f0c3",
			Error: "invalid credentials payload",
		})
		return
	}

	ctx := reqCtx.Request.Context()
	account, err := authRoute.authService.AuthenticateLocalAdmin(ctx, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "5d92e7b0-14af-4c63-9e81-f3a6c0d8b254",
				Error: "invalid email or password",
			})
			return
		}
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "2c80f4a6-e93d-47b1-8d52-60b9e1c7a3f5",
			Error: err.Error(),
		})
		return
	}

	sessionID, err := authRoute.authService.CreateSession(ctx, account)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "7e51b9d3-a28c-40f6-bd04-91c3f6e8a572",
			Error: err.Error(),
		})
		return
	}

	accessTokenExp := time.Now().Add(auth.AccessTokenExpirationDuration)
	accessTokenString, err := auth.CreateJwtSignedString(auth.AdminClaim{
		Email:     account.Email,
		Name:      account.Name,
		ID:        account.PublicID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessTokenExp),
			Subject:   account.Email,
		},
	})
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "d06a3e85-59cb-4b27-a1f4-8e72d9c0b316",
			Error: err.Error(),
		})
		return
	}

	// The cookie carries the same token for browser clients; the session
	// lives server-side either way.
	sessionExp := time.Now().Add(auth.SessionExpirationDuration)
	http.SetCookie(reqCtx.Writer,
		responses.NewCookieWithSecurity(
			auth.SessionCookieKey,
			accessTokenString,
			sessionExp,
		),
	)

	reqCtx.JSON(http.StatusOK, &AccessTokenResponse{
		Object:      AccessTokenResponseObjectTypeObject,
		AccessToken: accessTokenString,
		ExpiresIn:   int(time.Until(accessTokenExp).Seconds()),
	})
}

// @Summary Logout
// @Description Revokes the server-side session and clears the session cookie.
// @Tags Authentication API
// @Produce json
// @Success 200 {object} nil "Successfully logged out"
// @Router /v1/auth/logout [get]
func (authRoute *AuthRoute) Logout(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	if claim, ok := auth.GetAdminClaimFromContext(reqCtx); ok {
		if err := authRoute.authService.RevokeSession(ctx, claim.SessionID); err != nil {
			logger.GetLogger().Errorf("failed to revoke session: %v", err)
		}
	}
	http.SetCookie(reqCtx.Writer, responses.NewCookieWithSecurity(
		auth.SessionCookieKey,
		"",
		time.Unix(0, 0),
	))
	reqCtx.Status(http.StatusOK)
}
