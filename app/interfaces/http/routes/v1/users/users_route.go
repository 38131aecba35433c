package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lendsqr.dev/admin-api-gateway/app/domain/auth"
	"lendsqr.dev/admin-api-gateway/app/domain/query"
	"lendsqr.dev/admin-api-gateway/app/domain/user"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/responses"
)

type UsersRoute struct {
	userService *user.UserService
	authService *auth.AuthService
}

func NewUsersRoute(
	userService *user.UserService,
	authService *auth.AuthService) *UsersRoute {
	return &UsersRoute{
		userService,
		authService,
	}
}

func (usersRoute *UsersRoute) RegisterRouter(router gin.IRouter) {
	usersRouter := router.Group("/users",
		usersRoute.authService.JWTAuthMiddleware(),
		usersRoute.authService.RegisteredAdminMiddleware(),
	)
	usersRouter.GET("", usersRoute.ListUsers)
	usersRouter.GET("/organizations", usersRoute.GetOrganizations)
	usersRouter.GET("/stats", usersRoute.GetStats)
	usersRouter.GET("/:user_id", usersRoute.GetUser)
	usersRouter.POST("/:user_id/blacklist", usersRoute.BlacklistUser)
	usersRouter.POST("/:user_id/activate", usersRoute.ActivateUser)
}

// @Summary List users
// @Description Returns one page of the user table, filtered and paginated. Loads from the upstream directory first and falls back to the local cache when it is unreachable.
// @Tags Users API
// @Security BearerAuth
// @Produce json
// @Param organization query string false "Exact organization name"
// @Param username query string false "Case-insensitive username substring"
// @Param email query string false "Case-insensitive email substring"
// @Param date query string false "Join date (YYYY-MM-DD), matched by calendar day"
// @Param phone_number query string false "Phone number substring"
// @Param status query string false "Exact status" Enums(Active, Inactive, Pending, Blacklisted)
// @Param page query int false "Page number, clamped to the last page" default(1)
// @Param page_size query int false "Page size" Enums(10, 20, 50, 100) default(10)
// @Param refresh query bool false "Force a refetch from the upstream directory"
// @Success 200 {object} responses.GeneralResponse[user.ListResult] "One page of users"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 503 {object} responses.ErrorResponse "Upstream unreachable and cache empty"
// @Router /v1/users [get]
func (usersRoute *UsersRoute) ListUsers(reqCtx *gin.Context) {
	listQuery, err := query.GetListQueryFromQuery(reqCtx)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "9b4e2f71-c385-4da0-b6e9-12f7a8c05d43",
			Error: err.Error(),
		})
		return
	}

	result, err := usersRoute.userService.List(reqCtx.Request.Context(), *listQuery)
	if err != nil {
		usersRoute.abortWithGatewayError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[*user.ListResult]{
		Status: responses.ResponseStatusOk,
		Result: result,
	})
}

// @Summary List organizations
// @Description Returns the distinct organization names of the user collection, for the filter dropdown.
// @Tags Users API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.GeneralResponse[[]string] "Sorted organization names"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 503 {object} responses.ErrorResponse "Upstream unreachable and cache empty"
// @Router /v1/users/organizations [get]
func (usersRoute *UsersRoute) GetOrganizations(reqCtx *gin.Context) {
	orgs, err := usersRoute.userService.OrganizationNames(reqCtx.Request.Context())
	if err != nil {
		usersRoute.abortWithGatewayError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[[]string]{
		Status: responses.ResponseStatusOk,
		Result: orgs,
	})
}

// @Summary Get user stats
// @Description Returns the dashboard counters derived from the user collection.
// @Tags Users API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.GeneralResponse[user.Stats] "Dashboard counters"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 503 {object} responses.ErrorResponse "Upstream unreachable and cache empty"
// @Router /v1/users/stats [get]
func (usersRoute *UsersRoute) GetStats(reqCtx *gin.Context) {
	stats, err := usersRoute.userService.StatsSummary(reqCtx.Request.Context())
	if err != nil {
		usersRoute.abortWithGatewayError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[*user.Stats]{
		Status: responses.ResponseStatusOk,
		Result: stats,
	})
}

// @Summary Get user detail
// @Description Returns the full user record with its derived detail fields, cache-first.
// @Tags Users API
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "Upstream user id"
// @Success 200 {object} responses.GeneralResponse[user.Detail] "Full user detail"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 503 {object} responses.ErrorResponse "Upstream unreachable"
// @Router /v1/users/{user_id} [get]
func (usersRoute *UsersRoute) GetUser(reqCtx *gin.Context) {
	userID := reqCtx.Param("user_id")
	detail, err := usersRoute.userService.GetUserDetail(reqCtx.Request.Context(), userID)
	if err != nil {
		usersRoute.abortWithGatewayError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[*user.Detail]{
		Status: responses.ResponseStatusOk,
		Result: detail,
	})
}

// @Summary Blacklist user
// @Description Sets the user's status to Blacklisted and persists the change.
// @Tags Users API
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "Upstream user id"
// @Success 200 {object} responses.GeneralResponse[user.User] "Updated user"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 503 {object} responses.ErrorResponse "Upstream unreachable"
// @Router /v1/users/{user_id}/blacklist [post]
func (usersRoute *UsersRoute) BlacklistUser(reqCtx *gin.Context) {
	usersRoute.setStatus(reqCtx, user.StatusBlacklisted)
}

// @Summary Activate user
// @Description Sets the user's status to Active and persists the change.
// @Tags Users API
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "Upstream user id"
// @Success 200 {object} responses.GeneralResponse[user.User] "Updated user"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 503 {object} responses.ErrorResponse "Upstream unreachable"
// @Router /v1/users/{user_id}/activate [post]
func (usersRoute *UsersRoute) ActivateUser(reqCtx *gin.Context) {
	usersRoute.setStatus(reqCtx, user.StatusActive)
}

func (usersRoute *UsersRoute) setStatus(reqCtx *gin.Context, status user.UserStatus) {
	userID := reqCtx.Param("user_id")
	updated, err := usersRoute.userService.SetStatus(reqCtx.Request.Context(), userID, status)
	if err != nil {
		usersRoute.abortWithGatewayError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[*user.User]{
		Status: responses.ResponseStatusOk,
		Result: updated,
	})
}

func (usersRoute *UsersRoute) abortWithGatewayError(reqCtx *gin.Context, err error) {
	if user.IsGatewayNotFound(err) {
		reqCtx.AbortWithStatusJSON(http.StatusNotFound, responses.ErrorResponse{
			Code:  "4f7a0d92-b61e-48c5-a3d7-c85e29f1b064",
			Error: "user not found",
		})
		return
	}
	reqCtx.AbortWithStatusJSON(http.StatusServiceUnavailable, responses.ErrorResponse{
		Code:  "1e8c5b37-d4f2-49a6-8b90-3a72d6e15c48",
		Error: user.FetchFailedMessage,
	})
}
