package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/routes/v1/auth"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/routes/v1/users"
	"lendsqr.dev/admin-api-gateway/config"
)

type V1Route struct {
	authRoute  *auth.AuthRoute
	usersRoute *users.UsersRoute
}

func NewV1Route(
	authRoute *auth.AuthRoute,
	usersRoute *users.UsersRoute,
) *V1Route {
	return &V1Route{
		authRoute,
		usersRoute,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Route.authRoute.RegisterRouter(v1Router)
	v1Route.usersRoute.RegisterRouter(v1Router)
}

// GetVersion godoc
// @Summary     Get API build version
// @Description Returns the current build version of the API server.
// @Tags        Server API
// @Produce     json
// @Success     200 {object} map[string]string "version info"
// @Router      /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         config.Version,
		"env_reloaded_at": config.EnvReloadedAt,
	})
}
