package routes

import (
	"github.com/google/wire"
	v1 "lendsqr.dev/admin-api-gateway/app/interfaces/http/routes/v1"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/routes/v1/auth"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/routes/v1/users"
)

var RouteProvider = wire.NewSet(
	auth.NewAuthRoute,
	users.NewUsersRoute,
	v1.NewV1Route,
)
